// SPDX-License-Identifier: MIT
// Package routes keeps named graphs ("saved routes") so a session can store
// its current graph and reload it later.
//
// Two backends implement Store: Memory for a single process and Redis for a
// shared deployment. Both persist graphio.Document values, so a saved route
// is exactly what Session.Export produces and Session.Import accepts.
package routes

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/katalvlaran/trafficgraph/graphio"
)

// Sentinel errors.
var (
	// ErrNotFound indicates that no route carries the requested name.
	ErrNotFound = errors.New("routes: not found")

	// ErrInvalidName indicates a name outside the allowed alphabet or length.
	ErrInvalidName = errors.New("routes: invalid name")
)

// MaxNameLen bounds route names.
const MaxNameLen = 64

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// Summary describes a saved route without its payload.
type Summary struct {
	Name     string    `json:"name"`
	Vertices int       `json:"vertices"`
	Edges    int       `json:"edges"`
	SavedAt  time.Time `json:"saved_at"`
}

// Store persists named graph documents. Save overwrites an existing name.
// List is ordered by name.
type Store interface {
	Save(ctx context.Context, name string, doc graphio.Document) error
	Load(ctx context.Context, name string) (graphio.Document, error)
	List(ctx context.Context) ([]Summary, error)
	Delete(ctx context.Context, name string) error
}

// ValidateName reports whether name can be used as a route key.
func ValidateName(name string) error {
	if len(name) == 0 || len(name) > MaxNameLen || !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}

// record is the stored form of a route.
type record struct {
	SavedAt  time.Time        `json:"saved_at"`
	Document graphio.Document `json:"document"`
}

func (r record) summary(name string) Summary {
	return Summary{
		Name:     name,
		Vertices: len(r.Document.Vertices),
		Edges:    len(r.Document.Edges),
		SavedAt:  r.SavedAt,
	}
}

// prepare validates a save request and returns a deep copy of doc.
func prepare(name string, doc graphio.Document) (graphio.Document, error) {
	if err := ValidateName(name); err != nil {
		return graphio.Document{}, err
	}
	if err := doc.Validate(); err != nil {
		return graphio.Document{}, fmt.Errorf("routes: save %q: %w", name, err)
	}

	return cloneDocument(doc), nil
}

func cloneDocument(d graphio.Document) graphio.Document {
	out := graphio.Document{
		Vertices: make([]graphio.Vertex, len(d.Vertices)),
		Edges:    make([]graphio.Edge, len(d.Edges)),
	}
	copy(out.Vertices, d.Vertices)
	copy(out.Edges, d.Edges)

	return out
}
