// SPDX-License-Identifier: MIT
// Package graphio encodes and decodes the persisted graph payload
//
//	{"vertices": [{"id", "name", "lat", "lon"}], "edges": [{"from", "to", "weight"}]}
//
// in JSON or YAML. Vertex ids in the payload are positional (0..n-1); stable
// store IDs never leave the process. File I/O is left to callers.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trafficgraph/store"
)

// Sentinel errors.
var (
	// ErrInvalidDocument indicates a payload that does not describe a graph.
	ErrInvalidDocument = errors.New("graphio: invalid document")

	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)

// Format selects a codec.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatOf picks a format from a file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Vertex is a payload vertex.
type Vertex struct {
	ID   int     `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lon  float64 `json:"lon" yaml:"lon"`
}

// Edge is a payload edge between positional ids. A zero weight is
// recomputed from coordinates on import.
type Edge struct {
	From   int     `json:"from" yaml:"from"`
	To     int     `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Document is the whole payload.
type Document struct {
	Vertices []Vertex `json:"vertices" yaml:"vertices"`
	Edges    []Edge   `json:"edges" yaml:"edges"`
}

// Export snapshots s as a Document.
func Export(s *store.Store) Document {
	vs := s.Vertices()
	doc := Document{Vertices: make([]Vertex, len(vs)), Edges: make([]Edge, 0, s.EdgeCount())}
	for i, v := range vs {
		doc.Vertices[i] = Vertex{ID: v.Index, Name: v.Name, Lat: v.Lat, Lon: v.Lon}
	}
	for _, e := range s.Edges() {
		from, _ := s.IndexOf(e.From)
		to, _ := s.IndexOf(e.To)
		doc.Edges = append(doc.Edges, Edge{From: from, To: to, Weight: e.Weight})
	}

	return doc
}

// Validate checks that vertex ids are exactly 0..n-1 (in any order) and that
// edges reference them. Store-level rules (limits, loops, duplicates) are
// enforced by Import.
func (d Document) Validate() error {
	seen := make([]bool, len(d.Vertices))
	for i, v := range d.Vertices {
		if v.ID < 0 || v.ID >= len(d.Vertices) || seen[v.ID] {
			return fmt.Errorf("%w: vertex %d has id %d, want a permutation of 0..%d", ErrInvalidDocument, i, v.ID, len(d.Vertices)-1)
		}
		seen[v.ID] = true
	}
	for i, e := range d.Edges {
		if e.From < 0 || e.From >= len(d.Vertices) || e.To < 0 || e.To >= len(d.Vertices) {
			return fmt.Errorf("%w: edge %d (%d,%d) references an unknown vertex", ErrInvalidDocument, i, e.From, e.To)
		}
	}

	return nil
}

// Import replaces the content of s with d. On error s is unchanged.
//
// Steps:
//  1. Validate the document shape.
//  2. Order vertices by payload id.
//  3. Hand everything to store.Replace, which applies the store rules.
func Import(s *store.Store, d Document) error {
	// 1. shape
	if err := d.Validate(); err != nil {
		return err
	}

	// 2. positional order
	ordered := make([]Vertex, len(d.Vertices))
	copy(ordered, d.Vertices)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })
	vs := make([]store.VertexInput, len(ordered))
	for i, v := range ordered {
		vs[i] = store.VertexInput{Lat: v.Lat, Lon: v.Lon, Name: v.Name}
	}
	es := make([]store.EdgeInput, len(d.Edges))
	for i, e := range d.Edges {
		es[i] = store.EdgeInput{From: e.From, To: e.To, Weight: e.Weight}
	}

	// 3. replace
	if err := s.Replace(vs, es); err != nil {
		return fmt.Errorf("graphio: import: %w", err)
	}

	return nil
}

// Encode writes d to w.
func Encode(w io.Writer, d Document, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Decode reads a Document from r and validates its shape.
func Decode(r io.Reader, f Format) (Document, error) {
	var d Document
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&d)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&d)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return Document{}, fmt.Errorf("%w: decode %s: %w", ErrInvalidDocument, f, err)
	}
	if err = d.Validate(); err != nil {
		return Document{}, err
	}

	return d, nil
}

// Marshal is Encode into a byte slice.
func Marshal(d Document, f Format) ([]byte, error) {
	var b strings.Builder
	if err := Encode(&b, d, f); err != nil {
		return nil, err
	}

	return []byte(b.String()), nil
}

// Unmarshal is Decode from a byte slice.
func Unmarshal(b []byte, f Format) (Document, error) {
	return Decode(strings.NewReader(string(b)), f)
}
