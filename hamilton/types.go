// SPDX-License-Identifier: MIT
// Package hamilton defines options, the Cycle result and sentinel errors for
// the backtracking Hamiltonian cycle search.
package hamilton

import (
	"context"
	"errors"

	"github.com/katalvlaran/trafficgraph/core"
)

// Sentinel errors for Hamiltonian search.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("hamilton: graph is nil")

	// ErrEmptyStart is returned when the start vertex ID is empty.
	ErrEmptyStart = errors.New("hamilton: start vertex ID is empty")

	// ErrNoHamiltonianCycle means the search exhausted every branch.
	ErrNoHamiltonianCycle = errors.New("hamilton: no Hamiltonian cycle")

	// ErrSearchLimit means the expansion budget ran out before a verdict.
	ErrSearchLimit = errors.New("hamilton: search limit reached")
)

// Cycle is a closed tour: Vertices[0] == Vertices[len-1] == start and every
// other vertex appears exactly once. Edges[i] joins Vertices[i] and Vertices[i+1].
type Cycle struct {
	Vertices    []string
	Edges       []*core.Edge
	TotalWeight float64
}

// Options configures Search.
type Options struct {
	// Ctx is checked once per expansion.
	Ctx context.Context

	// MaxExpansions caps the number of recursive steps; 0 disables the cap.
	MaxExpansions int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns background context and no expansion cap.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the search. Panics if n < 0.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic("hamilton: WithMaxExpansions requires n >= 0")
	}

	return func(o *Options) { o.MaxExpansions = n }
}
