// SPDX-License-Identifier: MIT
// Package: trafficgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrInsufficientGraph indicates the store is too small to run any algorithm.
// Both ErrTooFewVertices and ErrNoEdges match it under errors.Is.
var ErrInsufficientGraph = errors.New("builder: insufficient graph")

// ErrTooFewVertices indicates fewer than 2 vertices in the source.
var ErrTooFewVertices = fmt.Errorf("%w: need at least 2 vertices", ErrInsufficientGraph)

// ErrNoEdges indicates the source has no edge.
var ErrNoEdges = fmt.Errorf("%w: need at least 1 edge", ErrInsufficientGraph)

// ErrBadSize indicates a fixture size parameter below the constructor minimum.
var ErrBadSize = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a fixture could not be applied (nil
// constructor, nil store, or a store rejection such as the vertex limit).
var ErrConstructFailed = errors.New("builder: construction failed")
