// SPDX-License-Identifier: MIT
// Package euler defines the Trail result, trace steps and error types for
// Eulerian path and circuit construction.
package euler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/trafficgraph/core"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("euler: graph is nil")

	// ErrEmptyStart is returned when the start vertex ID is empty.
	ErrEmptyStart = errors.New("euler: start vertex ID is empty")

	// ErrEulerCondition means the odd-degree count is neither 0 nor 2.
	// The concrete error is *OddDegreeError.
	ErrEulerCondition = errors.New("euler: Euler condition violated")

	// ErrDisconnected means some vertex cannot reach another.
	ErrDisconnected = errors.New("euler: graph is disconnected")
)

// VertexDegree pairs a vertex with its degree.
type VertexDegree struct {
	ID     string
	Degree int
}

// OddDegreeError lists the odd-degree vertices that break Euler's theorem.
type OddDegreeError struct {
	Odd []VertexDegree
}

// Error implements error.
func (e *OddDegreeError) Error() string {
	parts := make([]string, len(e.Odd))
	for i, vd := range e.Odd {
		parts[i] = fmt.Sprintf("%s(deg %d)", vd.ID, vd.Degree)
	}

	return fmt.Sprintf("%v: %d odd-degree vertices, need 0 or 2: %s",
		ErrEulerCondition, len(e.Odd), strings.Join(parts, ", "))
}

// Is lets errors.Is(err, ErrEulerCondition) match.
func (e *OddDegreeError) Is(target error) bool { return target == ErrEulerCondition }

// Step statuses.
const (
	// StatusSafe marks an edge that was not a bridge of the remaining graph.
	StatusSafe = "safe"
	// StatusBridge marks a bridge taken because no other edge was left.
	StatusBridge = "bridge"
	// StatusTraverse marks an edge of a stitched trail.
	StatusTraverse = "traverse"
)

// Step is one line of the trace log.
type Step struct {
	Step   int     `json:"step"`
	Vertex string  `json:"vertex"`
	EdgeID string  `json:"edge_id"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
	Status string  `json:"status"`
}

// Trail is an Eulerian path or circuit.
//
// Vertices has len(Edges)+1 entries; Edges[i] joins Vertices[i] and
// Vertices[i+1]. Circuit is true when the trail is closed.
type Trail struct {
	Vertices    []string
	Edges       []*core.Edge
	TotalWeight float64
	Circuit     bool
	Odd         []VertexDegree
	Trace       []Step
}
