// SPDX-License-Identifier: MIT
// Package result defines the uniform, immutable outcome of an algorithm run.
//
// A Result is built once from a Data value and never changes afterwards:
// New deep-copies its input and every accessor hands out a fresh copy, so
// a Result may be shared between history, the current selection and the
// HTTP layer without aliasing.
package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"
)

// Kind identifies the algorithm that produced a Result.
type Kind string

// Supported kinds.
const (
	KindShortestPath Kind = "shortest_path"
	KindHamiltonian  Kind = "hamiltonian"
	KindMSTPrim      Kind = "mst_prim"
	KindMSTKruskal   Kind = "mst_kruskal"
	KindFleury       Kind = "fleury"
	KindHierholzer   Kind = "hierholzer"
)

// ErrUnknownKind is returned by ParseKind for an unsupported name.
var ErrUnknownKind = errors.New("result: unknown algorithm kind")

// Kinds returns every supported kind in display order.
func Kinds() []Kind {
	return []Kind{KindShortestPath, KindHamiltonian, KindMSTPrim, KindMSTKruskal, KindFleury, KindHierholzer}
}

// ParseKind validates s as a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if slices.Contains(Kinds(), k) {
		return k, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// IsMST reports whether k produces a tree rather than a walk.
func (k Kind) IsMST() bool { return k == KindMSTPrim || k == KindMSTKruskal }

// IsEuler reports whether k is an Eulerian traversal.
func (k Kind) IsEuler() bool { return k == KindFleury || k == KindHierholzer }

// EdgeRef is a traversed or selected edge, oriented in traversal order.
type EdgeRef struct {
	ID     string  `json:"id"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// EdgeDetail is one row of the human-readable edge table.
type EdgeDetail struct {
	Label    string  `json:"label"`
	Weight   float64 `json:"weight"`
	FromName string  `json:"from_name"`
	ToName   string  `json:"to_name"`
}

// OddVertex is a vertex of odd degree reported by the Euler kinds.
type OddVertex struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Degree int    `json:"degree"`
}

// TraceStep is one line of an Euler construction log.
type TraceStep struct {
	Step     int     `json:"step"`
	Vertex   string  `json:"vertex"`
	Chosen   string  `json:"chosen"`
	Weight   float64 `json:"weight"`
	Status   string  `json:"status"`
	EdgeID   string  `json:"edge_id"`
	VertexID string  `json:"vertex_id"`
}

// Data is the full content of a Result.
//
// Path holds vertex IDs in traversal order and is empty for MST kinds.
// Edges are in traversal (or selection) order. Degenerate is set for a
// shortest path whose start equals its end; Spanning for an MST covering all
// vertices. OddVertices and Trace are filled by the Euler kinds.
type Data struct {
	Kind         Kind              `json:"kind"`
	Timestamp    time.Time         `json:"timestamp"`
	Path         []string          `json:"path"`
	Edges        []EdgeRef         `json:"edges"`
	TotalWeight  float64           `json:"total_weight"`
	Details      []EdgeDetail      `json:"edge_details"`
	Start        string            `json:"start,omitempty"`
	End          string            `json:"end,omitempty"`
	HasCycle     bool              `json:"has_cycle"`
	CycleMessage string            `json:"cycle_message"`
	NumVertices  int               `json:"num_vertices"`
	NumEdges     int               `json:"num_edges"`
	VertexNames  map[string]string `json:"vertex_names"`
	Degenerate   bool              `json:"degenerate,omitempty"`
	Spanning     bool              `json:"spanning,omitempty"`
	OddVertices  []OddVertex       `json:"odd_vertices,omitempty"`
	Trace        []TraceStep       `json:"trace,omitempty"`
}

// clone returns a deep copy of d.
func (d Data) clone() Data {
	d.Path = slices.Clone(d.Path)
	d.Edges = slices.Clone(d.Edges)
	d.Details = slices.Clone(d.Details)
	d.VertexNames = maps.Clone(d.VertexNames)
	d.OddVertices = slices.Clone(d.OddVertices)
	d.Trace = slices.Clone(d.Trace)

	return d
}

// Result is an immutable algorithm outcome. The zero value is an empty
// result with no kind.
type Result struct {
	d Data
}

// New freezes d into a Result.
func New(d Data) Result { return Result{d: d.clone()} }

// Data returns a copy of the full content.
func (r Result) Data() Data { return r.d.clone() }

// Kind returns the producing algorithm.
func (r Result) Kind() Kind { return r.d.Kind }

// Timestamp returns the creation time.
func (r Result) Timestamp() time.Time { return r.d.Timestamp }

// TotalWeight returns the sum of traversed or selected edge weights.
func (r Result) TotalWeight() float64 { return r.d.TotalWeight }

// Path returns a copy of the vertex walk.
func (r Result) Path() []string { return slices.Clone(r.d.Path) }

// Edges returns a copy of the edge list.
func (r Result) Edges() []EdgeRef { return slices.Clone(r.d.Edges) }

// Details returns a copy of the edge table.
func (r Result) Details() []EdgeDetail { return slices.Clone(r.d.Details) }

// IsZero reports whether r was never built.
func (r Result) IsZero() bool { return r.d.Kind == "" }

// Sequence returns the vertex order to animate.
//
// Walk kinds return Path. MST kinds return the tree vertices in the order
// they first appear among the selected edges, prefixed by Start when set.
func (r Result) Sequence() []string {
	if len(r.d.Path) > 0 {
		return slices.Clone(r.d.Path)
	}
	seen := make(map[string]bool)
	var out []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	add(r.d.Start)
	for _, e := range r.d.Edges {
		add(e.From)
		add(e.To)
	}

	return out
}

// MarshalJSON encodes the underlying Data.
func (r Result) MarshalJSON() ([]byte, error) { return json.Marshal(r.d) }

// UnmarshalJSON decodes into a fresh Data.
func (r *Result) UnmarshalJSON(b []byte) error {
	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	r.d = d

	return nil
}

// Detail builds the table row for e using names, falling back to the raw ID
// when a name is missing.
func Detail(e EdgeRef, names map[string]string) EdgeDetail {
	from, to := nameOr(names, e.From), nameOr(names, e.To)

	return EdgeDetail{Label: from + "-" + to, Weight: e.Weight, FromName: from, ToName: to}
}

func nameOr(names map[string]string, id string) string {
	if n, ok := names[id]; ok && n != "" {
		return n
	}

	return id
}
