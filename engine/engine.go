// SPDX-License-Identifier: MIT
// Package engine dispatches an algorithm kind over a built *core.Graph and
// assembles the uniform result.Result: traversed edges, total weight, the
// edge detail table, cycle flags and per-kind extras.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/trafficgraph/core"
	"github.com/katalvlaran/trafficgraph/dijkstra"
	"github.com/katalvlaran/trafficgraph/euler"
	"github.com/katalvlaran/trafficgraph/hamilton"
	"github.com/katalvlaran/trafficgraph/prim_kruskal"
	"github.com/katalvlaran/trafficgraph/result"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when Run receives a nil graph.
	ErrNilGraph = errors.New("engine: graph is nil")

	// ErrUnknownKind is returned for a kind Run cannot dispatch.
	ErrUnknownKind = errors.New("engine: unknown algorithm kind")

	// ErrUnknownVertex is returned when Start or End is not in the graph.
	ErrUnknownVertex = errors.New("engine: unknown vertex")
)

// Cycle messages attached to results.
const (
	MsgSameEndpoints    = "start equals end"
	MsgDistinctEndpoint = "start differs from end"
	MsgHamiltonianFound = "Hamiltonian cycle found"
	MsgTreeNoCycle      = "spanning tree contains no cycle"
	MsgEulerCircuit     = "closed circuit"
	MsgEulerOpen        = "open path (not a circuit)"
)

// Params are the per-run inputs. Start defaults to the first vertex, End
// (used by shortest_path only) to the second.
type Params struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Engine runs algorithms. The zero value is not usable; call New.
type Engine struct {
	now           func() time.Time
	maxExpansions int
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the timestamp source. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("engine: WithClock(nil)")
	}

	return func(e *Engine) { e.now = now }
}

// WithHamiltonianLimit caps backtracking expansions; 0 disables the cap.
// Panics if n < 0.
func WithHamiltonianLimit(n int) Option {
	if n < 0 {
		panic("engine: WithHamiltonianLimit requires n >= 0")
	}

	return func(e *Engine) { e.maxExpansions = n }
}

// New returns an Engine using time.Now.
func New(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run executes kind on g.
//
// Steps:
//  1. Validate graph and kind; resolve Start/End defaults.
//  2. Snapshot vertex names and counts.
//  3. Dispatch to the algorithm package.
//  4. Fill details and total weight from the ordered edge list.
//
// Algorithm failures are returned wrapped, so errors.Is against
// dijkstra.ErrNoPath, hamilton.ErrNoHamiltonianCycle, euler.ErrEulerCondition
// and euler.ErrDisconnected keeps working.
func (e *Engine) Run(ctx context.Context, g *core.Graph, kind result.Kind, p Params) (result.Result, error) {
	// 1. validation
	if g == nil {
		return result.Result{}, ErrNilGraph
	}
	ids := g.Vertices()
	start, end, err := resolve(g, ids, kind, p)
	if err != nil {
		return result.Result{}, err
	}

	// 2. snapshot
	d := result.Data{
		Kind:        kind,
		Timestamp:   e.now(),
		NumVertices: len(ids),
		NumEdges:    g.EdgeCount(),
		VertexNames: make(map[string]string, len(ids)),
	}
	for _, id := range ids {
		v, _ := g.Vertex(id)
		d.VertexNames[id] = v.Name
	}

	// 3. dispatch
	switch kind {
	case result.KindShortestPath:
		err = e.shortestPath(g, start, end, &d)
	case result.KindHamiltonian:
		err = e.hamiltonian(ctx, g, start, &d)
	case result.KindMSTPrim, result.KindMSTKruskal:
		err = e.mst(g, kind, start, &d)
	case result.KindFleury, result.KindHierholzer:
		err = e.eulerian(g, kind, start, &d)
	default:
		return result.Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err != nil {
		return result.Result{}, fmt.Errorf("engine: %s: %w", kind, err)
	}

	// 4. details
	d.TotalWeight = 0
	d.Details = make([]result.EdgeDetail, 0, len(d.Edges))
	for _, er := range d.Edges {
		d.TotalWeight += er.Weight
		d.Details = append(d.Details, result.Detail(er, d.VertexNames))
	}

	return result.New(d), nil
}

// resolve applies defaults and checks that the endpoints exist.
func resolve(g *core.Graph, ids []string, kind result.Kind, p Params) (string, string, error) {
	start, end := p.Start, p.End
	if start == "" && len(ids) > 0 {
		start = ids[0]
	}
	if end == "" && len(ids) > 1 {
		end = ids[1]
	}
	if start == "" || !g.HasVertex(start) {
		return "", "", fmt.Errorf("%w: start %q", ErrUnknownVertex, start)
	}
	if kind == result.KindShortestPath && (end == "" || !g.HasVertex(end)) {
		return "", "", fmt.Errorf("%w: end %q", ErrUnknownVertex, end)
	}

	return start, end, nil
}

func (e *Engine) shortestPath(g *core.Graph, start, end string, d *result.Data) error {
	path, err := dijkstra.ShortestPath(g, start, end)
	if err != nil {
		return err
	}
	d.Start, d.End = start, end
	d.Path = path.Vertices
	d.Edges = walkRefs(path.Vertices, path.Edges)
	d.Degenerate = start == end
	d.HasCycle = d.Degenerate
	d.CycleMessage = MsgDistinctEndpoint
	if d.Degenerate {
		d.CycleMessage = MsgSameEndpoints
	}

	return nil
}

func (e *Engine) hamiltonian(ctx context.Context, g *core.Graph, start string, d *result.Data) error {
	opts := []hamilton.Option{hamilton.WithContext(ctx)}
	if e.maxExpansions > 0 {
		opts = append(opts, hamilton.WithMaxExpansions(e.maxExpansions))
	}
	c, err := hamilton.Search(g, start, opts...)
	if err != nil {
		return err
	}
	d.Start, d.End = start, start
	d.Path = c.Vertices
	d.Edges = walkRefs(c.Vertices, c.Edges)
	d.HasCycle = true
	d.CycleMessage = MsgHamiltonianFound

	return nil
}

func (e *Engine) mst(g *core.Graph, kind result.Kind, start string, d *result.Data) error {
	method := prim_kruskal.MethodKruskal
	if kind == result.KindMSTPrim {
		method = prim_kruskal.MethodPrim
		d.Start = start
	}
	tree, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(start))
	if err != nil {
		return err
	}
	d.Edges = make([]result.EdgeRef, len(tree.Edges))
	for i, te := range tree.Edges {
		d.Edges[i] = result.EdgeRef{ID: te.ID, From: te.From, To: te.To, Weight: te.Weight}
	}
	d.Spanning = tree.Spanning
	d.CycleMessage = MsgTreeNoCycle

	return nil
}

func (e *Engine) eulerian(g *core.Graph, kind result.Kind, start string, d *result.Data) error {
	build := euler.Hierholzer
	if kind == result.KindFleury {
		build = euler.Fleury
	}
	tr, err := build(g, start)
	if err != nil {
		return err
	}
	d.Path = tr.Vertices
	d.Start = tr.Vertices[0]
	d.End = tr.Vertices[len(tr.Vertices)-1]
	d.Edges = walkRefs(tr.Vertices, tr.Edges)
	d.HasCycle = tr.Circuit
	d.CycleMessage = MsgEulerOpen
	if tr.Circuit {
		d.CycleMessage = MsgEulerCircuit
	}
	for _, o := range tr.Odd {
		d.OddVertices = append(d.OddVertices, result.OddVertex{ID: o.ID, Name: d.VertexNames[o.ID], Degree: o.Degree})
	}
	for _, s := range tr.Trace {
		from, to := d.VertexNames[s.Vertex], d.VertexNames[s.To]
		d.Trace = append(d.Trace, result.TraceStep{
			Step:     s.Step,
			Vertex:   from,
			Chosen:   from + " -> " + to,
			Weight:   s.Weight,
			Status:   s.Status,
			EdgeID:   s.EdgeID,
			VertexID: s.Vertex,
		})
	}

	return nil
}

// walkRefs orients each edge along the walk vs.
func walkRefs(vs []string, es []*core.Edge) []result.EdgeRef {
	out := make([]result.EdgeRef, len(es))
	for i, e := range es {
		out[i] = result.EdgeRef{ID: e.ID, From: vs[i], To: vs[i+1], Weight: e.Weight}
	}

	return out
}
