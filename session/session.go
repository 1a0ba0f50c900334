// SPDX-License-Identifier: MIT
// Package session is the per-user context object: one store, its lazily
// built algorithm graph, the result history and the animation controller.
//
// Every mutation invalidates the cached graph, clears the current result and
// stops the animation. A Session is safe for concurrent use; operations are
// serialized by its mutex.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/trafficgraph/animation"
	"github.com/katalvlaran/trafficgraph/builder"
	"github.com/katalvlaran/trafficgraph/core"
	"github.com/katalvlaran/trafficgraph/engine"
	"github.com/katalvlaran/trafficgraph/graphio"
	"github.com/katalvlaran/trafficgraph/history"
	"github.com/katalvlaran/trafficgraph/result"
	"github.com/katalvlaran/trafficgraph/stats"
	"github.com/katalvlaran/trafficgraph/store"
)

// DefaultNearestRadiusM is the click radius used when FindNearestVertex is
// called with a non-positive radius.
const DefaultNearestRadiusM = 100.0

// Observer receives run and lifecycle measurements.
type Observer interface {
	AlgorithmRun(kind result.Kind, outcome ErrorKind, elapsed time.Duration)
	SessionsChanged(n int)
}

type nopObserver struct{}

func (nopObserver) AlgorithmRun(result.Kind, ErrorKind, time.Duration) {}
func (nopObserver) SessionsChanged(int)                                {}

// AnimationState is a snapshot of the controller.
type AnimationState struct {
	Running bool   `json:"running"`
	Active  string `json:"active"`
	Cursor  int    `json:"cursor"`
	Len     int    `json:"len"`
}

// config collects Session options.
type config struct {
	storeOpts    []store.Option
	engine       *engine.Engine
	historyLimit int
	logger       *slog.Logger
	observer     Observer
	radiusM      float64
}

// Option configures a Session.
type Option func(*config)

// WithStoreOptions forwards options to the underlying store.
func WithStoreOptions(opts ...store.Option) Option {
	return func(c *config) { c.storeOpts = append(c.storeOpts, opts...) }
}

// WithEngine replaces the algorithm engine. Panics on nil.
func WithEngine(e *engine.Engine) Option {
	if e == nil {
		panic("session: WithEngine(nil)")
	}

	return func(c *config) { c.engine = e }
}

// WithHistoryLimit bounds the result history; 0 keeps everything.
func WithHistoryLimit(n int) Option {
	if n < 0 {
		panic("session: WithHistoryLimit requires n >= 0")
	}

	return func(c *config) { c.historyLimit = n }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver sets the metrics observer. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithNearestRadius sets the default FindNearestVertex radius in meters.
func WithNearestRadius(m float64) Option {
	if !(m > 0) {
		panic("session: WithNearestRadius requires a positive radius")
	}

	return func(c *config) { c.radiusM = m }
}

// Session is one interactive graph playground.
type Session struct {
	id      string
	created time.Time

	mu        sync.Mutex
	store     *store.Store
	storeOpts []store.Option
	engine    *engine.Engine
	history   *history.History
	anim      *animation.Controller
	logger    *slog.Logger
	observer  Observer
	radiusM   float64

	// graph is valid while graphRev equals the store revision.
	graph    *core.Graph
	graphRev uint64
}

// New creates a Session with the given ID.
func New(id string, opts ...Option) *Session {
	c := config{logger: slog.Default(), observer: nopObserver{}, radiusM: DefaultNearestRadiusM}
	for _, opt := range opts {
		opt(&c)
	}
	if c.engine == nil {
		c.engine = engine.New()
	}

	return &Session{
		id:        id,
		created:   time.Now(),
		store:     store.New(c.storeOpts...),
		storeOpts: c.storeOpts,
		engine:    c.engine,
		history:   history.New(history.WithLimit(c.historyLimit)),
		anim:      animation.New(),
		logger:    c.logger.With("session", id),
		observer:  c.observer,
		radiusM:   c.radiusM,
	}
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// CreatedAt returns the creation time.
func (s *Session) CreatedAt() time.Time { return s.created }

// MaxVertices returns the store's vertex ceiling.
func (s *Session) MaxVertices() int { return s.store.MaxVertices() }

// invalidate runs after every successful mutation. Caller holds mu.
func (s *Session) invalidate() {
	s.graph = nil
	s.history.Unselect()
	s.anim.Stop()
}

// AddVertex places a new vertex.
func (s *Session) AddVertex(lat, lon float64, name string) (store.Vertex, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.store.AddVertex(lat, lon, name)
	if err != nil {
		s.logger.Warn("add vertex rejected", "error", err)
		return store.Vertex{}, err
	}
	s.invalidate()
	s.logger.Debug("vertex added", "id", v.ID, "index", v.Index, "name", v.Name)

	return v, nil
}

// RemoveVertex deletes a vertex and its incident edges.
func (s *Session) RemoveVertex(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.RemoveVertex(id); err != nil {
		s.logger.Warn("remove vertex rejected", "id", id, "error", err)
		return err
	}
	s.invalidate()
	s.logger.Debug("vertex removed", "id", id)

	return nil
}

// AddEdge connects two vertices by stable ID.
func (s *Session) AddEdge(u, v string, opts ...store.EdgeOption) (store.Edge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.store.AddEdge(u, v, opts...)
	if err != nil {
		s.logger.Warn("add edge rejected", "from", u, "to", v, "error", err)
		return store.Edge{}, err
	}
	s.invalidate()
	s.logger.Debug("edge added", "from", u, "to", v, "weight", e.Weight)

	return e, nil
}

// RemoveEdge deletes the edge at a position of the edge list.
func (s *Session) RemoveEdge(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.RemoveEdge(index); err != nil {
		s.logger.Warn("remove edge rejected", "index", index, "error", err)
		return err
	}
	s.invalidate()
	s.logger.Debug("edge removed", "index", index)

	return nil
}

// FindNearestVertex returns the closest vertex within maxDistanceM meters,
// or within the session default radius when maxDistanceM <= 0.
func (s *Session) FindNearestVertex(lat, lon, maxDistanceM float64) (store.Vertex, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if maxDistanceM <= 0 {
		maxDistanceM = s.radiusM
	}

	return s.store.FindNearestVertex(lat, lon, maxDistanceM)
}

// Vertices lists vertices in positional order.
func (s *Session) Vertices() []store.Vertex {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Vertices()
}

// Edges lists edges in store order.
func (s *Session) Edges() []store.Edge {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Edges()
}

// Names returns the id → name table.
func (s *Session) Names() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Names()
}

// IndexOf returns the current position of a stable vertex ID.
func (s *Session) IndexOf(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.IndexOf(id)
}

// Graph returns the algorithm graph, rebuilding it when the store changed.
// The returned graph must be treated as read-only.
func (s *Session) Graph() (*core.Graph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buildGraph()
}

// buildGraph is Graph without locking. Caller holds mu.
func (s *Session) buildGraph() (*core.Graph, error) {
	rev := s.store.Revision()
	if s.graph != nil && s.graphRev == rev {
		return s.graph, nil
	}
	g, err := builder.Build(s.store)
	if err != nil {
		return nil, err
	}
	s.graph, s.graphRev = g, rev

	return g, nil
}

// Stats summarizes the current graph. Graphs too small to run algorithms
// are still summarized.
func (s *Session) Stats() (stats.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.viewGraph()
	if err != nil {
		return stats.Stats{}, err
	}

	return stats.Compute(g)
}

// Run executes an algorithm on the current graph.
//
// Steps:
//  1. Build (or reuse) the graph; fewer than 2 vertices or no edge fails
//     with builder.ErrInsufficientGraph.
//  2. Run the engine and report the outcome to the observer.
//  3. Append the result to history and make it current.
//  4. Start the animation on the result's node sequence, if any.
func (s *Session) Run(ctx context.Context, kind result.Kind, p engine.Params) (history.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	began := time.Now()
	entry, err := s.run(ctx, kind, p)
	outcome := Classify(err)
	s.observer.AlgorithmRun(kind, outcome, time.Since(began))
	if err != nil {
		s.logger.Warn("algorithm failed", "kind", kind, "error_kind", outcome, "error", err)
		return history.Entry{}, err
	}
	s.logger.Info("algorithm finished",
		"kind", kind, "entry", entry.ID, "total_weight", entry.Result.TotalWeight(), "elapsed", time.Since(began))

	return entry, nil
}

func (s *Session) run(ctx context.Context, kind result.Kind, p engine.Params) (history.Entry, error) {
	// 1. graph
	g, err := s.buildGraph()
	if err != nil {
		return history.Entry{}, err
	}

	// 2. engine
	r, err := s.engine.Run(ctx, g, kind, p)
	if err != nil {
		return history.Entry{}, err
	}

	// 3. history
	entry := s.history.Append(r)
	if _, err = s.history.Select(entry.ID); err != nil {
		return history.Entry{}, fmt.Errorf("session: select new entry: %w", err)
	}

	// 4. animation
	if seq := r.Sequence(); len(seq) > 0 {
		_ = s.anim.Start(seq)
	} else {
		s.anim.Stop()
	}

	return entry, nil
}

// Results lists history entries, newest first.
func (s *Session) Results() []history.Entry { return s.history.List() }

// Result returns a history entry.
func (s *Session) Result(id uint64) (history.Entry, error) { return s.history.Get(id) }

// SelectResult makes an entry current for display.
func (s *Session) SelectResult(id uint64) (history.Entry, error) { return s.history.Select(id) }

// DeleteResult removes an entry; deleting the current one clears it.
func (s *Session) DeleteResult(id uint64) error { return s.history.Delete(id) }

// ClearResults empties the history.
func (s *Session) ClearResults() { s.history.Clear() }

// Current returns the current entry, if any.
func (s *Session) Current() (history.Entry, bool) { return s.history.Current() }

// StartAnimation animates seq, or the current result's sequence when seq is
// empty. Vertex IDs in seq must exist.
func (s *Session) StartAnimation(seq []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(seq) == 0 {
		if cur, ok := s.history.Current(); ok {
			seq = cur.Result.Sequence()
		}
	}
	for _, id := range seq {
		if _, ok := s.store.IndexOf(id); !ok {
			return fmt.Errorf("session: animate %q: %w", id, store.ErrInvalidVertex)
		}
	}

	return s.anim.Start(seq)
}

// Tick advances the animation one node.
func (s *Session) Tick() (string, bool) { return s.anim.Tick() }

// IsAnimating reports whether the animation is running.
func (s *Session) IsAnimating() bool { return s.anim.IsRunning() }

// StopAnimation forces the animation to Idle.
func (s *Session) StopAnimation() { s.anim.Stop() }

// Animation snapshots the animation state.
func (s *Session) Animation() AnimationState {
	return AnimationState{
		Running: s.anim.IsRunning(),
		Active:  s.anim.Active(),
		Cursor:  s.anim.Cursor(),
		Len:     s.anim.Len(),
	}
}

// Play drives the animation at interval until it ends or ctx is done.
func (s *Session) Play(ctx context.Context, interval time.Duration, onStep func(node string)) error {
	return animation.Play(ctx, s.anim, interval, onStep)
}

// Import replaces the graph with a payload document.
func (s *Session) Import(doc graphio.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := graphio.Import(s.store, doc); err != nil {
		s.logger.Warn("import rejected", "error", err)
		return err
	}
	s.invalidate()
	s.logger.Info("graph imported", "vertices", s.store.Len(), "edges", s.store.EdgeCount())

	return nil
}

// Generate replaces the graph with an n-vertex fixture of the given shape,
// laid out on a ring. On error the current graph is kept.
func (s *Session) Generate(shape builder.Shape, n int, opts ...builder.BuilderOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctor, err := builder.ForShape(shape, n)
	if err != nil {
		return err
	}
	fresh, err := builder.BuildStore(s.storeOpts, opts, ctor)
	if err != nil {
		s.logger.Warn("generate rejected", "shape", shape, "n", n, "error", err)
		return err
	}
	s.store = fresh
	s.invalidate()
	s.logger.Info("graph generated", "shape", shape, "vertices", fresh.Len(), "edges", fresh.EdgeCount())

	return nil
}

// Export snapshots the graph as a payload document.
func (s *Session) Export() graphio.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	return graphio.Export(s.store)
}
