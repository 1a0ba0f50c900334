// SPDX-License-Identifier: MIT
package routes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/trafficgraph/graphio"
)

// Memory is an in-process Store ordered by route name.
type Memory struct {
	mu   sync.RWMutex
	tree *btree.Map[string, record]
	now  func() time.Time
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithMemoryClock replaces time.Now for SavedAt stamps. Panics on nil.
func WithMemoryClock(now func() time.Time) MemoryOption {
	if now == nil {
		panic("routes: WithMemoryClock(nil)")
	}

	return func(m *Memory) { m.now = now }
}

// NewMemory returns an empty Memory store.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{tree: btree.NewMap[string, record](0), now: time.Now}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Save stores doc under name, replacing any previous route.
func (m *Memory) Save(ctx context.Context, name string, doc graphio.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc, err := prepare(name, doc)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.tree.Set(name, record{SavedAt: m.now().UTC(), Document: doc})
	m.mu.Unlock()

	return nil
}

// Load returns a copy of the route stored under name.
func (m *Memory) Load(ctx context.Context, name string) (graphio.Document, error) {
	if err := ctx.Err(); err != nil {
		return graphio.Document{}, err
	}

	m.mu.RLock()
	rec, ok := m.tree.Get(name)
	m.mu.RUnlock()
	if !ok {
		return graphio.Document{}, fmt.Errorf("route %q: %w", name, ErrNotFound)
	}

	return cloneDocument(rec.Document), nil
}

// List returns every route summary ordered by name.
func (m *Memory) List(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Summary, 0, m.tree.Len())
	m.tree.Scan(func(name string, rec record) bool {
		out = append(out, rec.summary(name))
		return true
	})

	return out, nil
}

// Delete removes the route stored under name.
func (m *Memory) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	_, ok := m.tree.Delete(name)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("route %q: %w", name, ErrNotFound)
	}

	return nil
}
