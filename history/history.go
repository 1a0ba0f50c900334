// SPDX-License-Identifier: MIT
// Package history keeps an ordered, append-only log of algorithm results.
//
// Entries are keyed by a monotonically increasing ID and stored in a B-tree,
// so two runs within the same second never overwrite each other. Each entry
// also carries a second-granularity display key (KeyLayout) which is not
// unique and is never used for lookup by ID.
package history

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/trafficgraph/result"
)

// KeyLayout formats the display key of an entry.
const KeyLayout = "20060102_150405"

// ErrNotFound is returned for an unknown entry ID.
var ErrNotFound = errors.New("history: entry not found")

// Entry is one logged result.
type Entry struct {
	ID     uint64        `json:"id"`
	Key    string        `json:"key"`
	Result result.Result `json:"result"`
}

func byID(a, b Entry) bool { return a.ID < b.ID }

// History is safe for concurrent use.
type History struct {
	mu      sync.Mutex
	tree    *btree.BTreeG[Entry]
	lastID  uint64
	current uint64 // 0 means no selection
	limit   int
}

// Option configures a History.
type Option func(*History)

// WithLimit keeps at most n entries, evicting the oldest. 0 means unbounded.
// Panics if n < 0.
func WithLimit(n int) Option {
	if n < 0 {
		panic("history: WithLimit requires n >= 0")
	}

	return func(h *History) { h.limit = n }
}

// New returns an empty History.
func New(opts ...Option) *History {
	h := &History{tree: btree.NewBTreeG[Entry](byID)}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Append logs r and returns its entry. The new entry does not become current.
func (h *History) Append(r result.Result) Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastID++
	e := Entry{ID: h.lastID, Key: r.Timestamp().Format(KeyLayout), Result: r}
	h.tree.Set(e)
	for h.limit > 0 && h.tree.Len() > h.limit {
		oldest, _ := h.tree.Min()
		h.tree.Delete(oldest)
		if h.current == oldest.ID {
			h.current = 0
		}
	}

	return e
}

// List returns every entry, newest first.
func (h *History) List() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Entry, 0, h.tree.Len())
	h.tree.Reverse(func(e Entry) bool {
		out = append(out, e)
		return true
	})

	return out
}

// ByKey returns the entries sharing a display key, oldest first.
func (h *History) ByKey(key string) []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []Entry
	h.tree.Scan(func(e Entry) bool {
		if e.Key == key {
			out = append(out, e)
		}
		return true
	})

	return out
}

// Get returns the entry with the given ID.
func (h *History) Get(id uint64) (Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.get(id)
}

func (h *History) get(id uint64) (Entry, error) {
	e, ok := h.tree.Get(Entry{ID: id})
	if !ok {
		return Entry{}, fmt.Errorf("history: id %d: %w", id, ErrNotFound)
	}

	return e, nil
}

// Select marks the entry as current.
func (h *History) Select(id uint64) (Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, err := h.get(id)
	if err != nil {
		return Entry{}, err
	}
	h.current = id

	return e, nil
}

// Current returns the selected entry, if any.
func (h *History) Current() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == 0 {
		return Entry{}, false
	}
	e, err := h.get(h.current)

	return e, err == nil
}

// Unselect clears the selection.
func (h *History) Unselect() {
	h.mu.Lock()
	h.current = 0
	h.mu.Unlock()
}

// Delete removes one entry. Deleting the current entry clears the selection.
func (h *History) Delete(id uint64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.tree.Delete(Entry{ID: id}); !ok {
		return fmt.Errorf("history: id %d: %w", id, ErrNotFound)
	}
	if h.current == id {
		h.current = 0
	}

	return nil
}

// Clear removes every entry. IDs keep increasing afterwards.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.tree.Clear()
	h.current = 0
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.tree.Len()
}
