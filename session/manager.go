// SPDX-License-Identifier: MIT
// File: manager.go
// Role: Owns the live sessions of a process; no state is shared between them.

package session

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Manager creates, looks up and deletes sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     []Option
	newID    func() string
	observer Observer
}

// NewManager returns a Manager whose sessions are built with opts.
func NewManager(opts ...Option) *Manager {
	c := config{observer: nopObserver{}}
	for _, opt := range opts {
		opt(&c)
	}

	return &Manager{
		sessions: make(map[string]*Session),
		opts:     opts,
		newID:    uuid.NewString,
		observer: c.observer,
	}
}

// Create starts a new session.
func (m *Manager) Create() *Session {
	s := New(m.newID(), m.opts...)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	n := len(m.sessions)
	m.mu.Unlock()
	m.observer.SessionsChanged(n)

	return s
}

// Get returns a live session.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}

	return s, nil
}

// Delete ends a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	n := len(m.sessions)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	s.StopAnimation()
	m.observer.SessionsChanged(n)

	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// IDs lists live session IDs in lexical order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.RUnlock()
	sort.Strings(ids)

	return ids
}
