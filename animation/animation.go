// SPDX-License-Identifier: MIT
// Package animation steps through a node sequence one node per tick.
//
// Controller is the pure state machine (Idle → Running → Idle). Pacing is
// not its concern: Play drives ticks from a time.Ticker and stops when the
// sequence ends or the context is cancelled.
package animation

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"
)

// ErrEmptySequence is returned by Start for an empty sequence.
var ErrEmptySequence = errors.New("animation: empty sequence")

// State of a Controller.
type State int

const (
	// Idle means no animation is in progress.
	Idle State = iota
	// Running means ticks expose successive nodes.
	Running
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Running {
		return "running"
	}

	return "idle"
}

// Controller is safe for concurrent use.
type Controller struct {
	mu       sync.Mutex
	sequence []string
	cursor   int
	state    State
	active   string
}

// New returns an idle Controller.
func New() *Controller { return &Controller{} }

// Start resets the cursor and enters Running. Starting while already running
// restarts from the first node of the new sequence.
func (c *Controller) Start(seq []string) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sequence = slices.Clone(seq)
	c.cursor = 0
	c.state = Running
	c.active = ""

	return nil
}

// Tick exposes sequence[cursor] as the active node and advances. The tick
// that reaches the end of the sequence still returns the last node, then
// returns the controller to Idle and clears the active node, so a sequence
// of n nodes takes exactly n ticks. Ticking an idle controller returns
// ok == false.
func (c *Controller) Tick() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Running {
		return "", false
	}
	node := c.sequence[c.cursor]
	c.active = node
	c.cursor++
	if c.cursor == len(c.sequence) {
		c.reset()
	}

	return node, true
}

// Stop forces the controller back to Idle.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.reset()
	c.mu.Unlock()
}

func (c *Controller) reset() {
	c.state = Idle
	c.active = ""
	c.cursor = 0
	c.sequence = nil
}

// Active returns the node exposed by the last tick, "" when idle.
func (c *Controller) Active() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.active
}

// IsRunning reports whether the controller is Running.
func (c *Controller) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state == Running
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Cursor returns the index of the next node to expose.
func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cursor
}

// Len returns the length of the running sequence.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.sequence)
}

// Play ticks c every interval until the sequence completes or ctx is done,
// calling onStep with each active node. It returns ctx.Err() on cancellation
// and stops the controller in that case. Panics if interval <= 0.
func Play(ctx context.Context, c *Controller, interval time.Duration, onStep func(node string)) error {
	if interval <= 0 {
		panic("animation: Play requires a positive interval")
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.Stop()
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				c.Stop()
				return err
			}
			node, ok := c.Tick()
			if !ok {
				return nil
			}
			if onStep != nil {
				onStep(node)
			}
			if !c.IsRunning() {
				return nil
			}
		}
	}
}
