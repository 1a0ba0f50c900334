// SPDX-License-Identifier: MIT
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/trafficgraph/engine"
	"github.com/katalvlaran/trafficgraph/result"
)

// Run executes an algorithm and records the result
func (h *Handler) Run(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var body RunRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalid(c, "kind is required")
		return
	}
	kind, err := result.ParseKind(body.Kind)
	if err != nil {
		fail(c, err)
		return
	}

	entry, err := s.Run(c.Request.Context(), kind, engine.Params{Start: body.Start, End: body.End})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, EntryResponse{OK: true, Entry: entry})
}

// ListResults returns the history, newest first
func (h *Handler) ListResults(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	resp := ResultsResponse{OK: true, Results: s.Results()}
	if cur, ok := s.Current(); ok {
		resp.Current = &cur.ID
	}
	c.JSON(http.StatusOK, resp)
}

// resultID parses :rid or writes a 400.
func resultID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("rid"), 10, 64)
	if err != nil {
		invalid(c, "result id must be a positive integer")
		return 0, false
	}

	return id, true
}

// GetResult returns one history entry
func (h *Handler) GetResult(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := resultID(c)
	if !ok {
		return
	}
	entry, err := s.Result(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, EntryResponse{OK: true, Entry: entry})
}

// SelectResult makes a history entry current
func (h *Handler) SelectResult(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := resultID(c)
	if !ok {
		return
	}
	entry, err := s.SelectResult(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, EntryResponse{OK: true, Entry: entry})
}

// DeleteResult removes a history entry
func (h *Handler) DeleteResult(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := resultID(c)
	if !ok {
		return
	}
	if err := s.DeleteResult(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ClearResults empties the history
func (h *Handler) ClearResults(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	s.ClearResults()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// StartAnimation animates a sequence, or the current result when the body
// is empty
func (h *Handler) StartAnimation(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var body AnimationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			invalid(c, "invalid request body")
			return
		}
	}
	if err := s.StartAnimation(body.Sequence); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, AnimationResponse{OK: true, Animation: s.Animation()})
}

// TickAnimation advances the animation one node
func (h *Handler) TickAnimation(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	node, advanced := s.Tick()
	c.JSON(http.StatusOK, TickResponse{OK: true, Node: node, Advanced: advanced, Animation: s.Animation()})
}

// StopAnimation forces the animation to idle
func (h *Handler) StopAnimation(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	s.StopAnimation()
	c.JSON(http.StatusOK, AnimationResponse{OK: true, Animation: s.Animation()})
}
