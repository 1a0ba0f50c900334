// SPDX-License-Identifier: MIT
// File: errors.go
// Role: Maps package sentinels onto the user-facing error taxonomy.

package session

import (
	"context"
	"errors"

	"github.com/katalvlaran/trafficgraph/animation"
	"github.com/katalvlaran/trafficgraph/bfs"
	"github.com/katalvlaran/trafficgraph/builder"
	"github.com/katalvlaran/trafficgraph/core"
	"github.com/katalvlaran/trafficgraph/dfs"
	"github.com/katalvlaran/trafficgraph/dijkstra"
	"github.com/katalvlaran/trafficgraph/engine"
	"github.com/katalvlaran/trafficgraph/euler"
	"github.com/katalvlaran/trafficgraph/graphio"
	"github.com/katalvlaran/trafficgraph/hamilton"
	"github.com/katalvlaran/trafficgraph/history"
	"github.com/katalvlaran/trafficgraph/matrix"
	"github.com/katalvlaran/trafficgraph/result"
	"github.com/katalvlaran/trafficgraph/routes"
	"github.com/katalvlaran/trafficgraph/store"
)

// ErrSessionNotFound is returned by Manager for an unknown session ID.
var ErrSessionNotFound = errors.New("session: not found")

// ErrorKind names a failure category for callers that present errors.
type ErrorKind string

// Error kinds.
const (
	KindNone               ErrorKind = ""
	KindLimitExceeded      ErrorKind = "LimitExceeded"
	KindInvalidVertex      ErrorKind = "InvalidVertex"
	KindSelfLoop           ErrorKind = "SelfLoop"
	KindDuplicateEdge      ErrorKind = "DuplicateEdge"
	KindNotFound           ErrorKind = "NotFound"
	KindInsufficientGraph  ErrorKind = "InsufficientGraph"
	KindNoPath             ErrorKind = "NoPath"
	KindNoHamiltonianCycle ErrorKind = "NoHamiltonianCycle"
	KindEulerCondition     ErrorKind = "EulerConditionViolated"
	KindDisconnected       ErrorKind = "Disconnected"
	KindInvalidInput       ErrorKind = "InvalidInput"
	KindAborted            ErrorKind = "Aborted"
	KindInternal           ErrorKind = "Internal"
)

// classes is checked in order; the first match wins.
var classes = []struct {
	kind ErrorKind
	errs []error
}{
	{KindLimitExceeded, []error{store.ErrLimitExceeded}},
	{KindSelfLoop, []error{store.ErrSelfLoop, core.ErrLoopNotAllowed}},
	{KindDuplicateEdge, []error{store.ErrDuplicateEdge, core.ErrMultiEdgeNotAllowed}},
	{KindInvalidVertex, []error{
		store.ErrInvalidVertex, engine.ErrUnknownVertex, core.ErrVertexNotFound,
		bfs.ErrStartVertexNotFound, dfs.ErrStartVertexNotFound,
	}},
	{KindNotFound, []error{store.ErrNotFound, history.ErrNotFound, routes.ErrNotFound, ErrSessionNotFound}},
	{KindInsufficientGraph, []error{builder.ErrInsufficientGraph}},
	{KindNoPath, []error{dijkstra.ErrNoPath}},
	{KindNoHamiltonianCycle, []error{hamilton.ErrNoHamiltonianCycle}},
	{KindEulerCondition, []error{euler.ErrEulerCondition}},
	{KindDisconnected, []error{euler.ErrDisconnected}},
	{KindAborted, []error{hamilton.ErrSearchLimit, context.Canceled, context.DeadlineExceeded}},
	{KindInvalidInput, []error{
		store.ErrBadWeight, graphio.ErrInvalidDocument, graphio.ErrUnknownFormat,
		engine.ErrUnknownKind, result.ErrUnknownKind, animation.ErrEmptySequence,
		routes.ErrInvalidName, matrix.ErrUnknownForm, ErrUnknownTraversal,
		builder.ErrUnknownShape, builder.ErrBadSize,
	}},
}

// Classify returns the kind of err, KindNone for nil and KindInternal for
// anything unrecognized.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, c := range classes {
		for _, target := range c.errs {
			if errors.Is(err, target) {
				return c.kind
			}
		}
	}

	return KindInternal
}
