// SPDX-License-Identifier: MIT
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/trafficgraph/session"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	OK    bool              `json:"ok"`
	Error string            `json:"error"`
	Kind  session.ErrorKind `json:"kind"`
}

// StatusOf maps an error kind to an HTTP status.
func StatusOf(kind session.ErrorKind) int {
	switch kind {
	case session.KindInvalidInput, session.KindInvalidVertex, session.KindSelfLoop:
		return http.StatusBadRequest
	case session.KindNotFound:
		return http.StatusNotFound
	case session.KindLimitExceeded, session.KindDuplicateEdge:
		return http.StatusConflict
	case session.KindInsufficientGraph, session.KindNoPath, session.KindNoHamiltonianCycle,
		session.KindEulerCondition, session.KindDisconnected, session.KindAborted:
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

// fail classifies err and writes it.
func fail(c *gin.Context, err error) {
	kind := session.Classify(err)
	msg := err.Error()
	if kind == session.KindInternal {
		_ = c.Error(err)
		msg = "internal error"
	}
	c.AbortWithStatusJSON(StatusOf(kind), ErrorResponse{Error: msg, Kind: kind})
}

// invalid writes a request-shape error.
func invalid(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: msg, Kind: session.KindInvalidInput})
}
