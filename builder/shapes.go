// SPDX-License-Identifier: MIT
// Package: trafficgraph/builder
//
// shapes.go — name → Constructor lookup for callers that pick a fixture
// at runtime (the HTTP "generate" endpoint).

package builder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownShape indicates a fixture name ParseShape does not know.
var ErrUnknownShape = errors.New("builder: unknown shape")

// Shape names a fixture topology.
type Shape string

// Known shapes.
const (
	ShapeComplete Shape = "complete"
	ShapeCycle    Shape = "cycle"
	ShapePath     Shape = "path"
	ShapeStar     Shape = "star"
	ShapeWheel    Shape = "wheel"
)

var shapes = map[Shape]func(int) Constructor{
	ShapeComplete: Complete,
	ShapeCycle:    Cycle,
	ShapePath:     Path,
	ShapeStar:     Star,
	ShapeWheel:    Wheel,
}

// ParseShape accepts a shape name case-insensitively.
func ParseShape(s string) (Shape, error) {
	sh := Shape(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := shapes[sh]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
	}

	return sh, nil
}

// ForShape returns the Constructor for sh with n vertices.
func ForShape(sh Shape, n int) (Constructor, error) {
	fn, ok := shapes[sh]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, sh)
	}

	return fn(n), nil
}
