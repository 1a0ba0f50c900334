// SPDX-License-Identifier: MIT

// Package builder_test verifies Build and the map fixtures: topology counts,
// store order preservation, weights and size validation.
package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficgraph/builder"
	"github.com/katalvlaran/trafficgraph/core"
	"github.com/katalvlaran/trafficgraph/geo"
	"github.com/katalvlaran/trafficgraph/store"
)

func seqIDs() store.Option {
	n := 0
	return store.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("v%d", n)
	})
}

func TestBuild_InsufficientGraph(t *testing.T) {
	s := store.New(seqIDs())
	_, err := builder.Build(s)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	assert.ErrorIs(t, err, builder.ErrInsufficientGraph)
	assert.Contains(t, err.Error(), "need at least 2 vertices")

	_, _ = s.AddVertex(0, 0, "A")
	_, _ = s.AddVertex(0, 1, "B")
	_, err = builder.Build(s)
	assert.ErrorIs(t, err, builder.ErrNoEdges)
	assert.ErrorIs(t, err, builder.ErrInsufficientGraph)
	assert.Contains(t, err.Error(), "need at least 1 edge")
}

func TestBuild_PreservesStore(t *testing.T) {
	s := store.New(seqIDs())
	a, _ := s.AddVertex(0, 0, "A")
	b, _ := s.AddVertex(0, 1, "B")
	c, _ := s.AddVertex(1, 1, "C")
	_, _ = s.AddEdge(b.ID, c.ID, store.WithWeight(1))
	_, _ = s.AddEdge(a.ID, b.ID, store.WithWeight(1))
	_, _ = s.AddEdge(a.ID, c.ID, store.WithWeight(5))

	g, err := builder.Build(s)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, g.Vertices())

	v, err := g.Vertex(c.ID)
	require.NoError(t, err)
	assert.Equal(t, core.Vertex{ID: c.ID, Index: 2, Lat: 1, Lon: 1, Name: "C"}, v)

	es := g.Edges()
	require.Len(t, es, 3)
	assert.Equal(t, b.ID, es[0].From)
	assert.Equal(t, 5.0, es[2].Weight)
}

func TestMirror_NoSizeChecks(t *testing.T) {
	s := store.New(seqIDs())
	a, _ := s.AddVertex(0, 0, "A")
	g, err := builder.Mirror(s.Vertices(), s.Edges())
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, g.Vertices())
	assert.Zero(t, g.EdgeCount())

	_, err = builder.Mirror(nil, []store.Edge{{From: "x", To: "y", Weight: 1}})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestFixtures_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
		minDeg       int
		maxDeg       int
	}{
		{"Complete(5)", builder.Complete(5), 5, 10, 4, 4},
		{"Cycle(6)", builder.Cycle(6), 6, 6, 2, 2},
		{"Path(4)", builder.Path(4), 4, 3, 1, 2},
		{"Star(5)", builder.Star(5), 5, 4, 1, 4},
		{"Wheel(6)", builder.Wheel(6), 6, 10, 3, 5},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := builder.BuildStore(nil, nil, tc.ctor)
			require.NoError(t, err)
			g, err := builder.Build(s)
			require.NoError(t, err)

			st := g.Stats()
			assert.Equal(t, tc.wantV, st.VertexCount)
			assert.Equal(t, tc.wantE, st.EdgeCount)
			assert.Equal(t, tc.minDeg, st.MinDegree)
			assert.Equal(t, tc.maxDeg, st.MaxDegree)
		})
	}
}

func TestFixtures_SizeValidation(t *testing.T) {
	for _, ctor := range []builder.Constructor{
		builder.Complete(0), builder.Cycle(2), builder.Path(1), builder.Star(1), builder.Wheel(3),
	} {
		_, err := builder.BuildStore(nil, nil, ctor)
		assert.ErrorIs(t, err, builder.ErrBadSize)
	}
}

func TestFixtures_StoreLimit(t *testing.T) {
	_, err := builder.BuildStore([]store.Option{store.WithMaxVertices(3)}, nil, builder.Complete(4))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, store.ErrLimitExceeded)
}

func TestFixtures_RingGeometry(t *testing.T) {
	s, err := builder.BuildStore(nil, []builder.BuilderOption{
		builder.WithRadiusKm(1.5),
		builder.WithNamePrefix("Q"),
	}, builder.Star(5))
	require.NoError(t, err)

	vs := s.Vertices()
	assert.Equal(t, builder.CenterVertexName, vs[0].Name)
	assert.Equal(t, "Q1", vs[1].Name)
	center := geo.Point{Lat: vs[0].Lat, Lon: vs[0].Lon}
	for _, v := range vs[1:] {
		d := geo.Distance(center, geo.Point{Lat: v.Lat, Lon: v.Lon})
		assert.InDelta(t, 1500, d, 5, v.Name)
	}
	// default Haversine weights ≈ radius
	for _, e := range s.Edges() {
		assert.InDelta(t, 1.5, e.Weight, 0.01)
	}
}

func TestFixtures_WeightFn(t *testing.T) {
	s, err := builder.BuildStore(nil, []builder.BuilderOption{builder.WithConstantWeight(2)}, builder.Cycle(4))
	require.NoError(t, err)
	for _, e := range s.Edges() {
		assert.Equal(t, 2.0, e.Weight)
	}

	a, err := builder.BuildStore(nil, []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)}, builder.Complete(4))
	require.NoError(t, err)
	b, err := builder.BuildStore(nil, []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)}, builder.Complete(4))
	require.NoError(t, err)
	for i, e := range a.Edges() {
		assert.Equal(t, e.Weight, b.Edges()[i].Weight)
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 10.0)
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRadiusKm(0) })
	assert.Panics(t, func() { builder.WithCenter(91, 0) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(0) })
	assert.Panics(t, func() { builder.UniformWeightFn(0, 1) })
}

func TestPopulate_NilConstructor(t *testing.T) {
	err := builder.Populate(store.New(), nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestParseShape(t *testing.T) {
	sh, err := builder.ParseShape(" Wheel ")
	require.NoError(t, err)
	assert.Equal(t, builder.ShapeWheel, sh)

	_, err = builder.ParseShape("grid")
	assert.ErrorIs(t, err, builder.ErrUnknownShape)
	_, err = builder.ForShape("grid", 3)
	assert.ErrorIs(t, err, builder.ErrUnknownShape)

	ctor, err := builder.ForShape(builder.ShapeStar, 4)
	require.NoError(t, err)
	s, err := builder.BuildStore(nil, nil, ctor)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 3, s.EdgeCount())
}
