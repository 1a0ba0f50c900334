// SPDX-License-Identifier: MIT
package graphio_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficgraph/graphio"
	"github.com/katalvlaran/trafficgraph/store"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("v%d", n)
	}
}

func sample(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(store.WithIDGenerator(seqIDs()))
	a, err := s.AddVertex(10.7721, 106.6983, "Ben Thanh")
	require.NoError(t, err)
	b, err := s.AddVertex(10.7798, 106.6990, "Nha Tho Duc Ba")
	require.NoError(t, err)
	c, err := s.AddVertex(10.7769, 106.6953, "Dinh Doc Lap")
	require.NoError(t, err)
	_, err = s.AddEdge(a.ID, b.ID)
	require.NoError(t, err)
	_, err = s.AddEdge(c.ID, b.ID, store.WithWeight(0.7))
	require.NoError(t, err)

	return s
}

func TestExport(t *testing.T) {
	doc := graphio.Export(sample(t))
	require.Len(t, doc.Vertices, 3)
	assert.Equal(t, graphio.Vertex{ID: 1, Name: "Nha Tho Duc Ba", Lat: 10.7798, Lon: 106.6990}, doc.Vertices[1])
	require.Len(t, doc.Edges, 2)
	assert.Equal(t, graphio.Edge{From: 2, To: 1, Weight: 0.7}, doc.Edges[1])
}

func TestRoundTrip_ImportMatchesExport(t *testing.T) {
	for _, f := range []graphio.Format{graphio.JSON, graphio.YAML} {
		t.Run(string(f), func(t *testing.T) {
			src := graphio.Export(sample(t))
			b, err := graphio.Marshal(src, f)
			require.NoError(t, err)
			doc, err := graphio.Unmarshal(b, f)
			require.NoError(t, err)

			dst := store.New()
			require.NoError(t, graphio.Import(dst, doc))
			assert.Equal(t, src, graphio.Export(dst))
		})
	}
}

func TestImport_UnorderedIDs(t *testing.T) {
	doc := graphio.Document{
		Vertices: []graphio.Vertex{{ID: 1, Name: "B", Lat: 0, Lon: 0.01}, {ID: 0, Name: "A"}},
		Edges:    []graphio.Edge{{From: 0, To: 1}},
	}
	s := store.New()
	require.NoError(t, graphio.Import(s, doc))
	vs := s.Vertices()
	assert.Equal(t, "A", vs[0].Name)
	assert.Equal(t, "B", vs[1].Name)
	assert.InDelta(t, 1.11, s.Edges()[0].Weight, 0.01)
}

func TestImport_Rejects(t *testing.T) {
	s := sample(t)
	before := graphio.Export(s)

	cases := map[string]struct {
		doc  graphio.Document
		want error
	}{
		"gap in ids": {
			doc:  graphio.Document{Vertices: []graphio.Vertex{{ID: 0}, {ID: 2}}},
			want: graphio.ErrInvalidDocument,
		},
		"dangling edge": {
			doc:  graphio.Document{Vertices: []graphio.Vertex{{ID: 0}}, Edges: []graphio.Edge{{From: 0, To: 3}}},
			want: graphio.ErrInvalidDocument,
		},
		"self loop": {
			doc:  graphio.Document{Vertices: []graphio.Vertex{{ID: 0}, {ID: 1}}, Edges: []graphio.Edge{{From: 1, To: 1}}},
			want: store.ErrSelfLoop,
		},
		"duplicate": {
			doc: graphio.Document{
				Vertices: []graphio.Vertex{{ID: 0}, {ID: 1, Lat: 1}},
				Edges:    []graphio.Edge{{From: 0, To: 1}, {From: 1, To: 0}},
			},
			want: store.ErrDuplicateEdge,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, graphio.Import(s, tc.doc), tc.want)
			assert.Equal(t, before, graphio.Export(s), "store must be unchanged")
		})
	}
}

func TestImport_LimitExceeded(t *testing.T) {
	s := store.New(store.WithMaxVertices(2))
	doc := graphio.Document{Vertices: []graphio.Vertex{{ID: 0}, {ID: 1}, {ID: 2}}}
	assert.ErrorIs(t, graphio.Import(s, doc), store.ErrLimitExceeded)
}

func TestDecode_Errors(t *testing.T) {
	_, err := graphio.Decode(strings.NewReader("{not json"), graphio.JSON)
	assert.ErrorIs(t, err, graphio.ErrInvalidDocument)

	_, err = graphio.Decode(strings.NewReader("vertices: [{id: 5}]\n"), graphio.YAML)
	assert.ErrorIs(t, err, graphio.ErrInvalidDocument)

	_, err = graphio.Decode(strings.NewReader(""), "xml")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
}

func TestFormats(t *testing.T) {
	f, err := graphio.FormatOf("routes/district1.YML")
	require.NoError(t, err)
	assert.Equal(t, graphio.YAML, f)
	f, err = graphio.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, graphio.JSON, f)
	_, err = graphio.FormatOf("graph.csv")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
}

func TestEncode_JSONShape(t *testing.T) {
	var b strings.Builder
	require.NoError(t, graphio.Encode(&b, graphio.Export(sample(t)), graphio.JSON))
	assert.Contains(t, b.String(), `"vertices": [`)
	assert.Contains(t, b.String(), `"name": "Ben Thanh"`)
	assert.Contains(t, b.String(), `"weight": 0.7`)
}
