// SPDX-License-Identifier: MIT
package result_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficgraph/result"
)

func TestParseKind(t *testing.T) {
	for _, k := range result.Kinds() {
		got, err := result.ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := result.ParseKind("bellman_ford")
	assert.ErrorIs(t, err, result.ErrUnknownKind)

	assert.True(t, result.KindMSTPrim.IsMST())
	assert.False(t, result.KindFleury.IsMST())
	assert.True(t, result.KindHierholzer.IsEuler())
}

func TestResult_Immutable(t *testing.T) {
	d := result.Data{
		Kind:        result.KindShortestPath,
		Path:        []string{"a", "b"},
		Edges:       []result.EdgeRef{{ID: "e1", From: "a", To: "b", Weight: 1}},
		VertexNames: map[string]string{"a": "A", "b": "B"},
	}
	r := result.New(d)

	// mutating the input does not leak in
	d.Path[0] = "x"
	d.VertexNames["a"] = "X"
	assert.Equal(t, []string{"a", "b"}, r.Path())

	// mutating an accessor copy does not leak in
	p := r.Path()
	p[1] = "y"
	got := r.Data()
	got.Edges[0].Weight = 99
	got.VertexNames["b"] = "Y"
	assert.Equal(t, "b", r.Path()[1])
	assert.Equal(t, 1.0, r.Edges()[0].Weight)
	assert.Equal(t, "B", r.Data().VertexNames["b"])
}

func TestResult_Sequence(t *testing.T) {
	walk := result.New(result.Data{Kind: result.KindHamiltonian, Path: []string{"a", "b", "c", "a"}})
	assert.Equal(t, []string{"a", "b", "c", "a"}, walk.Sequence())

	tree := result.New(result.Data{
		Kind:  result.KindMSTKruskal,
		Start: "",
		Edges: []result.EdgeRef{{From: "c", To: "d"}, {From: "a", To: "c"}, {From: "a", To: "b"}},
	})
	assert.Equal(t, []string{"c", "d", "a", "b"}, tree.Sequence())

	rooted := result.New(result.Data{Kind: result.KindMSTPrim, Start: "a", Edges: []result.EdgeRef{{From: "a", To: "b"}}})
	assert.Equal(t, []string{"a", "b"}, rooted.Sequence())

	assert.Empty(t, result.Result{}.Sequence())
	assert.True(t, result.Result{}.IsZero())
}

func TestDetail(t *testing.T) {
	names := map[string]string{"a": "Ben Thanh", "b": ""}
	d := result.Detail(result.EdgeRef{From: "a", To: "b", Weight: 1.25}, names)
	assert.Equal(t, result.EdgeDetail{Label: "Ben Thanh-b", Weight: 1.25, FromName: "Ben Thanh", ToName: "b"}, d)
}

func TestResult_JSON(t *testing.T) {
	ts := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	r := result.New(result.Data{Kind: result.KindMSTPrim, Timestamp: ts, TotalWeight: 3, Spanning: true})
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"kind":"mst_prim"`)
	assert.Contains(t, string(b), `"spanning":true`)

	var back result.Result
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, result.KindMSTPrim, back.Kind())
	assert.True(t, back.Timestamp().Equal(ts))
}
