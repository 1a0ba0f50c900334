// SPDX-License-Identifier: MIT
package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficgraph/history"
	"github.com/katalvlaran/trafficgraph/result"
)

var base = time.Date(2025, 6, 1, 14, 5, 9, 0, time.UTC)

func res(kind result.Kind, at time.Time) result.Result {
	return result.New(result.Data{Kind: kind, Timestamp: at})
}

func TestAppend_SameSecondDoesNotOverwrite(t *testing.T) {
	h := history.New()
	a := h.Append(res(result.KindShortestPath, base))
	b := h.Append(res(result.KindMSTPrim, base.Add(300*time.Millisecond)))

	assert.Equal(t, 2, h.Len())
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "20250601_140509", a.Key)
	assert.Equal(t, a.Key, b.Key)
	assert.Len(t, h.ByKey(a.Key), 2)
}

func TestList_NewestFirst(t *testing.T) {
	h := history.New()
	for i, k := range result.Kinds() {
		h.Append(res(k, base.Add(time.Duration(i)*time.Second)))
	}
	list := h.List()
	require.Len(t, list, len(result.Kinds()))
	assert.Equal(t, result.KindHierholzer, list[0].Result.Kind())
	assert.Equal(t, result.KindShortestPath, list[len(list)-1].Result.Kind())
	for i := 1; i < len(list); i++ {
		assert.Greater(t, list[i-1].ID, list[i].ID)
	}
}

func TestSelectDelete(t *testing.T) {
	h := history.New()
	a := h.Append(res(result.KindFleury, base))
	b := h.Append(res(result.KindHierholzer, base))

	_, ok := h.Current()
	assert.False(t, ok)

	got, err := h.Select(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	cur, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, result.KindFleury, cur.Result.Kind())

	// deleting another entry keeps the selection
	require.NoError(t, h.Delete(b.ID))
	_, ok = h.Current()
	assert.True(t, ok)

	// deleting the current entry clears it
	require.NoError(t, h.Delete(a.ID))
	_, ok = h.Current()
	assert.False(t, ok)

	assert.ErrorIs(t, h.Delete(a.ID), history.ErrNotFound)
	_, err = h.Select(42)
	assert.ErrorIs(t, err, history.ErrNotFound)
	_, err = h.Get(42)
	assert.ErrorIs(t, err, history.ErrNotFound)
}

func TestClear(t *testing.T) {
	h := history.New()
	a := h.Append(res(result.KindMSTKruskal, base))
	_, _ = h.Select(a.ID)
	h.Clear()
	assert.Zero(t, h.Len())
	_, ok := h.Current()
	assert.False(t, ok)

	// IDs are never reused
	b := h.Append(res(result.KindMSTKruskal, base))
	assert.Greater(t, b.ID, a.ID)
}

func TestWithLimit(t *testing.T) {
	h := history.New(history.WithLimit(2))
	a := h.Append(res(result.KindShortestPath, base))
	_, _ = h.Select(a.ID)
	h.Append(res(result.KindShortestPath, base))
	c := h.Append(res(result.KindShortestPath, base))

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, c.ID, h.List()[0].ID)
	_, err := h.Get(a.ID)
	assert.ErrorIs(t, err, history.ErrNotFound)
	_, ok := h.Current()
	assert.False(t, ok)

	assert.Panics(t, func() { history.WithLimit(-1) })
}
