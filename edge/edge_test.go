package edge

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[V any, W any, L any](u Unified[V, W, L], v V) []Edge[V, W, L] {
	var out []Edge[V, W, L]
	for e := range u.Next(v) {
		out = append(out, e)
	}
	return out
}

func TestFromVertices(t *testing.T) {
	fn := func(v int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for _, n := range []int{v + 1, v + 2} {
				if !yield(n) {
					return
				}
			}
		}
	}
	u := FromVertices[int, int64, string](fn)
	assert.False(t, u.EdgesWithData)
	assert.False(t, u.LabeledEdges)
	got := collect(u, 10)
	require.Len(t, got, 2)
	assert.Equal(t, 11, got[0].To)
	assert.False(t, got[0].HasWeight)
}

func TestFromWeightedEdges(t *testing.T) {
	fn := func(v int) iter.Seq2[int, int64] {
		return func(yield func(int, int64) bool) {
			if !yield(v+1, 5) {
				return
			}
		}
	}
	u := FromWeightedEdges[int, int64, string](fn)
	assert.True(t, u.EdgesWithData)
	assert.False(t, u.LabeledEdges)
	got := collect(u, 0)
	require.Len(t, got, 1)
	assert.Equal(t, int64(5), got[0].Weight)
	assert.True(t, got[0].HasWeight)
	assert.False(t, got[0].HasLabel)
}

func TestFromWeightedLabeledEdges(t *testing.T) {
	fn := func(v int) iter.Seq[Edge[int, int64, string]] {
		return func(yield func(Edge[int, int64, string]) bool) {
			if !yield(Edge[int, int64, string]{To: v + 1, Weight: 3, Label: "road"}) {
				return
			}
		}
	}
	u := FromWeightedLabeledEdges[int, int64, string](fn)
	got := collect(u, 0)
	require.Len(t, got, 1)
	assert.True(t, got[0].HasWeight)
	assert.True(t, got[0].HasLabel)
	assert.Equal(t, "road", got[0].Label)
}
