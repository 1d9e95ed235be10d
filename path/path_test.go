package path

import (
	"testing"

	"github.com/katalvlaran/lazytraverse/gear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(v int) int { return v }

func buildDiamond(t *testing.T) *Container[int, int, string] {
	t.Helper()
	preds := gear.NewHashMap[int, int]()
	preds.Set(1, 0)
	preds.Set(2, 0)
	preds.Set(3, 1) // first-from-successor wins, matches scenario 1 of spec.md §8
	roots := gear.NewHashSet[int]()
	roots.Add(0)
	labels := gear.NewHashMap[int, string]()
	labels.Set(1, "0->1")
	labels.Set(2, "0->2")
	labels.Set(3, "1->3")
	return NewContainer[int, int, string](identity, preds, roots, labels, true)
}

func TestView_RoundTrip(t *testing.T) {
	c := buildDiamond(t)
	view, err := c.To(3)
	require.NoError(t, err)

	var fromStart, toStart []int
	for v := range view.VerticesFromStart() {
		fromStart = append(fromStart, v)
	}
	for v := range view.VerticesToStart() {
		toStart = append(toStart, v)
	}
	assert.Equal(t, []int{0, 1, 3}, fromStart)
	assert.Equal(t, []int{3, 1, 0}, toStart)

	var edges []Edge[int]
	for e := range view.EdgesFromStart() {
		edges = append(edges, e)
	}
	require.Len(t, edges, len(fromStart)-1)
	assert.Equal(t, Edge[int]{From: 0, To: 1}, edges[0])
	assert.Equal(t, Edge[int]{From: 1, To: 3}, edges[1])
}

func TestView_LabeledEdges(t *testing.T) {
	c := buildDiamond(t)
	view, err := c.To(3)
	require.NoError(t, err)
	seq, err := view.LabeledEdgesFromStart()
	require.NoError(t, err)
	var labels []string
	for le := range seq {
		labels = append(labels, le.Label)
	}
	assert.Equal(t, []string{"0->1", "1->3"}, labels)
}

func TestContainer_NoPath(t *testing.T) {
	c := buildDiamond(t)
	_, err := c.To(99)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestContainer_NullVertex(t *testing.T) {
	preds := gear.NewHashMap[string, *int]()
	roots := gear.NewHashSet[string]()
	c := NewContainer[*int, string, string](
		func(v *int) string {
			if v == nil {
				return ""
			}
			return "ptr"
		},
		preds, roots, nil, false,
	)
	_, err := c.To(nil)
	assert.ErrorIs(t, err, ErrNullVertex)
}

func TestView_LabelsUnavailable(t *testing.T) {
	preds := gear.NewHashMap[int, int]()
	preds.Set(1, 0)
	roots := gear.NewHashSet[int]()
	roots.Add(0)
	c := NewContainer[int, int, string](identity, preds, roots, nil, false)
	view, err := c.To(1)
	require.NoError(t, err)
	_, err = view.LabeledEdgesFromStart()
	assert.ErrorIs(t, err, ErrLabelsUnavailable)
}
