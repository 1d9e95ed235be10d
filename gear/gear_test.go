package gear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGear_HashCollections(t *testing.T) {
	g := NewDefaultGear[string, string](Int64Policy())
	visited := g.NewVisited()
	visited.Add("a")
	assert.True(t, visited.Has("a"))
	assert.False(t, visited.Has("b"))

	preds := g.NewPredecessors()
	preds.Set("b", "a")
	p, ok := preds.Get("b")
	require.True(t, ok)
	assert.Equal(t, "a", p)

	dist := g.NewDistances()
	_, ok = dist.Get("a")
	assert.False(t, ok)
	dist.Set("a", int64(5))
	v, ok := dist.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(5), v)
}

func TestIntIDGear_SequenceBacked(t *testing.T) {
	g := NewIntIDGear(Float64Policy())
	dist := g.NewDistances()
	view, ok := dist.(SequenceView[float64])
	require.True(t, ok, "int-id distance map should expose a sequence view")
	dist.Set(3, 1.5)
	assert.True(t, len(view.Slice()) > 3)
	assert.Equal(t, 1.5, view.Slice()[3])
}
