package straversal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRun is a minimal VertexIterator over a fixed slice, standing in for a
// concrete strategy's run object in these cursor-helper tests.
type fakeRun struct {
	items []int
	i     int
}

func (f *fakeRun) Next(ctx context.Context) bool {
	if f.i >= len(f.items) {
		return false
	}
	f.i++
	return true
}

func (f *fakeRun) Vertex() int { return f.items[f.i-1] }

func identity(v int) int { return v }

func TestGoTo_Found(t *testing.T) {
	r := &fakeRun{items: []int{1, 2, 3, 4}}
	ok, err := GoTo[int, int](context.Background(), r, identity, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, r.Vertex())
}

func TestGoTo_NotFound(t *testing.T) {
	r := &fakeRun{items: []int{1, 2}}
	ok, err := GoTo[int, int](context.Background(), r, identity, 99)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrVertexNotFound)
}

func TestGoForVerticesIn(t *testing.T) {
	r := &fakeRun{items: []int{1, 2, 3, 4, 5}}
	wanted := map[int]struct{}{2: {}, 4: {}}
	var got []int
	for v := range GoForVerticesIn[int, int](context.Background(), r, identity, wanted) {
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 4}, got)
}

func TestGoForRange(t *testing.T) {
	r := &fakeRun{items: []int{0, 1, 2, 3, 4, 5}}
	keys := map[int]int64{0: 0, 1: 1, 2: 1, 3: 2, 4: 3, 5: 3}
	idx := 0
	key := func() int64 {
		v := r.items[r.i-1]
		_ = idx
		return keys[v]
	}
	var got []int
	for v := range GoForRange[int](context.Background(), r, key, 1, 3) {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestCalculationLimit(t *testing.T) {
	l := NewCalculationLimit(2)
	require.NoError(t, l.Consume())
	require.NoError(t, l.Consume())
	assert.ErrorIs(t, l.Consume(), ErrCalculationLimitExceeded)

	unlimited := NewCalculationLimit(-1)
	for i := 0; i < 100; i++ {
		require.NoError(t, unlimited.Consume())
	}
}
