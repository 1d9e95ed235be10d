package gear

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64Policy(t *testing.T) {
	p := Float64Policy()
	require.Equal(t, 0.0, p.Zero())
	require.True(t, math.IsInf(p.Infinity(), 1))
	assert.False(t, p.Overflowed(1000.0))
	assert.True(t, p.Overflowed(p.Infinity()))
}

func TestInt64Policy_Overflow(t *testing.T) {
	p := Int64Policy()
	d := p.Zero()
	for i := 0; i < 3; i++ {
		d += 10
	}
	assert.Equal(t, int64(30), d)
	assert.False(t, p.Overflowed(d))
	assert.True(t, p.Overflowed(p.Infinity()))
	assert.True(t, p.Overflowed(p.Infinity()+1))
}

func TestNewNumberPolicy(t *testing.T) {
	p := NewNumberPolicy[int32](1000)
	assert.Equal(t, int32(0), p.Zero())
	assert.Equal(t, int32(1000), p.Infinity())
	assert.True(t, p.Overflowed(1000))
	assert.False(t, p.Overflowed(999))
}
