package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestV2NormalizeZero(t *testing.T) {
	n := V2Normalize(Vec2{})
	assert.False(t, math.IsNaN(n.X) || math.IsNaN(n.Y))
	assert.Equal(t, Vec2{}, n)

	u := V2Normalize(V2(3, 4))
	assert.InDelta(t, 1, V2Mag(u), 1e-9)
}

func TestV2MoveToward(t *testing.T) {
	// Far target: capped step along the direction
	p := V2MoveToward(V2(0, 0), V2(100, 0), 5, 20)
	assert.InDelta(t, 5, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)

	// Within snap radius
	p = V2MoveToward(V2(0, 0), V2(10, 10), 1, 20)
	assert.Equal(t, V2(10, 10), p)

	// Step larger than distance never overshoots
	p = V2MoveToward(V2(0, 0), V2(50, 0), 500, 20)
	assert.Equal(t, V2(50, 0), p)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(10, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1, 0, 5))
	assert.Equal(t, 2.5, Clamp(2.5, 0, 5))
	// Inverted bounds collapse to midpoint
	assert.Equal(t, 0.0, Clamp(7, 10, -10))
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)

		v := r.Range(20, 70)
		require.GreaterOrEqual(t, v, 20.0)
		require.Less(t, v, 70.0)

		n := r.Intn(13)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 13)
	}
	assert.Equal(t, 3.0, r.Range(3, 3))
}

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(7), NewFastRand(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
	// Zero seed is remapped, never stuck at zero
	z := NewFastRand(0)
	assert.NotZero(t, z.Next())
}
