package vmath

import "math"

// FastRand is a xorshift64 generator; not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi); lo when the range is empty
func (r *FastRand) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Signed returns a value in [-1, 1)
func (r *FastRand) Signed() float64 {
	return r.Float64()*2 - 1
}

// Angle returns a value in [0, 2π)
func (r *FastRand) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}
