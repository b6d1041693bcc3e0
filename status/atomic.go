package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen bounds published strings, long enough for a match UUID
const MaxStringLen = 64

// AtomicFloat stores a float64 as its bit pattern, the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// AtomicString publishes an immutable string snapshot, the zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store truncates to MaxStringLen bytes without splitting a rune
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
