package status

import "sync/atomic"

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot reads every metric into a plain map keyed by name
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}
