package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap lazily allocates one value per key and hands out stable pointers
// Callers cache the pointer once and then read or write it without the map lock
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the value for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok = m.items[key]; !ok {
		ptr = new(T)
		m.items[key] = ptr
	}
	return ptr
}

// Range visits every key in sorted order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(m.items)) {
		fn(k, m.items[k])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
