package event

import (
	"sync/atomic"

	"github.com/lixenwraith/void-raider/parameter"
)

// EventQueue is a fixed ring of pending events
// Any goroutine may Push; only the tick goroutine may Consume.
// A slot is readable once its published flag is set, so a consumer never
// observes a half-written event. When full the oldest events are overwritten
// and counted.
type EventQueue struct {
	slots     [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool

	head atomic.Uint64 // next slot to read
	tail atomic.Uint64 // next slot to write

	overwritten atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, claiming a slot with CAS on the tail
func (q *EventQueue) Push(ev GameEvent) {
	var slot uint64
	for {
		slot = q.tail.Load()
		if q.tail.CompareAndSwap(slot, slot+1) {
			break
		}
	}

	idx := slot & parameter.EventBufferMask
	q.slots[idx] = ev
	q.published[idx].Store(true)

	next := slot + 1
	if head := q.head.Load(); next-head > parameter.EventQueueSize {
		if q.head.CompareAndSwap(head, next-parameter.EventQueueSize) {
			q.overwritten.Add(next - parameter.EventQueueSize - head)
		}
	}
}

// Consume drains published events in FIFO order, nil when empty
func (q *EventQueue) Consume() []GameEvent {
	for {
		seen, tail := q.head.Load(), q.tail.Load()
		if tail == seen {
			return nil
		}
		head := seen
		if tail-head > parameter.EventQueueSize {
			head = tail - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, tail-head)
		for i := head; i < tail; i++ {
			idx := i & parameter.EventBufferMask
			if !q.published[idx].Load() {
				break
			}
			out = append(out, q.slots[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(seen, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len returns the approximate pending count
func (q *EventQueue) Len() int {
	head, tail := q.head.Load(), q.tail.Load()
	if tail <= head {
		return 0
	}
	return int(min(tail-head, parameter.EventQueueSize))
}

// TakeOverwritten returns and resets the count of events lost to overflow
func (q *EventQueue) TakeOverwritten() uint64 {
	return q.overwritten.Swap(0)
}

// Clear drops all pending events
func (q *EventQueue) Clear() {
	for q.Consume() != nil {
	}
}
