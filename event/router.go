package event

// Handler processes specific event types
// Systems implement this interface to receive routed events
type Handler interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes pending events and routes them in FIFO order
// Events pushed by handlers during dispatch are delivered in the same call,
// bounded by rounds to stop feedback loops
func (r *Router) DispatchAll(rounds int) int {
	dispatched := 0
	for i := 0; i < rounds; i++ {
		events := r.queue.Consume()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		dispatched += len(events)
	}
	return dispatched
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
