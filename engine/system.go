package engine

// System is a per-tick behavior
// Systems that also implement event.Handler are registered with the router
type System interface {
	// Init resets session state, called on construction and on EventGameReset
	Init()

	// Priority orders systems within a tick, lower runs first
	Priority() int

	// Update runs once per Running tick
	Update()
}

// Named is implemented by systems that expose a registry name
type Named interface {
	Name() string
}
