package engine

import (
	"sync"

	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
	"github.com/lixenwraith/void-raider/event"
	"github.com/lixenwraith/void-raider/visual"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  Resource

	stores     []remover
	eventQueue *event.EventQueue

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with default resources
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		systems:      make([]System, 0),
		eventQueue:   event.NewEventQueue(),
	}
	initComponentStores(w)
	w.Resources = newResource()
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// The renderer is told to drop the entity's visual group
func (w *World) DestroyEntity(e core.Entity) {
	if w.Components.Visual.HasEntity(e) {
		w.Resources.Visual.Sink.Despawn(e)
	}
	for _, s := range w.stores {
		s.RemoveEntity(e)
	}
}

// DestroyBatch removes several entities
func (w *World) DestroyBatch(entities []core.Entity) {
	for _, e := range entities {
		w.DestroyEntity(e)
	}
}

// Alive reports whether the entity still has a transform
func (w *World) Alive(e core.Entity) bool {
	return w.Components.Transform.HasEntity(e)
}

// Clear removes all entities and components from the world
// Entity IDs keep increasing so stale references never alias new entities
func (w *World) Clear() {
	for _, e := range w.Components.Visual.GetAllEntities() {
		w.Resources.Visual.Sink.Despawn(e)
	}
	for _, s := range w.stores {
		s.ClearAllComponents()
	}
}

// AttachVisual records the visual on the entity and forwards the request to the renderer
func (w *World) AttachVisual(e core.Entity, req visual.SpawnRequest) {
	req.Entity = e
	w.Components.Visual.SetComponent(e, component.VisualComponent{
		Role:  req.Role,
		Shape: req.Shape,
		Color: req.Color,
	})
	w.Resources.Visual.Sink.Spawn(req)
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (insertion sort, small N, stable)
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems in priority order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.Resources.Time.FrameNumber
}

// EventQueue exposes the world's queue for the router
func (w *World) EventQueue() *event.EventQueue {
	return w.eventQueue
}

// PushEvent emits a game event stamped with the current frame
// This is the hot-path for all system communication
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.FrameNumber(),
	})
}

// PlayerEntity returns the player if one exists
func (w *World) PlayerEntity() (core.Entity, bool) {
	e, _, ok := w.Components.Player.First()
	return e, ok
}
