package visual

import (
	"sync"

	"github.com/lixenwraith/void-raider/core"
)

// Recorder is a Sink that keeps the set of live visuals
// Used by the terminal host for lookups and by tests for assertions
type Recorder struct {
	mu        sync.RWMutex
	live      map[core.Entity]SpawnRequest
	spawned   int
	despawned int
}

func NewRecorder() *Recorder {
	return &Recorder{live: make(map[core.Entity]SpawnRequest)}
}

func (r *Recorder) Spawn(req SpawnRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live[req.Entity] = req
	r.spawned++
}

func (r *Recorder) Despawn(e core.Entity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live[e]; ok {
		delete(r.live, e)
		r.despawned++
	}
}

// Get returns the spawn request of a live visual
func (r *Recorder) Get(e core.Entity) (SpawnRequest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.live[e]
	return req, ok
}

// CountRole returns the number of live visuals with role
func (r *Recorder) CountRole(role Role) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, req := range r.live {
		if req.Role == role {
			n++
		}
	}
	return n
}

// Stats returns live, total spawned and total despawned counts
func (r *Recorder) Stats() (live, spawned, despawned int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.live), r.spawned, r.despawned
}

// Reset drops all live visuals without counting them as despawned
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live = make(map[core.Entity]SpawnRequest)
}
