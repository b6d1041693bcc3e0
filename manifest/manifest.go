package manifest

import (
	"fmt"

	"github.com/lixenwraith/void-raider/engine"
	"github.com/lixenwraith/void-raider/registry"
	"github.com/lixenwraith/void-raider/system"
)

// SystemDef binds a registry key to its constructor
type SystemDef struct {
	Name    string
	Factory registry.SystemFactory
}

// Systems is the authoritative system list
// Execution order comes from each system's Priority, not from this slice
var Systems = []SystemDef{
	{"player", system.NewPlayerSystem},
	{"spawn", system.NewSpawnSystem},
	{"enemy", system.NewEnemySystem},
	{"bullet", system.NewBulletSystem},
	{"collision", system.NewCollisionSystem},
	{"effect", system.NewEffectSystem},
	{"trail", system.NewTrailSystem},
	{"flame", system.NewFlameSystem},
	{"starfield", system.NewStarfieldSystem},
	{"audio", system.NewAudioSystem},
	{"status", system.NewStatusSystem},
}

// RegisterSystems registers all system factories with the registry
func RegisterSystems() {
	for _, def := range Systems {
		registry.RegisterSystem(def.Name, def.Factory)
	}
}

// ActiveSystems returns the ordered list of systems to instantiate
func ActiveSystems() []string {
	names := make([]string, len(Systems))
	for i, def := range Systems {
		names[i] = def.Name
	}
	return names
}

// Install builds the named systems from the registry and adds them to g
// With no names every active system is installed
func Install(g *engine.Game, names ...string) error {
	if len(names) == 0 {
		names = ActiveSystems()
	}
	for _, name := range names {
		factory, ok := registry.GetSystem(name)
		if !ok {
			return fmt.Errorf("unknown system %q", name)
		}
		g.AddSystem(factory(g.World()))
	}
	return nil
}
