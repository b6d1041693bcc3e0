package engine

import (
	"github.com/lixenwraith/void-raider/component"
	"github.com/lixenwraith/void-raider/core"
)

// ComponentStore provides typed stores for every component kind
// Pointers are created once in NewWorld and stay valid for the world lifetime
type ComponentStore struct {
	// Spatial
	Transform *Store[component.TransformComponent]
	Kinetic   *Store[component.KineticComponent]
	Collider  *Store[component.ColliderComponent]

	// Actors
	Health *Store[component.HealthComponent]
	Charge *Store[component.ChargeComponent]
	Player *Store[component.PlayerComponent]
	Enemy  *Store[component.EnemyComponent]

	// Projectiles
	Bullet   *Store[component.BulletComponent]
	Lifetime *Store[component.LifetimeComponent]

	// Cosmetic
	Particle *Store[component.ParticleComponent]
	Trail    *Store[component.TrailComponent]
	Flash    *Store[component.FlashComponent]
	Vignette *Store[component.VignetteComponent]
	Flame    *Store[component.EngineFlameComponent]
	Star     *Store[component.StarComponent]
	Border   *Store[component.BorderComponent]
	Visual   *Store[component.VisualComponent]
}

// remover is the type-erased removal surface of a Store
type remover interface {
	RemoveEntity(e core.Entity)
	ClearAllComponents()
}

func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Kinetic:   NewStore[component.KineticComponent](),
		Collider:  NewStore[component.ColliderComponent](),
		Health:    NewStore[component.HealthComponent](),
		Charge:    NewStore[component.ChargeComponent](),
		Player:    NewStore[component.PlayerComponent](),
		Enemy:     NewStore[component.EnemyComponent](),
		Bullet:    NewStore[component.BulletComponent](),
		Lifetime:  NewStore[component.LifetimeComponent](),
		Particle:  NewStore[component.ParticleComponent](),
		Trail:     NewStore[component.TrailComponent](),
		Flash:     NewStore[component.FlashComponent](),
		Vignette:  NewStore[component.VignetteComponent](),
		Flame:     NewStore[component.EngineFlameComponent](),
		Star:      NewStore[component.StarComponent](),
		Border:    NewStore[component.BorderComponent](),
		Visual:    NewStore[component.VisualComponent](),
	}
	c := &w.Components
	w.stores = []remover{
		c.Transform, c.Kinetic, c.Collider,
		c.Health, c.Charge, c.Player, c.Enemy,
		c.Bullet, c.Lifetime,
		c.Particle, c.Trail, c.Flash, c.Vignette, c.Flame, c.Star, c.Border,
		c.Visual,
	}
}
