package engine

import (
	"github.com/lixenwraith/vi-arena/component"
)

// ComponentStore provides typed pointers to every component side table
// Initialized once per world; pointers remain valid for the world's lifetime
type ComponentStore struct {
	// Combat
	Health     *Store[component.HealthComponent]
	Cooldown   *Store[component.CooldownComponent]
	Projectile *Store[component.ProjectileComponent]

	// Actors
	Player  *Store[component.PlayerComponent]
	Target  *Store[component.TargetComponent]
	Damping *Store[component.DampingComponent]
	Facing  *Store[component.FacingComponent]

	// Arena and presentation
	Geometry *Store[component.GeometryComponent]
	Sprite   *Store[component.SpriteComponent]
}

// initComponentStores creates all stores and registers them for lifecycle operations
func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Health:     NewStore[component.HealthComponent](),
		Cooldown:   NewStore[component.CooldownComponent](),
		Projectile: NewStore[component.ProjectileComponent](),

		Player:  NewStore[component.PlayerComponent](),
		Target:  NewStore[component.TargetComponent](),
		Damping: NewStore[component.DampingComponent](),
		Facing:  NewStore[component.FacingComponent](),

		Geometry: NewStore[component.GeometryComponent](),
		Sprite:   NewStore[component.SpriteComponent](),
	}

	c := &w.Components
	w.allStores = []AnyStore{
		c.Health, c.Cooldown, c.Projectile,
		c.Player, c.Target, c.Damping, c.Facing,
		c.Geometry, c.Sprite,
	}
}
