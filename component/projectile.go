package component

import (
	"time"

	"github.com/lixenwraith/vi-arena/core"
)

// ProjectileComponent marks a projectile entity with its damage and provenance
// Source is set once at spawn and only compared for identity; it may outlive the source entity
type ProjectileComponent struct {
	Source core.Entity
	Damage uint16
	Age    time.Duration // Accumulated age, read by cull
}
