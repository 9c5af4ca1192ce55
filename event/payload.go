package event

import (
	"github.com/lixenwraith/vi-arena/core"
)

// ProjectileSpawnedPayload describes a freshly spawned projectile
type ProjectileSpawnedPayload struct {
	Projectile core.Entity
	Source     core.Entity
}

// ProjectileHitPayload describes a single resolved contact
// Damageable is false when the target had no health (arena geometry)
type ProjectileHitPayload struct {
	Projectile core.Entity
	Source     core.Entity
	Target     core.Entity
	Damage     uint16
	Remaining  uint16
	Damageable bool
}

// DespawnReason identifies why a projectile was removed
type DespawnReason uint8

const (
	DespawnHit DespawnReason = iota
	DespawnOutOfBounds
	DespawnExpired
)

func (r DespawnReason) String() string {
	switch r {
	case DespawnHit:
		return "hit"
	case DespawnOutOfBounds:
		return "out_of_bounds"
	case DespawnExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// ProjectileDespawnedPayload describes a removed projectile
type ProjectileDespawnedPayload struct {
	Projectile core.Entity
	Reason     DespawnReason
}

// ActorDefeatedPayload identifies an actor whose health reached zero
type ActorDefeatedPayload struct {
	Entity core.Entity
	Player bool
}

// SoundRequestPayload requests a sound effect
type SoundRequestPayload struct {
	Sound core.SoundType
}

// PauseChangedPayload carries the new pause state
type PauseChangedPayload struct {
	Paused bool
}
