package combat

import (
	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/physics"
)

// SourceLookup returns the source of a projectile, ok is false for non-projectiles
type SourceLookup func(e core.Entity) (source core.Entity, ok bool)

// StoreSourceLookup reads projectile sources from the projectile side table
func StoreSourceLookup(store *engine.Store[component.ProjectileComponent]) SourceLookup {
	return func(e core.Entity) (core.Entity, bool) {
		p, ok := store.GetComponent(e)
		if !ok {
			return core.NoEntity, false
		}
		return p.Source, true
	}
}

// NewCollisionFilter returns a pair filter that suppresses contacts between
// a projectile and its own source. Every other pair is allowed.
func NewCollisionFilter(lookup SourceLookup) physics.PairFilter {
	return func(a, b core.Entity) bool {
		if src, ok := lookup(a); ok && src == b {
			return false
		}
		if src, ok := lookup(b); ok && src == a {
			return false
		}
		return true
	}
}
