package system

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/vi-arena/combat"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/status"
)

// DamageSystem runs projectile resolution after the physics step and publishes its outcome
type DamageSystem struct {
	world    *engine.World
	resolver *combat.Resolver

	statHits      *atomic.Int64
	statDespawned *atomic.Int64
}

func NewDamageSystem(world *engine.World, resolver *combat.Resolver) engine.System {
	reg := world.Resources.Status
	s := &DamageSystem{
		world:         world,
		resolver:      resolver,
		statHits:      reg.Ints.Get(status.KeyHits),
		statDespawned: reg.Ints.Get(status.KeyDespawned),
	}
	s.Init()
	return s
}

func (s *DamageSystem) Init() {}

func (s *DamageSystem) Name() string { return "damage" }

func (s *DamageSystem) Priority() int { return parameter.PriorityDamage }

func (s *DamageSystem) Update() {
	res := s.resolver.Resolve()

	for _, hit := range res.Hits {
		s.world.PushEvent(event.EventProjectileHit, &event.ProjectileHitPayload{
			Projectile: hit.Projectile,
			Source:     hit.Source,
			Target:     hit.Target,
			Damage:     hit.Amount,
			Remaining:  hit.Remaining,
			Damageable: hit.Damageable,
		})
		if hit.Damageable {
			slog.Debug("projectile hit",
				"projectile", hit.Projectile,
				"target", hit.Target,
				"damage", hit.Amount,
				"remaining", hit.Remaining,
			)
		}
	}

	for _, p := range res.Despawned {
		s.world.PushEvent(event.EventProjectileDespawned, &event.ProjectileDespawnedPayload{
			Projectile: p,
			Reason:     event.DespawnHit,
		})
	}

	s.statHits.Add(int64(len(res.Hits)))
	s.statDespawned.Add(int64(len(res.Despawned)))
}
