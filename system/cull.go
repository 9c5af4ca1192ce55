package system

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/status"
)

// CullSystem removes projectiles that left the arena bounds or outlived their lifetime
// Runs after DamageSystem so a projectile hitting on its last tick still resolves
type CullSystem struct {
	world    *engine.World
	space    *physics.Space
	lifetime time.Duration

	statCulled *atomic.Int64
}

func NewCullSystem(world *engine.World, space *physics.Space, lifetime time.Duration) engine.System {
	s := &CullSystem{
		world:      world,
		space:      space,
		lifetime:   lifetime,
		statCulled: world.Resources.Status.Ints.Get(status.KeyCulled),
	}
	s.Init()
	return s
}

func (s *CullSystem) Init() {}

func (s *CullSystem) Name() string { return "cull" }

func (s *CullSystem) Priority() int { return parameter.PriorityCull }

func (s *CullSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime
	bounds := s.world.Resources.Arena.Bounds
	store := s.world.Components.Projectile

	type culled struct {
		entity core.Entity
		reason event.DespawnReason
	}
	var toDestroy []culled

	for _, e := range store.GetAllEntities() {
		proj, ok := store.GetComponent(e)
		if !ok {
			continue
		}
		proj.Age += dt
		store.SetComponent(e, proj)

		if s.lifetime > 0 && proj.Age > s.lifetime {
			toDestroy = append(toDestroy, culled{e, event.DespawnExpired})
			continue
		}
		if pos, ok := s.space.Position(e); ok && !bounds.HalfSize.IsZero() && !bounds.Contains(pos) {
			toDestroy = append(toDestroy, culled{e, event.DespawnOutOfBounds})
		}
	}

	for _, c := range toDestroy {
		if !s.world.DestroyEntity(c.entity) {
			continue
		}
		s.world.PushEvent(event.EventProjectileDespawned, &event.ProjectileDespawnedPayload{
			Projectile: c.entity,
			Reason:     c.reason,
		})
		s.statCulled.Add(1)
		slog.Debug("projectile culled", "projectile", c.entity, "reason", c.reason.String())
	}
}
