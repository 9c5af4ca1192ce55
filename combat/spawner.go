package combat

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/parameter/visual"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/status"
	"github.com/lixenwraith/vi-arena/vmath"
)

// ProjectileConfig shapes every spawned projectile
type ProjectileConfig struct {
	Speed    float64
	Damage   uint16
	Size     vmath.Vec2
	Lifetime time.Duration
}

// DefaultProjectileConfig returns the built-in projectile shape
func DefaultProjectileConfig() ProjectileConfig {
	return ProjectileConfig{
		Speed:    parameter.ProjectileSpeed,
		Damage:   parameter.ProjectileDamage,
		Size:     vmath.V2(parameter.ProjectileWidth, parameter.ProjectileHeight),
		Lifetime: parameter.ProjectileLifetime,
	}
}

// Spawner creates projectiles on behalf of actors, gated by each actor's cooldown
type Spawner struct {
	world *engine.World
	space *physics.Space
	cfg   ProjectileConfig

	statFired *atomic.Int64
}

// NewSpawner creates a spawner placing projectile bodies into space
func NewSpawner(world *engine.World, space *physics.Space, cfg ProjectileConfig) *Spawner {
	return &Spawner{
		world:     world,
		space:     space,
		cfg:       cfg,
		statFired: world.Resources.Status.Ints.Get(status.KeyFired),
	}
}

// Config returns the active projectile shape
func (s *Spawner) Config() ProjectileConfig {
	return s.cfg
}

// Fire launches one projectile from shooter toward aim and resets the shooter's cooldown
// Silent no-op when the shooter has no cooldown, is still charging, or has no body
func (s *Spawner) Fire(shooter core.Entity, aim vmath.Vec2) (core.Entity, bool) {
	cooldowns := s.world.Components.Cooldown
	cd, ok := cooldowns.GetComponent(shooter)
	if !ok {
		return core.NoEntity, false
	}

	origin, ok := s.space.Position(shooter)
	if !ok || !cd.TryConsume() {
		return core.NoEntity, false
	}
	cooldowns.SetComponent(shooter, cd)

	dir, ok := vmath.V2Direction(origin, aim)
	if !ok {
		dir = vmath.V2(s.facing(shooter), 0)
	}

	projectile := s.world.CreateEntity()

	body := physics.NewDynamicBody(origin, s.cfg.Size)
	body.GravityScale = 0
	body.Swept = true
	body.Velocity = vmath.V2Scale(dir, s.cfg.Speed)
	s.space.AddBody(projectile, body)

	s.world.Components.Projectile.SetComponent(projectile, component.ProjectileComponent{
		Source: shooter,
		Damage: s.cfg.Damage,
	})
	s.world.Components.Sprite.SetComponent(projectile, component.SpriteComponent{
		Glyph: visual.CharProjectile,
		Style: visual.StyleProjectile,
		Z:     component.ZProjectile,
	})

	s.world.PushEvent(event.EventProjectileSpawned, &event.ProjectileSpawnedPayload{
		Projectile: projectile,
		Source:     shooter,
	})
	s.statFired.Add(1)

	slog.Debug("projectile fired",
		"shooter", shooter,
		"projectile", projectile,
		"dir_x", dir.X,
		"dir_y", dir.Y,
	)
	return projectile, true
}

// facing returns the horizontal sign of the shooter's facing, +1 when unknown
func (s *Spawner) facing(shooter core.Entity) float64 {
	if f, ok := s.world.Components.Facing.GetComponent(shooter); ok && f.X < 0 {
		return -1
	}
	return 1
}
