// Package arena spawns the fixed training arena: walls, floating floors, the player and targets
package arena

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/parameter/visual"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/vmath"
)

// Config sizes the arena and its actors
type Config struct {
	Diameter       float64
	FloorThickness float64
	CullMargin     float64

	PlayerSize     vmath.Vec2
	PlayerHealth   uint16
	PlayerCooldown time.Duration
	Damping        float64

	TargetCount  int
	TargetSize   vmath.Vec2
	TargetHealth uint16
}

// DefaultConfig returns the built-in arena
func DefaultConfig() Config {
	return Config{
		Diameter:       parameter.ArenaDiameter,
		FloorThickness: parameter.FloorThickness,
		CullMargin:     parameter.ArenaCullMargin,
		PlayerSize:     vmath.V2(parameter.PlayerWidth, parameter.PlayerHeight),
		PlayerHealth:   parameter.PlayerStartingHealth,
		PlayerCooldown: parameter.PlayerAttackCooldown,
		Damping:        parameter.MovementDampingFactor,
		TargetCount:    parameter.TargetCount,
		TargetSize:     vmath.V2(parameter.TargetWidth, parameter.TargetHeight),
		TargetHealth:   parameter.TargetHealth,
	}
}

// Layout lists the entities created by Build
type Layout struct {
	Player  core.Entity
	Targets []core.Entity
	Walls   []core.Entity
	Floors  []core.Entity

	// Bounds encloses walls plus the cull margin
	Bounds vmath.AABB
}

// FloorCenters returns the centres of the four floating floors for diameter d
func FloorCenters(d float64) []vmath.Vec2 {
	return []vmath.Vec2{
		vmath.V2(-d/4, -d/2),
		vmath.V2(d/4, -d/4),
		vmath.V2(-d/4, 0),
		vmath.V2(d/4, d/4),
	}
}

// Build spawns the arena into world and space and records it in the arena resource
func Build(world *engine.World, space *physics.Space, cfg Config) Layout {
	d := cfg.Diameter
	var layout Layout

	// Four square walls framing the play area
	for _, c := range []vmath.Vec2{vmath.V2(-d, 0), vmath.V2(d, 0), vmath.V2(0, -d), vmath.V2(0, d)} {
		e := spawnGeometry(world, space, c, vmath.V2(d, d), component.GeometryWall)
		layout.Walls = append(layout.Walls, e)
	}

	floors := FloorCenters(d)
	floorSize := vmath.V2(d/2, cfg.FloorThickness)
	for _, c := range floors {
		e := spawnGeometry(world, space, c, floorSize, component.GeometryFloor)
		layout.Floors = append(layout.Floors, e)
	}

	layout.Player = spawnPlayer(world, space, vmath.V2(0, -0.33*d), cfg)

	// Targets stand on the upper floors, spread along each floor when more than three
	for i := range cfg.TargetCount {
		floor := floors[1+i%(len(floors)-1)]
		row := i / (len(floors) - 1)
		x := floor.X + float64(row)*cfg.TargetSize.X*2
		y := floor.Y + cfg.FloorThickness/2 + cfg.TargetSize.Y/2
		layout.Targets = append(layout.Targets, spawnTarget(world, space, vmath.V2(x, y), cfg))
	}

	layout.Bounds = vmath.AABB{HalfSize: vmath.V2(1.5*d+cfg.CullMargin, 1.5*d+cfg.CullMargin)}

	world.Resources.Arena.Player = layout.Player
	world.Resources.Arena.Bounds = layout.Bounds

	slog.Debug("arena built",
		"diameter", d,
		"player", layout.Player,
		"targets", len(layout.Targets),
	)
	return layout
}

func spawnGeometry(world *engine.World, space *physics.Space, pos, size vmath.Vec2, kind component.GeometryKind) core.Entity {
	e := world.CreateEntity()
	space.AddBody(e, physics.NewStaticBody(pos, size))
	world.Components.Geometry.SetComponent(e, component.GeometryComponent{Kind: kind})

	sprite := component.SpriteComponent{Glyph: visual.CharWall, Style: visual.StyleWall, Z: component.ZGeometry}
	if kind == component.GeometryFloor {
		sprite = component.SpriteComponent{Glyph: visual.CharFloor, Style: visual.StyleFloor, Z: component.ZGeometry}
	}
	world.Components.Sprite.SetComponent(e, sprite)
	return e
}

func spawnPlayer(world *engine.World, space *physics.Space, pos vmath.Vec2, cfg Config) core.Entity {
	e := world.CreateEntity()
	space.AddBody(e, physics.NewDynamicBody(pos, cfg.PlayerSize))

	c := &world.Components
	c.Player.SetComponent(e, component.PlayerComponent{})
	c.Health.SetComponent(e, component.NewHealth(cfg.PlayerHealth))
	c.Cooldown.SetComponent(e, component.NewCooldown(cfg.PlayerCooldown))
	c.Damping.SetComponent(e, component.DampingComponent{Factor: cfg.Damping})
	c.Facing.SetComponent(e, component.FacingComponent{X: 1})
	c.Sprite.SetComponent(e, component.SpriteComponent{Glyph: visual.CharPlayer, Style: visual.StylePlayer, Z: component.ZPlayer})
	return e
}

func spawnTarget(world *engine.World, space *physics.Space, pos vmath.Vec2, cfg Config) core.Entity {
	e := world.CreateEntity()
	space.AddBody(e, physics.NewStaticBody(pos, cfg.TargetSize))

	c := &world.Components
	c.Target.SetComponent(e, component.TargetComponent{})
	c.Health.SetComponent(e, component.NewHealth(cfg.TargetHealth))
	c.Sprite.SetComponent(e, component.SpriteComponent{Glyph: visual.CharTarget, Style: visual.StyleTarget, Z: component.ZTarget})
	return e
}
