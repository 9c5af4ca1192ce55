// Package game assembles the world, physics space, combat core and systems into a playable round
package game

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-arena/arena"
	"github.com/lixenwraith/vi-arena/combat"
	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/system"
)

// Deps are the optional collaborators bridged into the world
type Deps struct {
	// Audio receives sound effects, nil runs silent
	Audio engine.AudioPlayer

	// Publisher receives spectator snapshots, nil disables the feed
	Publisher engine.SnapshotPublisher

	// Clock drives game time, nil uses the monotonic clock
	Clock engine.TimeProvider

	// MatchID tags logs and snapshots, zero generates one
	MatchID uuid.UUID
}

// Game owns one arena session across rounds
type Game struct {
	cfg *config.Config

	World     *engine.World
	Space     *physics.Space
	Scheduler *engine.ClockScheduler
	Spawner   *combat.Spawner
	Resolver  *combat.Resolver

	layout arena.Layout
}

// New builds a game from cfg and starts round 1, unpaused
func New(cfg *config.Config, deps Deps) *Game {
	world := engine.NewWorld()
	space := physics.NewSpace(cfg.Gravity())

	if deps.Audio != nil {
		world.Resources.Audio = &engine.AudioResource{Player: deps.Audio}
	}
	if deps.Publisher != nil {
		world.Resources.Spectator = &engine.SpectatorResource{Publisher: deps.Publisher}
	}
	if deps.MatchID != uuid.Nil {
		world.Resources.Game.MatchID = deps.MatchID
	}
	provider := deps.Clock
	if provider == nil {
		provider = engine.NewMonotonicTimeProvider()
	}

	// Destroyed entities leave the physics space in the same call
	world.OnDestroy(func(e core.Entity) { space.RemoveBody(e) })
	space.SetFilter(combat.NewCollisionFilter(combat.StoreSourceLookup(world.Components.Projectile)))

	spawner := combat.NewSpawner(world, space, cfg.ProjectileConfig())
	resolver := combat.NewResolver(world, space)

	world.AddSystem(system.NewCooldownSystem(world))
	world.AddSystem(system.NewPlayerSystem(world, space, spawner, cfg.PlayerConfig()))
	world.AddSystem(system.NewPhysicsSystem(world, space))
	world.AddSystem(system.NewDamageSystem(world, resolver))
	world.AddSystem(system.NewCullSystem(world, space, cfg.Projectile.Lifetime))
	world.AddSystem(system.NewDefeatSystem(world))
	world.AddSystem(system.NewAudioSystem(world))
	world.AddSystem(system.NewTelemetrySystem(world))
	world.AddSystem(system.NewSpectatorSystem(world, space, cfg.Spectator.PublishEvery))

	scheduler := engine.NewClockScheduler(world, engine.NewPausableClock(provider), cfg.Physics.TickInterval)
	scheduler.RegisterSystemHandlers()
	scheduler.OnPauseChange(func(paused bool) {
		if paused {
			space.Pause()
		} else {
			space.Resume()
		}
	})

	g := &Game{
		cfg:       cfg,
		World:     world,
		Space:     space,
		Scheduler: scheduler,
		Spawner:   spawner,
		Resolver:  resolver,
	}

	world.RunSafe(func() {
		g.buildRound()
	})
	return g
}

// buildRound spawns a fresh arena and advances the round counter
// Caller holds the world lock
func (g *Game) buildRound() {
	g.layout = arena.Build(g.World, g.Space, g.cfg.ArenaConfig())

	state := g.World.Resources.Game
	state.Round++
	state.Outcome = engine.OutcomeNone

	slog.Info("round started",
		"round", state.Round,
		"targets", len(g.layout.Targets),
	)
}

// Layout returns the entities of the current round
func (g *Game) Layout() arena.Layout {
	return g.layout
}

// Tick advances the simulation by one fixed step, false while paused
func (g *Game) Tick() bool {
	return g.Scheduler.Tick()
}

// Run ticks on the configured interval until ctx is cancelled
func (g *Game) Run(ctx context.Context, afterTick func(ticked bool)) error {
	return g.Scheduler.Run(ctx, afterTick)
}

// SetPaused freezes or resumes the simulation
func (g *Game) SetPaused(paused bool) {
	g.Scheduler.SetPaused(paused)
}

// TogglePause flips pause state and returns the new state
func (g *Game) TogglePause() bool {
	return g.Scheduler.TogglePause()
}

// Paused reports whether the simulation is frozen
func (g *Game) Paused() bool {
	return g.Scheduler.Paused()
}

// Restart discards every entity and starts the next round unpaused
func (g *Game) Restart() {
	g.World.RunSafe(func() {
		g.World.Clear()
		g.Space.Clear()
		g.World.Resources.Input.Reset()
		g.World.Resources.Status.ResetRound()
		for _, sys := range g.World.Systems() {
			sys.Init()
		}
		g.buildRound()
	})
	g.SetPaused(false)
}
