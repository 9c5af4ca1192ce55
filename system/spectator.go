package system

import (
	"encoding/json"
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/network"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/status"
)

// SpectatorSystem publishes a world snapshot every few ticks when spectators are connected
type SpectatorSystem struct {
	world     *engine.World
	space     *physics.Space
	publisher engine.SnapshotPublisher
	every     int64

	statSpectators *atomic.Int64
}

// NewSpectatorSystem binds to the world's spectator resource, which may be nil
func NewSpectatorSystem(world *engine.World, space *physics.Space, every int) engine.System {
	var publisher engine.SnapshotPublisher
	if world.Resources.Spectator != nil {
		publisher = world.Resources.Spectator.Publisher
	}
	if every < 1 {
		every = parameter.SpectatorPublishEvery
	}
	s := &SpectatorSystem{
		world:          world,
		space:          space,
		publisher:      publisher,
		every:          int64(every),
		statSpectators: world.Resources.Status.Ints.Get(status.KeySpectators),
	}
	s.Init()
	return s
}

func (s *SpectatorSystem) Init() {}

func (s *SpectatorSystem) Name() string { return "spectator" }

func (s *SpectatorSystem) Priority() int { return parameter.PrioritySpectator }

func (s *SpectatorSystem) Update() {
	if s.publisher == nil {
		return
	}
	clients := s.publisher.ClientCount()
	s.statSpectators.Store(int64(clients))
	if clients == 0 || s.world.Resources.Time.FrameNumber%s.every != 0 {
		return
	}

	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		slog.Error("failed to marshal snapshot", "err", err)
		return
	}
	s.publisher.Broadcast(data)
}

// Snapshot captures the current world for spectators
func (s *SpectatorSystem) Snapshot() network.Snapshot {
	game := s.world.Resources.Game
	snap := network.Snapshot{
		Type:    network.TypeSnapshot,
		MatchID: game.MatchID.String(),
		Frame:   s.world.Resources.Time.FrameNumber,
		Round:   game.Round,
		Paused:  game.Paused,
		Outcome: game.Outcome.String(),
		Metrics: s.world.Resources.Status.IntSnapshot(),
	}

	if cd, ok := s.world.Components.Cooldown.GetComponent(s.world.Resources.Arena.Player); ok {
		snap.Cooldown = cd.Progress()
	}

	for _, e := range s.space.Bodies() {
		body, ok := s.space.Body(e)
		if !ok {
			continue
		}
		es := network.EntitySnapshot{
			ID:   uint64(e),
			Kind: s.kindOf(e),
			X:    body.Position.X,
			Y:    body.Position.Y,
			W:    body.HalfSize.X * 2,
			H:    body.HalfSize.Y * 2,
		}
		if h, ok := s.world.Components.Health.GetComponent(e); ok {
			es.Health = h.Current
			es.MaxHealth = h.Max
		}
		snap.Entities = append(snap.Entities, es)
	}
	return snap
}

func (s *SpectatorSystem) kindOf(e core.Entity) string {
	c := &s.world.Components
	switch {
	case c.Player.HasEntity(e):
		return network.KindPlayer
	case c.Target.HasEntity(e):
		return network.KindTarget
	case c.Projectile.HasEntity(e):
		return network.KindProjectile
	}
	if g, ok := c.Geometry.GetComponent(e); ok && g.Kind == component.GeometryFloor {
		return network.KindFloor
	}
	return network.KindWall
}
