package system

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/status"
)

// TelemetrySystem publishes per-tick gauges and logs lifecycle events
type TelemetrySystem struct {
	world *engine.World

	statEntities    *atomic.Int64
	statProjectiles *atomic.Int64
}

func NewTelemetrySystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &TelemetrySystem{
		world:           world,
		statEntities:    reg.Ints.Get(status.KeyEntities),
		statProjectiles: reg.Ints.Get(status.KeyProjectiles),
	}
	s.Init()
	return s
}

func (s *TelemetrySystem) Init() {
	s.Update()
}

func (s *TelemetrySystem) Name() string { return "telemetry" }

func (s *TelemetrySystem) Priority() int { return parameter.PriorityTelemetry }

func (s *TelemetrySystem) Update() {
	s.statEntities.Store(int64(s.world.EntityCount()))
	s.statProjectiles.Store(int64(s.world.Components.Projectile.CountEntities()))
}

func (s *TelemetrySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventProjectileDespawned,
		event.EventPauseChanged,
	}
}

func (s *TelemetrySystem) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.ProjectileDespawnedPayload:
		slog.Debug("projectile despawned", "projectile", p.Projectile, "reason", p.Reason.String(), "frame", ev.Frame)
	case *event.PauseChangedPayload:
		slog.Info("pause changed", "paused", p.Paused, "frame", ev.Frame)
	}
}
