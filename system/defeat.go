package system

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/status"
)

// DefeatSystem applies the health-zero policy
// Each defeated actor is reported once; targets are removed, a fallen player ends the round,
// and removing the last target clears it
type DefeatSystem struct {
	world    *engine.World
	reported map[core.Entity]struct{}

	statDefeated *atomic.Int64
}

func NewDefeatSystem(world *engine.World) engine.System {
	s := &DefeatSystem{
		world:        world,
		statDefeated: world.Resources.Status.Ints.Get(status.KeyDefeated),
	}
	s.Init()
	return s
}

func (s *DefeatSystem) Init() {
	s.reported = make(map[core.Entity]struct{})
}

func (s *DefeatSystem) Name() string { return "defeat" }

func (s *DefeatSystem) Priority() int { return parameter.PriorityDefeat }

func (s *DefeatSystem) Update() {
	game := s.world.Resources.Game
	healths := s.world.Components.Health
	targets := s.world.Components.Target
	hadTargets := targets.CountEntities() > 0

	for _, e := range healths.GetAllEntities() {
		h, ok := healths.GetComponent(e)
		if !ok || !h.Defeated() {
			continue
		}
		if _, done := s.reported[e]; done {
			continue
		}
		s.reported[e] = struct{}{}

		isPlayer := s.world.Components.Player.HasEntity(e)
		s.world.PushEvent(event.EventActorDefeated, &event.ActorDefeatedPayload{
			Entity: e,
			Player: isPlayer,
		})
		s.statDefeated.Add(1)
		slog.Debug("actor defeated", "entity", e, "player", isPlayer)

		switch {
		case isPlayer:
			if game.Outcome == engine.OutcomeNone {
				game.Outcome = engine.OutcomeDefeated
				slog.Info("round lost", "round", game.Round)
			}
		case targets.HasEntity(e):
			s.world.DestroyEntity(e)
			delete(s.reported, e)
		}
	}

	if hadTargets && targets.CountEntities() == 0 && game.Outcome == engine.OutcomeNone {
		game.Outcome = engine.OutcomeCleared
		slog.Info("round cleared", "round", game.Round)
	}
}
