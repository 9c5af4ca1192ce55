package game

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/config"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/engine/mocks"
	"github.com/lixenwraith/vi-arena/status"
	"github.com/lixenwraith/vi-arena/vmath"
)

// ticksPerShot is the number of 16ms ticks to charge a 650ms cooldown
const ticksPerShot = 41

func newGame(t *testing.T, deps Deps) *Game {
	t.Helper()
	return New(config.Default(), deps)
}

// holdFire aims straight up from the player and holds the trigger
func holdFire(g *Game) {
	g.World.RunSafe(func() {
		pos, _ := g.Space.Position(g.Layout().Player)
		in := g.World.Resources.Input
		in.Aim = vmath.V2Add(pos, vmath.V2(0, 100))
		in.Fire = true
	})
}

func fired(g *Game) int64 {
	return g.World.Resources.Status.Ints.Get(status.KeyFired).Load()
}

func ticks(g *Game, n int) {
	for range n {
		g.Tick()
	}
}

func TestNewBuildsRound(t *testing.T) {
	g := newGame(t, Deps{})

	if g.World.EntityCount() != 12 {
		t.Errorf("entities = %d, want 12", g.World.EntityCount())
	}
	if g.Space.Len() != 12 {
		t.Errorf("bodies = %d, want 12", g.Space.Len())
	}
	state := g.World.Resources.Game
	if state.Round != 1 || state.Outcome != engine.OutcomeNone || g.Paused() {
		t.Errorf("state = %+v paused=%v", state, g.Paused())
	}
	if g.World.Resources.Audio != nil || g.World.Resources.Spectator != nil {
		t.Error("nil collaborators bridged into resources")
	}
}

func TestContinuousFireCadence(t *testing.T) {
	g := newGame(t, Deps{})
	holdFire(g)

	ticks(g, ticksPerShot-1)
	if got := fired(g); got != 0 {
		t.Fatalf("fired %d before the cooldown charged", got)
	}

	ticks(g, 1)
	if got := fired(g); got != 1 {
		t.Fatalf("fired %d on the ready tick, want 1", got)
	}

	// Holding fire spawns once per cooldown window
	ticks(g, ticksPerShot-1)
	if got := fired(g); got != 1 {
		t.Errorf("fired %d inside the second window, want 1", got)
	}
	ticks(g, 1)
	if got := fired(g); got != 2 {
		t.Errorf("fired %d after two windows, want 2", got)
	}
}

func TestIdlePause(t *testing.T) {
	g := newGame(t, Deps{})
	holdFire(g)
	ticks(g, 10)

	player := g.Layout().Player
	before, _ := g.World.Components.Cooldown.GetComponent(player)
	frame := g.World.FrameNumber()
	gameTime := g.World.Resources.Time.GameTime

	g.SetPaused(true)
	if !g.Space.Paused() || !g.World.Resources.Game.Paused {
		t.Fatal("pause did not reach the space and game state")
	}
	for range 200 {
		if g.Tick() {
			t.Fatal("Tick ran while paused")
		}
	}

	after, _ := g.World.Components.Cooldown.GetComponent(player)
	if after != before {
		t.Errorf("cooldown advanced while paused: %+v -> %+v", before, after)
	}
	if g.World.FrameNumber() != frame || g.World.Resources.Time.GameTime != gameTime {
		t.Error("time advanced while paused")
	}
	if fired(g) != 0 {
		t.Error("fired while paused")
	}

	g.SetPaused(false)
	ticks(g, ticksPerShot-10)
	if got := fired(g); got != 1 {
		t.Errorf("fired %d after resume, want 1", got)
	}
}

func TestDefeatAndRestart(t *testing.T) {
	g := newGame(t, Deps{})
	player := g.Layout().Player

	g.World.RunSafe(func() {
		g.World.Components.Health.SetComponent(player, component.HealthComponent{Current: 0, Max: 100})
	})
	g.Tick()
	if got := g.World.Resources.Status.Ints.Get(status.KeyDefeated).Load(); got != 1 {
		t.Fatalf("defeated counter = %d, want 1", got)
	}
	if g.World.Resources.Game.Outcome != engine.OutcomeDefeated {
		t.Fatalf("outcome = %v, want defeated", g.World.Resources.Game.Outcome)
	}
	if !g.World.Alive(player) {
		t.Error("defeated player removed from the world")
	}

	g.SetPaused(true)
	g.Restart()

	state := g.World.Resources.Game
	if state.Round != 2 || state.Outcome != engine.OutcomeNone || g.Paused() || g.Space.Paused() {
		t.Errorf("after restart: %+v paused=%v", state, g.Paused())
	}
	if g.World.EntityCount() != 12 || g.Space.Len() != 12 {
		t.Errorf("after restart: %d entities, %d bodies", g.World.EntityCount(), g.Space.Len())
	}
	if got := g.World.Resources.Status.Ints.Get(status.KeyDefeated).Load(); got != 0 {
		t.Errorf("defeated counter after restart = %d, want 0", got)
	}
	hp, ok := g.World.Components.Health.GetComponent(g.Layout().Player)
	if !ok || hp.Current != hp.Max {
		t.Errorf("player health after restart = %+v", hp)
	}
}

func TestClearingTargets(t *testing.T) {
	g := newGame(t, Deps{})
	targets := g.Layout().Targets

	g.World.RunSafe(func() {
		for _, e := range targets {
			g.World.Components.Health.SetComponent(e, component.HealthComponent{Current: 0, Max: 50})
		}
	})
	g.Tick()

	for _, e := range targets {
		if g.World.Alive(e) {
			t.Errorf("target %d survived defeat", e)
		}
		if _, ok := g.Space.Body(e); ok {
			t.Errorf("target %d body left in space", e)
		}
	}
	if g.World.Resources.Game.Outcome != engine.OutcomeCleared {
		t.Errorf("outcome = %v, want cleared", g.World.Resources.Game.Outcome)
	}
}

func TestCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioPlayer(ctrl)
	publisher := mocks.NewMockSnapshotPublisher(ctrl)

	audio.EXPECT().Play(core.SoundFire).Return(true).Times(1)
	audio.EXPECT().Play(gomock.Any()).Return(true).AnyTimes()
	publisher.EXPECT().ClientCount().Return(1).AnyTimes()
	publisher.EXPECT().Broadcast(gomock.Any()).Return(1).Times(ticksPerShot / 4)

	g := newGame(t, Deps{Audio: audio, Publisher: publisher})
	holdFire(g)
	ticks(g, ticksPerShot)
}
