package engine

import (
	"context"
	"runtime"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/lixenwraith/vi-arena/event"
)

// countingSystem records updates and emits one event per update
type countingSystem struct {
	world   *World
	updates int
}

func (s *countingSystem) Init()         { s.updates = 0 }
func (s *countingSystem) Name() string  { return "counting" }
func (s *countingSystem) Priority() int { return 0 }
func (s *countingSystem) Update() {
	s.updates++
	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{})
}

// recordingHandler collects dispatched events
type recordingHandler struct {
	seen []event.GameEvent
}

func (h *recordingHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest, event.EventPauseChanged}
}

func (h *recordingHandler) HandleEvent(ev event.GameEvent) {
	h.seen = append(h.seen, ev)
}

func newTestScheduler() (*ClockScheduler, *countingSystem, *recordingHandler, *MockTimeProvider) {
	w := NewWorld()
	sys := &countingSystem{world: w}
	w.AddSystem(sys)
	tp := NewMockTimeProvider(time.Unix(0, 0))
	cs := NewClockScheduler(w, NewPausableClock(tp), 16*time.Millisecond)
	h := &recordingHandler{}
	cs.RegisterEventHandler(h)
	return cs, sys, h, tp
}

func TestTickRunsSystemsAndDispatches(t *testing.T) {
	cs, sys, h, _ := newTestScheduler()

	if !cs.Tick() {
		t.Fatal("Tick returned false while running")
	}
	if sys.updates != 1 {
		t.Errorf("updates = %d, want 1", sys.updates)
	}
	if len(h.seen) != 1 || h.seen[0].Frame != 1 {
		t.Errorf("dispatched %+v, want one event at frame 1", h.seen)
	}
	if got := cs.world.Resources.Time.DeltaTime; got != 16*time.Millisecond {
		t.Errorf("dt = %v, want 16ms", got)
	}
}

func TestPauseTransitionDispatchesImmediately(t *testing.T) {
	cs, _, h, _ := newTestScheduler()

	var hookStates []bool
	cs.OnPauseChange(func(p bool) { hookStates = append(hookStates, p) })

	cs.SetPaused(true)
	cs.SetPaused(true)
	cs.SetPaused(false)

	if len(hookStates) != 2 || !hookStates[0] || hookStates[1] {
		t.Errorf("hook states = %v, want [true false]", hookStates)
	}
	if len(h.seen) != 2 {
		t.Fatalf("pause events = %d, want 2", len(h.seen))
	}
	if p := h.seen[0].Payload.(*event.PauseChangedPayload); !p.Paused {
		t.Error("first pause event not paused")
	}
}

func TestPausedIdleProducesNothing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cs, sys, h, tp := newTestScheduler()
		warm := rapid.IntRange(0, 20).Draw(t, "warm")
		for range warm {
			cs.Tick()
		}
		cs.SetPaused(true)

		updates := sys.updates
		seen := len(h.seen)
		frame := cs.world.FrameNumber()
		gameTime := cs.pausableClock.Elapsed()

		idle := rapid.IntRange(1, 200).Draw(t, "idle")
		for range idle {
			tp.Advance(time.Duration(rapid.IntRange(1, 1000).Draw(t, "ms")) * time.Millisecond)
			if cs.Tick() {
				t.Fatal("Tick ran while paused")
			}
		}

		if sys.updates != updates {
			t.Fatalf("systems ran while paused: %d -> %d", updates, sys.updates)
		}
		if len(h.seen) != seen {
			t.Fatalf("events dispatched while paused: %d -> %d", seen, len(h.seen))
		}
		if cs.world.FrameNumber() != frame {
			t.Fatal("frame advanced while paused")
		}
		if cs.pausableClock.Elapsed() != gameTime {
			t.Fatal("game time advanced while paused")
		}
	})
}

func TestPauseWhileTickWaitsForLock(t *testing.T) {
	cs, sys, _, _ := newTestScheduler()

	locked := make(chan struct{})
	release := make(chan struct{})
	go cs.world.RunSafe(func() {
		close(locked)
		<-release
	})
	<-locked

	result := make(chan bool, 1)
	go func() { result <- cs.Tick() }()
	// let Tick pass its early pause check and block on the world lock
	time.Sleep(20 * time.Millisecond)

	paused := make(chan struct{})
	go func() {
		cs.SetPaused(true)
		close(paused)
	}()
	for !cs.Paused() {
		runtime.Gosched()
	}
	close(release)

	if <-result {
		t.Error("Tick ran after a pause was requested")
	}
	<-paused
	if sys.updates != 0 {
		t.Errorf("updates = %d, want 0", sys.updates)
	}
	if cs.world.FrameNumber() != 0 {
		t.Errorf("frame = %d, want 0", cs.world.FrameNumber())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	cs, _, _, _ := newTestScheduler()
	ctx, cancel := context.WithCancel(context.Background())

	ticks := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- cs.Run(ctx, func(bool) {
			select {
			case ticks <- struct{}{}:
			default:
			}
		})
	}()

	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("no tick within 2s")
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
