package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/status"
)

// ClockScheduler drives game logic on a fixed tick
// While paused Tick is a no-op: no system runs and no event is dispatched
type ClockScheduler struct {
	world    *World
	timeRes  *TimeResource
	stateRes *GameStateResource

	pausableClock *PausableClock
	isPaused      atomic.Bool

	// Tick configuration
	tickInterval time.Duration

	// pauseHooks observe pause transitions (physics space switch)
	pauseHooks []func(paused bool)

	// Event routing
	eventRouter *event.Router

	mu sync.Mutex

	// Cached metric pointers
	statTicks  *atomic.Int64
	statPaused *atomic.Bool
}

// NewClockScheduler creates a scheduler stepping the world by tickInterval per tick
func NewClockScheduler(world *World, pausableClock *PausableClock, tickInterval time.Duration) *ClockScheduler {
	statusReg := world.Resources.Status
	return &ClockScheduler{
		world:         world,
		timeRes:       world.Resources.Time,
		stateRes:      world.Resources.Game,
		pausableClock: pausableClock,
		tickInterval:  tickInterval,
		eventRouter:   event.NewRouter(world.EventQueue()),
		statTicks:     statusReg.Ints.Get(status.KeyTicks),
		statPaused:    statusReg.Bools.Get(status.KeyPaused),
	}
}

// RegisterEventHandler adds an event handler to the router, must be called before the first Tick
func (cs *ClockScheduler) RegisterEventHandler(handler event.Handler) {
	cs.eventRouter.Register(handler)
}

// RegisterSystemHandlers registers every world system that implements event.Handler
func (cs *ClockScheduler) RegisterSystemHandlers() {
	for _, sys := range cs.world.Systems() {
		if h, ok := sys.(event.Handler); ok {
			cs.eventRouter.Register(h)
		}
	}
}

// OnPauseChange registers a hook invoked on every pause transition
func (cs *ClockScheduler) OnPauseChange(hook func(paused bool)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.pauseHooks = append(cs.pauseHooks, hook)
}

// Paused reports the current pause state
func (cs *ClockScheduler) Paused() bool {
	return cs.isPaused.Load()
}

// SetPaused switches pause state, no-op when unchanged
// The transition event is dispatched immediately since no tick runs while paused
func (cs *ClockScheduler) SetPaused(paused bool) {
	if cs.isPaused.Swap(paused) == paused {
		return
	}

	if paused {
		cs.pausableClock.Pause()
	} else {
		cs.pausableClock.Resume()
	}
	cs.statPaused.Store(paused)

	cs.mu.Lock()
	hooks := make([]func(bool), len(cs.pauseHooks))
	copy(hooks, cs.pauseHooks)
	cs.mu.Unlock()

	cs.world.RunSafe(func() {
		cs.stateRes.Paused = paused
		for _, hook := range hooks {
			hook(paused)
		}
		cs.world.PushEvent(event.EventPauseChanged, &event.PauseChangedPayload{Paused: paused})
		cs.eventRouter.DispatchAll()
	})
}

// TogglePause flips pause state and returns the new state
func (cs *ClockScheduler) TogglePause() bool {
	next := !cs.isPaused.Load()
	cs.SetPaused(next)
	return next
}

// Tick runs one fixed step: time update, systems in priority order, event dispatch
// Returns false without touching the world when paused
func (cs *ClockScheduler) Tick() bool {
	if cs.isPaused.Load() {
		return false
	}

	ran := false
	cs.world.RunSafe(func() {
		// A pause requested while waiting for the lock wins over this tick
		if cs.isPaused.Load() {
			return
		}
		frame := cs.world.advanceFrame()
		cs.timeRes.Update(cs.pausableClock.Elapsed(), cs.pausableClock.RealTime(), cs.tickInterval, frame)
		cs.world.UpdateLocked()
		cs.eventRouter.DispatchAll()
		ran = true
	})
	if ran {
		cs.statTicks.Add(1)
	}
	return ran
}

// Run ticks on a wall-clock ticker until ctx is cancelled
// afterTick, if non-nil, is called after every tick attempt (render hand-off)
func (cs *ClockScheduler) Run(ctx context.Context, afterTick func(ticked bool)) error {
	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			ticked := cs.Tick()
			if afterTick != nil {
				afterTick(ticked)
			}
		}
	}
}
