package engine

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/status"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	live         map[core.Entity]struct{}

	// Global resources
	Resources Resource

	Components ComponentStore
	allStores  []AnyStore

	// destroyHooks observe every successful DestroyEntity (physics body removal)
	destroyHooks []func(core.Entity)

	eventQueue *event.EventQueue
	frame      atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with all stores and world resources initialized
func NewWorld() *World {
	queue := event.NewEventQueue()
	w := &World{
		nextEntityID: 1,
		live:         make(map[core.Entity]struct{}),
		eventQueue:   queue,
		systems:      make([]System, 0),
		Resources: Resource{
			Time:   &TimeResource{},
			Game:   &GameStateResource{MatchID: uuid.New()},
			Input:  &InputResource{},
			Arena:  &ArenaResource{},
			Event:  &EventQueueResource{Queue: queue},
			Status: status.NewRegistry(),
		},
	}

	initComponentStores(w)

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.live[id] = struct{}{}
	return id
}

// DestroyEntity removes all components of a live entity and notifies destroy hooks
// Returns false for unknown or already destroyed entities, making repeated calls harmless
func (w *World) DestroyEntity(e core.Entity) bool {
	w.mu.Lock()
	if _, ok := w.live[e]; !ok {
		w.mu.Unlock()
		return false
	}
	delete(w.live, e)
	hooks := w.destroyHooks
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.RemoveEntity(e)
	}
	for _, hook := range hooks {
		hook(e)
	}
	return true
}

// Alive reports whether the entity exists
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.live[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.live)
}

// OnDestroy registers a hook called after an entity is destroyed
func (w *World) OnDestroy(hook func(core.Entity)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.destroyHooks = append(w.destroyHooks, hook)
}

// Clear removes all entities and components from the world
// Destroy hooks are not invoked; owners of external state clear it themselves
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	w.live = make(map[core.Entity]struct{})
	for _, store := range w.allStores {
		store.ClearAllComponents()
	}
	w.eventQueue.Consume()
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (insertion sort, small N, stable for equal priorities)
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems
// Used by ClockScheduler for event handler auto-registration
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially
func (w *World) Update() {
	w.RunSafe(func() {
		w.UpdateLocked()
	})
}

// UpdateLocked runs all systems assuming the caller already holds updateMutex
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// advanceFrame increments and returns the tick index
func (w *World) advanceFrame() int64 {
	return w.frame.Add(1)
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}

// EventQueue returns the world's event queue
func (w *World) EventQueue() *event.EventQueue {
	return w.eventQueue
}
