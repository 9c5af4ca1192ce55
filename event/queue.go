package event

import (
	"sync"

	"github.com/lixenwraith/vi-arena/parameter"
)

// EventQueue is a bounded FIFO ring buffer for game events
// Push is safe from any goroutine; Consume is called by the game loop only
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	mu     sync.Mutex
	events [parameter.EventQueueSize]GameEvent
	head   int // Index of oldest event
	count  int
	drops  uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, evicting the oldest when the ring is full
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == parameter.EventQueueSize {
		eq.head = (eq.head + 1) % parameter.EventQueueSize
		eq.count--
		eq.drops++
	}
	tail := (eq.head + eq.count) % parameter.EventQueueSize
	eq.events[tail] = event
	eq.count++
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == 0 {
		return nil
	}

	result := make([]GameEvent, eq.count)
	for i := 0; i < eq.count; i++ {
		idx := (eq.head + i) % parameter.EventQueueSize
		result[i] = eq.events[idx]
		eq.events[idx] = GameEvent{}
	}
	eq.head = 0
	eq.count = 0
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.count
}

// Dropped returns the number of events evicted by overflow
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.drops
}
