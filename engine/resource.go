package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/status"
	"github.com/lixenwraith/vi-arena/vmath"
)

//go:generate go tool mockgen -destination=mocks/mock_resource.go -package=mocks github.com/lixenwraith/vi-arena/engine AudioPlayer,SnapshotPublisher

// Resource holds singleton game resources, accessed via World.Resources
type Resource struct {
	Time  *TimeResource
	Game  *GameStateResource
	Input *InputResource
	Arena *ArenaResource
	Event *EventQueueResource

	// Telemetry
	Status *status.Registry

	// Bridged collaborators, nil when unavailable
	Audio     *AudioResource
	Spectator *SpectatorResource
}

// === World Resources ===

// TimeResource wraps time data for systems
// Updated by the ClockScheduler at the start of each tick
type TimeResource struct {
	// GameTime is the elapsed game time (frozen while paused)
	GameTime time.Duration

	// RealTime is the wall-clock time (unaffected by pause)
	RealTime time.Time

	// DeltaTime is the fixed tick step handed to every system
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock to prevent races with systems reads
func (tr *TimeResource) Update(gameTime time.Duration, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// Outcome is the result of the current round
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeDefeated
	OutcomeCleared
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDefeated:
		return "defeated"
	case OutcomeCleared:
		return "cleared"
	default:
		return "running"
	}
}

// GameStateResource holds match-level state
type GameStateResource struct {
	MatchID uuid.UUID
	Paused  bool
	Outcome Outcome
	Round   int
}

// InputResource holds the player's intent for the current tick
// Written by the input handler under the world lock, read by PlayerSystem
type InputResource struct {
	// Aim is the aim point in world space
	Aim vmath.Vec2

	// Fire is held state; firing repeats on every tick while set
	Fire bool

	// MoveLeft and MoveRight hold the remaining latch time of a move intent
	MoveLeft  time.Duration
	MoveRight time.Duration

	// jump is an edge, consumed once
	jump bool
}

// RequestJump records a jump edge
func (ir *InputResource) RequestJump() {
	ir.jump = true
}

// ConsumeJump returns and clears the pending jump edge
func (ir *InputResource) ConsumeJump() bool {
	j := ir.jump
	ir.jump = false
	return j
}

// Horizontal returns -1, 0 or +1 from the active move latches
func (ir *InputResource) Horizontal() float64 {
	var h float64
	if ir.MoveLeft > 0 {
		h--
	}
	if ir.MoveRight > 0 {
		h++
	}
	return h
}

// DecayLatches shortens both move latches by dt
func (ir *InputResource) DecayLatches(dt time.Duration) {
	ir.MoveLeft = max(ir.MoveLeft-dt, 0)
	ir.MoveRight = max(ir.MoveRight-dt, 0)
}

// Reset clears all intent
func (ir *InputResource) Reset() {
	*ir = InputResource{}
}

// ArenaResource references the arena layout
type ArenaResource struct {
	Player core.Entity

	// Bounds is the region outside which projectiles are culled
	Bounds vmath.AABB
}

// EventQueueResource wraps the event queue for systems that read it directly
type EventQueueResource struct {
	Queue *event.EventQueue
}

// === Bridged Resources ===

// AudioPlayer is the sound sink consumed by AudioSystem
// Matches audio.SoundManager public API
type AudioPlayer interface {
	// Play queues a sound, returns false if dropped
	Play(sound core.SoundType) bool

	// ToggleMute flips mute state and returns the new state
	ToggleMute() bool

	// IsMuted reports current mute state
	IsMuted() bool
}

// AudioResource wraps an AudioPlayer for the Resource
type AudioResource struct {
	Player AudioPlayer
}

// SnapshotPublisher fans out encoded snapshots to spectators
// Matches network.Hub public API
type SnapshotPublisher interface {
	// Broadcast sends data to every client, returns the number of clients reached
	Broadcast(data []byte) int

	// ClientCount returns the number of connected clients
	ClientCount() int
}

// SpectatorResource wraps a SnapshotPublisher for the Resource
type SpectatorResource struct {
	Publisher SnapshotPublisher
}
