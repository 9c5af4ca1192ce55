package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the fixed simulation tick (dt handed to every system)
	GameUpdateInterval = 16 * time.Millisecond

	// SpectatorPublishEvery is the number of ticks between spectator snapshots
	SpectatorPublishEvery = 4
)

// ECS & Resources Limits
const (
	// EventQueueSize is the capacity of the per-tick event ring buffer
	EventQueueSize = 1024

	// InputEventBuffer is the channel depth between the terminal poller and the game loop
	InputEventBuffer = 256
)
