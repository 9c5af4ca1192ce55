package render

import (
	"time"

	"github.com/lixenwraith/vi-arena/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Viewport maps the arena onto the play area rows
	Viewport Viewport

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Time state
	GameTime time.Duration
	Frame    int64

	// Match state
	Paused  bool
	Outcome engine.Outcome
	Round   int
	Muted   bool
}

// NewRenderContext snapshots frame state from the world
// Caller holds the world update lock
func NewRenderContext(world *engine.World, vp Viewport, screenWidth, screenHeight int) RenderContext {
	game := world.Resources.Game
	ctx := RenderContext{
		Viewport:     vp,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		GameTime:     world.Resources.Time.GameTime,
		Frame:        world.Resources.Time.FrameNumber,
		Paused:       game.Paused,
		Outcome:      game.Outcome,
		Round:        game.Round,
	}
	if world.Resources.Audio != nil && world.Resources.Audio.Player != nil {
		ctx.Muted = world.Resources.Audio.Player.IsMuted()
	}
	return ctx
}
