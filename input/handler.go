// Package input translates terminal events into player intent
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/render"
)

// Handler parses tcell events into intents and applies player intents to the world
// Terminals report key presses only, so movement is a latch refreshed on each press
// and fire is either held with the mouse or toggled from the keyboard
type Handler struct {
	keyTable *KeyTable
	viewport render.Viewport

	mouseFire bool
	fireLatch bool
}

// NewHandler creates a handler mapping mouse cells through viewport
func NewHandler(viewport render.Viewport) *Handler {
	return &Handler{
		keyTable: DefaultKeyTable(),
		viewport: viewport,
	}
}

// SetViewport updates the cell to world mapping after a resize
func (h *Handler) SetViewport(viewport render.Viewport) {
	h.viewport = viewport
}

// Parse converts a terminal event to an intent without side effects
func (h *Handler) Parse(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Intent{Type: h.keyTable.Lookup(ev)}
	case *tcell.EventMouse:
		x, y := ev.Position()
		return Intent{Type: IntentMouse, X: x, Y: y, Pressed: ev.Buttons()&tcell.Button1 != 0}
	case *tcell.EventResize:
		w, hgt := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: hgt}
	default:
		return Intent{}
	}
}

// Handle parses ev, applies player intents to the world's input resource under the
// world lock, and returns the intent so the caller can act on system intents
func (h *Handler) Handle(world *engine.World, ev tcell.Event) Intent {
	intent := h.Parse(ev)
	if intent.Type == IntentNone || intent.Type.IsSystem() {
		return intent
	}
	world.RunSafe(func() {
		h.Apply(world.Resources.Input, intent)
	})
	return intent
}

// Apply writes a player intent into in
// Caller holds the world lock
func (h *Handler) Apply(in *engine.InputResource, intent Intent) {
	switch intent.Type {
	case IntentMoveLeft:
		in.MoveLeft = parameter.MoveLatch
		in.MoveRight = 0
	case IntentMoveRight:
		in.MoveRight = parameter.MoveLatch
		in.MoveLeft = 0
	case IntentJump:
		in.RequestJump()
	case IntentToggleFire:
		h.fireLatch = !h.fireLatch
	case IntentMouse:
		if intent.Y < h.viewport.Height {
			in.Aim = h.viewport.ToWorld(intent.X, intent.Y)
		}
		h.mouseFire = intent.Pressed
	}
	in.Fire = h.mouseFire || h.fireLatch
}

// Reset drops held fire state, used on restart
func (h *Handler) Reset() {
	h.mouseFire = false
	h.fireLatch = false
}
