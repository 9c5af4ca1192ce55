package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents, handled by the caller
	IntentQuit       // q, Ctrl+C
	IntentPause      // p, ESC
	IntentRestart    // r
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Player intents, applied to the input resource
	IntentMoveLeft   // a, Left arrow
	IntentMoveRight  // d, Right arrow
	IntentJump       // w, Space, Up arrow
	IntentToggleFire // f
	IntentMouse      // Mouse motion or button change
)

// String returns the intent name used in logs
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentPause:
		return "pause"
	case IntentRestart:
		return "restart"
	case IntentToggleMute:
		return "mute"
	case IntentResize:
		return "resize"
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentJump:
		return "jump"
	case IntentToggleFire:
		return "toggle_fire"
	case IntentMouse:
		return "mouse"
	default:
		return "none"
	}
}

// IsSystem reports whether the intent is handled outside the world
func (t IntentType) IsSystem() bool {
	return t >= IntentQuit && t <= IntentResize
}

// Intent represents a parsed semantic action
type Intent struct {
	Type IntentType

	// Screen cell for mouse intents
	X, Y int

	// Primary button state for mouse intents
	Pressed bool

	// New terminal size for resize intents
	Width, Height int
}
