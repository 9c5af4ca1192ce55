package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings, matched case-insensitively
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentPause,
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
			tcell.KeyUp:     IntentJump,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentPause,
			'r': IntentRestart,
			'm': IntentToggleMute,
			'a': IntentMoveLeft,
			'd': IntentMoveRight,
			'w': IntentJump,
			' ': IntentJump,
			'f': IntentToggleFire,
		},
	}
}

// Lookup resolves a key event to an intent type
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
