package component

import "github.com/gdamore/tcell/v2"

// SpriteComponent is the terminal appearance of an entity
// Higher Z draws on top
type SpriteComponent struct {
	Glyph rune
	Style tcell.Style
	Z     int
}

// Draw layers
const (
	ZGeometry = iota
	ZTarget
	ZPlayer
	ZProjectile
)
