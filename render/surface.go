package render

import "github.com/gdamore/tcell/v2"

// Surface is the drawing target of a frame
// tcell.Screen satisfies it
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

var _ Surface = (tcell.Screen)(nil)
