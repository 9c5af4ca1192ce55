package render

import (
	"math"

	"github.com/lixenwraith/vi-arena/vmath"
)

// Viewport maps a centred world rectangle onto a grid of terminal cells
// World +Y is up, cell rows grow downward
type Viewport struct {
	Width  int
	Height int

	// Half is the half extent of the visible world region
	Half vmath.Vec2
}

// NewViewport creates a viewport of width×height cells showing ±half around the origin
func NewViewport(width, height int, half vmath.Vec2) Viewport {
	return Viewport{Width: max(width, 1), Height: max(height, 1), Half: half}
}

// Resize changes the cell grid, keeping the world region
func (v *Viewport) Resize(width, height int) {
	v.Width = max(width, 1)
	v.Height = max(height, 1)
}

// CellSize returns the world extent of one cell
func (v Viewport) CellSize() vmath.Vec2 {
	return vmath.V2(2*v.Half.X/float64(v.Width), 2*v.Half.Y/float64(v.Height))
}

// ToCell converts a world position to a cell, ok is false outside the grid
func (v Viewport) ToCell(p vmath.Vec2) (x, y int, ok bool) {
	cell := v.CellSize()
	x = int(math.Floor((p.X + v.Half.X) / cell.X))
	y = int(math.Floor((v.Half.Y - p.Y) / cell.Y))
	return x, y, v.InBounds(x, y)
}

// ToWorld returns the world position of a cell centre
func (v Viewport) ToWorld(x, y int) vmath.Vec2 {
	cell := v.CellSize()
	return vmath.V2(
		-v.Half.X+(float64(x)+0.5)*cell.X,
		v.Half.Y-(float64(y)+0.5)*cell.Y,
	)
}

// InBounds reports whether the cell lies on the grid
func (v Viewport) InBounds(x, y int) bool {
	return x >= 0 && x < v.Width && y >= 0 && y < v.Height
}

// CellRect returns the inclusive cell range covered by a box, clamped to the grid
// A box smaller than a cell covers the cell of its centre; ok is false when nothing is visible
func (v Viewport) CellRect(b vmath.AABB) (x0, y0, x1, y1 int, ok bool) {
	cell := v.CellSize()
	lo, hi := b.Min(), b.Max()

	x0 = int(math.Floor((lo.X + v.Half.X) / cell.X))
	x1 = int(math.Ceil((hi.X+v.Half.X)/cell.X)) - 1
	y0 = int(math.Floor((v.Half.Y - hi.Y) / cell.Y))
	y1 = int(math.Ceil((v.Half.Y-lo.Y)/cell.Y)) - 1

	if x1 < x0 || y1 < y0 {
		cx, cy, _ := v.ToCell(b.Center)
		x0, x1, y0, y1 = cx, cx, cy, cy
	}

	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, v.Width-1), min(y1, v.Height-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}
