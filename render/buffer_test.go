package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// fakeSurface records the last flushed frame
type fakeSurface struct {
	width, height int
	cells         map[[2]int]rune
	shows         int
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{width: w, height: h, cells: make(map[[2]int]rune)}
}

func (f *fakeSurface) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	f.cells[[2]int{x, y}] = primary
}

func (f *fakeSurface) Size() (int, int) { return f.width, f.height }

func (f *fakeSurface) Show() { f.shows++ }

func TestRenderBufferWrites(t *testing.T) {
	buf := NewRenderBuffer(10, 3)

	buf.Set(-1, 0, 'x', tcell.StyleDefault)
	buf.Set(10, 0, 'x', tcell.StyleDefault)
	buf.Set(2, 1, 'a', tcell.StyleDefault)
	if got := buf.Get(2, 1).Rune; got != 'a' {
		t.Errorf("Get = %q, want 'a'", got)
	}

	end := buf.SetString(7, 2, "hello", tcell.StyleDefault)
	if end != 12 {
		t.Errorf("SetString end = %d, want 12", end)
	}
	if buf.Get(9, 2).Rune != 'l' {
		t.Error("SetString did not write visible prefix")
	}

	buf.Fill(0, 0, 1, 1, '#', tcell.StyleDefault)
	if buf.Get(1, 1).Rune != '#' || buf.Get(2, 1).Rune != 'a' {
		t.Error("Fill wrote outside its rectangle")
	}

	buf.Clear()
	if buf.Get(2, 1).Rune != ' ' {
		t.Error("Clear left content")
	}
}

func TestRenderBufferFlush(t *testing.T) {
	s := newFakeSurface(4, 2)
	buf := NewRenderBuffer(4, 2)
	buf.Set(3, 1, 'z', tcell.StyleDefault)
	buf.FlushTo(s)

	if s.shows != 1 {
		t.Errorf("Show called %d times", s.shows)
	}
	if len(s.cells) != 8 {
		t.Errorf("flushed %d cells, want 8", len(s.cells))
	}
	if s.cells[[2]int{3, 1}] != 'z' {
		t.Error("cell content lost in flush")
	}
}

type recordingRenderer struct {
	name  string
	order *[]string
}

func (r recordingRenderer) Render(RenderContext, *RenderBuffer) {
	*r.order = append(*r.order, r.name)
}
