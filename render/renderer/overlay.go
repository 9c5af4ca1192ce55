package renderer

import (
	"unicode/utf8"

	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter/visual"
	"github.com/lixenwraith/vi-arena/render"
)

// OverlayRenderer shows the pause and end-of-round banners over the arena
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// Banner returns the centred banner text for the frame, empty when none
func Banner(ctx render.RenderContext) string {
	switch {
	case ctx.Outcome == engine.OutcomeDefeated:
		return " DEFEATED - press r to restart "
	case ctx.Outcome == engine.OutcomeCleared:
		return " ARENA CLEARED - press r to restart "
	case ctx.Paused:
		return " PAUSED - press p to resume "
	default:
		return ""
	}
}

func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	text := Banner(ctx)
	if text == "" {
		return
	}
	vp := ctx.Viewport
	x := (vp.Width - utf8.RuneCountInString(text)) / 2
	buf.SetString(max(x, 0), vp.Height/2, text, visual.StyleOverlay)
}
