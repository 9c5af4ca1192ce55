package renderer

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter/visual"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/lixenwraith/vi-arena/status"
)

// HUDRenderer draws player health, weapon charge and match counters below the arena
type HUDRenderer struct {
	world *engine.World
}

func NewHUDRenderer(world *engine.World) *HUDRenderer {
	return &HUDRenderer{world: world}
}

func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	row := ctx.Viewport.Height
	player := r.world.Resources.Arena.Player

	x := buf.SetString(0, row, "HP ", visual.StyleHUD)
	if hp, ok := r.world.Components.Health.GetComponent(player); ok {
		frac := hp.Fraction()
		style := visual.StyleHealthHigh
		if frac < visual.HealthLowThreshold {
			style = visual.StyleHealthLow
		}
		x = drawBar(buf, x, row, frac, style)
		x = buf.SetString(x, row, fmt.Sprintf(" %3d/%d", hp.Current, hp.Max), visual.StyleHUD)
	} else {
		x = drawBar(buf, x, row, 0, visual.StyleHealthLow)
	}

	x = buf.SetString(x+2, row, "CD ", visual.StyleHUD)
	if cd, ok := r.world.Components.Cooldown.GetComponent(player); ok {
		x = drawBar(buf, x, row, cd.Progress(), visual.StyleCooldownBar)
	}

	stats := r.world.Resources.Status.Ints
	counters := fmt.Sprintf("  round %d  fired %d  hits %d  targets %d",
		ctx.Round,
		stats.Get(status.KeyFired).Load(),
		stats.Get(status.KeyHits).Load(),
		r.world.Components.Target.CountEntities(),
	)
	buf.SetString(x, row, counters, visual.StyleHUD)

	help := "a/d move  w jump  f/mouse fire  p pause  r restart  m mute  q quit"
	if ctx.Muted {
		help += "  [muted]"
	}
	buf.SetString(0, row+1, help, visual.StyleHUD)
}

// drawBar draws a fixed length bar filled to frac and returns the next column
func drawBar(buf *render.RenderBuffer, x, y int, frac float64, style tcell.Style) int {
	frac = min(max(frac, 0), 1)
	filled := int(frac*float64(visual.HUDBarLength) + 0.5)
	bar := strings.Repeat(string(visual.BarCharFull), filled) +
		strings.Repeat(string(visual.BarCharEmpty), visual.HUDBarLength-filled)
	return buf.SetString(x, y, bar, style)
}
