package renderer

import (
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter/visual"
	"github.com/lixenwraith/vi-arena/render"
)

// CrosshairRenderer marks the aim point
type CrosshairRenderer struct {
	world *engine.World
}

func NewCrosshairRenderer(world *engine.World) *CrosshairRenderer {
	return &CrosshairRenderer{world: world}
}

func (r *CrosshairRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	x, y, ok := ctx.Viewport.ToCell(r.world.Resources.Input.Aim)
	if !ok {
		return
	}
	buf.Set(x, y, visual.CharCrosshair, visual.StyleCrosshair)
}

// IsVisible hides the crosshair once the round has ended
func (r *CrosshairRenderer) IsVisible() bool {
	return r.world.Resources.Game.Outcome == engine.OutcomeNone
}
