package renderer

import (
	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter/visual"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/render"
)

// GeometryRenderer fills the cells covered by walls and floors
type GeometryRenderer struct {
	world *engine.World
	space *physics.Space
}

func NewGeometryRenderer(world *engine.World, space *physics.Space) *GeometryRenderer {
	return &GeometryRenderer{world: world, space: space}
}

func (r *GeometryRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	store := r.world.Components.Geometry
	for _, e := range store.GetAllEntities() {
		geom, _ := store.GetComponent(e)
		body, ok := r.space.Body(e)
		if !ok {
			continue
		}
		x0, y0, x1, y1, visible := ctx.Viewport.CellRect(body.Bounds())
		if !visible {
			continue
		}

		switch geom.Kind {
		case component.GeometryFloor:
			buf.Fill(x0, y0, x1, y1, visual.CharFloor, visual.StyleFloor)
		default:
			buf.Fill(x0, y0, x1, y1, visual.CharWall, visual.StyleWall)
		}
	}
}
