package renderer

import (
	"slices"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/render"
)

// EntityRenderer draws actors and projectiles by sprite layer
// A sprite fills every cell its collider covers
type EntityRenderer struct {
	world *engine.World
	space *physics.Space

	// Reused per frame
	drawList []spriteDraw
}

type spriteDraw struct {
	entity core.Entity
	sprite component.SpriteComponent
}

func NewEntityRenderer(world *engine.World, space *physics.Space) *EntityRenderer {
	return &EntityRenderer{world: world, space: space}
}

func (r *EntityRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	sprites := r.world.Components.Sprite
	geometry := r.world.Components.Geometry

	r.drawList = r.drawList[:0]
	for _, e := range sprites.GetAllEntities() {
		if geometry.HasEntity(e) {
			continue
		}
		s, _ := sprites.GetComponent(e)
		r.drawList = append(r.drawList, spriteDraw{entity: e, sprite: s})
	}
	slices.SortStableFunc(r.drawList, func(a, b spriteDraw) int {
		return a.sprite.Z - b.sprite.Z
	})

	for _, d := range r.drawList {
		body, ok := r.space.Body(d.entity)
		if !ok {
			continue
		}
		x0, y0, x1, y1, visible := ctx.Viewport.CellRect(body.Bounds())
		if !visible {
			continue
		}
		buf.Fill(x0, y0, x1, y1, d.sprite.Glyph, d.sprite.Style)
	}
}
