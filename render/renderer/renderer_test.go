package renderer

import (
	"strings"
	"testing"

	"github.com/lixenwraith/vi-arena/arena"
	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter/visual"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/render"
	"github.com/lixenwraith/vi-arena/vmath"
)

const (
	screenW = 120
	screenH = 42
)

type fixture struct {
	world  *engine.World
	space  *physics.Space
	layout arena.Layout
	buf    *render.RenderBuffer
	ctx    render.RenderContext
}

func newFixture() *fixture {
	w := engine.NewWorld()
	space := physics.NewSpace(vmath.Vec2{})
	cfg := arena.DefaultConfig()
	layout := arena.Build(w, space, cfg)

	half := visual.ArenaViewScale * cfg.Diameter
	vp := render.NewViewport(screenW, screenH-visual.HUDRows, vmath.V2(half, half))
	return &fixture{
		world:  w,
		space:  space,
		layout: layout,
		buf:    render.NewRenderBuffer(screenW, screenH),
		ctx:    render.NewRenderContext(w, vp, screenW, screenH),
	}
}

func (f *fixture) cellAt(p vmath.Vec2) rune {
	x, y, _ := f.ctx.Viewport.ToCell(p)
	return f.buf.Get(x, y).Rune
}

func (f *fixture) row(y int) string {
	var sb strings.Builder
	for x := 0; x < screenW; x++ {
		sb.WriteRune(f.buf.Get(x, y).Rune)
	}
	return sb.String()
}

func TestGeometryAndEntities(t *testing.T) {
	f := newFixture()
	NewGeometryRenderer(f.world, f.space).Render(f.ctx, f.buf)
	NewEntityRenderer(f.world, f.space).Render(f.ctx, f.buf)

	d := arena.DefaultConfig().Diameter
	if got := f.cellAt(vmath.V2(-0.55*d, 0)); got != visual.CharWall {
		t.Errorf("left wall cell = %q", got)
	}
	for i, c := range arena.FloorCenters(d) {
		if got := f.cellAt(c); got != visual.CharFloor && got != visual.CharTarget {
			t.Errorf("floor %d cell = %q", i, got)
		}
	}

	player, _ := f.space.Position(f.layout.Player)
	if got := f.cellAt(player); got != visual.CharPlayer {
		t.Errorf("player cell = %q", got)
	}
	for _, target := range f.layout.Targets {
		pos, _ := f.space.Position(target)
		if got := f.cellAt(pos); got != visual.CharTarget {
			t.Errorf("target cell = %q", got)
		}
	}
}

func TestEntityLayering(t *testing.T) {
	f := newFixture()
	player, _ := f.space.Position(f.layout.Player)

	// Projectile inside the player box is drawn on top
	e := f.world.CreateEntity()
	f.space.AddBody(e, physics.NewDynamicBody(player, vmath.V2(1, 1)))
	f.world.Components.Sprite.SetComponent(e, component.SpriteComponent{
		Glyph: visual.CharProjectile, Style: visual.StyleProjectile, Z: component.ZProjectile,
	})

	NewEntityRenderer(f.world, f.space).Render(f.ctx, f.buf)
	if got := f.cellAt(player); got != visual.CharProjectile {
		t.Errorf("top cell = %q, want projectile", got)
	}
}

func TestCrosshair(t *testing.T) {
	f := newFixture()
	aim := vmath.V2(30, 40)
	f.world.Resources.Input.Aim = aim

	r := NewCrosshairRenderer(f.world)
	r.Render(f.ctx, f.buf)
	if got := f.cellAt(aim); got != visual.CharCrosshair {
		t.Errorf("crosshair cell = %q", got)
	}

	f.world.Resources.Game.Outcome = engine.OutcomeDefeated
	if r.IsVisible() {
		t.Error("crosshair visible after the round ended")
	}
}

func TestHUD(t *testing.T) {
	f := newFixture()
	hp, _ := f.world.Components.Health.GetComponent(f.layout.Player)
	hp.Apply(80)
	f.world.Components.Health.SetComponent(f.layout.Player, hp)

	NewHUDRenderer(f.world).Render(f.ctx, f.buf)

	line := f.row(f.ctx.Viewport.Height)
	if !strings.HasPrefix(line, "HP ") {
		t.Errorf("HUD row = %q", line)
	}
	if !strings.Contains(line, " 20/100") {
		t.Errorf("HUD missing health counter: %q", line)
	}
	if !strings.Contains(line, "targets 3") {
		t.Errorf("HUD missing target count: %q", line)
	}
	if !strings.Contains(f.row(f.ctx.Viewport.Height+1), "p pause") {
		t.Error("help row missing")
	}
}

func TestBanner(t *testing.T) {
	tests := []struct {
		name    string
		paused  bool
		outcome engine.Outcome
		want    string
	}{
		{"running", false, engine.OutcomeNone, ""},
		{"paused", true, engine.OutcomeNone, "PAUSED"},
		{"defeated", false, engine.OutcomeDefeated, "DEFEATED"},
		{"defeated while paused", true, engine.OutcomeDefeated, "DEFEATED"},
		{"cleared", false, engine.OutcomeCleared, "CLEARED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.ctx.Paused = tt.paused
			f.ctx.Outcome = tt.outcome

			got := Banner(f.ctx)
			if tt.want == "" {
				if got != "" {
					t.Errorf("Banner = %q, want none", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Banner = %q, want %q", got, tt.want)
			}

			NewOverlayRenderer().Render(f.ctx, f.buf)
			if !strings.Contains(f.row(f.ctx.Viewport.Height/2), tt.want) {
				t.Error("banner not drawn at the centre row")
			}
		})
	}
}
