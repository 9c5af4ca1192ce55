package arena

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/vmath"
)

func TestBuildLayout(t *testing.T) {
	w := engine.NewWorld()
	space := physics.NewSpace(vmath.Vec2{})
	cfg := DefaultConfig()

	layout := Build(w, space, cfg)

	if len(layout.Walls) != 4 || len(layout.Floors) != 4 {
		t.Fatalf("walls=%d floors=%d, want 4 and 4", len(layout.Walls), len(layout.Floors))
	}
	if len(layout.Targets) != cfg.TargetCount {
		t.Errorf("targets = %d, want %d", len(layout.Targets), cfg.TargetCount)
	}
	if w.Resources.Arena.Player != layout.Player {
		t.Error("arena resource not updated")
	}

	d := cfg.Diameter
	wantWalls := []vmath.Vec2{vmath.V2(-d, 0), vmath.V2(d, 0), vmath.V2(0, -d), vmath.V2(0, d)}
	for i, e := range layout.Walls {
		b, ok := space.Body(e)
		if !ok || b.Kind != physics.BodyStatic {
			t.Fatalf("wall %d body = %+v, %v", i, b, ok)
		}
		if b.Position != wantWalls[i] || b.HalfSize != vmath.V2(d/2, d/2) {
			t.Errorf("wall %d at %+v size %+v", i, b.Position, b.HalfSize)
		}
	}

	for i, e := range layout.Floors {
		b, _ := space.Body(e)
		if b.Position != FloorCenters(d)[i] || b.HalfSize != vmath.V2(d/4, cfg.FloorThickness/2) {
			t.Errorf("floor %d at %+v size %+v", i, b.Position, b.HalfSize)
		}
		if g, _ := w.Components.Geometry.GetComponent(e); g.Kind != component.GeometryFloor {
			t.Errorf("floor %d geometry kind = %v", i, g.Kind)
		}
	}
}

func TestBuildPlayer(t *testing.T) {
	w := engine.NewWorld()
	space := physics.NewSpace(vmath.Vec2{})
	cfg := DefaultConfig()
	layout := Build(w, space, cfg)

	b, ok := space.Body(layout.Player)
	if !ok || b.Kind != physics.BodyDynamic {
		t.Fatalf("player body = %+v, %v", b, ok)
	}
	if math.Abs(b.Position.Y+0.33*cfg.Diameter) > 1e-9 || b.Position.X != 0 {
		t.Errorf("player at %+v", b.Position)
	}

	h, _ := w.Components.Health.GetComponent(layout.Player)
	if h.Current != 100 {
		t.Errorf("player health = %d, want 100", h.Current)
	}
	cd, ok := w.Components.Cooldown.GetComponent(layout.Player)
	if !ok || cd.Duration != cfg.PlayerCooldown || cd.Ready() {
		t.Errorf("player cooldown = %+v, want charging %v", cd, cfg.PlayerCooldown)
	}
	if d, _ := w.Components.Damping.GetComponent(layout.Player); d.Factor != 0.92 {
		t.Errorf("damping = %v, want 0.92", d.Factor)
	}
}

func TestTargetsRestOnFloors(t *testing.T) {
	w := engine.NewWorld()
	space := physics.NewSpace(vmath.Vec2{})
	cfg := DefaultConfig()
	cfg.TargetCount = 5
	layout := Build(w, space, cfg)

	for _, e := range layout.Targets {
		b, _ := space.Body(e)
		bottom := b.Position.Y - b.HalfSize.Y
		onFloor := false
		for _, f := range FloorCenters(cfg.Diameter) {
			if math.Abs(bottom-(f.Y+cfg.FloorThickness/2)) < 1e-9 {
				onFloor = true
			}
		}
		if !onFloor {
			t.Errorf("target %d floats at %+v", e, b.Position)
		}
	}
}
