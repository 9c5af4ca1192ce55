package system

import (
	"time"

	"github.com/lixenwraith/vi-arena/combat"
	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/vmath"
)

const testDT = 16 * time.Millisecond

type testEnv struct {
	world   *engine.World
	space   *physics.Space
	spawner *combat.Spawner
	player  core.Entity
}

// newTestEnv builds a world with a gravity-free space and one player
func newTestEnv() *testEnv {
	w := engine.NewWorld()
	space := physics.NewSpace(vmath.Vec2{})
	w.OnDestroy(func(e core.Entity) { space.RemoveBody(e) })
	space.SetFilter(combat.NewCollisionFilter(combat.StoreSourceLookup(w.Components.Projectile)))

	player := w.CreateEntity()
	body := physics.NewDynamicBody(vmath.Vec2{}, vmath.V2(10, 20))
	body.GravityScale = 0
	space.AddBody(player, body)
	w.Components.Player.SetComponent(player, component.PlayerComponent{})
	w.Components.Health.SetComponent(player, component.NewHealth(100))
	w.Components.Cooldown.SetComponent(player, component.NewCooldown(650*time.Millisecond))
	w.Components.Facing.SetComponent(player, component.FacingComponent{X: 1})
	w.Resources.Arena.Player = player
	w.Resources.Arena.Bounds = vmath.AABB{HalfSize: vmath.V2(500, 500)}

	return &testEnv{
		world:   w,
		space:   space,
		spawner: combat.NewSpawner(w, space, combat.DefaultProjectileConfig()),
		player:  player,
	}
}

// step sets the tick delta and runs one system update
func (e *testEnv) step(s engine.System) {
	t := e.world.Resources.Time
	t.Update(t.GameTime+testDT, time.Now(), testDT, t.FrameNumber+1)
	s.Update()
}
