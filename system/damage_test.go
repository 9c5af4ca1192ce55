package system

import (
	"testing"

	"github.com/lixenwraith/vi-arena/combat"
	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/status"
	"github.com/lixenwraith/vi-arena/vmath"
)

func TestDamageSystemEmitsHitAndDespawn(t *testing.T) {
	env := newTestEnv()
	physicsSys := NewPhysicsSystem(env.world, env.space)
	damage := NewDamageSystem(env.world, combat.NewResolver(env.world, env.space))

	target := env.world.CreateEntity()
	env.space.AddBody(target, physics.NewStaticBody(vmath.V2(30, 0), vmath.V2(10, 20)))
	env.world.Components.Health.SetComponent(target, component.NewHealth(50))

	readyPlayer(env)
	p, _ := env.spawner.Fire(env.player, vmath.V2(30, 0))
	env.world.EventQueue().Consume()

	for range 3 {
		env.step(physicsSys)
		damage.Update()
		if !env.world.Alive(p) {
			break
		}
	}

	if env.world.Alive(p) {
		t.Fatal("projectile never resolved")
	}
	if h, _ := env.world.Components.Health.GetComponent(target); h.Current != 40 {
		t.Errorf("target health = %d, want 40", h.Current)
	}

	var hits, despawns int
	for _, ev := range env.world.EventQueue().Consume() {
		switch ev.Type {
		case event.EventProjectileHit:
			hits++
			if p := ev.Payload.(*event.ProjectileHitPayload); p.Target != target || p.Remaining != 40 {
				t.Errorf("hit payload = %+v", p)
			}
		case event.EventProjectileDespawned:
			despawns++
		}
	}
	if hits != 1 || despawns != 1 {
		t.Errorf("hits=%d despawns=%d, want 1 and 1", hits, despawns)
	}
	if got := env.world.Resources.Status.Ints.Get(status.KeyHits).Load(); got != 1 {
		t.Errorf("hit counter = %d, want 1", got)
	}
}
