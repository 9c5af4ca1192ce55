package system

import (
	"testing"
	"time"
)

func TestCooldownSystemAdvancesAllCooldowns(t *testing.T) {
	env := newTestEnv()
	sys := NewCooldownSystem(env.world)

	for range 40 {
		env.step(sys)
	}

	cd, _ := env.world.Components.Cooldown.GetComponent(env.player)
	if cd.Elapsed != 640*time.Millisecond || cd.Ready() {
		t.Fatalf("after 640ms cooldown = %+v, want charging", cd)
	}
	env.step(sys)
	cd, _ = env.world.Components.Cooldown.GetComponent(env.player)
	if !cd.Ready() || cd.Elapsed != cd.Duration {
		t.Errorf("after 656ms cooldown = %+v, want ready and clamped", cd)
	}
}
