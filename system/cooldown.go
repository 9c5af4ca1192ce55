package system

import (
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter"
)

// CooldownSystem advances every actor cooldown by the tick delta
// Runs before PlayerSystem so fire intent sees this tick's readiness
type CooldownSystem struct {
	world *engine.World
}

func NewCooldownSystem(world *engine.World) engine.System {
	s := &CooldownSystem{world: world}
	s.Init()
	return s
}

func (s *CooldownSystem) Init() {}

func (s *CooldownSystem) Name() string { return "cooldown" }

func (s *CooldownSystem) Priority() int { return parameter.PriorityCooldown }

func (s *CooldownSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime
	store := s.world.Components.Cooldown

	for _, e := range store.GetAllEntities() {
		cd, ok := store.GetComponent(e)
		if !ok {
			continue
		}
		cd.Tick(dt)
		store.SetComponent(e, cd)
	}
}
