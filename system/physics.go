package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/physics"
	"github.com/lixenwraith/vi-arena/status"
)

// PhysicsSystem steps the physics space, rebuilding the contact set read by DamageSystem
type PhysicsSystem struct {
	world *engine.World
	space *physics.Space

	statContacts *atomic.Int64
}

func NewPhysicsSystem(world *engine.World, space *physics.Space) engine.System {
	s := &PhysicsSystem{
		world:        world,
		space:        space,
		statContacts: world.Resources.Status.Ints.Get(status.KeyContacts),
	}
	s.Init()
	return s
}

func (s *PhysicsSystem) Init() {
	s.statContacts.Store(0)
}

func (s *PhysicsSystem) Name() string { return "physics" }

func (s *PhysicsSystem) Priority() int { return parameter.PriorityPhysics }

func (s *PhysicsSystem) Update() {
	pairs := s.space.Step(s.world.Resources.Time.DeltaTime)
	s.statContacts.Store(int64(pairs))
}
