package system

import (
	"github.com/lixenwraith/vi-arena/combat"
	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/parameter"
	"github.com/lixenwraith/vi-arena/physics"
)

// PlayerConfig tunes player locomotion
type PlayerConfig struct {
	JumpForce    float64
	MoveAccel    float64
	MaxMoveSpeed float64
}

// DefaultPlayerConfig returns the built-in locomotion tuning
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		JumpForce:    parameter.JumpForce,
		MoveAccel:    parameter.MoveAccel,
		MaxMoveSpeed: parameter.MaxMoveSpeed,
	}
}

// PlayerSystem turns InputResource intent into player velocity and fire requests
// Also applies horizontal damping to every damped body
type PlayerSystem struct {
	world   *engine.World
	space   *physics.Space
	spawner *combat.Spawner
	cfg     PlayerConfig
}

func NewPlayerSystem(world *engine.World, space *physics.Space, spawner *combat.Spawner, cfg PlayerConfig) engine.System {
	s := &PlayerSystem{
		world:   world,
		space:   space,
		spawner: spawner,
		cfg:     cfg,
	}
	s.Init()
	return s
}

func (s *PlayerSystem) Init() {
	s.world.Resources.Input.Reset()
}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime
	input := s.world.Resources.Input
	player := s.world.Resources.Arena.Player

	alive := s.world.Components.Player.HasEntity(player) && s.world.Resources.Game.Outcome != engine.OutcomeDefeated
	if alive {
		s.locomotion(input, dt.Seconds())
		if input.Fire {
			s.spawner.Fire(player, input.Aim)
		}
	} else {
		input.ConsumeJump()
	}
	input.DecayLatches(dt)

	s.applyDamping()
}

// locomotion applies jump, acceleration and facing to the player body
func (s *PlayerSystem) locomotion(input *engine.InputResource, dtSecs float64) {
	player := s.world.Resources.Arena.Player
	jump := input.ConsumeJump()
	dir := input.Horizontal()

	s.space.Modify(player, func(b *physics.Body) {
		if jump {
			b.Velocity.Y = s.cfg.JumpForce
		}
		switch {
		case dir < 0 && b.Velocity.X > -s.cfg.MaxMoveSpeed:
			b.Velocity.X -= s.cfg.MoveAccel * dtSecs
		case dir > 0 && b.Velocity.X < s.cfg.MaxMoveSpeed:
			b.Velocity.X += s.cfg.MoveAccel * dtSecs
		}
	})

	if dir != 0 {
		s.world.Components.Facing.SetComponent(player, component.FacingComponent{X: dir})
	}
}

func (s *PlayerSystem) applyDamping() {
	store := s.world.Components.Damping
	for _, e := range store.GetAllEntities() {
		d, ok := store.GetComponent(e)
		if !ok {
			continue
		}
		s.space.Modify(e, func(b *physics.Body) {
			b.Velocity.X *= d.Factor
		})
	}
}
