package system

import (
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
	"github.com/lixenwraith/vi-arena/parameter"
)

// AudioSystem maps combat events to sound effects
// Decouples game systems from direct audio engine access
type AudioSystem struct {
	world  *engine.World
	player engine.AudioPlayer
}

// NewAudioSystem creates an audio system bound to the world's audio resource
// Audio resource may be nil when audio is disabled
func NewAudioSystem(world *engine.World) engine.System {
	var player engine.AudioPlayer
	if world.Resources.Audio != nil {
		player = world.Resources.Audio.Player
	}

	s := &AudioSystem{
		world:  world,
		player: player,
	}
	s.Init()
	return s
}

func (s *AudioSystem) Init() {}

func (s *AudioSystem) Name() string { return "audio" }

func (s *AudioSystem) Priority() int { return parameter.PriorityAudio }

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventProjectileSpawned,
		event.EventProjectileHit,
		event.EventActorDefeated,
		event.EventSoundRequest,
	}
}

// HandleEvent plays the sound matching the event
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if s.player == nil {
		return
	}

	switch ev.Type {
	case event.EventProjectileSpawned:
		s.player.Play(core.SoundFire)
	case event.EventProjectileHit:
		if p, ok := ev.Payload.(*event.ProjectileHitPayload); ok {
			if p.Damageable {
				s.player.Play(core.SoundHit)
			} else {
				s.player.Play(core.SoundThud)
			}
		}
	case event.EventActorDefeated:
		s.player.Play(core.SoundDefeat)
	case event.EventSoundRequest:
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			s.player.Play(p.Sound)
		}
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
