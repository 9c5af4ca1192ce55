package system

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/engine/mocks"
	"github.com/lixenwraith/vi-arena/event"
)

func TestAudioSystemMapsEventsToSounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockAudioPlayer(ctrl)

	w := engine.NewWorld()
	w.Resources.Audio = &engine.AudioResource{Player: player}
	sys := NewAudioSystem(w).(*AudioSystem)

	gomock.InOrder(
		player.EXPECT().Play(core.SoundFire).Return(true),
		player.EXPECT().Play(core.SoundHit).Return(true),
		player.EXPECT().Play(core.SoundThud).Return(true),
		player.EXPECT().Play(core.SoundDefeat).Return(true),
		player.EXPECT().Play(core.SoundHit).Return(true),
	)

	sys.HandleEvent(event.GameEvent{Type: event.EventProjectileSpawned, Payload: &event.ProjectileSpawnedPayload{}})
	sys.HandleEvent(event.GameEvent{Type: event.EventProjectileHit, Payload: &event.ProjectileHitPayload{Damageable: true}})
	sys.HandleEvent(event.GameEvent{Type: event.EventProjectileHit, Payload: &event.ProjectileHitPayload{Damageable: false}})
	sys.HandleEvent(event.GameEvent{Type: event.EventActorDefeated, Payload: &event.ActorDefeatedPayload{}})
	sys.HandleEvent(event.GameEvent{Type: event.EventSoundRequest, Payload: &event.SoundRequestPayload{Sound: core.SoundHit}})
}

func TestAudioSystemWithoutPlayer(t *testing.T) {
	sys := NewAudioSystem(engine.NewWorld()).(*AudioSystem)
	// Must not panic
	sys.HandleEvent(event.GameEvent{Type: event.EventProjectileSpawned})
}
