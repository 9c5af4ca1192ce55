package audio

import (
	"testing"

	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/engine"
)

var _ engine.AudioPlayer = (*SoundManager)(nil)

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager(0.5)
	if sm.Available() {
		t.Fatal("available before Initialize")
	}
	if sm.Play(core.SoundFire) {
		t.Error("Play succeeded without a speaker")
	}
	sm.Close()
}

func TestToggleMute(t *testing.T) {
	sm := NewSoundManager(0.5)
	if sm.IsMuted() {
		t.Fatal("muted by default")
	}
	if !sm.ToggleMute() || !sm.IsMuted() {
		t.Error("first toggle did not mute")
	}
	if sm.ToggleMute() || sm.IsMuted() {
		t.Error("second toggle did not unmute")
	}
	sm.SetMuted(true)
	if sm.Play(core.SoundHit) {
		t.Error("played while muted")
	}
}
