package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/parameter"
)

// SoundManager plays one-shot effects through a shared mixer
// Play is a silent no-op until Initialize succeeds, so a machine without audio still runs the game
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool

	muted atomic.Bool
}

// NewSoundManager creates an uninitialized sound manager at the given master volume
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	slog.Info("audio initialized", "sample_rate", int(sm.rate))
	return nil
}

// Available reports whether the speaker is open
func (sm *SoundManager) Available() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play mixes a new instance of the sound, returns false when unavailable, muted, or unknown
func (sm *SoundManager) Play(sound core.SoundType) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return false
	}

	streamer := SoundEffect(sound, sm.rate)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(streamer, sm.volume))
	speaker.Unlock()
	return true
}

// ToggleMute flips mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		cur := sm.muted.Load()
		if sm.muted.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

// SetMuted forces mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// IsMuted reports current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Close stops playback and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
