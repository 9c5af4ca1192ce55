package parameter

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is the linear master gain (0..1)
	DefaultMasterVolume = 0.5
)

// Sound Shapes
const (
	FireSoundDuration   = 60 * time.Millisecond
	FireSoundFreq       = 1320.0
	HitSoundDuration    = 90 * time.Millisecond
	HitSoundFreq        = 440.0
	ThudSoundDuration   = 70 * time.Millisecond
	ThudSoundFreq       = 110.0
	DefeatSoundDuration = 400 * time.Millisecond
	DefeatSoundFreq     = 220.0
)
