package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves with an optional linear frequency sweep
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newSweep(freq, freq, duration, wave, rate)
}

// newSweep creates an oscillator gliding from freq to endFreq over duration
func newSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	secs := duration.Seconds()
	var sweep float64
	if secs > 0 {
		sweep = (endFreq - freq) / secs
	}
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase at the swept frequency
		t := float64(o.position) / float64(o.rate)
		o.phase += (o.freq + o.sweep*t) / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// createFireSound is a short rising square chirp
func createFireSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.FireSoundDuration
	osc := newSweep(parameter.FireSoundFreq, parameter.FireSoundFreq*1.5, d, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, d, 2*time.Millisecond, d/2, rate), 0.25)
}

// createHitSound is a falling sine blip
func createHitSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.HitSoundDuration
	osc := newSweep(parameter.HitSoundFreq*2, parameter.HitSoundFreq, d, WaveSine, rate)
	return newVolume(NewEnvelope(osc, d, time.Millisecond, d/2, rate), 0.6)
}

// createThudSound mixes low noise and a sine for geometry impacts
func createThudSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.ThudSoundDuration
	body := NewEnvelope(NewOscillator(parameter.ThudSoundFreq, d, WaveSine, rate), d, time.Millisecond, d*3/4, rate)
	grit := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, d*3/4, rate)
	return beep.Mix(newVolume(body, 0.5), newVolume(grit, 0.1))
}

// createDefeatSound is a descending two-note saw
func createDefeatSound(rate beep.SampleRate) beep.Streamer {
	half := parameter.DefeatSoundDuration / 2
	n1 := NewEnvelope(NewOscillator(parameter.DefeatSoundFreq, half, WaveSaw, rate), half, 5*time.Millisecond, half/3, rate)
	n2 := NewEnvelope(NewOscillator(parameter.DefeatSoundFreq*0.75, half, WaveSaw, rate), half, 5*time.Millisecond, half/2, rate)
	return newVolume(beep.Seq(n1, n2), 0.3)
}

// SoundEffect returns a fresh streamer for the sound, nil for unknown types
func SoundEffect(sound core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case core.SoundFire:
		return createFireSound(rate)
	case core.SoundHit:
		return createHitSound(rate)
	case core.SoundThud:
		return createThudSound(rate)
	case core.SoundDefeat:
		return createDefeatSound(rate)
	default:
		return nil
	}
}
