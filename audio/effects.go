// Package audio provides the interaction sound effects: short
// synthesized blips for anchor edits and a buzz for rejected input.
// All sounds are generated, no samples are shipped.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/chaoscope/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waveFunc maps a phase in [0, 1) to an amplitude in [-1, 1]
type waveFunc func(phase float64) float64

// shapeOf resolves the wave function once so Stream stays branch-free
func shapeOf(wave WaveType) waveFunc {
	switch wave {
	case WaveSquare:
		return func(phase float64) float64 {
			if phase < 0.5 {
				return 1.0
			}
			return -1.0
		}
	case WaveSaw:
		return func(phase float64) float64 { return 2.0 * (phase - 0.5) }
	case WaveNoise:
		return func(float64) float64 { return rand.Float64()*2 - 1 }
	default:
		return func(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }
	}
}

// oscillator generates raw audio waves
type oscillator struct {
	shape     waveFunc
	phase     float64
	step      float64
	remaining int
}

// NewOscillator creates a finite oscillator streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		shape:     shapeOf(wave),
		step:      freq / float64(rate),
		remaining: rate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.remaining <= 0 {
			return i, false
		}
		o.remaining--

		val := o.shape(o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.step
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer  beep.Streamer
	pos       int
	attackEnd int
	releaseAt int
	releaseN  int
	total     int
}

// NewEnvelope shapes a streamer with linear attack and release ramps.
// When attack and release overlap, release wins and sustain drops out.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	releaseAt := total - rel
	if releaseAt < att {
		releaseAt = att
	}

	return &envelope{
		streamer:  s,
		attackEnd: att,
		releaseAt: releaseAt,
		releaseN:  rel,
		total:     total,
	}
}

// gain computes the ramp factor for the current position
func (e *envelope) gain() float64 {
	if e.pos >= e.releaseAt && e.releaseN > 0 {
		return math.Max(float64(e.total-e.pos)/float64(e.releaseN), 0)
	}
	if e.pos < e.attackEnd {
		return float64(e.pos) / float64(e.attackEnd)
	}
	return 1.0
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, false
		}

		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer in a volume effect
// math.Log2(0) is -Inf, so zero volume switches to silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// buzz layers harmonics over a low fundamental for a harsh reject tone
type buzz struct {
	freq float64
	pos  int
	rate beep.SampleRate
}

func (g *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.rate)

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Fade in over 20ms to avoid a click
		fade := math.Min(t/0.02, 1.0)
		sample *= fade * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzz) Err() error { return nil }

// Sound effect generators

// CreateAddBlip generates a rising two-note chime for a placed anchor
func CreateAddBlip() beep.Streamer {
	half := constants.AddBlipDuration / 2

	// C5 then G5
	n1 := NewOscillator(523.25, half, WaveSine, sampleRate)
	n1Shaped := NewEnvelope(n1, half, constants.BlipAttack, constants.BlipRelease, sampleRate)
	n2 := NewOscillator(783.99, half, WaveSine, sampleRate)
	n2Shaped := NewEnvelope(n2, half, constants.BlipAttack, constants.BlipRelease, sampleRate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.5)
}

// CreateRemoveBlip generates the falling counterpart of the add chime
func CreateRemoveBlip() beep.Streamer {
	half := constants.AddBlipDuration / 2

	// G5 then C5
	n1 := NewOscillator(783.99, half, WaveSine, sampleRate)
	n1Shaped := NewEnvelope(n1, half, constants.BlipAttack, constants.BlipRelease, sampleRate)
	n2 := NewOscillator(523.25, half, WaveSine, sampleRate)
	n2Shaped := NewEnvelope(n2, half, constants.BlipAttack, constants.BlipRelease, sampleRate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.5)
}

// CreateDeniedBuzz generates a low buzz for rejected input
func CreateDeniedBuzz() beep.Streamer {
	raw := beep.Take(sampleRate.N(constants.DeniedDuration), &buzz{freq: 120, rate: sampleRate})
	shaped := NewEnvelope(raw, constants.DeniedDuration, constants.DeniedAttack, constants.DeniedRelease, sampleRate)
	return newVolume(shaped, 0.6)
}
