package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/chaoscope/constants"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Player manages the effect mixer and the mute state
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewPlayer creates a player; call Initialize before playing
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBufferDur)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup drops all pending sounds
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.mixer.Clear()
	p.initialized = false
}

// SetMuted sets the mute state
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// ToggleMuted flips the mute state and returns the new value
func (p *Player) ToggleMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	p.mixer.Add(s)
}

// PlayAdd acknowledges a placed anchor
func (p *Player) PlayAdd() {
	p.play(CreateAddBlip())
}

// PlayRemove acknowledges a removed anchor
func (p *Player) PlayRemove() {
	p.play(CreateRemoveBlip())
}

// PlayDenied signals rejected input, such as a removal click that
// missed every anchor
func (p *Player) PlayDenied() {
	p.play(CreateDeniedBuzz())
}
