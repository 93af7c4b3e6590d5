// Package audio plays the short acknowledgement tones of the battle UI.
// Every call is safe without an audio device; sounds are simply dropped.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	selectDuration = 60 * time.Millisecond
)

// SoundManager owns the speaker and mixes one-shot tones.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a silent manager. Call Initialize to open the
// speaker.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued tones and stops mixing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlaySelect plays the cursor/confirm chirp.
func (sm *SoundManager) PlaySelect() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(selectDuration), NewChirpGenerator(sampleRate, 880, 1320, selectDuration))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// ChirpGenerator sweeps a sine from one frequency to another with a short
// attack and a linear release.
type ChirpGenerator struct {
	sr        beep.SampleRate
	from, to  float64
	samples   int
	pos       int
	phase     float64
	amplitude float64
}

// NewChirpGenerator creates a chirp lasting d.
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:        sr,
		from:      from,
		to:        to,
		samples:   max(sr.N(d), 1),
		amplitude: 0.2,
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*progress

		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1)
		envelope := attack * (1 - progress)

		sample := g.amplitude * envelope * math.Sin(g.phase)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}
