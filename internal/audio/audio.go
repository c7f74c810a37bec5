// Package audio plays short square-wave effects for simulation events.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/vovakirdan/pong/internal/pong"
)

const sampleRate = beep.SampleRate(44100)

// Player turns simulation events into sounds on the default output device.
type Player struct {
	enabled bool
}

// NewPlayer opens the speaker. The returned Player must be closed.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	return &Player{enabled: true}, nil
}

// Open returns a Player when enabled is set and the speaker is available.
// Otherwise it returns nil, which plays nothing; failures are logged.
func Open(enabled bool, logger *log.Logger) *Player {
	if !enabled {
		return nil
	}
	p, err := NewPlayer()
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return p
}

// Close releases the speaker.
func (p *Player) Close() {
	if p == nil || !p.enabled {
		return
	}
	speaker.Close()
	p.enabled = false
}

// Handle plays the effect for e. It is safe to pass as a pong.WithEvents
// callback; a nil Player stays silent.
func (p *Player) Handle(e pong.Event) {
	if p == nil || !p.enabled {
		return
	}
	if s := Effect(e.Kind); s != nil {
		speaker.Play(s)
	}
}

// Effect returns the streamer for an event kind, or nil for silent events.
func Effect(k pong.EventKind) beep.Streamer {
	switch k {
	case pong.EventPaddleHit:
		return squareWave(880, 50*time.Millisecond)
	case pong.EventWallBounce:
		return squareWave(440, 30*time.Millisecond)
	case pong.EventScore:
		// Descending three-note jingle
		return beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 150*time.Millisecond),
		)
	case pong.EventServe:
		return squareWave(990, 20*time.Millisecond)
	default:
		return nil
	}
}

// squareWave generates a retro square tone of the given frequency and length.
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := 0.2
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
