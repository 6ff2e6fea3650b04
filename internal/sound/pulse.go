// Package sound plays an optional ambient hum that follows the tunnel pulse.
package sound

import (
	"math"
	"math/rand"
	"sync"

	"github.com/faiface/beep"
)

// smoothing is the per-sample approach rate of the gains toward their targets.
const smoothing = 0.0015

// Pulse is an endless beep.Streamer: a sine hum whose gain follows the
// outer ring glow, mixed with soft noise while the doors travel.
// SetLevel is called from the frame loop while Stream runs on the speaker
// goroutine.
type Pulse struct {
	rate   beep.SampleRate
	freq   float64
	volume float64
	rng    *rand.Rand

	mu     sync.RWMutex
	glow   float64
	motion float64

	// owned by Stream
	phase float64
	gain  float64
	hiss  float64
}

// NewPulse returns a hum at freq Hz scaled by volume in [0, 1].
func NewPulse(rate beep.SampleRate, freq, volume float64) *Pulse {
	return &Pulse{
		rate:   rate,
		freq:   freq,
		volume: math.Max(0, math.Min(volume, 1)),
		rng:    rand.New(rand.NewSource(1)),
	}
}

// SetLevel sets the targets the hum and the door noise glide toward.
func (p *Pulse) SetLevel(glow, motion float64) {
	p.mu.Lock()
	p.glow = math.Max(0, math.Min(glow, 1))
	p.motion = math.Max(0, math.Min(motion, 1))
	p.mu.Unlock()
}

func (p *Pulse) levels() (float64, float64) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.glow, p.motion
}

func (p *Pulse) Stream(samples [][2]float64) (int, bool) {
	glow, motion := p.levels()
	inc := p.freq / float64(p.rate)
	for i := range samples {
		p.gain += (0.25 + 0.75*glow - p.gain) * smoothing
		p.hiss += (motion - p.hiss) * smoothing

		v := math.Sin(2*math.Pi*p.phase)*p.gain*0.8 + (p.rng.Float64()*2-1)*p.hiss*0.2
		v *= p.volume
		samples[i][0] = v
		samples[i][1] = v

		p.phase += inc
		p.phase -= math.Floor(p.phase)
	}
	return len(samples), true
}

func (p *Pulse) Err() error { return nil }
