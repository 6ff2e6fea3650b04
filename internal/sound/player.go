package sound

import (
	"fmt"
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// SampleRate is the speaker rate the hum is generated at.
const SampleRate = beep.SampleRate(44100)

// Player owns the speaker and the hum streaming into it.
type Player struct {
	pulse *Pulse
	ctrl  *beep.Ctrl
}

// Start initialises the speaker and begins playing the hum.
func Start(freq, volume float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	pl := &Player{pulse: NewPulse(SampleRate, freq, volume)}
	pl.ctrl = &beep.Ctrl{Streamer: pl.pulse, Paused: false}
	speaker.Play(pl.ctrl)
	log.Printf("[Sound] hum at %.0f Hz, volume %.2f", freq, volume)
	return pl, nil
}

// Update feeds the current frame's glow and door motion to the hum.
func (pl *Player) Update(glow, motion float64) {
	if pl == nil {
		return
	}
	pl.pulse.SetLevel(glow, motion)
}

// ToggleMute pauses or resumes the hum.
func (pl *Player) ToggleMute() {
	if pl == nil {
		return
	}
	speaker.Lock()
	pl.ctrl.Paused = !pl.ctrl.Paused
	speaker.Unlock()
}

// Close stops playback.
func (pl *Player) Close() {
	if pl == nil {
		return
	}
	// Clear takes the speaker lock itself
	speaker.Clear()
}
