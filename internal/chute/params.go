package chute

import (
	"fmt"
	"image/color"
)

// Params holds the tunables of the effect. The zero value is not usable;
// start from DefaultParams.
type Params struct {
	// Door easing
	LerpFactor  float64
	SnapEpsilon float64

	// Tunnel
	TunnelSpeed   float64 // phase cycles per second
	RingCount     int
	BaseRings     int     // reference count the ring spacing is derived from
	MinGap        float64 // minimum spacing between rings
	CornerRadius  float64
	RingLineWidth float64
	OffAlpha      float64 // idle ring alpha between pulses

	// Particles
	ParticleCount int
	SpawnRate     float64 // per-frame spawn probability
	ParticleScale float64 // radius = size * scale

	Background  color.NRGBA
	Glow        color.NRGBA
	ParticleIn  color.NRGBA
	ParticleOut color.NRGBA
}

// DefaultParams returns the stock look of the chute.
func DefaultParams() Params {
	return Params{
		LerpFactor:  0.08,
		SnapEpsilon: 0.001,

		TunnelSpeed:   0.44,
		RingCount:     20,
		BaseRings:     10,
		MinGap:        4,
		CornerRadius:  18,
		RingLineWidth: 2,
		OffAlpha:      0.14,

		ParticleCount: 30,
		SpawnRate:     0.02,
		ParticleScale: 0.5,

		Background:  color.NRGBA{R: 0x0a, G: 0x0f, B: 0x16, A: 255},
		Glow:        color.NRGBA{R: 80, G: 255, B: 255, A: 255},
		ParticleIn:  color.NRGBA{R: 80, G: 255, B: 255, A: 255},
		ParticleOut: color.NRGBA{R: 255, G: 150, B: 60, A: 255},
	}
}

// MaxParticles is the population cap spawning stops at.
func (p Params) MaxParticles() int {
	return p.ParticleCount * 3 / 2
}

// Validate reports the first out-of-range parameter.
func (p Params) Validate() error {
	switch {
	case p.LerpFactor <= 0 || p.LerpFactor > 1:
		return fmt.Errorf("lerp factor %v out of range (0, 1]", p.LerpFactor)
	case p.SnapEpsilon <= 0:
		return fmt.Errorf("snap epsilon must be positive, got %v", p.SnapEpsilon)
	case p.RingCount < 2:
		return fmt.Errorf("ring count must be at least 2, got %d", p.RingCount)
	case p.BaseRings < 2:
		return fmt.Errorf("base ring count must be at least 2, got %d", p.BaseRings)
	case p.MinGap < 0:
		return fmt.Errorf("minimum ring gap must not be negative, got %v", p.MinGap)
	case p.CornerRadius < 0 || p.RingLineWidth <= 0:
		return fmt.Errorf("invalid ring stroke (radius %v, width %v)", p.CornerRadius, p.RingLineWidth)
	case p.OffAlpha < 0 || p.OffAlpha > 1:
		return fmt.Errorf("idle ring alpha %v out of range [0, 1]", p.OffAlpha)
	case p.ParticleCount < 0:
		return fmt.Errorf("particle count must not be negative, got %d", p.ParticleCount)
	case p.SpawnRate < 0 || p.SpawnRate > 1:
		return fmt.Errorf("spawn rate %v out of range [0, 1]", p.SpawnRate)
	case p.ParticleScale <= 0:
		return fmt.Errorf("particle scale must be positive, got %v", p.ParticleScale)
	}
	return nil
}
