package chute

import "math/rand"

func randomParticle(rng *rand.Rand, w, h, z float64) Particle {
	return Particle{
		X:     rng.Float64() * w,
		Y:     rng.Float64() * h,
		Z:     z,
		Speed: 0.01 + rng.Float64()*0.02,
		Size:  1 + rng.Float64()*2,
	}
}

// SeedParticles replaces the population with n particles at random depths.
func (s *State) SeedParticles(rng *rand.Rand, n int) {
	s.Particles = make([]Particle, 0, n+n/2)
	for i := 0; i < n; i++ {
		s.Particles = append(s.Particles, randomParticle(rng, s.Width, s.Height, rng.Float64()))
	}
}

// UpdateParticles advances every particle one frame along the current
// direction, recycling those that pass the far bound, and may spawn one new
// particle at the entry depth. Nothing moves on an empty surface.
func (s *State) UpdateParticles(rng *rand.Rand, p Params) {
	if s.Width == 0 || s.Height == 0 {
		return
	}
	for i := range s.Particles {
		pt := &s.Particles[i]
		if s.Direction == Out {
			pt.Z -= pt.Speed
			if pt.Z <= 0 {
				pt.Z = 1
				pt.X = rng.Float64() * s.Width
				pt.Y = rng.Float64() * s.Height
			}
			continue
		}
		pt.Z += pt.Speed
		if pt.Z >= 1 {
			pt.Z = 0
			pt.X = rng.Float64() * s.Width
			pt.Y = rng.Float64() * s.Height
		}
	}

	if rng.Float64() < p.SpawnRate && len(s.Particles) < p.MaxParticles() {
		s.Particles = append(s.Particles, randomParticle(rng, s.Width, s.Height, entryDepth(s.Direction)))
	}
}

func entryDepth(dir Direction) float64 {
	if dir == Out {
		return 1
	}
	return 0
}

// Project maps a particle onto the surface by pulling it toward the centre
// with depth. The depth factor and the interpolation both mirror with the
// pulse direction, so the two flips cancel and z alone decides the scale.
func Project(pt Particle, w, h float64) (x, y float64) {
	cx, cy := w/2, h/2
	f := 1 - pt.Z
	return cx + (pt.X-cx)*f, cy + (pt.Y-cy)*f
}

func drawParticles(dst Surface, s *State, p Params) {
	base := p.ParticleIn
	if s.Direction == Out {
		base = p.ParticleOut
	}
	for _, pt := range s.Particles {
		x, y := Project(pt, s.Width, s.Height)
		dst.FillCircle(x, y, pt.Size*p.ParticleScale, withAlpha(base, 1-pt.Z))
	}
}
