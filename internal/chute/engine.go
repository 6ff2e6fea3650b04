// Package chute animates a pulsing ring tunnel with drifting particles behind
// two sliding doors.
package chute

import (
	"log"
	"math"
	"math/rand"
	"time"
)

// Engine owns the animation state and renders it onto a Surface.
// It has no clock of its own: a host calls Render (or Update then Draw) once
// per frame with a monotonic timestamp. An Engine is not safe for concurrent
// use.
type Engine struct {
	params  Params
	state   State
	surface Surface
	theme   Theme
	rng     *rand.Rand
	running bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for particles.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithSize sets the initial surface dimensions.
func WithSize(w, h float64) Option {
	return func(e *Engine) {
		e.state.Width = math.Max(0, w)
		e.state.Height = math.Max(0, h)
	}
}

// WithDoor sets the initial door target and progress.
func WithDoor(target DoorTarget, progress float64) Option {
	return func(e *Engine) {
		e.state.DoorTarget = target
		e.state.DoorProgress = clamp01(progress)
	}
}

// WithDirection sets the initial pulse direction.
func WithDirection(dir Direction) Option {
	return func(e *Engine) { e.state.Direction = dir }
}

// New creates an engine drawing onto surface. A nil surface is fatal.
func New(surface Surface, theme Theme, params Params, opts ...Option) (*Engine, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		params:  params,
		state:   NewState(),
		surface: surface,
		theme:   theme,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e, nil
}

// Start seeds the particle population and marks the engine running.
// Calling Start on a running engine does nothing.
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.state.SeedParticles(e.rng, e.params.ParticleCount)
	e.running = true
	log.Printf("[Chute] started: %d particles, %.0fx%.0f, pulse %s",
		len(e.state.Particles), e.state.Width, e.state.Height, e.state.Direction)
}

// Stop marks the engine stopped; hosts stop scheduling frames.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	log.Printf("[Chute] stopped")
}

// Running reports whether Start has been called without a later Stop.
func (e *Engine) Running() bool { return e.running }

// Render advances the state to nowMs and draws one frame.
func (e *Engine) Render(nowMs float64) {
	e.Update(nowMs)
	e.Draw()
}

// Update advances the door easing, the tunnel phase and the particles.
func (e *Engine) Update(nowMs float64) {
	e.state.StepDoor(e.params.LerpFactor, e.params.SnapEpsilon)
	e.state.Phase = TunnelPhase(nowMs, e.params.TunnelSpeed)
	e.state.UpdateParticles(e.rng, e.params)
}

// Draw renders the current state: tunnel, particles, then doors on top.
func (e *Engine) Draw() {
	e.surface.Clear()
	if e.state.Width <= 0 || e.state.Height <= 0 {
		return
	}
	drawTunnel(e.surface, &e.state, e.params)
	drawParticles(e.surface, &e.state, e.params)
	drawDoors(e.surface, &e.state, e.theme)
}

// OnResize caches new surface dimensions and clears the surface.
func (e *Engine) OnResize(w, h float64) {
	e.state.Width = math.Max(0, w)
	e.state.Height = math.Max(0, h)
	e.surface.Clear()
}

// SetDoorTarget sets where the doors ease toward.
func (e *Engine) SetDoorTarget(t DoorTarget) {
	if t != DoorOpen {
		t = DoorClosed
	}
	e.state.DoorTarget = t
}

// ToggleDoor flips the door target.
func (e *Engine) ToggleDoor() {
	if e.state.DoorTarget == DoorOpen {
		e.SetDoorTarget(DoorClosed)
		return
	}
	e.SetDoorTarget(DoorOpen)
}

// SetPulseDirection sets the ring and particle direction.
func (e *Engine) SetPulseDirection(dir Direction) {
	if dir != Out {
		dir = In
	}
	e.state.Direction = dir
}

// ToggleDirection flips the pulse direction.
func (e *Engine) ToggleDirection() {
	e.SetPulseDirection(e.state.Direction.Opposite())
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	s := e.state
	s.Particles = append([]Particle(nil), e.state.Particles...)
	return s
}

// Params returns the engine's parameters.
func (e *Engine) Params() Params { return e.params }

// OuterGlow is the current pulse intensity of the outermost ring.
func (e *Engine) OuterGlow() float64 {
	return Glow(LocalPhase(e.state.Phase, 0, e.params.RingCount, e.state.Direction))
}

// DoorMotion is the remaining door travel, 0 once settled.
func (e *Engine) DoorMotion() float64 { return e.state.DoorMotion() }
