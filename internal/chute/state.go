package chute

import (
	"fmt"
	"math"
)

// Direction is the pulse direction of the tunnel.
type Direction string

const (
	In  Direction = "in"
	Out Direction = "out"
)

// ParseDirection accepts "in" or "out".
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case In, Out:
		return d, nil
	}
	return "", fmt.Errorf("unknown pulse direction %q", s)
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Out {
		return In
	}
	return Out
}

// DoorTarget is the requested door position.
type DoorTarget int

const (
	DoorOpen   DoorTarget = 0
	DoorClosed DoorTarget = 1
)

// Particle is a point drifting along the depth axis.
type Particle struct {
	X, Y  float64 // surface position at depth 0
	Z     float64 // depth in [0, 1]
	Speed float64 // depth advance per frame
	Size  float64
}

// State is everything the engine mutates between frames.
type State struct {
	DoorTarget   DoorTarget
	DoorProgress float64
	Direction    Direction
	Width        float64
	Height       float64
	Phase        float64
	Particles    []Particle
}

// NewState returns the initial state: doors closed and at rest, pulsing in.
func NewState() State {
	return State{
		DoorTarget:   DoorClosed,
		DoorProgress: 1,
		Direction:    In,
	}
}

// StepDoor eases DoorProgress toward DoorTarget by one frame and snaps once
// within eps.
func (s *State) StepDoor(lerp, eps float64) {
	target := float64(s.DoorTarget)
	s.DoorProgress += (target - s.DoorProgress) * lerp
	if math.Abs(target-s.DoorProgress) < eps {
		s.DoorProgress = target
	}
}

// DoorSettled reports whether the doors have reached their target.
func (s *State) DoorSettled() bool {
	return s.DoorProgress == float64(s.DoorTarget)
}

// DoorMotion is the remaining distance to the door target.
func (s *State) DoorMotion() float64 {
	return math.Abs(float64(s.DoorTarget) - s.DoorProgress)
}
