package chute

import (
	"math"
	"testing"
)

func TestStepDoorFirstStep(t *testing.T) {
	s := State{DoorTarget: DoorClosed, DoorProgress: 0}
	s.StepDoor(0.08, 0.001)
	if math.Abs(s.DoorProgress-0.08) > 1e-12 {
		t.Errorf("DoorProgress after one step = %v, want 0.08", s.DoorProgress)
	}
}

func TestStepDoorConverges(t *testing.T) {
	tests := []struct {
		name   string
		target DoorTarget
		start  float64
	}{
		{"close from open", DoorClosed, 0},
		{"open from closed", DoorOpen, 1},
		{"close from middle", DoorClosed, 0.5},
		{"open from middle", DoorOpen, 0.37},
		{"already closed", DoorClosed, 1},
		{"already open", DoorOpen, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{DoorTarget: tt.target, DoorProgress: tt.start}
			target := float64(tt.target)
			prevDist := math.Abs(target - tt.start)

			steps := 0
			for ; steps < 200 && !s.DoorSettled(); steps++ {
				s.StepDoor(0.08, 0.001)
				dist := math.Abs(target - s.DoorProgress)
				if dist > prevDist {
					t.Fatalf("step %d moved away from target: %v -> %v", steps, prevDist, dist)
				}
				if s.DoorProgress < 0 || s.DoorProgress > 1 {
					t.Fatalf("step %d left [0,1]: %v", steps, s.DoorProgress)
				}
				prevDist = dist
			}
			if !s.DoorSettled() {
				t.Fatalf("not settled after %d steps, progress %v", steps, s.DoorProgress)
			}

			for i := 0; i < 10; i++ {
				s.StepDoor(0.08, 0.001)
				if s.DoorProgress != target {
					t.Fatalf("progress drifted after settling: %v", s.DoorProgress)
				}
			}
		})
	}
}

func TestStepDoorSnapsExactly(t *testing.T) {
	s := State{DoorTarget: DoorClosed, DoorProgress: 0}
	for i := 0; i < 1000; i++ {
		s.StepDoor(0.08, 0.001)
	}
	if s.DoorProgress != 1 {
		t.Errorf("DoorProgress = %v, want exactly 1", s.DoorProgress)
	}
}

func TestParseDirection(t *testing.T) {
	for _, in := range []string{"in", "out"} {
		d, err := ParseDirection(in)
		if err != nil || string(d) != in {
			t.Errorf("ParseDirection(%q) = %q, %v", in, d, err)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection(sideways) succeeded, want error")
	}
	if In.Opposite() != Out || Out.Opposite() != In {
		t.Error("Opposite does not flip direction")
	}
}
