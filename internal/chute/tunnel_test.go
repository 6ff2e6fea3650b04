package chute

import (
	"math"
	"testing"
)

func TestTunnelPhase(t *testing.T) {
	tests := []struct {
		name  string
		now   float64
		speed float64
		want  float64
	}{
		{"zero", 0, 0.44, 0},
		{"2500ms", 2500, 0.44, 0.1},
		{"one full cycle", 1000 / 0.44, 0.44, 0},
		{"negative", -2500, 0.44, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TunnelPhase(tt.now, tt.speed)
			// a full cycle may land a hair below 1
			d := math.Abs(got - tt.want)
			if d > 1e-9 && math.Abs(d-1) > 1e-9 {
				t.Errorf("TunnelPhase(%v, %v) = %v, want %v", tt.now, tt.speed, got, tt.want)
			}
		})
	}
}

func TestTunnelPhaseRange(t *testing.T) {
	inputs := []float64{
		0, 1, -1, 1e-300, -1e-300, -1e-18, 999.999, -999.999,
		1e15, -1e15, math.MaxFloat64, -math.MaxFloat64,
		math.Inf(1), math.Inf(-1), math.NaN(),
	}
	for _, now := range inputs {
		p := TunnelPhase(now, 0.44)
		if !(p >= 0 && p < 1) {
			t.Errorf("TunnelPhase(%v) = %v, outside [0,1)", now, p)
		}
	}
}

func TestLocalPhaseAndGlowRange(t *testing.T) {
	for _, dir := range []Direction{In, Out} {
		for phase := 0.0; phase < 1; phase += 0.013 {
			for i := 0; i < 20; i++ {
				lp := LocalPhase(phase, i, 20, dir)
				if !(lp >= 0 && lp < 1) {
					t.Fatalf("LocalPhase(%v, %d, %s) = %v, outside [0,1)", phase, i, dir, lp)
				}
				g := Glow(lp)
				if g < 0 || g > 1 {
					t.Fatalf("Glow(%v) = %v, outside [0,1]", lp, g)
				}
			}
		}
	}
}

func TestRingZeroPhase(t *testing.T) {
	phase := TunnelPhase(2500, 0.44)
	if off := PhaseOffset(0, 20, In); off != 0 {
		t.Errorf("PhaseOffset(0) = %v, want 0", off)
	}
	got := LocalPhase(phase, 0, 20, In)
	want := wrap01(1 - phase)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("LocalPhase ring 0 = %v, want %v", got, want)
	}
}

func TestPhaseOffsetWeighting(t *testing.T) {
	// the last ring is weighted fully going in and not at all going out
	if got, want := PhaseOffset(19, 20, In), 19*0.12*1.8; math.Abs(got-want) > 1e-12 {
		t.Errorf("PhaseOffset(19, in) = %v, want %v", got, want)
	}
	if got, want := PhaseOffset(19, 20, Out), 19*0.12; math.Abs(got-want) > 1e-12 {
		t.Errorf("PhaseOffset(19, out) = %v, want %v", got, want)
	}
}

func TestGlowHalfCycleDark(t *testing.T) {
	if g := Glow(0.25); math.Abs(g-1) > 1e-12 {
		t.Errorf("Glow(0.25) = %v, want 1", g)
	}
	if g := Glow(0.75); g != 0 {
		t.Errorf("Glow(0.75) = %v, want 0", g)
	}
}

func TestRingLayout(t *testing.T) {
	p := DefaultParams()
	rings := RingLayout(400, 300, 0.1, In, p)

	// fade reaches zero past two thirds of the way in
	if len(rings) != 13 {
		t.Fatalf("visible rings = %d, want 13", len(rings))
	}

	gap := RingGap(400, 300, p)
	for _, r := range rings {
		if r.Index > 12 {
			t.Errorf("ring %d should be faded out", r.Index)
		}
		if want := float64(r.Index)*gap + 2; math.Abs(r.Inset-want) > 1e-9 {
			t.Errorf("ring %d inset = %v, want %v", r.Index, r.Inset, want)
		}
		if math.Abs(r.W-(400-2*r.Inset)) > 1e-9 || math.Abs(r.H-(300-2*r.Inset)) > 1e-9 {
			t.Errorf("ring %d size = %vx%v for inset %v", r.Index, r.W, r.H, r.Inset)
		}
		if r.Alpha < 0 || r.Alpha > 1 {
			t.Errorf("ring %d alpha = %v", r.Index, r.Alpha)
		}
		if r.Glow == 0 && math.Abs(r.Alpha-p.OffAlpha) > 1e-12 {
			t.Errorf("dark ring %d alpha = %v, want idle %v", r.Index, r.Alpha, p.OffAlpha)
		}
	}
}

func TestRingGapScalesWithSurface(t *testing.T) {
	p := DefaultParams()
	// 300/14 > 6, so baseGap = 300/14 and gap = 9*baseGap/19
	want := 9 * (300.0 / 14) / 19
	if got := RingGap(400, 300, p); math.Abs(got-want) > 1e-9 {
		t.Errorf("RingGap(400,300) = %v, want %v", got, want)
	}
	if got := RingGap(40, 30, p); got != 4 {
		t.Errorf("RingGap(40,30) = %v, want minimum gap 4", got)
	}
	if RingGap(1600, 1200, p) <= RingGap(400, 300, p) {
		t.Error("ring gap should grow with the surface")
	}
}

func TestRingLayoutDegenerate(t *testing.T) {
	p := DefaultParams()
	if rings := RingLayout(0, 0, 0.3, In, p); len(rings) != 0 {
		t.Errorf("zero surface produced %d rings", len(rings))
	}
	for _, r := range RingLayout(12, 10, 0.3, Out, p) {
		if r.W <= 0 || r.H <= 0 {
			t.Errorf("ring %d has non-positive size %vx%v", r.Index, r.W, r.H)
		}
	}
}
