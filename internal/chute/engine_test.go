package chute

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func newTestEngine(t *testing.T, surf Surface, th Theme, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithRand(rand.New(rand.NewSource(42))), WithSize(400, 300)}, opts...)
	e, err := New(surf, th, DefaultParams(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestNewWithoutSurface(t *testing.T) {
	e, err := New(nil, nil, DefaultParams())
	if !errors.Is(err, ErrNoSurface) {
		t.Fatalf("New(nil) error = %v, want ErrNoSurface", err)
	}
	if e != nil {
		t.Error("New(nil) returned a partial engine")
	}
}

func TestNewRejectsBadParams(t *testing.T) {
	p := DefaultParams()
	p.LerpFactor = 0
	if _, err := New(&recorder{}, nil, p); err == nil {
		t.Error("New accepted a zero lerp factor")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	e := newTestEngine(t, &recorder{}, nil)
	e.Start()
	e.Render(16)
	e.Render(32)
	before := e.State().Particles

	e.Start()
	after := e.State().Particles
	if len(before) != len(after) {
		t.Fatalf("second Start changed population %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("second Start reseeded particle %d", i)
		}
	}
	if !e.Running() {
		t.Error("engine not running after Start")
	}
	e.Stop()
	if e.Running() {
		t.Error("engine still running after Stop")
	}
}

func TestStartSeedsParticles(t *testing.T) {
	e := newTestEngine(t, &recorder{}, nil)
	e.Start()
	if got := len(e.State().Particles); got != DefaultParams().ParticleCount {
		t.Errorf("seeded %d particles, want %d", got, DefaultParams().ParticleCount)
	}
}

func TestUpdateDoorExample(t *testing.T) {
	e := newTestEngine(t, &recorder{}, nil, WithDoor(DoorClosed, 0))
	e.Start()
	e.Update(0)
	if p := e.State().DoorProgress; math.Abs(p-0.08) > 1e-12 {
		t.Fatalf("DoorProgress after one frame = %v, want 0.08", p)
	}
	for i := 0; i < 200; i++ {
		e.Update(float64(i) * 16.7)
	}
	if p := e.State().DoorProgress; p != 1 {
		t.Errorf("DoorProgress = %v, want exactly 1", p)
	}
	if e.DoorMotion() != 0 {
		t.Errorf("DoorMotion = %v after settling", e.DoorMotion())
	}
}

func TestUpdatePhase(t *testing.T) {
	e := newTestEngine(t, &recorder{}, nil)
	e.Update(2500)
	if ph := e.State().Phase; math.Abs(ph-0.1) > 1e-9 {
		t.Errorf("Phase = %v, want 0.1", ph)
	}
}

func TestControls(t *testing.T) {
	e := newTestEngine(t, &recorder{}, nil)
	if s := e.State(); s.DoorTarget != DoorClosed || s.Direction != In {
		t.Fatalf("defaults = %v/%v, want closed/in", s.DoorTarget, s.Direction)
	}
	e.ToggleDoor()
	if e.State().DoorTarget != DoorOpen {
		t.Error("ToggleDoor did not open")
	}
	e.SetDoorTarget(DoorTarget(7))
	if e.State().DoorTarget != DoorClosed {
		t.Error("out of range target should close")
	}
	e.ToggleDirection()
	if e.State().Direction != Out {
		t.Error("ToggleDirection did not switch to out")
	}
	e.SetPulseDirection("bogus")
	if e.State().Direction != In {
		t.Error("unknown direction should fall back to in")
	}
}

func TestOnResize(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(t, rec, nil)
	e.Draw()
	if len(rec.calls) == 0 {
		t.Fatal("nothing drawn")
	}
	e.OnResize(-10, 80)
	if s := e.State(); s.Width != 0 || s.Height != 80 {
		t.Errorf("size = %vx%v, want 0x80", s.Width, s.Height)
	}
	if len(rec.calls) != 0 {
		t.Error("resize did not clear the surface")
	}
	e.Draw()
	if len(rec.calls) != 0 {
		t.Errorf("zero-width surface drew %d calls", len(rec.calls))
	}
}

func TestDrawOrder(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(t, rec, nil)
	e.Start()
	e.Render(1234)

	if len(rec.calls) == 0 || rec.calls[0].op != "fillRect" || rec.calls[0].clr != DefaultParams().Background {
		t.Fatalf("first call should fill the background, got %d calls", len(rec.calls))
	}
	rings := rec.count("strokeRoundedRect")
	if rings != 13 {
		t.Errorf("drew %d rings, want 13", rings)
	}
	if got, want := rec.count("fillCircle"), len(e.State().Particles); got != want {
		t.Errorf("drew %d particles, want %d", got, want)
	}

	// doors come last: two fills then two outlines
	n := len(rec.calls)
	tail := rec.calls[n-4:]
	ops := []string{"fillRect", "fillRect", "strokeRect", "strokeRect"}
	for i, c := range tail {
		if c.op != ops[i] {
			t.Errorf("call %d = %s, want %s", n-4+i, c.op, ops[i])
		}
	}
}

func TestParticleColourFollowsDirection(t *testing.T) {
	p := DefaultParams()
	for _, tc := range []struct {
		dir  Direction
		want [3]uint8
	}{
		{In, [3]uint8{80, 255, 255}},
		{Out, [3]uint8{255, 150, 60}},
	} {
		rec := &recorder{}
		e := newTestEngine(t, rec, nil, WithDirection(tc.dir))
		e.Start()
		e.Draw()
		for _, c := range rec.calls {
			if c.op != "fillCircle" {
				continue
			}
			if got := [3]uint8{c.clr.R, c.clr.G, c.clr.B}; got != tc.want {
				t.Errorf("%s: particle colour %v, want %v", tc.dir, got, tc.want)
			}
			if c.r < 0.5 || c.r > 1.5 {
				t.Errorf("%s: particle radius %v outside [0.5,1.5] with scale %v", tc.dir, c.r, p.ParticleScale)
			}
		}
	}
}

func TestOuterGlowRange(t *testing.T) {
	e := newTestEngine(t, &recorder{}, nil)
	for now := 0.0; now < 5000; now += 37 {
		e.Update(now)
		if g := e.OuterGlow(); g < 0 || g > 1 {
			t.Fatalf("OuterGlow at %v = %v", now, g)
		}
	}
}
