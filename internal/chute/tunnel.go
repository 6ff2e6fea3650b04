package chute

import "math"

// ringEdge is the inset of the outermost ring.
const ringEdge = 2

// TunnelPhase maps a millisecond timestamp to the repeating pulse phase in [0, 1).
func TunnelPhase(nowMs, speed float64) float64 {
	return wrap01(nowMs / 1000 * speed)
}

// PhaseOffset is the phase lag of ring i, which makes the pulse travel across rings.
func PhaseOffset(i, rings int, dir Direction) float64 {
	n := normalizedPos(i, rings)
	off := float64(i) * 0.12
	if dir == Out {
		return off * (1 + (1-n)*0.8)
	}
	return off * (1 + n*0.8)
}

// LocalPhase is ring i's position in the pulse cycle, in [0, 1).
func LocalPhase(phase float64, i, rings int, dir Direction) float64 {
	off := PhaseOffset(i, rings, dir)
	if dir == Out {
		return wrap01(phase + off)
	}
	return wrap01(1 - phase + off)
}

// Glow is the rectified sine pulse for a local phase, in [0, 1].
func Glow(localPhase float64) float64 {
	return clamp01(math.Sin(localPhase * 2 * math.Pi))
}

func normalizedPos(i, rings int) float64 {
	if rings < 2 {
		return 0
	}
	return float64(i) / float64(rings-1)
}

// Ring is one stroked rounded rectangle of the tunnel.
type Ring struct {
	Index      int
	Inset      float64
	X, Y, W, H float64
	Glow       float64
	Alpha      float64
}

// RingGap is the spacing between consecutive ring insets for a w x h surface.
func RingGap(w, h float64, p Params) float64 {
	base := float64(p.BaseRings)
	baseGap := math.Max(6, math.Min(w, h)/(base*1.4))
	desiredMaxInset := (base-1)*baseGap + ringEdge
	return math.Max(p.MinGap, (desiredMaxInset-ringEdge)/float64(p.RingCount-1))
}

// RingLayout returns the visible rings for the given phase, outermost first.
// Rings faded out toward the centre and rings collapsed by their inset are
// omitted.
func RingLayout(w, h, phase float64, dir Direction, p Params) []Ring {
	if w <= 0 || h <= 0 || p.RingCount < 2 {
		return nil
	}
	gap := RingGap(w, h, p)
	rings := make([]Ring, 0, p.RingCount)
	for i := 0; i < p.RingCount; i++ {
		inset := float64(i)*gap + ringEdge
		rw := math.Max(0, w-inset*2)
		rh := math.Max(0, h-inset*2)
		if rw <= 0 || rh <= 0 {
			continue
		}

		fade := math.Max(0, 1-normalizedPos(i, p.RingCount)*1.5)
		if fade <= 0 {
			continue
		}

		glow := Glow(LocalPhase(phase, i, p.RingCount, dir))
		rings = append(rings, Ring{
			Index: i,
			Inset: inset,
			X:     inset,
			Y:     inset,
			W:     rw,
			H:     rh,
			Glow:  glow,
			Alpha: clamp01(p.OffAlpha + (fade-p.OffAlpha)*glow),
		})
	}
	return rings
}

func drawTunnel(dst Surface, s *State, p Params) {
	dst.FillRect(0, 0, s.Width, s.Height, p.Background)
	for _, r := range RingLayout(s.Width, s.Height, s.Phase, s.Direction, p) {
		radius := math.Max(0, math.Min(p.CornerRadius, math.Min(r.W, r.H)/2))
		dst.StrokeRoundedRect(r.X, r.Y, r.W, r.H, radius, p.RingLineWidth, withAlpha(p.Glow, r.Alpha))
	}
}
