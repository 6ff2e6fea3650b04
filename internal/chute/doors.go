package chute

// Door overscan keeps the panels past the top and bottom edges.
const (
	doorOverscanY = -2
	doorOverscanH = 4
)

// Rect is an axis-aligned rectangle in surface units.
type Rect struct {
	X, Y, W, H float64
}

// DoorRects returns the left and right panels for the given progress.
// At progress 1 they meet at the centre; at 0 they sit just off-screen.
func DoorRects(w, h, progress float64) (left, right Rect) {
	half := w / 2
	offset := half * (1 - clamp01(progress))
	left = Rect{X: -offset, Y: doorOverscanY, W: half, H: h + doorOverscanH}
	right = Rect{X: half + offset, Y: doorOverscanY, W: half, H: h + doorOverscanH}
	return left, right
}

func drawDoors(dst Surface, s *State, th Theme) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}
	// resolved every frame so theme switches apply immediately
	fill := resolveColor(th, ColorSurface, DefaultSurfaceColor)
	border := resolveColor(th, ColorDoorStroke, DefaultDoorStrokeColor)

	left, right := DoorRects(s.Width, s.Height, s.DoorProgress)
	for _, d := range []Rect{left, right} {
		dst.FillRect(d.X, d.Y, d.W, d.H, fill)
	}
	for _, d := range []Rect{left, right} {
		if d.W <= 1 || d.H <= 1 {
			continue
		}
		dst.StrokeRect(d.X+0.5, d.Y+0.5, d.W-1, d.H-1, 1, border)
	}
}
