// Package raster is a software chute.Surface over an *image.RGBA.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// circleSegments is the number of quadratic arcs approximating a circle.
const circleSegments = 16

// Surface draws into an RGBA image. Paths are rasterised with
// golang.org/x/image/vector; axis-aligned fills go straight to image/draw.
type Surface struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

// New returns a w x h surface.
func New(w, h int) *Surface {
	s := &Surface{}
	s.Resize(w, h)
	return s
}

// Resize replaces the backing image.
func (s *Surface) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	s.ras = vector.NewRasterizer(w, h)
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA { return s.img }

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(clr), image.Point{}, draw.Over)
}

func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, clr color.Color) {
	if w <= 0 || h <= 0 || lineWidth <= 0 {
		return
	}
	hw := lineWidth / 2
	s.FillRect(x-hw, y-hw, w+lineWidth, lineWidth, clr)
	s.FillRect(x-hw, y+h-hw, w+lineWidth, lineWidth, clr)
	s.FillRect(x-hw, y+hw, lineWidth, h-lineWidth, clr)
	s.FillRect(x+w-hw, y+hw, lineWidth, h-lineWidth, clr)
}

// StrokeRoundedRect strokes centred on the outline: the band between the
// outline grown and shrunk by half the line width.
func (s *Surface) StrokeRoundedRect(x, y, w, h, radius, lineWidth float64, clr color.Color) {
	if w <= 0 || h <= 0 || lineWidth <= 0 {
		return
	}
	hw := lineWidth / 2
	s.begin()
	s.roundedRect(x-hw, y-hw, w+lineWidth, h+lineWidth, radius+hw, false)
	if w > lineWidth && h > lineWidth {
		s.roundedRect(x+hw, y+hw, w-lineWidth, h-lineWidth, math.Max(0, radius-hw), true)
	}
	s.fill(clr)
}

func (s *Surface) FillCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	s.begin()
	step := 2 * math.Pi / circleSegments
	// control points sit on the tangent intersection of each segment
	ctrl := r / math.Cos(step/2)
	s.moveTo(cx+r, cy)
	for i := 0; i < circleSegments; i++ {
		a0 := float64(i) * step
		a1 := a0 + step
		am := a0 + step/2
		s.ras.QuadTo(
			s.clampX(cx+ctrl*math.Cos(am)), s.clampY(cy+ctrl*math.Sin(am)),
			s.clampX(cx+r*math.Cos(a1)), s.clampY(cy+r*math.Sin(a1)),
		)
	}
	s.ras.ClosePath()
	s.fill(clr)
}

func (s *Surface) begin() {
	b := s.img.Bounds()
	s.ras.Reset(b.Dx(), b.Dy())
}

func (s *Surface) fill(clr color.Color) {
	s.ras.Draw(s.img, s.img.Bounds(), image.NewUniform(clr), image.Point{})
}

// roundedRect adds a closed rounded rectangle to the current path. reverse
// winds it the other way so it cuts a hole in an enclosing path.
func (s *Surface) roundedRect(x, y, w, h, r float64, reverse bool) {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	x1, y1 := x+w, y+h

	type pt struct{ x, y float64 }
	// corner (control point) followed by the two points it joins
	corners := []struct{ in, ctrl, out pt }{
		{pt{x1 - r, y}, pt{x1, y}, pt{x1, y + r}},
		{pt{x1, y1 - r}, pt{x1, y1}, pt{x1 - r, y1}},
		{pt{x + r, y1}, pt{x, y1}, pt{x, y1 - r}},
		{pt{x, y + r}, pt{x, y}, pt{x + r, y}},
	}
	if reverse {
		for i, j := 0, len(corners)-1; i < j; i, j = i+1, j-1 {
			corners[i], corners[j] = corners[j], corners[i]
		}
		for i := range corners {
			corners[i].in, corners[i].out = corners[i].out, corners[i].in
		}
	}

	start := corners[len(corners)-1].out
	s.moveTo(start.x, start.y)
	for _, c := range corners {
		s.ras.LineTo(s.clampX(c.in.x), s.clampY(c.in.y))
		s.ras.QuadTo(s.clampX(c.ctrl.x), s.clampY(c.ctrl.y), s.clampX(c.out.x), s.clampY(c.out.y))
	}
	s.ras.ClosePath()
}

func (s *Surface) moveTo(x, y float64) {
	s.ras.MoveTo(s.clampX(x), s.clampY(y))
}

func (s *Surface) clampX(v float64) float32 {
	return float32(math.Max(0, math.Min(v, float64(s.img.Bounds().Dx()))))
}

func (s *Surface) clampY(v float64) float32 {
	return float32(math.Max(0, math.Min(v, float64(s.img.Bounds().Dy()))))
}
