package game

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 opaque white source for DrawTriangles.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// screenSurface adapts the frame's screen image to chute.Surface. The
// target is rebound every Draw call.
type screenSurface struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (s *screenSurface) bind(dst *ebiten.Image) { s.dst = dst }

func (s *screenSurface) Clear() {
	if s.dst != nil {
		s.dst.Clear()
	}
}

func (s *screenSurface) FillRect(x, y, w, h float64, clr color.Color) {
	if s.dst == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *screenSurface) StrokeRect(x, y, w, h, lineWidth float64, clr color.Color) {
	if s.dst == nil || w <= 0 || h <= 0 {
		return
	}
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(lineWidth), clr, false)
}

func (s *screenSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	if s.dst == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (s *screenSurface) StrokeRoundedRect(x, y, w, h, radius, lineWidth float64, clr color.Color) {
	if s.dst == nil || w <= 0 || h <= 0 {
		return
	}
	var path vector.Path
	roundedRectPath(&path, float32(x), float32(y), float32(w), float32(h), float32(radius))

	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], &vector.StrokeOptions{
		Width:    float32(lineWidth),
		LineJoin: vector.LineJoinRound,
	})

	r, g, b, a := clr.RGBA()
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(r) / 0xffff
		s.vertices[i].ColorG = float32(g) / 0xffff
		s.vertices[i].ColorB = float32(b) / 0xffff
		s.vertices[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	s.dst.DrawTriangles(s.vertices, s.indices, white(), op)
}

func roundedRectPath(p *vector.Path, x, y, w, h, r float32) {
	r = max(0, min(r, min(w, h)/2))
	x1, y1 := x+w, y+h
	p.MoveTo(x+r, y)
	p.LineTo(x1-r, y)
	p.QuadTo(x1, y, x1, y+r)
	p.LineTo(x1, y1-r)
	p.QuadTo(x1, y1, x1-r, y1)
	p.LineTo(x+r, y1)
	p.QuadTo(x, y1, x, y1-r)
	p.LineTo(x, y+r)
	p.QuadTo(x, y, x+r, y)
	p.Close()
}
