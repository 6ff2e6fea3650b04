package chute

import (
	"errors"
	"image/color"
)

// ErrNoSurface is returned by New when no drawing surface could be acquired.
var ErrNoSurface = errors.New("chute: drawing surface unavailable")

// Surface is the 2D drawing context the engine renders into.
// Coordinates are in surface units with the origin at the top-left corner.
// Colours carry straight (non-premultiplied) alpha.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, lineWidth float64, clr color.Color)
	StrokeRoundedRect(x, y, w, h, radius, lineWidth float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
}

// Theme resolves named styling colours. An empty result means unresolved.
type Theme interface {
	Lookup(name string) string
}

// Theme colour names read by the door compositor.
const (
	ColorSurface    = "surface"
	ColorDoorStroke = "door-stroke"
)

// Fallbacks used when the theme cannot resolve a colour.
const (
	DefaultSurfaceColor    = "#e7edf4"
	DefaultDoorStrokeColor = "#b6bcc4"
)
