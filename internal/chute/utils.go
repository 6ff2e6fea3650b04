package chute

import (
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// wrap01 reduces v modulo 1 into [0, 1). Non-finite input yields 0.
func wrap01(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v -= math.Floor(v)
	// tiny negative inputs round up to exactly 1
	if v >= 1 || v < 0 {
		return 0
	}
	return v
}

// withAlpha returns c with its alpha replaced by a (clamped to [0, 1]).
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(a) * 255))
	return c
}

// ParseHex parses "#rrggbb" (or "#rgb") into an opaque colour.
func ParseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// resolveColor reads name from th, falling back when unresolved or unparsable.
func resolveColor(th Theme, name, fallback string) color.NRGBA {
	if th != nil {
		if v := th.Lookup(name); v != "" {
			if c, err := ParseHex(v); err == nil {
				return c
			}
		}
	}
	c, _ := ParseHex(fallback)
	return c
}
