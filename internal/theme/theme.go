// Package theme provides the light and dark palettes the door compositor
// reads each frame.
package theme

import (
	"fmt"

	"github.com/iburimskiy/chute/internal/chute"
)

// Mode selects a palette.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode accepts "light" or "dark".
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Light, Dark:
		return m, nil
	}
	return "", fmt.Errorf("unknown theme mode %q", s)
}

// Palette maps colour names to hex strings.
type Palette map[string]string

// DefaultLight is the stock light palette.
func DefaultLight() Palette {
	return Palette{
		chute.ColorSurface:    chute.DefaultSurfaceColor,
		chute.ColorDoorStroke: chute.DefaultDoorStrokeColor,
	}
}

// DefaultDark is the stock dark palette.
func DefaultDark() Palette {
	return Palette{
		chute.ColorSurface:    "#161b22",
		chute.ColorDoorStroke: "#30363d",
	}
}

// Provider is a switchable theme. It implements chute.Theme.
type Provider struct {
	mode     Mode
	palettes map[Mode]Palette
}

// New returns a provider starting in mode with the given palettes.
// A nil palette falls back to the stock one for that mode.
func New(mode Mode, light, dark Palette) *Provider {
	if light == nil {
		light = DefaultLight()
	}
	if dark == nil {
		dark = DefaultDark()
	}
	if mode != Dark {
		mode = Light
	}
	return &Provider{
		mode:     mode,
		palettes: map[Mode]Palette{Light: light, Dark: dark},
	}
}

// Mode returns the active mode.
func (p *Provider) Mode() Mode { return p.mode }

// SetMode switches the active palette.
func (p *Provider) SetMode(m Mode) {
	if m != Dark {
		m = Light
	}
	p.mode = m
}

// Toggle flips between light and dark.
func (p *Provider) Toggle() {
	if p.mode == Dark {
		p.mode = Light
		return
	}
	p.mode = Dark
}

// Lookup returns the active palette's colour for name, or "" if unset.
func (p *Provider) Lookup(name string) string {
	return p.palettes[p.mode][name]
}
