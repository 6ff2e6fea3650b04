// Package control maps user input to engine, theme and sound actions.
package control

import (
	"log"
	"unicode"

	"github.com/iburimskiy/chute/internal/chute"
	"github.com/iburimskiy/chute/internal/sound"
	"github.com/iburimskiy/chute/internal/theme"
)

// Action is a user command.
type Action int

const (
	None Action = iota
	ToggleDoors
	ToggleDirection
	ToggleTheme
	ToggleSound
	Quit
)

func (a Action) String() string {
	switch a {
	case ToggleDoors:
		return "toggle-doors"
	case ToggleDirection:
		return "toggle-direction"
	case ToggleTheme:
		return "toggle-theme"
	case ToggleSound:
		return "toggle-sound"
	case Quit:
		return "quit"
	}
	return "none"
}

// FromRune maps a typed character to an action.
func FromRune(r rune) Action {
	switch unicode.ToLower(r) {
	case ' ':
		return ToggleDoors
	case 'd':
		return ToggleDirection
	case 't':
		return ToggleTheme
	case 'm':
		return ToggleSound
	case 'q':
		return Quit
	}
	return None
}

// Targets are the components actions are applied to. Theme and Sound may
// be nil.
type Targets struct {
	Engine *chute.Engine
	Theme  *theme.Provider
	Sound  *sound.Player
}

// Apply performs a and reports whether the host should quit.
func (t Targets) Apply(a Action) bool {
	switch a {
	case ToggleDoors:
		t.Engine.ToggleDoor()
	case ToggleDirection:
		t.Engine.ToggleDirection()
	case ToggleTheme:
		if t.Theme != nil {
			t.Theme.Toggle()
		}
	case ToggleSound:
		t.Sound.ToggleMute()
	case Quit:
		return true
	default:
		return false
	}
	log.Printf("[Control] %s", a)
	return false
}
