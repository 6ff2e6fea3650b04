// Package term runs the chute in a terminal using half-block cells.
package term

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/chute/internal/chute"
	"github.com/iburimskiy/chute/internal/config"
	"github.com/iburimskiy/chute/internal/control"
	"github.com/iburimskiy/chute/internal/raster"
	"github.com/iburimskiy/chute/internal/sound"
)

// halfBlock paints the upper pixel as foreground and the lower as background.
const halfBlock = '▀'

// Terminal hosts the engine on a tcell screen. Each cell shows two
// vertically stacked surface pixels.
type Terminal struct {
	screen  tcell.Screen
	surface *raster.Surface
	engine  *chute.Engine
	targets control.Targets
	fps     int
}

// New initialises the screen and the engine. player may be nil.
func New(cfg *config.Config, player *sound.Player) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	t, err := newTerminal(screen, cfg, player)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return t, nil
}

func newTerminal(screen tcell.Screen, cfg *config.Config, player *sound.Player) (*Terminal, error) {
	params, err := cfg.EngineParams()
	if err != nil {
		return nil, err
	}
	// terminal pixels are coarse; keep the tunnel readable
	params.CornerRadius = params.CornerRadius / 4
	params.RingLineWidth = 1
	params.MinGap = 2
	params.ParticleScale = 1

	cols, rows := screen.Size()
	surface := raster.New(cols, rows*2)
	th := cfg.ThemeProvider()

	opts := append(cfg.EngineOptions(), chute.WithSize(float64(cols), float64(rows*2)))
	engine, err := chute.New(surface, th, params, opts...)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	fps := cfg.Terminal.FPS
	if fps <= 0 {
		fps = config.TerminalFPS
	}
	return &Terminal{
		screen:  screen,
		surface: surface,
		engine:  engine,
		targets: control.Targets{Engine: engine, Theme: th, Sound: player},
		fps:     fps,
	}, nil
}

// Run drives the engine from a ticker until the user quits.
func (t *Terminal) Run(cfg *config.Config) {
	defer t.screen.Fini()

	t.engine.Start()
	if cfg.OpenOnStart() {
		t.engine.SetDoorTarget(chute.DoorOpen)
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(t.fps))
	defer ticker.Stop()
	start := time.Now()

	log.Printf("[Term] running at %d fps", t.fps)
	for {
		select {
		case ev, ok := <-events:
			if !ok || !t.handleEvent(ev) {
				t.engine.Stop()
				return
			}
		case now := <-ticker.C:
			t.engine.Render(float64(now.Sub(start)) / float64(time.Millisecond))
			t.targets.Sound.Update(t.engine.OuterGlow(), t.engine.DoorMotion())
			blit(t.screen, t.surface.Image())
			t.screen.Show()
		}
	}
}

// handleEvent reports false when the loop should exit.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return !t.targets.Apply(control.FromRune(ev.Rune()))
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.resize(cols, rows)
	}
	return true
}

func (t *Terminal) resize(cols, rows int) {
	t.surface.Resize(cols, rows*2)
	t.engine.OnResize(float64(cols), float64(rows*2))
	t.screen.Clear()
}

// cellSetter is the part of tcell.Screen blit writes to.
type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

func blit(dst cellSetter, img *image.RGBA) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y += 2 {
		for x := 0; x < b.Dx(); x++ {
			top, bottom := cellColors(img, x, y)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			dst.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
}

// cellColors returns the terminal colours of the pixel pair starting at row y.
func cellColors(img *image.RGBA, x, y int) (top, bottom tcell.Color) {
	return toColor(img.RGBAAt(x, y)), toColor(img.RGBAAt(x, y+1))
}

// toColor maps a pixel to a terminal colour. Premultiplied channels already
// equal the pixel composited over black, which is what a transparent pixel
// shows as in the terminal.
func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
