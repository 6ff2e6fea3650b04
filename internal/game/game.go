package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/chute/internal/chute"
	"github.com/iburimskiy/chute/internal/config"
	"github.com/iburimskiy/chute/internal/control"
	"github.com/iburimskiy/chute/internal/sound"
	"github.com/iburimskiy/chute/internal/theme"
)

var keyActions = map[ebiten.Key]control.Action{
	ebiten.KeySpace:  control.ToggleDoors,
	ebiten.KeyD:      control.ToggleDirection,
	ebiten.KeyT:      control.ToggleTheme,
	ebiten.KeyM:      control.ToggleSound,
	ebiten.KeyQ:      control.Quit,
	ebiten.KeyEscape: control.Quit,
}

// Game hosts the engine in an ebiten window. ebiten's loop is the frame
// scheduler: Update advances the engine and Draw renders it, never
// concurrently.
type Game struct {
	engine  *chute.Engine
	surface *screenSurface
	targets control.Targets

	start time.Time
	now   func() time.Time

	width, height int

	// input
	justPressed func(ebiten.Key) bool
}

// New builds the engine from cfg. player may be nil.
func New(cfg *config.Config, player *sound.Player) (*Game, error) {
	params, err := cfg.EngineParams()
	if err != nil {
		return nil, err
	}
	th := cfg.ThemeProvider()
	surface := &screenSurface{}

	opts := append(cfg.EngineOptions(), chute.WithSize(float64(cfg.Window.Width), float64(cfg.Window.Height)))
	engine, err := chute.New(surface, th, params, opts...)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	g := &Game{
		engine:      engine,
		surface:     surface,
		targets:     control.Targets{Engine: engine, Theme: th, Sound: player},
		now:         time.Now,
		width:       cfg.Window.Width,
		height:      cfg.Window.Height,
		justPressed: inpututil.IsKeyJustPressed,
	}
	g.start = g.now()
	engine.Start()
	if cfg.OpenOnStart() {
		engine.SetDoorTarget(chute.DoorOpen)
	}
	return g, nil
}

// Engine exposes the hosted engine.
func (g *Game) Engine() *chute.Engine { return g.engine }

// Theme exposes the hosted theme provider.
func (g *Game) Theme() *theme.Provider { return g.targets.Theme }

func (g *Game) Update() error {
	for key, action := range keyActions {
		if g.justPressed(key) && g.targets.Apply(action) {
			g.engine.Stop()
			return ebiten.Termination
		}
	}

	if !g.engine.Running() {
		return nil
	}
	g.engine.Update(g.elapsedMs())
	g.targets.Sound.Update(g.engine.OuterGlow(), g.engine.DoorMotion())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.bind(screen)
	g.engine.Draw()
}

// Layout tracks the window size so the surface always matches it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.engine.OnResize(float64(outsideWidth), float64(outsideHeight))
	}
	return g.width, g.height
}

func (g *Game) elapsedMs() float64 {
	return float64(g.now().Sub(g.start)) / float64(time.Millisecond)
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, player *sound.Player) error {
	g, err := New(cfg, player)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	log.Printf("[Game] window %dx%d at %d tps", cfg.Window.Width, cfg.Window.Height, cfg.Window.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
