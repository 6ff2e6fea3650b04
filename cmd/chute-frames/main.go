// Command chute-frames renders the effect offline to a numbered PNG sequence.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/iburimskiy/chute/internal/chute"
	"github.com/iburimskiy/chute/internal/config"
	"github.com/iburimskiy/chute/internal/raster"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	outDir := flag.String("out", "frames", "output directory")
	frames := flag.Int("frames", 180, "number of frames")
	fps := flag.Float64("fps", 60, "frames per second of the timestamps")
	width := flag.Int("width", 480, "frame width")
	height := flag.Int("height", 270, "frame height")
	seed := flag.Int64("seed", 1, "particle random seed")
	flipEvery := flag.Int("flip", 0, "reverse the pulse every N frames (0 = never)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Frames] %v", err)
	}
	if err := render(cfg, options{
		dir:       *outDir,
		frames:    *frames,
		fps:       *fps,
		width:     *width,
		height:    *height,
		seed:      *seed,
		flipEvery: *flipEvery,
	}); err != nil {
		log.Fatalf("[Frames] %v", err)
	}
}

type options struct {
	dir           string
	frames        int
	fps           float64
	width, height int
	seed          int64
	flipEvery     int
}

func render(cfg *config.Config, o options) error {
	if o.frames <= 0 || o.fps <= 0 || o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("frames, fps and size must be positive")
	}
	params, err := cfg.EngineParams()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(o.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	surface := raster.New(o.width, o.height)
	opts := append(cfg.EngineOptions(),
		chute.WithSize(float64(o.width), float64(o.height)),
		chute.WithRand(rand.New(rand.NewSource(o.seed))),
	)
	engine, err := chute.New(surface, cfg.ThemeProvider(), params, opts...)
	if err != nil {
		return err
	}
	engine.Start()
	if cfg.OpenOnStart() {
		engine.SetDoorTarget(chute.DoorOpen)
	}

	for i := 0; i < o.frames; i++ {
		if o.flipEvery > 0 && i > 0 && i%o.flipEvery == 0 {
			engine.ToggleDirection()
		}
		engine.Render(float64(i) * 1000 / o.fps)
		if err := writePNG(filepath.Join(o.dir, fmt.Sprintf("frame_%05d.png", i)), surface); err != nil {
			return err
		}
	}
	engine.Stop()
	log.Printf("[Frames] wrote %d frames to %s", o.frames, o.dir)
	return nil
}

func writePNG(path string, s *raster.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
