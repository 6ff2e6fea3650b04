package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/chute/internal/config"
	"github.com/iburimskiy/chute/internal/game"
	"github.com/iburimskiy/chute/internal/sound"
	"github.com/iburimskiy/chute/internal/term"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	terminal := flag.Bool("term", false, "render in the terminal instead of a window")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	if err := setupLog(*logPath, *terminal); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(*terminal, err)
	}

	var player *sound.Player
	if cfg.Sound.Enabled {
		player, err = sound.Start(cfg.Sound.Frequency, cfg.Sound.Volume)
		if err != nil {
			// the effect runs fine without sound
			log.Printf("[Sound] disabled: %v", err)
		}
	}
	defer player.Close()

	if *terminal {
		t, err := term.New(cfg, player)
		if err != nil {
			fail(true, err)
		}
		t.Run(cfg)
		return
	}

	if err := game.Run(cfg, player); err != nil {
		fail(false, err)
	}
}

// setupLog keeps log output off the terminal canvas unless a file is given.
func setupLog(path string, terminal bool) error {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		log.SetOutput(f)
		return nil
	}
	if terminal {
		log.SetOutput(io.Discard)
	}
	return nil
}

func fail(terminal bool, err error) {
	log.Printf("[Chute] fatal: %v", err)
	if !terminal {
		_ = zenity.Error(err.Error(), zenity.Title("Chute"), zenity.ErrorIcon)
	}
	fmt.Fprintf(os.Stderr, "chute: %v\n", err)
	os.Exit(1)
}
