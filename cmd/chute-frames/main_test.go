package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/chute/internal/config"
)

func TestRenderWritesFrames(t *testing.T) {
	dir := t.TempDir()
	err := render(config.Default(), options{
		dir: dir, frames: 3, fps: 30, width: 64, height: 48, seed: 5, flipEvery: 2,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for i := 0; i < 3; i++ {
		f, err := os.Open(filepath.Join(dir, "frame_0000"+string(rune('0'+i))+".png"))
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode frame %d: %v", i, err)
		}
		if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
			t.Errorf("frame %d is %dx%d", i, b.Dx(), b.Dy())
		}
	}
}

func TestRenderRejectsBadOptions(t *testing.T) {
	if err := render(config.Default(), options{dir: t.TempDir(), frames: 0, fps: 60, width: 10, height: 10}); err == nil {
		t.Error("render accepted zero frames")
	}
}
