// Command magic-wand plays an audio track and paints its loudness history as
// a noisy trace, split by a draggable playhead.
//
// Usage:
//
//	magic-wand [-config config.yaml] [-file track.mp3] [-mode linear|circular]
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/magic-wand/internal/config"
	"github.com/iburimskiy/magic-wand/internal/game"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	file := flag.String("file", "", "Audio file to play on start (wav, mp3, flac)")
	mode := flag.String("mode", "", "Layout: linear or circular (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *file != "" {
		cfg.Audio.File = *file
	}
	if *mode != "" {
		cfg.Visual.Mode = *mode
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid settings", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.LogLevel()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	g, err := game.New(cfg, log)
	if err != nil {
		log.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	if cfg.Audio.File != "" {
		if err := g.Load(cfg.Audio.File); err != nil {
			log.Error("failed to open audio file", "path", cfg.Audio.File, "error", err)
		}
	}

	ebiten.SetWindowSize(cfg.Canvas.Width, cfg.WindowHeight())
	ebiten.SetWindowTitle("Magic Wand - Drag to move the border, Space: Pause, M: Mode, S: Stop, Esc/Q: Quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game stopped", "error", err)
		os.Exit(1)
	}
}
