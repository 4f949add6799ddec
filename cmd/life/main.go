//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"adaptive-life/internal/app"
	"adaptive-life/internal/board"
	"adaptive-life/internal/engine"
	"adaptive-life/internal/loader"
	"adaptive-life/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel})
	if err != nil {
		log.Fatal(err)
	}

	engCfg, err := cfg.EngineConfig()
	if err != nil {
		log.Fatal(err)
	}

	var seed []board.Coord
	title := "adaptive-life"
	if cfg.Pattern != "" {
		p, err := loader.ParseFile(cfg.Pattern)
		if err != nil {
			log.Fatal(err)
		}
		seed = p.Centered()
		title += " - " + cfg.Pattern
	}

	eng := engine.New(engCfg, engine.WithLogger(logger))
	game := app.New(eng, seed, cfg, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
