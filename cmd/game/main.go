package main

import (
	"flag"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/tank-siege/internal/app"
	"github.com/Garsondee/tank-siege/internal/config"
	"github.com/Garsondee/tank-siege/internal/game"
	"github.com/Garsondee/tank-siege/internal/logger"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logger.Log.Fatal(err)
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatal(err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	var sprites fs.FS
	if cfg.SpriteDir != "" {
		sprites = os.DirFS(cfg.SpriteDir)
	}
	seed := cfg.ResolvedSeed()
	logger.Log.WithField("seed", seed).Debug("starting")

	w := int(float64(game.CanvasSize) * cfg.Scale)
	h := int(float64(game.CanvasSize+app.HUDHeight) * cfg.Scale)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(game.TicksPerSecond)
	if err := ebiten.RunGame(app.New(sprites, seed, logger.Log)); err != nil {
		logger.Log.Fatal(err)
	}
}
