package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/tank-siege/internal/config"
	"github.com/Garsondee/tank-siege/internal/logger"
	"github.com/Garsondee/tank-siege/internal/terminal"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logger.Log.Fatal(err)
	}
	cfg.BindFlags(flag.CommandLine)
	logFile := flag.String("log-file", "", "write logs here (the terminal is taken by the game)")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatal(err)
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if *logFile != "" {
		f, err := logger.ToFile(*logFile)
		if err != nil {
			logger.Log.Fatal(err)
		}
		defer f.Close()
	} else {
		logger.Discard()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		logger.Log.Fatal(err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := terminal.NewRunner(screen, cfg.ResolvedSeed(), logger.Log)
	if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.WithError(err).Error("terminal session failed")
	}
	logger.Log.WithField("result", r.World().Session().Result().Key()).Info("session over")
}
