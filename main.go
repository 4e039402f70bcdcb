// red_rockit walks a character around a tile level. Build:
//
//	go build -o red_rockit .
//
// Usage:
//
//	./red_rockit [--config game.json] [--frontend window|terminal] [--map maps/level1.map] [--run[=false]]
//
// LOG_LEVEL, LOG_FORMAT and LOG_FILE configure logging.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"red-rockit/internal/game"
	"red-rockit/internal/logger"
	"red-rockit/internal/window"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath, overrides, err := game.ParseFlags(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fail(err)
	}

	cfg := game.DefaultConfig()
	if configPath != "" {
		if cfg, err = game.LoadConfig(configPath); err != nil {
			fail(err)
		}
	}
	cfg = overrides.Apply(cfg)

	// The terminal front-end draws on the tty stderr usually shares.
	var fallback io.Writer = os.Stderr
	if cfg.Frontend == game.FrontendTerminal {
		fallback = io.Discard
	}
	closeLog, err := logger.Init(fallback)
	if err != nil {
		fail(err)
	}
	defer closeLog()
	log := logger.Log

	g, err := game.New(cfg, log)
	if err != nil {
		log.WithError(err).Error("start-up failed")
		closeLog()
		fail(err)
	}

	switch cfg.Frontend {
	case game.FrontendTerminal:
		err = runTerminal(g)
	default:
		err = runWindow(g)
	}
	if err != nil {
		log.WithError(err).Error("run failed")
		closeLog()
		fail(err)
	}
}

func runTerminal(g *game.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	return game.NewTerminal(g, screen).Run()
}

func runWindow(g *game.Game) error {
	w, err := window.New(g)
	if err != nil {
		return err
	}
	return w.Run()
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
