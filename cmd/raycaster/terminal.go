package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/projection"
	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/logging"
	"chosenoffset.com/raycaster/internal/render/terminal"
)

// terminalProjection returns the projection for a terminal rows tall. The
// configured scale is tuned for the window height; a terminal has far fewer
// rows, so it is scaled down to keep the same view.
func terminalProjection(cfg *config.Config, rows int) projection.Settings {
	s := cfg.Projection()
	s.Scale = cfg.ProjectionScale * float64(rows) / float64(cfg.Screen.Height)
	return s
}

func terminalCommand(cfg *config.Config, logFile string) error {
	g, err := loadMap(cfg)
	if err != nil {
		return err
	}

	// Logs would draw over the screen, so they go to a file or nowhere.
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", logFile, err)
		}
		defer f.Close()
		out = f
	}
	if err := logging.Setup(out, cfg.LogLevel, CLI.Debug); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to start tcell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init tcell screen: %w", err)
	}
	defer screen.Fini()

	presenter := terminal.NewPresenter(screen)
	cols, rows := presenter.Size()

	tcfg := *cfg
	tcfg.Screen.Width, tcfg.Screen.Height = cols, rows
	tcfg.ProjectionScale = terminalProjection(cfg, rows).Scale

	session, err := game.NewSession(&tcfg, g)
	if err != nil {
		return err
	}
	presenter.OnResize = func(w, h int) {
		session.Resize(w, h)
		session.SetProjection(terminalProjection(cfg, h))
		log.Debug().Int("cols", w).Int("rows", h).Msg("terminal resized")
	}
	presenter.ShowPose = CLI.Debug

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	inputs := terminal.Poll(ctx, screen, cfg.Input.TurnStep)

	log.Info().
		Str("map", g.Name()).
		Int("cols", cols).
		Int("rows", rows).
		Dur("tick", cfg.Tick).
		Msg("starting terminal")

	return game.Run(ctx, session, cfg.Tick, inputs, presenter.Present)
}
