package main

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/render"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/internal/ui/minimap"
)

func windowCommand(cfg *config.Config) error {
	g, err := loadMap(cfg)
	if err != nil {
		return err
	}

	session, err := game.NewSession(cfg, g)
	if err != nil {
		return err
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()
	palette := render.DefaultPalette()

	gm := &game.Game{
		Session:  session,
		Renderer: renderer,
		InputMgr: inputMgr,
		Controls: game.NewControls(cfg.Input.TurnStep, cfg.Input.MouseSensitivity),
		Palette:  palette,
		ShowPose: zerolog.GlobalLevel() <= zerolog.DebugLevel,
	}
	if cfg.Minimap.Enabled {
		gm.Minimap = minimap.New(g, cfg.CellSize, cfg.Minimap.Scale, palette)
		gm.ShowMinimap = true
	}

	engine.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	engine.SetWindowTitle(cfg.Screen.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.TPS())
	engine.SetCursorCaptured(cfg.Input.CaptureCursor)

	log.Info().
		Str("map", g.Name()).
		Int("width", g.Width()).
		Int("height", g.Height()).
		Dur("tick", cfg.Tick).
		Int("tps", cfg.TPS()).
		Msg("starting window")

	if err := engine.RunGame(gm); err != nil && !errors.Is(err, render.ErrTerminate) {
		return err
	}
	return nil
}
