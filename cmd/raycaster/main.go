package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/logging"
	"chosenoffset.com/raycaster/internal/world/grid"
)

var CLI struct {
	Config string `help:"Config file (JSON, YAML or TOML)." short:"c" type:"path"`
	Map    string `help:"Map file; overrides the map setting. Empty uses the built-in map." short:"m" type:"path"`
	Debug  bool   `help:"Whether to enable debug logging."`

	Window struct {
	} `cmd:"" default:"1" help:"Open a window and render with ebiten."`

	Terminal struct {
		LogFile string `help:"Write logs to this file while the terminal is in use." type:"path"`
	} `cmd:"" help:"Render in the terminal with tcell."`

	ConfigCmd struct {
	} `cmd:"" name:"config" help:"Write the effective configuration to standard output as YAML."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("raycaster"),
		kong.Description("a grid raycaster with a pseudo-3D first-person view"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if err := logging.Setup(os.Stderr, "", CLI.Debug); err != nil {
		writeError(err)
	}

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		writeError(err)
	}
	if CLI.Map != "" {
		cfg.Map = CLI.Map
	}
	if err := logging.Setup(os.Stderr, cfg.LogLevel, CLI.Debug); err != nil {
		writeError(err)
	}
	if CLI.Debug {
		log.Warn().Msg("debug logging enabled")
	}

	switch ctx.Command() {
	case "window":
		err = windowCommand(cfg)
	case "terminal":
		err = terminalCommand(cfg, CLI.Terminal.LogFile)
	case "config":
		err = configCommand(cfg)
	}
	if err != nil {
		log.Error().Err(err).Str("command", ctx.Command()).Msg("command failed")
		os.Exit(1)
	}
}

// loadMap returns the configured map file, or the built-in map when none is
// set.
func loadMap(cfg *config.Config) (*grid.Grid, error) {
	if cfg.Map == "" {
		return grid.Reference(), nil
	}
	g, err := grid.Load(cfg.Map)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func configCommand(cfg *config.Config) error {
	out, err := cfg.YAML()
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
