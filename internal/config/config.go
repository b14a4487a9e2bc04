// Package config provides the tunable constants of the renderer.
// Values come from defaults, an optional config file and RAYCASTER_*
// environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/core/projection"
)

// EnvPrefix prefixes every environment override, e.g. RAYCASTER_TICK=16ms.
const EnvPrefix = "RAYCASTER"

// Config holds every tunable of a session.
type Config struct {
	LogLevel string `mapstructure:"logLevel"`

	// Tick is the period of the frame driver.
	Tick time.Duration `mapstructure:"tick"`

	// CellSize is the world size of one map cell.
	CellSize float64 `mapstructure:"cellSize"`

	// FOV is the field of view in degrees.
	FOV float64 `mapstructure:"fov"`

	// WallSize and ProjectionScale shape the wall height:
	// (CellSize * WallSize / distance) * ProjectionScale.
	WallSize        float64 `mapstructure:"wallSize"`
	ProjectionScale float64 `mapstructure:"projectionScale"`

	// Map is the path of a map file. Empty selects the built-in map.
	Map string `mapstructure:"map"`

	Screen  ScreenConfig  `mapstructure:"screen"`
	Player  PlayerConfig  `mapstructure:"player"`
	Minimap MinimapConfig `mapstructure:"minimap"`
	Input   InputConfig   `mapstructure:"input"`
}

// ScreenConfig sizes the window.
type ScreenConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// PlayerConfig is the starting pose. Angle is in degrees.
type PlayerConfig struct {
	X     float64 `mapstructure:"x"`
	Y     float64 `mapstructure:"y"`
	Angle float64 `mapstructure:"angle"`
}

// MinimapConfig controls the overlay.
type MinimapConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Scale   float64 `mapstructure:"scale"`
}

// InputConfig tunes look controls.
type InputConfig struct {
	// TurnStep is the look delta in degrees applied per tick by the turn keys.
	TurnStep float64 `mapstructure:"turnStep"`
	// MouseSensitivity multiplies horizontal pointer motion, in degrees per pixel.
	MouseSensitivity float64 `mapstructure:"mouseSensitivity"`
	// CaptureCursor locks the pointer to the window in window mode.
	CaptureCursor bool `mapstructure:"captureCursor"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("tick", "30ms")
	v.SetDefault("cellSize", 32.0)
	v.SetDefault("fov", 60.0)
	v.SetDefault("wallSize", 5.0)
	v.SetDefault("projectionScale", 150.0)
	v.SetDefault("map", "")

	v.SetDefault("screen.width", 1280)
	v.SetDefault("screen.height", 800)
	v.SetDefault("screen.title", "Raycaster")

	v.SetDefault("player.x", 40.0)
	v.SetDefault("player.y", 40.0)
	v.SetDefault("player.angle", 0.0)

	v.SetDefault("minimap.enabled", true)
	v.SetDefault("minimap.scale", 0.25)

	v.SetDefault("input.turnStep", 3.0)
	v.SetDefault("input.mouseSensitivity", 1.0)
	v.SetDefault("input.captureCursor", true)
}

// Default returns the configuration with no file and no environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		// The defaults are constants; decoding them cannot fail.
		panic(err)
	}
	return cfg
}

// Load reads the config file at path, which may be JSON, YAML or TOML, on top
// of the defaults. An empty path, or a file that does not exist, yields the
// defaults plus environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
			log.Warn().Str("path", path).Msg("config file not found, using defaults")
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that every constant is usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive, got %s", c.Tick))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cellSize must be positive, got %v", c.CellSize))
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		errs = append(errs, fmt.Errorf("fov must be within (0, 180) degrees, got %v", c.FOV))
	}
	if c.WallSize <= 0 {
		errs = append(errs, fmt.Errorf("wallSize must be positive, got %v", c.WallSize))
	}
	if c.ProjectionScale <= 0 {
		errs = append(errs, fmt.Errorf("projectionScale must be positive, got %v", c.ProjectionScale))
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid screen size %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Minimap.Enabled && c.Minimap.Scale <= 0 {
		errs = append(errs, fmt.Errorf("minimap.scale must be positive, got %v", c.Minimap.Scale))
	}
	return errors.Join(errs...)
}

// Projection returns the projection constants, with the FOV in radians.
func (c *Config) Projection() projection.Settings {
	return projection.Settings{
		FOV:      geometry.ToRadians(c.FOV),
		WallSize: c.WallSize,
		Scale:    c.ProjectionScale,
	}
}

// TPS returns the ticks per second matching the tick period, at least 1.
func (c *Config) TPS() int {
	return max(1, int(math.Round(float64(time.Second)/float64(c.Tick))))
}

// Settings returns the configuration as a nested map using the config file
// key names.
func (c *Config) Settings() map[string]any {
	return map[string]any{
		"logLevel":        c.LogLevel,
		"tick":            c.Tick.String(),
		"cellSize":        c.CellSize,
		"fov":             c.FOV,
		"wallSize":        c.WallSize,
		"projectionScale": c.ProjectionScale,
		"map":             c.Map,
		"screen": map[string]any{
			"width":  c.Screen.Width,
			"height": c.Screen.Height,
			"title":  c.Screen.Title,
		},
		"player": map[string]any{
			"x":     c.Player.X,
			"y":     c.Player.Y,
			"angle": c.Player.Angle,
		},
		"minimap": map[string]any{
			"enabled": c.Minimap.Enabled,
			"scale":   c.Minimap.Scale,
		},
		"input": map[string]any{
			"turnStep":         c.Input.TurnStep,
			"mouseSensitivity": c.Input.MouseSensitivity,
			"captureCursor":    c.Input.CaptureCursor,
		},
	}
}

// YAML renders the configuration as a YAML config file.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c.Settings())
}
