package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Millisecond, cfg.Tick)
	assert.Equal(t, 32.0, cfg.CellSize)
	assert.Equal(t, 60.0, cfg.FOV)
	assert.Equal(t, 5.0, cfg.WallSize)
	assert.Equal(t, 150.0, cfg.ProjectionScale)
	assert.Equal(t, "", cfg.Map)
	assert.Equal(t, 1280, cfg.Screen.Width)
	assert.Equal(t, 800, cfg.Screen.Height)
	assert.Equal(t, 40.0, cfg.Player.X)
	assert.Equal(t, 40.0, cfg.Player.Y)
	assert.Equal(t, 0.0, cfg.Player.Angle)
	assert.True(t, cfg.Minimap.Enabled)
	assert.Equal(t, 0.25, cfg.Minimap.Scale)
	assert.Equal(t, 3.0, cfg.Input.TurnStep)
	assert.Equal(t, 1.0, cfg.Input.MouseSensitivity)
	assert.True(t, cfg.Input.CaptureCursor)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raycaster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tick: 16ms
fov: 90
cellSize: 64
map: maps/hall.yaml
screen:
  width: 640
player:
  angle: 45
minimap:
  enabled: false
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16*time.Millisecond, cfg.Tick)
	assert.Equal(t, 90.0, cfg.FOV)
	assert.Equal(t, 64.0, cfg.CellSize)
	assert.Equal(t, "maps/hall.yaml", cfg.Map)
	assert.Equal(t, 640, cfg.Screen.Width)
	assert.Equal(t, 800, cfg.Screen.Height, "unset keys keep defaults")
	assert.Equal(t, 45.0, cfg.Player.Angle)
	assert.False(t, cfg.Minimap.Enabled)
}

func TestLoad_JSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raycaster.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"wallSize": 4, "input": {"turnStep": 5}}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.WallSize)
	assert.Equal(t, 5.0, cfg.Input.TurnStep)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RAYCASTER_TICK", "50ms")
	t.Setenv("RAYCASTER_SCREEN_HEIGHT", "480")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, cfg.Tick)
	assert.Equal(t, 480, cfg.Screen.Height)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick: [\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fov: 200\ncellSize: 0\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fov")
	assert.Contains(t, err.Error(), "cellSize")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Tick = 0
	cfg.Screen.Width = 0
	cfg.Minimap.Scale = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tick")
	assert.Contains(t, err.Error(), "screen size")
	assert.Contains(t, err.Error(), "minimap.scale")

	cfg = Default()
	cfg.Minimap.Enabled = false
	cfg.Minimap.Scale = 0
	assert.NoError(t, cfg.Validate())
}

func TestProjectionAndTPS(t *testing.T) {
	cfg := Default()

	s := cfg.Projection()
	assert.InDelta(t, 1.0471975511965976, s.FOV, 1e-12)
	assert.Equal(t, 5.0, s.WallSize)
	assert.Equal(t, 150.0, s.Scale)

	assert.Equal(t, 33, cfg.TPS())
	cfg.Tick = 2 * time.Second
	assert.Equal(t, 1, cfg.TPS())
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Tick = 20 * time.Millisecond
	cfg.Map = "demo.yaml"

	data, err := cfg.YAML()
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, "20ms", raw["tick"])

	path := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
