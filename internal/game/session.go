package game

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/core/player"
	"chosenoffset.com/raycaster/internal/core/projection"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/world/grid"
)

const instrumentationName = "chosenoffset.com/raycaster/internal/game"

// Frame is everything one tick produces for rendering.
type Frame struct {
	// Number counts ticks from 1.
	Number uint64
	// Rays holds one ray per screen column, cast before the player moved.
	Rays []raycast.Ray
	// Columns holds the wall bands for Rays.
	Columns []projection.Column
	// Player is the pose after the tick's movement.
	Player player.State
}

// Session owns the player and the map of one run and advances them one tick
// at a time. It is not safe for concurrent use; feed input through Apply from
// the goroutine that calls Tick.
type Session struct {
	grid      *grid.Grid
	player    *player.State
	projector *projection.Projector

	width  int
	height int

	frame Frame

	ticks    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewSession starts a session on g with the pose, projection and screen size
// from cfg.
func NewSession(cfg *config.Config, g *grid.Grid) (*Session, error) {
	s := &Session{
		grid:      g,
		player:    player.New(cfg.Player.X, cfg.Player.Y, geometry.ToRadians(cfg.Player.Angle)),
		projector: projection.New(raycast.New(g, cfg.CellSize), cfg.Projection()),
	}
	s.Resize(cfg.Screen.Width, cfg.Screen.Height)

	m := otel.Meter(instrumentationName)

	var err error
	s.ticks, err = m.Int64Counter(
		"raycaster.ticks",
		metric.WithDescription("Total frame driver ticks"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tick counter: %w", err)
	}

	s.duration, err = m.Float64Histogram(
		"raycaster.tick.duration",
		metric.WithDescription("Time spent casting and projecting one frame"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tick duration histogram: %w", err)
	}

	cx, cy := int(s.player.X/cfg.CellSize), int(s.player.Y/cfg.CellSize)
	if g.OutOfBounds(cx, cy) || g.IsWall(cx, cy) {
		log.Warn().Int("cellX", cx).Int("cellY", cy).Msg("player starts outside the open area of the map")
	}

	return s, nil
}

// Resize sets the output size. One ray is cast per column.
func (s *Session) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
}

// Size returns the output size.
func (s *Session) Size() (width, height int) {
	return s.width, s.height
}

// Grid returns the session map.
func (s *Session) Grid() *grid.Grid {
	return s.grid
}

// Player returns a copy of the current pose.
func (s *Session) Player() player.State {
	return *s.player
}

// Projector returns the projection used for every tick.
func (s *Session) Projector() *projection.Projector {
	return s.projector
}

// SetProjection replaces the projection constants from the next tick on.
// The map and cell size are unchanged.
func (s *Session) SetProjection(settings projection.Settings) {
	s.projector = projection.New(s.projector.Caster(), settings)
}

// Frame returns the result of the last tick.
func (s *Session) Frame() Frame {
	return s.frame
}

// Apply feeds one input to the player. The next tick sees it.
func (s *Session) Apply(in player.Input) {
	s.player.Apply(in)
}

// Tick runs one frame: cast the rays for the current pose, move the player,
// then project the rays for rendering.
func (s *Session) Tick() Frame {
	start := time.Now()

	rays := s.projector.Rays(s.player.Position(), s.player.Angle, s.width)
	s.player.Advance()
	columns := s.projector.Columns(rays, s.player.Angle, float64(s.height))

	s.frame = Frame{
		Number:  s.frame.Number + 1,
		Rays:    rays,
		Columns: columns,
		Player:  *s.player,
	}

	ctx := context.Background()
	s.ticks.Add(ctx, 1)
	s.duration.Record(ctx, float64(time.Since(start).Microseconds())/1000)

	return s.frame
}
