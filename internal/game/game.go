package game

import (
	"github.com/rs/zerolog/log"

	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/ui/minimap"
)

// Game adapts a Session to the render.Game loop. The engine calls Update at
// the configured TPS, which makes each Update one tick.
type Game struct {
	Session  *Session
	Renderer render.Renderer
	InputMgr render.InputManager
	Controls *Controls
	Palette  render.Palette

	// Minimap is nil when the overlay is disabled in config.
	Minimap     *minimap.Minimap
	ShowMinimap bool

	// ShowPose prints the player pose in the corner.
	ShowPose bool
}

// Update reads input, applies it and advances the session one tick.
func (g *Game) Update() error {
	inputs, quit := g.Controls.Read(g.InputMgr)
	if quit {
		log.Info().Uint64("frames", g.Session.Frame().Number).Msg("quit requested")
		return render.ErrTerminate
	}
	for _, in := range inputs {
		log.Trace().Stringer("action", in.Action).Float64("delta", in.Delta).Msg("input")
		g.Session.Apply(in)
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyM) && g.Minimap != nil {
		g.ShowMinimap = !g.ShowMinimap
	}

	g.Session.Tick()
	return nil
}

// Layout makes the logical screen match the window and resizes the session
// so one ray is cast per pixel column.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := g.Session.Size(); w != outsideWidth || h != outsideHeight {
		log.Debug().Int("width", outsideWidth).Int("height", outsideHeight).Msg("screen resized")
		g.Session.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
