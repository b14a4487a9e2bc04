package game

import (
	"fmt"

	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/render"
)

// Draw paints the last frame: the first-person scene, then the minimap
// overlay and the pose line on top.
func (g *Game) Draw(screen render.Image) {
	frame := g.Session.Frame()

	g.drawScene(screen, frame)

	if g.ShowMinimap && g.Minimap != nil {
		g.Minimap.Draw(g.Renderer, screen, frame.Player, frame.Rays)
	}

	if g.ShowPose {
		p := frame.Player
		g.Renderer.DrawText(screen, fmt.Sprintf("x=%.1f y=%.1f angle=%.1f°", p.X, p.Y, geometry.ToDegrees(p.Angle)), 8, screen.Bounds().Dy()-20)
	}
}

func (g *Game) drawScene(screen render.Image, frame Frame) {
	screen.Fill(g.Palette.Ceiling)

	for _, c := range frame.Columns {
		x := float32(c.X)
		if h := c.WallHeight(); h > 0 {
			g.Renderer.FillRect(screen, x, float32(c.WallTop), 1, float32(h), g.Palette.WallColor(c.Shade))
		}
		if h := c.FloorHeight(); h > 0 {
			g.Renderer.FillRect(screen, x, float32(c.WallBottom), 1, float32(h), g.Palette.Floor)
		}
	}
}
