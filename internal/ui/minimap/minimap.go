// Package minimap draws the top-down overlay: wall cells, the player marker,
// its heading and the rays of the current frame.
package minimap

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/player"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/world/grid"
)

const (
	markerSize    = 10.0
	headingLength = 20.0 // world units
)

// Minimap renders a grid scaled down by Scale at (X, Y) on the screen.
type Minimap struct {
	X, Y     float64
	Scale    float64
	CellSize float64
	Palette  render.Palette

	grid  *grid.Grid
	layer render.Image
	owner render.Renderer
}

// New returns a minimap of g. Each cell is drawn cellSize*scale pixels wide.
func New(g *grid.Grid, cellSize, scale float64, palette render.Palette) *Minimap {
	return &Minimap{
		Scale:    scale,
		CellSize: cellSize,
		Palette:  palette,
		grid:     g,
	}
}

// Draw paints the overlay on dst.
func (m *Minimap) Draw(r render.Renderer, dst render.Image, p player.State, rays []raycast.Ray) {
	m.drawWalls(r, dst)

	px, py := m.toScreen(p.X, p.Y)
	for _, ray := range rays {
		if math.IsInf(ray.Distance, 0) {
			continue
		}
		end := ray.End(p.Position())
		ex, ey := m.toScreen(end.X, end.Y)
		r.StrokeLine(dst, px, py, ex, ey, 1, m.Palette.MapRay)
	}

	r.FillRect(dst, px-markerSize/2, py-markerSize/2, markerSize, markerSize, m.Palette.MapPlayer)

	hx, hy := m.toScreen(p.X+math.Cos(p.Angle)*headingLength, p.Y+math.Sin(p.Angle)*headingLength)
	r.StrokeLine(dst, px, py, hx, hy, 1, m.Palette.MapPlayer)
}

// drawWalls draws the wall layer. The map never changes, so the layer is
// drawn once into an offscreen image and reused.
func (m *Minimap) drawWalls(r render.Renderer, dst render.Image) {
	if m.layer == nil || m.owner != r {
		if m.layer != nil {
			m.layer.Dispose()
		}
		size := m.CellSize * m.Scale
		w := int(math.Ceil(float64(m.grid.Width()) * size))
		h := int(math.Ceil(float64(m.grid.Height()) * size))
		m.layer = r.NewImage(max(w, 1), max(h, 1))
		m.owner = r

		for _, c := range m.grid.Walls() {
			r.FillRect(m.layer, float32(float64(c.X)*size), float32(float64(c.Y)*size), float32(size), float32(size), m.Palette.MapWall)
		}
	}

	opts := &render.DrawImageOptions{}
	opts.GeoM = render.NewGeoM()
	opts.GeoM.Translate(m.X, m.Y)
	dst.DrawImage(m.layer, opts)
}

func (m *Minimap) toScreen(x, y float64) (float32, float32) {
	return float32(m.X + x*m.Scale), float32(m.Y + y*m.Scale)
}
