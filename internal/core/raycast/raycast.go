// Package raycast finds where a ray leaving the player first meets a wall by
// walking the grid lines it crosses.
//
// Two independent walks are made for every ray: one across vertical grid
// lines (x = k*cellSize) and one across horizontal grid lines
// (y = k*cellSize). The nearer of the two stops is the hit.
package raycast

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/world/grid"
)

// maxIndex bounds the float cell indices converted to int. Anything larger is
// far outside any map.
const maxIndex = 1 << 30

// Ray is the result of one cast.
type Ray struct {
	// Angle is the absolute direction of the ray in radians.
	Angle float64
	// Distance is measured from the player to where the walk stopped. When
	// the walk left the map without meeting a wall it is the distance to
	// the first point outside, which may be +Inf for axis-aligned rays.
	Distance float64
	// Vertical is true when the stop was on a vertical grid line, i.e. the
	// wall face seen is a side face.
	Vertical bool
}

// End returns the point where the ray stopped, as seen from origin.
func (r Ray) End(origin geometry.Point) geometry.Point {
	return geometry.Point{
		X: origin.X + math.Cos(r.Angle)*r.Distance,
		Y: origin.Y + math.Sin(r.Angle)*r.Distance,
	}
}

// Caster casts rays through one grid.
type Caster struct {
	grid     *grid.Grid
	cellSize float64
}

// New returns a caster for g where each cell is cellSize world units wide.
func New(g *grid.Grid, cellSize float64) *Caster {
	return &Caster{grid: g, cellSize: cellSize}
}

// Grid returns the map the caster walks.
func (c *Caster) Grid() *grid.Grid {
	return c.grid
}

// CellSize returns the world size of one cell.
func (c *Caster) CellSize() float64 {
	return c.cellSize
}

// Cast returns the nearer of the vertical-line and horizontal-line hits for a
// ray leaving origin at angle. On a tie the vertical hit wins.
func (c *Caster) Cast(angle float64, origin geometry.Point) Ray {
	return nearer(c.verticalCollision(angle, origin), c.horizontalCollision(angle, origin))
}

func nearer(v, h Ray) Ray {
	if h.Distance >= v.Distance {
		return v
	}
	return h
}

// CastRay is a convenience wrapper for a one-off cast.
func CastRay(angle float64, origin geometry.Point, g *grid.Grid, cellSize float64) Ray {
	return New(g, cellSize).Cast(angle, origin)
}

func (c *Caster) verticalCollision(angle float64, origin geometry.Point) Ray {
	size := c.cellSize
	right := parity((angle - math.Pi/2) / math.Pi)
	tan := math.Tan(angle)

	x := math.Floor(origin.X/size) * size
	if right {
		x += size
	}
	y := origin.Y + (x-origin.X)*tan

	stepX := size
	if !right {
		stepX = -size
	}
	stepY := stepX * tan

	for {
		col := math.Floor(x / size)
		if !right {
			col--
		}
		row := math.Floor(y / size)
		if c.stops(col, row) {
			break
		}
		x += stepX
		y += stepY
	}

	return Ray{Angle: angle, Distance: distance(origin, x, y), Vertical: true}
}

func (c *Caster) horizontalCollision(angle float64, origin geometry.Point) Ray {
	size := c.cellSize
	up := parity(angle / math.Pi)
	tan := math.Tan(angle)

	y := math.Floor(origin.Y/size) * size
	if !up {
		y += size
	}
	x := origin.X + (y-origin.Y)/tan

	stepY := size
	if up {
		stepY = -size
	}
	stepX := stepY / tan

	for {
		col := math.Floor(x / size)
		row := math.Floor(y / size)
		if up {
			row--
		}
		if c.stops(col, row) {
			break
		}
		x += stepX
		y += stepY
	}

	return Ray{Angle: angle, Distance: distance(origin, x, y), Vertical: false}
}

// stops reports whether a walk entering cell (col, row) ends there, either
// because the cell is outside the map or because it is a wall.
func (c *Caster) stops(col, row float64) bool {
	if math.IsNaN(col) || math.IsNaN(row) || math.Abs(col) > maxIndex || math.Abs(row) > maxIndex {
		return true
	}
	x, y := int(col), int(row)
	if geometry.OutOfMapBounds(x, y, c.grid.Width(), c.grid.Height()) {
		return true
	}
	return c.grid.IsWall(x, y)
}

// parity reports whether floor(v) is odd.
func parity(v float64) bool {
	return math.Abs(math.Mod(math.Floor(v), 2)) == 1
}

func distance(origin geometry.Point, x, y float64) float64 {
	d := geometry.Distance(origin.X, origin.Y, x, y)
	if math.IsNaN(d) {
		return math.Inf(1)
	}
	return d
}
