// Package projection turns a sweep of rays into the wall bands of a
// first-person view.
package projection

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/core/raycast"
)

// Settings are the constants of the projection.
type Settings struct {
	// FOV is the horizontal field of view in radians.
	FOV float64
	// WallSize is the reference wall height in cells.
	WallSize float64
	// Scale is the projection scale applied after the inverse distance.
	Scale float64
}

// Projector sweeps the field of view with a caster and maps distances to
// screen bands.
type Projector struct {
	caster   *raycast.Caster
	settings Settings
}

// New returns a projector casting through c.
func New(c *raycast.Caster, s Settings) *Projector {
	return &Projector{caster: c, settings: s}
}

// Settings returns the projection constants.
func (p *Projector) Settings() Settings {
	return p.settings
}

// Caster returns the underlying caster.
func (p *Projector) Caster() *raycast.Caster {
	return p.caster
}

// FixFishEye converts the radial distance of a ray into its distance
// perpendicular to the view plane.
func FixFishEye(distance, rayAngle, playerAngle float64) float64 {
	return distance * math.Cos(rayAngle-playerAngle)
}

// Rays casts n rays evenly spread over [angle - FOV/2, angle + FOV/2), one
// per output column, from origin. The result is computed fresh on every call.
func (p *Projector) Rays(origin geometry.Point, angle float64, n int) []raycast.Ray {
	if n <= 0 {
		return nil
	}

	start := angle - p.settings.FOV/2
	step := p.settings.FOV / float64(n)

	rays := make([]raycast.Ray, n)
	for i := range rays {
		rays[i] = p.caster.Cast(start+float64(i)*step, origin)
	}
	return rays
}

// WallHeight returns the on-screen height of a wall at the corrected
// distance d. Nearer walls are taller; at d == 0 the height is +Inf.
func (p *Projector) WallHeight(d float64) float64 {
	return (p.caster.CellSize() * p.settings.WallSize / d) * p.settings.Scale
}

// Columns maps rays, as returned by Rays for a player facing playerAngle,
// to one column each on a screen screenHeight tall.
func (p *Projector) Columns(rays []raycast.Ray, playerAngle, screenHeight float64) []Column {
	columns := make([]Column, len(rays))
	for i, ray := range rays {
		d := FixFishEye(ray.Distance, ray.Angle, playerAngle)
		columns[i] = NewColumn(i, p.WallHeight(d), screenHeight, ray.Vertical)
	}
	return columns
}
