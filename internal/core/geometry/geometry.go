// Package geometry holds the small pure helpers shared by the ray caster,
// the projection and the minimap.
package geometry

import "math"

// Point represents a 2D point in world units
type Point struct {
	X, Y float64
}

// Coord represents a grid cell coordinate
type Coord struct {
	X, Y int
}

// ToRadians converts an angle in degrees to radians
func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// ToDegrees converts an angle in radians to degrees
func ToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Distance calculates the Euclidean distance between (x1, y1) and (x2, y2)
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Distance calculates the Euclidean distance between two points
func (p Point) Distance(o Point) float64 {
	return Distance(p.X, p.Y, o.X, o.Y)
}

// OutOfMapBounds reports whether the cell (x, y) lies outside
// [0, width) x [0, height).
func OutOfMapBounds(x, y, width, height int) bool {
	return x < 0 || x >= width || y < 0 || y >= height
}
