// Package player holds the first-person pose and the input actions that
// change it.
package player

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/geometry"
)

// State is the player's pose in world units. Angle is in radians, zero along
// +x and growing clockwise on screen. Speed is world units per tick along the
// heading.
type State struct {
	X     float64
	Y     float64
	Angle float64
	Speed float64
}

// New returns a stationary player at (x, y) facing angle.
func New(x, y, angle float64) *State {
	return &State{X: x, Y: y, Angle: angle}
}

// Position returns the player's location as a point.
func (s *State) Position() geometry.Point {
	return geometry.Point{X: s.X, Y: s.Y}
}

// Advance moves the player one tick along its heading. There is no wall
// collision check; the player may walk through walls.
func (s *State) Advance() {
	s.X += math.Cos(s.Angle) * s.Speed
	s.Y += math.Sin(s.Angle) * s.Speed
}

// Look turns the player by deltaDegrees.
func (s *State) Look(deltaDegrees float64) {
	s.Angle += geometry.ToRadians(deltaDegrees)
}

// Apply changes the pose according to one input.
func (s *State) Apply(in Input) {
	switch in.Action {
	case Forward:
		s.Speed = 1
	case Backward:
		s.Speed = -1
	case Release:
		s.Speed = 0
	case Look:
		s.Look(in.Delta)
	}
}
