package player

import "fmt"

// Action is a discrete input recognised by the player.
type Action int

const (
	None Action = iota
	Forward
	Backward
	Release
	Look
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case None:
		return "none"
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Release:
		return "release"
	case Look:
		return "look"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Input is one input event. Delta is the look amount in degrees and is
// ignored for other actions.
type Input struct {
	Action Action
	Delta  float64
}

// LookBy returns a look input turning by deltaDegrees.
func LookBy(deltaDegrees float64) Input {
	return Input{Action: Look, Delta: deltaDegrees}
}
