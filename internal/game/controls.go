package game

import (
	"chosenoffset.com/raycaster/internal/core/player"
	"chosenoffset.com/raycaster/internal/render"
)

var (
	forwardKeys  = []render.Key{render.KeyW, render.KeyUp}
	backwardKeys = []render.Key{render.KeyS, render.KeyDown}
	leftKeys     = []render.Key{render.KeyA, render.KeyLeft}
	rightKeys    = []render.Key{render.KeyD, render.KeyRight}
	quitKeys     = []render.Key{render.KeyEscape, render.KeyQ}
)

// Controls turns polled keyboard and pointer state into player inputs.
type Controls struct {
	// TurnStep is the look delta in degrees per tick while a turn key is held.
	TurnStep float64
	// Sensitivity converts horizontal pointer motion to degrees.
	Sensitivity float64

	lastX int
	known bool
}

// NewControls returns controls with the given turn step and sensitivity.
func NewControls(turnStep, sensitivity float64) *Controls {
	return &Controls{TurnStep: turnStep, Sensitivity: sensitivity}
}

// Read polls im once. Releases are reported before presses so that swapping
// direction within one tick ends up moving.
func (c *Controls) Read(im render.InputManager) (inputs []player.Input, quit bool) {
	if anyKey(im.IsKeyJustPressed, quitKeys) {
		return nil, true
	}

	// Releasing either movement key stops, even with the other one held.
	if anyKey(im.IsKeyJustReleased, forwardKeys) || anyKey(im.IsKeyJustReleased, backwardKeys) {
		inputs = append(inputs, player.Input{Action: player.Release})
	}
	if anyKey(im.IsKeyJustPressed, forwardKeys) {
		inputs = append(inputs, player.Input{Action: player.Forward})
	}
	if anyKey(im.IsKeyJustPressed, backwardKeys) {
		inputs = append(inputs, player.Input{Action: player.Backward})
	}

	if anyKey(im.IsKeyPressed, leftKeys) {
		inputs = append(inputs, player.LookBy(-c.TurnStep))
	}
	if anyKey(im.IsKeyPressed, rightKeys) {
		inputs = append(inputs, player.LookBy(c.TurnStep))
	}

	x, _ := im.GetCursorPosition()
	if c.known && x != c.lastX && c.Sensitivity != 0 {
		inputs = append(inputs, player.LookBy(float64(x-c.lastX)*c.Sensitivity))
	}
	c.lastX, c.known = x, true

	return inputs, false
}

func anyKey(pred func(render.Key) bool, keys []render.Key) bool {
	for _, k := range keys {
		if pred(k) {
			return true
		}
	}
	return false
}
