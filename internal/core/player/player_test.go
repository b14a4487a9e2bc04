package player

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceAlongHeading(t *testing.T) {
	p := New(40, 40, 0)
	p.Speed = 1
	p.Advance()
	assert.InDelta(t, 41, p.X, 1e-12)
	assert.InDelta(t, 40, p.Y, 1e-12)

	p.Angle = math.Pi / 2
	p.Speed = -1
	p.Advance()
	assert.InDelta(t, 41, p.X, 1e-12)
	assert.InDelta(t, 39, p.Y, 1e-12)
}

func TestZeroSpeedDoesNotMove(t *testing.T) {
	for _, angle := range []float64{0, 0.3, math.Pi / 2, 2, math.Pi, -1.7, 10} {
		p := New(40, 52.5, angle)
		for i := 0; i < 100; i++ {
			p.Advance()
		}
		assert.Equal(t, 40.0, p.X, "angle %v", angle)
		assert.Equal(t, 52.5, p.Y, "angle %v", angle)
	}
}

func TestApply(t *testing.T) {
	p := New(0, 0, 0)

	p.Apply(Input{Action: Forward})
	assert.Equal(t, 1.0, p.Speed)

	p.Apply(Input{Action: Backward})
	assert.Equal(t, -1.0, p.Speed)

	p.Apply(Input{Action: Release})
	assert.Equal(t, 0.0, p.Speed)

	p.Apply(LookBy(90))
	assert.InDelta(t, math.Pi/2, p.Angle, 1e-12)
	p.Apply(LookBy(-45))
	assert.InDelta(t, math.Pi/4, p.Angle, 1e-12)
	assert.Equal(t, 0.0, p.Speed, "look leaves speed alone")

	p.Apply(Input{Action: None, Delta: 30})
	assert.InDelta(t, math.Pi/4, p.Angle, 1e-12)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "look", Look.String())
	assert.Equal(t, "action(42)", Action(42).String())
}
