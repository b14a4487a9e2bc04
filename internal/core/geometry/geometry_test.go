package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRadians(t *testing.T) {
	assert.Equal(t, 0.0, ToRadians(0))
	assert.InDelta(t, math.Pi, ToRadians(180), 1e-12)
	assert.InDelta(t, math.Pi/3, ToRadians(60), 1e-12)
	assert.InDelta(t, -math.Pi/2, ToRadians(-90), 1e-12)
	assert.InDelta(t, 45.0, ToDegrees(ToRadians(45)), 1e-12)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0.0, Distance(7, -3, 7, -3))
	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
	assert.Equal(t, Distance(1, 2, 10, -4), Distance(10, -4, 1, 2))
	assert.Greater(t, Distance(0, 0, 0, 1e-9), 0.0)

	a := Point{X: 1, Y: 1}
	b := Point{X: 4, Y: 5}
	assert.Equal(t, 5.0, a.Distance(b))
}

func TestOutOfMapBounds(t *testing.T) {
	for _, size := range []Coord{{X: 8, Y: 13}, {X: 1, Y: 1}, {X: 20, Y: 3}} {
		w, h := size.X, size.Y
		assert.True(t, OutOfMapBounds(-1, 0, w, h))
		assert.True(t, OutOfMapBounds(w, 0, w, h))
		assert.True(t, OutOfMapBounds(0, h, w, h))
		assert.True(t, OutOfMapBounds(0, -1, w, h))
		assert.False(t, OutOfMapBounds(0, 0, w, h))
		assert.False(t, OutOfMapBounds(w-1, h-1, w, h))
	}
}
