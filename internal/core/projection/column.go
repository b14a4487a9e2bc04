package projection

import "math"

// Shade selects between the two wall tones.
type Shade int

const (
	// Lit is used for faces on horizontal grid lines.
	Lit Shade = iota
	// Dark is used for faces on vertical grid lines.
	Dark
)

// Column is one screen column split into ceiling, wall and floor bands.
// The ceiling spans [0, WallTop), the wall [WallTop, WallBottom) and the
// floor [WallBottom, Height).
type Column struct {
	X          int
	WallTop    float64
	WallBottom float64
	Height     float64
	Shade      Shade
}

// NewColumn centers a wall band wallHeight tall on a column screenHeight
// tall, clamping it to the screen.
func NewColumn(x int, wallHeight, screenHeight float64, vertical bool) Column {
	half := screenHeight / 2
	if math.IsNaN(wallHeight) || wallHeight < 0 {
		wallHeight = 0
	}
	wallHeight = math.Min(wallHeight, screenHeight)

	c := Column{
		X:          x,
		WallTop:    half - wallHeight/2,
		WallBottom: half + wallHeight/2,
		Height:     screenHeight,
	}
	if vertical {
		c.Shade = Dark
	}
	return c
}

// CeilingHeight returns the height of the band above the wall.
func (c Column) CeilingHeight() float64 {
	return c.WallTop
}

// WallHeight returns the height of the wall band.
func (c Column) WallHeight() float64 {
	return c.WallBottom - c.WallTop
}

// FloorHeight returns the height of the band below the wall.
func (c Column) FloorHeight() float64 {
	return c.Height - c.WallBottom
}
