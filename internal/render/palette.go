package render

import (
	"image/color"

	"chosenoffset.com/raycaster/internal/core/projection"
)

// Palette holds the colors of the first-person view and the minimap.
type Palette struct {
	Ceiling  color.RGBA
	Floor    color.RGBA
	Wall     color.RGBA
	WallDark color.RGBA

	MapWall   color.RGBA
	MapPlayer color.RGBA
	MapRay    color.RGBA
	Text      color.RGBA
}

// DefaultPalette returns the standard colors.
func DefaultPalette() Palette {
	return Palette{
		Ceiling:  color.RGBA{R: 0x35, G: 0x3b, B: 0x48, A: 0xff},
		Floor:    color.RGBA{R: 0x5b, G: 0x51, B: 0x47, A: 0xff},
		Wall:     color.RGBA{R: 0x8a, G: 0x8f, B: 0x99, A: 0xff},
		WallDark: color.RGBA{R: 0x5e, G: 0x63, B: 0x6d, A: 0xff},

		MapWall:   color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		MapPlayer: color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
		MapRay:    color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0x30},
		Text:      color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// WallColor returns the tone for a wall shade.
func (p Palette) WallColor(shade projection.Shade) color.RGBA {
	if shade == projection.Dark {
		return p.WallDark
	}
	return p.Wall
}
