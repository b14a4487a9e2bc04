// Package terminal presents frames on a character terminal through tcell and
// turns key events into player inputs.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/core/projection"
	"chosenoffset.com/raycaster/internal/game"
)

const (
	ceilingRune  = ' '
	floorRune    = '.'
	wallRune     = '█'
	wallDarkRune = '▓'
)

var (
	ceilingStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	floorStyle    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorOlive)
	wallStyle     = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorSilver)
	wallDarkStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
	textStyle     = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow)
)

// Presenter paints frames one character cell per ray.
type Presenter struct {
	screen tcell.Screen

	// OnResize is called from Present when the terminal size changed since
	// the last frame, so the session can cast one ray per new column.
	OnResize func(width, height int)
	// ShowPose prints the player pose on the top row.
	ShowPose bool

	width, height int
}

// NewPresenter prepares an initialised screen for drawing.
func NewPresenter(screen tcell.Screen) *Presenter {
	screen.HideCursor()
	screen.SetStyle(ceilingStyle)
	screen.Clear()

	w, h := screen.Size()
	return &Presenter{screen: screen, width: w, height: h}
}

// Size returns the terminal size seen by the last frame.
func (p *Presenter) Size() (width, height int) {
	return p.width, p.height
}

// Present paints f and shows it. It matches game.PresentFunc.
func (p *Presenter) Present(f game.Frame) error {
	if w, h := p.screen.Size(); w != p.width || h != p.height {
		p.width, p.height = w, h
		p.screen.Clear()
		if p.OnResize != nil {
			p.OnResize(w, h)
		}
	}

	for _, c := range f.Columns {
		if c.X < 0 || c.X >= p.width {
			continue
		}
		for y := 0; y < p.height; y++ {
			r, style := cellAt(c, float64(y)+0.5)
			p.screen.SetContent(c.X, y, r, nil, style)
		}
	}

	if p.ShowPose {
		pl := f.Player
		p.drawText(0, 0, fmt.Sprintf("x=%.1f y=%.1f angle=%.1f", pl.X, pl.Y, geometry.ToDegrees(pl.Angle)))
	}

	p.screen.Show()
	return nil
}

// cellAt classifies the character cell whose vertical center is y.
func cellAt(c projection.Column, y float64) (rune, tcell.Style) {
	switch {
	case y < c.WallTop:
		return ceilingRune, ceilingStyle
	case y < c.WallBottom:
		if c.Shade == projection.Dark {
			return wallDarkRune, wallDarkStyle
		}
		return wallRune, wallStyle
	default:
		return floorRune, floorStyle
	}
}

func (p *Presenter) drawText(x, y int, text string) {
	for _, r := range text {
		if x >= p.width {
			return
		}
		p.screen.SetContent(x, y, r, nil, textStyle)
		x++
	}
}
