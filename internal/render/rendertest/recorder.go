// Package rendertest provides an in-memory render backend that records draw
// calls, for tests of code that draws through package render.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/raycaster/internal/render"
)

// Rect is a recorded FillRect call.
type Rect struct {
	Dst                 *Image
	X, Y, Width, Height float32
	Color               color.Color
}

// Line is a recorded StrokeLine call.
type Line struct {
	Dst            *Image
	X0, Y0, X1, Y1 float32
	Color          color.Color
}

// Text is a recorded DrawText call.
type Text struct {
	Dst  *Image
	Text string
	X, Y int
}

var (
	_ render.Renderer = (*Recorder)(nil)
	_ render.Image    = (*Image)(nil)
	_ render.GeoM     = (*GeoM)(nil)
)

// Recorder implements render.Renderer by recording every call.
type Recorder struct {
	Images []*Image
	Rects  []Rect
	Lines  []Line
	Texts  []Text
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewImage returns a recording image.
func (r *Recorder) NewImage(width, height int) render.Image {
	img := &Image{W: width, H: height}
	r.Images = append(r.Images, img)
	return img
}

// FillRect records a rectangle.
func (r *Recorder) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Rects = append(r.Rects, Rect{Dst: dst.(*Image), X: x, Y: y, Width: width, Height: height, Color: clr})
}

// StrokeLine records a line.
func (r *Recorder) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	r.Lines = append(r.Lines, Line{Dst: dst.(*Image), X0: x0, Y0: y0, X1: x1, Y1: y1, Color: clr})
}

// DrawText records text.
func (r *Recorder) DrawText(dst render.Image, text string, x, y int) {
	r.Texts = append(r.Texts, Text{Dst: dst.(*Image), Text: text, X: x, Y: y})
}

// RectsOn returns the rectangles drawn on img.
func (r *Recorder) RectsOn(img *Image) []Rect {
	var rects []Rect
	for _, rect := range r.Rects {
		if rect.Dst == img {
			rects = append(rects, rect)
		}
	}
	return rects
}

// Image is a recording render.Image.
type Image struct {
	W, H     int
	Filled   color.Color
	Drawn    []Draw
	Disposed bool
}

// Draw is a recorded DrawImage call.
type Draw struct {
	Src  *Image
	GeoM *GeoM
}

// NewImage returns a recording image of the given size.
func NewImage(width, height int) *Image {
	return &Image{W: width, H: height}
}

func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.W, i.H)
}

func (i *Image) Fill(clr color.Color) {
	i.Filled = clr
}

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	d := Draw{Src: src.(*Image)}
	if opts != nil && opts.GeoM != nil {
		d.GeoM = opts.GeoM.(*GeoM)
	}
	i.Drawn = append(i.Drawn, d)
}

func (i *Image) Dispose() {
	i.Disposed = true
}

// GeoM records translation.
type GeoM struct {
	TX, TY float64
}

// Install makes render.NewGeoM return recording matrices.
func Install() {
	render.NewGeoM = func() render.GeoM {
		return &GeoM{}
	}
}

func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}
