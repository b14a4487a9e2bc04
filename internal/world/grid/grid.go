// Package grid provides the immutable tile map walked by the ray caster.
package grid

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/raycaster/internal/core/geometry"
)

// Cell is the content of one map square.
type Cell int

const (
	Empty Cell = 0
	Wall  Cell = 1
)

var (
	// ErrEmpty is returned when a map has no rows or no columns.
	ErrEmpty = errors.New("map has no cells")
	// ErrNotRectangular is returned when map rows differ in length.
	ErrNotRectangular = errors.New("map rows differ in length")
)

// Grid is a rectangular map of wall and empty cells, indexed [y][x].
// It is never modified after construction.
type Grid struct {
	name  string
	cells [][]Cell
}

// New builds a grid from rows of cell values. Zero is empty, anything else
// is a wall. The rows are copied.
func New(name string, rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", y, len(row), width, ErrNotRectangular)
		}
	}

	cells := toCells(rows)
	return &Grid{name: name, cells: cells}, nil
}

// Bordered returns a width x height map whose outer ring is wall and whose
// interior is empty.
func Bordered(name string, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid map dimensions %dx%d: %w", width, height, ErrEmpty)
	}
	return New(name, borderedRows(width, height))
}

// Reference returns the built-in demo map: 13 rows by 8 columns, walled on
// every side.
func Reference() *Grid {
	return &Grid{name: "reference", cells: toCells(borderedRows(8, 13))}
}

func borderedRows(width, height int) [][]int {
	rows := make([][]int, height)
	for y := range rows {
		rows[y] = make([]int, width)
		for x := range rows[y] {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				rows[y][x] = 1
			}
		}
	}
	return rows
}

func toCells(rows [][]int) [][]Cell {
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		cells[y] = make([]Cell, len(row))
		for x, v := range row {
			if v != 0 {
				cells[y][x] = Wall
			}
		}
	}
	return cells
}

// Name returns the map name.
func (g *Grid) Name() string {
	return g.name
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return len(g.cells[0])
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.cells)
}

// OutOfBounds reports whether (x, y) is outside the map.
func (g *Grid) OutOfBounds(x, y int) bool {
	return geometry.OutOfMapBounds(x, y, g.Width(), g.Height())
}

// CellAt returns the cell at (x, y). The second result is false, and the
// cell Empty, when the coordinate is outside the map.
func (g *Grid) CellAt(x, y int) (Cell, bool) {
	if g.OutOfBounds(x, y) {
		return Empty, false
	}
	return g.cells[y][x], true
}

// IsWall reports whether (x, y) is an in-bounds wall cell.
func (g *Grid) IsWall(x, y int) bool {
	c, ok := g.CellAt(x, y)
	return ok && c == Wall
}

// Diagonal returns the length of the map diagonal in world units.
func (g *Grid) Diagonal(cellSize float64) float64 {
	return math.Hypot(float64(g.Width())*cellSize, float64(g.Height())*cellSize)
}

// Walls returns the coordinates of every wall cell in row-major order.
func (g *Grid) Walls() []geometry.Coord {
	var walls []geometry.Coord
	for y, row := range g.cells {
		for x, c := range row {
			if c == Wall {
				walls = append(walls, geometry.Coord{X: x, Y: y})
			}
		}
	}
	return walls
}
