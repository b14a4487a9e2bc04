package grid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceMap(t *testing.T) {
	g := Reference()

	assert.Equal(t, 8, g.Width())
	assert.Equal(t, 13, g.Height())

	for x := 0; x < g.Width(); x++ {
		assert.True(t, g.IsWall(x, 0), "top border at x=%d", x)
		assert.True(t, g.IsWall(x, g.Height()-1), "bottom border at x=%d", x)
	}
	for y := 0; y < g.Height(); y++ {
		assert.True(t, g.IsWall(0, y), "left border at y=%d", y)
		assert.True(t, g.IsWall(g.Width()-1, y), "right border at y=%d", y)
	}
	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			c, ok := g.CellAt(x, y)
			require.True(t, ok)
			assert.Equal(t, Empty, c, "interior at (%d, %d)", x, y)
		}
	}

	// 2*8 + 2*11 border cells
	assert.Len(t, g.Walls(), 38)
}

func TestCellAtOutOfBounds(t *testing.T) {
	g := Reference()

	for _, c := range [][2]int{{-1, 0}, {8, 0}, {0, 13}, {0, -1}} {
		cell, ok := g.CellAt(c[0], c[1])
		assert.False(t, ok)
		assert.Equal(t, Empty, cell)
		assert.True(t, g.OutOfBounds(c[0], c[1]))
		assert.False(t, g.IsWall(c[0], c[1]))
	}
	assert.False(t, g.OutOfBounds(0, 0))
	assert.False(t, g.OutOfBounds(7, 12))
}

func TestNewCopiesRows(t *testing.T) {
	rows := [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 2, 1},
	}
	g, err := New("copy", rows)
	require.NoError(t, err)

	rows[1][1] = 1
	assert.False(t, g.IsWall(1, 1))
	assert.True(t, g.IsWall(1, 2), "any nonzero value is a wall")
	assert.Equal(t, "copy", g.Name())
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("empty", nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = New("no columns", [][]int{{}})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = New("ragged", [][]int{{1, 1}, {1}})
	assert.ErrorIs(t, err, ErrNotRectangular)
	assert.Contains(t, err.Error(), "row 1")

	_, err = Bordered("zero", 0, 4)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestDiagonal(t *testing.T) {
	g, err := Bordered("box", 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 5.0, g.Diagonal(1))
	assert.Equal(t, 50.0, g.Diagonal(10))
}

func TestParseCells(t *testing.T) {
	g, err := Parse([]byte(`
name: hall
cells:
  - [1, 1, 1, 1]
  - [1, 0, 0, 1]
  - [1, 1, 1, 1]
`))
	require.NoError(t, err)
	assert.Equal(t, "hall", g.Name())
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.False(t, g.IsWall(2, 1))
}

func TestParseRows(t *testing.T) {
	g, err := Parse([]byte(`
rows:
  - "#####"
  - "#...#"
  - "#.#.#"
  - "#####"
`))
	require.NoError(t, err)
	assert.Equal(t, "unnamed", g.Name())
	assert.True(t, g.IsWall(2, 2))
	assert.False(t, g.IsWall(1, 1))
}

func TestParseJSON(t *testing.T) {
	g, err := Parse([]byte(`{"name": "json", "cells": [[1, 1], [1, 1]]}`))
	require.NoError(t, err)
	assert.Equal(t, "json", g.Name())
	assert.Len(t, g.Walls(), 4)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`cells: [[1, 1], [1]]`))
	assert.ErrorIs(t, err, ErrNotRectangular)

	_, err = Parse([]byte(`name: nothing`))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse([]byte(`{cells: [[1]], rows: ["#"]}`))
	assert.Error(t, err)

	_, err = Parse([]byte("cells: [[1, 1\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: room\nrows: [\"###\", \"#.#\", \"###\"]\n"), 0644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "room", g.Name())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read map file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rows: [\"##\", \"#\"]\n"), 0644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrNotRectangular)
	assert.Contains(t, err.Error(), bad)
}
