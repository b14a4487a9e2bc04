package grid

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MapData is the on-disk map format. Either Cells or Rows must be given.
// Rows use '#' (or any non-space, non-'.' rune) for walls.
type MapData struct {
	Name  string   `yaml:"name"`
	Cells [][]int  `yaml:"cells"`
	Rows  []string `yaml:"rows"`
}

// Load reads a map from a YAML or JSON file.
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}

	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid map file %s: %w", path, err)
	}
	return g, nil
}

// Parse decodes map data from YAML or JSON bytes.
func Parse(data []byte) (*Grid, error) {
	var mapData MapData
	if err := yaml.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}

	rows := mapData.Cells
	if len(rows) == 0 && len(mapData.Rows) > 0 {
		rows = rowsFromStrings(mapData.Rows)
	} else if len(rows) > 0 && len(mapData.Rows) > 0 {
		return nil, fmt.Errorf("map %q sets both cells and rows", mapData.Name)
	}

	name := mapData.Name
	if name == "" {
		name = "unnamed"
	}
	return New(name, rows)
}

func rowsFromStrings(lines []string) [][]int {
	rows := make([][]int, len(lines))
	for y, line := range lines {
		runes := []rune(strings.TrimRight(line, "\r"))
		rows[y] = make([]int, len(runes))
		for x, r := range runes {
			if r != '.' && r != ' ' {
				rows[y][x] = 1
			}
		}
	}
	return rows
}
