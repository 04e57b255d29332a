// Package levels defines the exported level format and its persistence: a
// rectangular grid of small integer tile values stored row-major as JSON.
package levels

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/milk9111/blockpush/grid"
)

// Level is a dense rectangular tile grid. Tiles is row-major with length
// Width*Height and holds the tile values defined in package grid
// (0 empty, 1 player, 2 block, 4 goal, 8 wall).
type Level struct {
	Name   string `json:"name,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Tiles  []int  `json:"tiles"`
}

// FromGrid converts a dense grid, as produced by the editor's serialize
// operation, into a Level. The rows must be non-empty and rectangular.
func FromGrid(rows [][]int) (*Level, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("levels: empty grid")
	}
	w := len(rows[0])
	lvl := &Level{
		Width:  w,
		Height: len(rows),
		Tiles:  make([]int, 0, len(rows)*w),
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("levels: ragged grid: row %d has %d cells, want %d", y, len(row), w)
		}
		lvl.Tiles = append(lvl.Tiles, row...)
	}
	return lvl, nil
}

func (l *Level) validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("levels: invalid dimensions: %dx%d", l.Width, l.Height)
	}
	if len(l.Tiles) != l.Width*l.Height {
		return fmt.Errorf("levels: %d tiles for a %dx%d grid", len(l.Tiles), l.Width, l.Height)
	}
	return nil
}

// InBounds reports whether (x, y) lies inside the grid.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.Width && y < l.Height
}

// At returns the tile value at (x, y), or TileEmpty out of bounds.
func (l *Level) At(x, y int) int {
	if !l.InBounds(x, y) {
		return grid.TileEmpty
	}
	return l.Tiles[y*l.Width+x]
}

// Rows returns the tiles as a fresh slice of rows.
func (l *Level) Rows() [][]int {
	rows := make([][]int, l.Height)
	for y := 0; y < l.Height; y++ {
		row := make([]int, l.Width)
		copy(row, l.Tiles[y*l.Width:(y+1)*l.Width])
		rows[y] = row
	}
	return rows
}

// PlayerSpawn returns the cell holding the player tile. ok is false when the
// level has no player.
func (l *Level) PlayerSpawn() (x, y int, ok bool) {
	for i, v := range l.Tiles {
		if v == grid.TilePlayer {
			return i % l.Width, i / l.Width, true
		}
	}
	return 0, 0, false
}

// Count returns how many cells hold the given tile value.
func (l *Level) Count(tile int) int {
	n := 0
	for _, v := range l.Tiles {
		if v == tile {
			n++
		}
	}
	return n
}

// LoadLevel loads a level from a JSON file on disk.
func LoadLevel(path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}

	var lvl Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", path, err)
	}
	if err := lvl.validate(); err != nil {
		return nil, err
	}
	if lvl.Name == "" {
		lvl.Name = baseName(path)
	}
	return &lvl, nil
}

// Save writes the level as indented JSON to path, creating the directory if
// needed.
func (l *Level) Save(path string) error {
	if err := l.validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

// SaveNew writes the level under levels/ with a timestamped filename and
// returns the path used.
func (l *Level) SaveNew() (string, error) {
	path := filepath.Join("levels", fmt.Sprintf("level_%d.json", time.Now().Unix()))
	if err := l.Save(path); err != nil {
		return "", err
	}
	return path, nil
}

// JSON returns the level as indented JSON.
func (l *Level) JSON() ([]byte, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(l, "", "  ")
}

func baseName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	return base
}
