package levels

import (
	"path/filepath"
	"testing"

	"github.com/milk9111/blockpush/grid"
)

func TestFromGrid(t *testing.T) {
	cases := []struct {
		name    string
		rows    [][]int
		wantErr bool
	}{
		{"simple", [][]int{{8, 8}, {8, 8}}, false},
		{"empty", nil, true},
		{"empty_row", [][]int{{}}, true},
		{"ragged", [][]int{{8, 8}, {8}}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl, err := FromGrid(c.rows)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("FromGrid: %v", err)
			}
			if lvl.Width != len(c.rows[0]) || lvl.Height != len(c.rows) {
				t.Fatalf("dimensions = %dx%d", lvl.Width, lvl.Height)
			}
		})
	}
}

func TestRowsRoundTrip(t *testing.T) {
	rows := [][]int{
		{8, 8, 8},
		{8, 1, 8},
		{8, 8, 8},
	}
	lvl, err := FromGrid(rows)
	if err != nil {
		t.Fatalf("FromGrid: %v", err)
	}
	got := lvl.Rows()
	for y := range rows {
		for x := range rows[y] {
			if got[y][x] != rows[y][x] {
				t.Fatalf("cell (%d, %d) = %d, want %d", x, y, got[y][x], rows[y][x])
			}
		}
	}
}

func TestLoadLevelFromFS(t *testing.T) {
	lvl, err := LoadLevelFromFS("level_1")
	if err != nil {
		t.Fatalf("LoadLevelFromFS: %v", err)
	}
	if lvl.Width != 8 || lvl.Height != 6 {
		t.Fatalf("dimensions = %dx%d, want 8x6", lvl.Width, lvl.Height)
	}
	if x, y, ok := lvl.PlayerSpawn(); !ok || x != 2 || y != 2 {
		t.Fatalf("spawn = (%d, %d, %v), want (2, 2, true)", x, y, ok)
	}
	if lvl.Count(grid.TileBlock) != lvl.Count(grid.TileGoal) {
		t.Fatalf("shipped level should have matching block and goal counts")
	}
}

func TestLoadLevelFromFSUnknown(t *testing.T) {
	if _, err := LoadLevelFromFS("no_such_level"); err == nil {
		t.Fatalf("expected an error for a missing level")
	}
}

func TestSaveAndLoad(t *testing.T) {
	lvl, err := FromGrid([][]int{
		{8, 8, 8},
		{8, 4, 8},
		{8, 8, 8},
	})
	if err != nil {
		t.Fatalf("FromGrid: %v", err)
	}
	lvl.Name = "tiny"

	path := filepath.Join(t.TempDir(), "tiny.json")
	if err := lvl.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadLevel(path)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if loaded.Name != "tiny" || loaded.At(1, 1) != grid.TileGoal {
		t.Fatalf("loaded level mismatch: name=%q center=%d", loaded.Name, loaded.At(1, 1))
	}
}

func TestLoadLevelRejectsBadDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	bad := &Level{Width: 2, Height: 2, Tiles: []int{8, 8, 8}}
	if err := bad.Save(path); err == nil {
		t.Fatalf("Save should reject a tile count that does not match the dimensions")
	}
}
