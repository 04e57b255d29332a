package prefabs

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadGameSpec(t *testing.T) {
	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	if spec.Title == "" {
		t.Fatalf("expected a window title")
	}
	if spec.TileSize <= 0 {
		t.Fatalf("tile_size = %d, want > 0", spec.TileSize)
	}
}

func TestLoadEditorSpec(t *testing.T) {
	spec, err := LoadEditorSpec()
	if err != nil {
		t.Fatalf("LoadEditorSpec: %v", err)
	}

	for _, kind := range []string{"floor", "wall", "block", "goal", "player", "cursor"} {
		tile, ok := spec.Tiles[kind]
		if !ok {
			t.Fatalf("editor.yaml is missing tile kind %q", kind)
		}
		if tile.Color == nil || tile.Color.Color == nil {
			t.Fatalf("tile kind %q has no color", kind)
		}
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#3c78ff"`, color.NRGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff}, false},
		{"rgba", `"#ffffff66"`, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x66}, false},
		{"no_hash", `"3c78ff"`, color.NRGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff}, false},
		{"short", `"#fff"`, color.NRGBA{}, true},
		{"not_hex", `"#zzzzzz"`, color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var col YAMLColor
			err := yaml.Unmarshal([]byte(c.input), &col)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %s", c.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", c.input, err)
			}
			if col.Color != c.want {
				t.Fatalf("color = %v, want %v", col.Color, c.want)
			}
		})
	}
}

func TestScriptNames(t *testing.T) {
	names := ScriptNames()
	found := false
	for _, n := range names {
		if n == "level_check.tengo" {
			found = true
		}
	}
	if !found {
		t.Fatalf("level_check.tengo should be embedded, got %v", names)
	}
}
