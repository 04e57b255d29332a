// Package prefabs holds the data-driven presentation specs: window and tile
// theme YAML files plus the level check scripts, embedded with a disk
// override for live editing.
package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpec loads and unmarshals one YAML spec file.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec configures the window and the shared grid metrics.
type GameSpec struct {
	Title      string `yaml:"title"`
	BaseWidth  int    `yaml:"base_width"`
	BaseHeight int    `yaml:"base_height"`
	TileSize   int    `yaml:"tile_size"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if spec.TileSize <= 0 {
		return nil, fmt.Errorf("prefabs: game.yaml: tile_size must be positive, got %d", spec.TileSize)
	}
	return &spec, nil
}

// TileSpec describes how one tile kind is rendered.
type TileSpec struct {
	Shape string     `yaml:"shape"` // square, circle or ring
	Color *YAMLColor `yaml:"color"`
	Layer int        `yaml:"layer"`
}

// EditorSpec configures the in-game editor: the action cooldown between
// repeated key commands and the per-tile theme, keyed by tile kind (floor,
// wall, block, goal, player, cursor).
type EditorSpec struct {
	CooldownFrames int                 `yaml:"cooldown_frames"`
	Tiles          map[string]TileSpec `yaml:"tiles"`
}

func LoadEditorSpec() (*EditorSpec, error) {
	spec, err := LoadSpec[EditorSpec]("editor.yaml")
	if err != nil {
		return nil, err
	}
	if spec.CooldownFrames < 0 {
		spec.CooldownFrames = 0
	}
	return &spec, nil
}

// YAMLColor unmarshals "#rrggbb" or "#rrggbbaa" strings.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
