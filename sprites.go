package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/blockpush/prefabs"
)

// theme renders the tile specs into reusable images, one per tile kind.
type theme struct {
	tileSize int
	images   map[string]*ebiten.Image
	layers   map[string]int
	missing  *ebiten.Image
}

func newTheme(spec *prefabs.EditorSpec, tileSize int) *theme {
	t := &theme{
		tileSize: tileSize,
		images:   make(map[string]*ebiten.Image, len(spec.Tiles)),
		layers:   make(map[string]int, len(spec.Tiles)),
		missing:  squareImage(tileSize, colornames.Magenta),
	}
	for kind, ts := range spec.Tiles {
		var clr color.Color = colornames.Magenta
		if ts.Color != nil {
			clr = ts.Color.Color
		}
		switch ts.Shape {
		case "square", "":
			t.images[kind] = squareImage(tileSize, clr)
		case "circle":
			t.images[kind] = circleImage(tileSize, clr)
		case "ring":
			t.images[kind] = ringImage(tileSize, clr)
		default:
			log.Printf("theme: unknown shape %q for tile %q", ts.Shape, kind)
			t.images[kind] = squareImage(tileSize, clr)
		}
		t.layers[kind] = ts.Layer
	}
	return t
}

// image returns the rendered tile for kind, or a magenta placeholder when the
// spec doesn't define it.
func (t *theme) image(kind string) *ebiten.Image {
	if img, ok := t.images[kind]; ok {
		return img
	}
	return t.missing
}

func (t *theme) layer(kind string) int {
	return t.layers[kind]
}

func squareImage(size int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(clr)
	return img
}

func circleImage(size int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	half := float32(size) / 2
	vector.FillCircle(img, half, half, half-2, clr, true)
	return img
}

func ringImage(size int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	half := float32(size) / 2
	vector.StrokeCircle(img, half, half, half-3, 2, clr, true)
	return img
}
