// Package ecs is a minimal entity store for the presentation layer: it hands
// out entity ids and tracks the sprite attached to each. The editing core
// stores these ids as opaque handles and the game despawns visuals through
// them.
package ecs

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Entity identifies one presentation object.
type Entity uint32

// Sprite is the drawable component: an image at a pixel position on a draw
// layer. Higher layers draw later.
type Sprite struct {
	Image *ebiten.Image
	X, Y  float64
	Layer int
}

// World owns all live entities and their sprites.
type World struct {
	next    Entity
	sprites map[Entity]*Sprite
}

func NewWorld() *World {
	return &World{sprites: make(map[Entity]*Sprite)}
}

// Create allocates a new entity carrying the given sprite.
func (w *World) Create(s Sprite) Entity {
	w.next++
	e := w.next
	w.sprites[e] = &s
	return e
}

// Destroy removes the entity. It reports false when e is not alive.
func (w *World) Destroy(e Entity) bool {
	if _, ok := w.sprites[e]; !ok {
		return false
	}
	delete(w.sprites, e)
	return true
}

// Alive reports whether e exists.
func (w *World) Alive(e Entity) bool {
	_, ok := w.sprites[e]
	return ok
}

// Sprite returns the sprite attached to e for in-place mutation.
func (w *World) Sprite(e Entity) (*Sprite, bool) {
	s, ok := w.sprites[e]
	return s, ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.sprites)
}

// Clear destroys every entity.
func (w *World) Clear() {
	w.sprites = make(map[Entity]*Sprite)
}

// Draw renders every sprite translated by the given pixel offset, ordered by
// layer and then by entity id so the output is deterministic.
func (w *World) Draw(screen *ebiten.Image, offsetX, offsetY float64) {
	order := make([]Entity, 0, len(w.sprites))
	for e := range w.sprites {
		order = append(order, e)
	}
	sort.Slice(order, func(i, j int) bool {
		si, sj := w.sprites[order[i]], w.sprites[order[j]]
		if si.Layer != sj.Layer {
			return si.Layer < sj.Layer
		}
		return order[i] < order[j]
	})

	for _, e := range order {
		s := w.sprites[e]
		if s.Image == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(s.X+offsetX, s.Y+offsetY)
		screen.DrawImage(s.Image, op)
	}
}
