package ecs

import "testing"

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.Create(Sprite{Layer: i}))
			}
			if w.Len() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, w.Len())
			}
			if c.destroyIndex >= 0 {
				if !w.Destroy(ents[c.destroyIndex]) {
					t.Fatalf("Destroy should return true for a live entity")
				}
				if w.Alive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.Len() != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, w.Len())
				}
			}
		})
	}
}

func TestDestroyDeadEntity(t *testing.T) {
	w := NewWorld()
	e := w.Create(Sprite{})
	if !w.Destroy(e) {
		t.Fatalf("first destroy should succeed")
	}
	if w.Destroy(e) {
		t.Fatalf("second destroy should report false")
	}
}

func TestSpriteMutation(t *testing.T) {
	w := NewWorld()
	e := w.Create(Sprite{X: 1, Y: 2, Layer: 3})

	s, ok := w.Sprite(e)
	if !ok {
		t.Fatalf("expected a sprite for a live entity")
	}
	s.X = 64

	s2, _ := w.Sprite(e)
	if s2.X != 64 {
		t.Fatalf("sprite mutation not visible: X = %v", s2.X)
	}
}

func TestClear(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		w.Create(Sprite{})
	}
	w.Clear()
	if w.Len() != 0 {
		t.Fatalf("expected an empty world after Clear, got %d", w.Len())
	}
}
