package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/blockpush/checks"
	"github.com/milk9111/blockpush/common"
	"github.com/milk9111/blockpush/ecs"
	"github.com/milk9111/blockpush/grid"
	"github.com/milk9111/blockpush/levels"
)

// editSession is the presentation layer over the editing core: it moves the
// cursor, translates key commands into core operations, and spawns/despawns
// sprites for the handles the core returns.
type editSession struct {
	editor *grid.Editor[ecs.Entity]
	world  *ecs.World

	cursor   grid.Position
	cooldown int

	camX, camY float64

	status string
}

func newEditSession(g *Game) *editSession {
	s := &editSession{
		editor: grid.NewEditor[ecs.Entity](),
		world:  ecs.NewWorld(),
	}
	s.camX, s.camY = s.cameraTarget(g)
	return s
}

func (s *editSession) update(g *Game) {
	if s.cooldown > 0 {
		s.cooldown--
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		s.export(g)
	}

	if s.cooldown == 0 {
		s.handleAction(g)
	}

	tx, ty := s.cameraTarget(g)
	s.camX = common.Lerp(s.camX, tx, 0.2)
	s.camY = common.Lerp(s.camY, ty, 0.2)
}

// handleAction runs at most one cursor movement or placement per cooldown
// window, so holding a key repeats at a controlled rate.
func (s *editSession) handleAction(g *Game) {
	dx, dy := 0, 0
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyUp):
		dy = -1
	case ebiten.IsKeyPressed(ebiten.KeyDown):
		dy = 1
	case ebiten.IsKeyPressed(ebiten.KeyLeft):
		dx = -1
	case ebiten.IsKeyPressed(ebiten.KeyRight):
		dx = 1
	}
	if dx != 0 || dy != 0 {
		s.cursor = s.cursor.Add(dx, dy)
		s.cooldown = g.editorSpec.CooldownFrames
		return
	}

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyZ):
		if !s.editor.HasFloor(s.cursor) {
			s.placeFloor(g)
			s.cooldown = g.editorSpec.CooldownFrames
		}
	case ebiten.IsKeyPressed(ebiten.KeyX):
		if s.placeOccupant(g, "block") {
			s.cooldown = g.editorSpec.CooldownFrames
		}
	case ebiten.IsKeyPressed(ebiten.KeyC):
		if s.placeOccupant(g, "goal") {
			s.cooldown = g.editorSpec.CooldownFrames
		}
	case ebiten.IsKeyPressed(ebiten.KeyV):
		if s.placePlayer(g) {
			s.cooldown = g.editorSpec.CooldownFrames
		}
	case ebiten.IsKeyPressed(ebiten.KeyS):
		if h, ok := s.editor.RemoveObject(s.cursor); ok {
			s.world.Destroy(h)
			s.cooldown = g.editorSpec.CooldownFrames
		}
	}
}

func (s *editSession) placeFloor(g *Game) {
	removed, hadWall := s.editor.PlaceFloor(s.cursor, s.spawn(g, "floor", s.cursor),
		func(p grid.Position) ecs.Entity {
			return s.spawn(g, "wall", p)
		})
	if hadWall {
		s.world.Destroy(removed)
	}
}

func (s *editSession) placeOccupant(g *Game, kind string) bool {
	if !s.editor.CanPlace(s.cursor) {
		return false
	}
	e := s.spawn(g, kind, s.cursor)
	var placed bool
	if kind == "block" {
		placed = s.editor.PlaceBlock(s.cursor, e)
	} else {
		placed = s.editor.PlaceGoal(s.cursor, e)
	}
	if !placed {
		s.world.Destroy(e)
	}
	return placed
}

func (s *editSession) placePlayer(g *Game) bool {
	if !s.editor.CanPlace(s.cursor) {
		return false
	}
	e := s.spawn(g, "player", s.cursor)
	prev, hadPrev, placed := s.editor.PlacePlayer(s.cursor, e)
	if !placed {
		s.world.Destroy(e)
		return false
	}
	if hadPrev {
		s.world.Destroy(prev)
	}
	return true
}

func (s *editSession) spawn(g *Game, kind string, p grid.Position) ecs.Entity {
	ts := float64(g.spec.TileSize)
	return s.world.Create(ecs.Sprite{
		Image: g.theme.image(kind),
		X:     float64(p.X) * ts,
		Y:     float64(p.Y) * ts,
		Layer: g.theme.layer(kind),
	})
}

// export serializes the layout, runs the check scripts, writes the level
// under levels/ and copies the JSON to the clipboard.
func (s *editSession) export(g *Game) {
	rows, err := s.editor.Serialize()
	if err != nil {
		s.status = err.Error()
		return
	}
	lvl, err := levels.FromGrid(rows)
	if err != nil {
		s.status = err.Error()
		return
	}

	results, err := checks.RunAll(lvl)
	if err != nil {
		s.status = err.Error()
		return
	}
	for _, r := range results {
		if !r.OK {
			s.status = fmt.Sprintf("%s: %s", r.Script, r.Reason)
			return
		}
	}

	path, err := lvl.SaveNew()
	if err != nil {
		s.status = err.Error()
		return
	}
	g.session.SetLastLevel(path)

	if g.clipboardOK {
		if data, err := lvl.JSON(); err == nil {
			clipboard.Write(clipboard.FmtText, data)
		}
	}

	s.status = "exported to " + path
	log.Printf("exported level to %s", path)
}

func (s *editSession) cameraTarget(g *Game) (float64, float64) {
	ts := float64(g.spec.TileSize)
	cx := float64(s.cursor.X)*ts + ts/2
	cy := float64(s.cursor.Y)*ts + ts/2
	return float64(g.spec.BaseWidth)/2 - cx, float64(g.spec.BaseHeight)/2 - cy
}

func (s *editSession) draw(screen *ebiten.Image, g *Game) {
	s.world.Draw(screen, s.camX, s.camY)

	ts := float64(g.spec.TileSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.cursor.X)*ts+s.camX, float64(s.cursor.Y)*ts+s.camY)
	screen.DrawImage(g.theme.image("cursor"), op)

	floors, walls, blocks, goals := s.editor.Counts()
	msg := fmt.Sprintf(
		"EDIT  arrows: move   Z: floor   X: block   C: goal   V: player   S: remove   E: export   Tab: play   Esc: pause\nfloors=%d walls=%d blocks=%d goals=%d",
		floors, walls, blocks, goals)
	if _, _, ok := s.editor.Player(); ok {
		msg += " player=yes"
	}
	if s.status != "" {
		msg += "\n" + s.status
	}
	ebitenutil.DebugPrint(screen, msg)
}
