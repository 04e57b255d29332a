package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/blockpush/grid"
	"github.com/milk9111/blockpush/levels"
)

// playState runs one level: the player pushes blocks onto goals, one push at
// a time. Walls and goals come from the level; the player and blocks are
// tracked separately so they can move.
type playState struct {
	level *levels.Level

	player grid.Position
	blocks map[grid.Position]bool
	goals  map[grid.Position]bool

	moves int
	won   bool
}

func newPlayState(lvl *levels.Level) (*playState, error) {
	x, y, ok := lvl.PlayerSpawn()
	if !ok {
		return nil, fmt.Errorf("level %s has no player spawn", lvl.Name)
	}
	p := &playState{
		level:  lvl,
		player: grid.Position{X: x, Y: y},
	}
	p.populate()
	return p, nil
}

func (p *playState) populate() {
	p.blocks = make(map[grid.Position]bool)
	p.goals = make(map[grid.Position]bool)
	for y := 0; y < p.level.Height; y++ {
		for x := 0; x < p.level.Width; x++ {
			switch p.level.At(x, y) {
			case grid.TileBlock:
				p.blocks[grid.Position{X: x, Y: y}] = true
			case grid.TileGoal:
				p.goals[grid.Position{X: x, Y: y}] = true
			}
		}
	}
}

func (p *playState) reset() {
	x, y, _ := p.level.PlayerSpawn()
	p.player = grid.Position{X: x, Y: y}
	p.populate()
	p.moves = 0
	p.won = false
}

// move attempts one step. A block in the way is pushed when the cell behind
// it is free; two blocks in a row, or a wall, stop the move.
func (p *playState) move(dx, dy int) bool {
	dest := p.player.Add(dx, dy)
	if !p.walkable(dest) {
		return false
	}
	if p.blocks[dest] {
		behind := dest.Add(dx, dy)
		if !p.walkable(behind) || p.blocks[behind] {
			return false
		}
		delete(p.blocks, dest)
		p.blocks[behind] = true
	}
	p.player = dest
	p.moves++
	return true
}

func (p *playState) walkable(pos grid.Position) bool {
	return p.level.InBounds(pos.X, pos.Y) && p.level.At(pos.X, pos.Y) != grid.TileWall
}

// solved reports whether every block sits on a goal. A level with no blocks
// is never solved.
func (p *playState) solved() bool {
	if len(p.blocks) == 0 {
		return false
	}
	for b := range p.blocks {
		if !p.goals[b] {
			return false
		}
	}
	return true
}

func (p *playState) update(g *Game) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.reset()
		return
	}
	if p.won {
		return
	}

	moved := false
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		moved = p.move(0, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		moved = p.move(0, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		moved = p.move(-1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		moved = p.move(1, 0)
	}
	if moved && p.solved() {
		p.won = true
		g.session.MarkCompleted(p.level.Name)
	}
}

func (p *playState) draw(screen *ebiten.Image, g *Game) {
	ts := float64(g.spec.TileSize)
	offX := (float64(g.spec.BaseWidth) - float64(p.level.Width)*ts) / 2
	offY := (float64(g.spec.BaseHeight) - float64(p.level.Height)*ts) / 2

	blit := func(kind string, x, y int) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x)*ts+offX, float64(y)*ts+offY)
		screen.DrawImage(g.theme.image(kind), op)
	}

	for y := 0; y < p.level.Height; y++ {
		for x := 0; x < p.level.Width; x++ {
			if p.level.At(x, y) == grid.TileWall {
				blit("wall", x, y)
			}
		}
	}
	for goal := range p.goals {
		blit("goal", goal.X, goal.Y)
	}
	for b := range p.blocks {
		blit("block", b.X, b.Y)
	}
	blit("player", p.player.X, p.player.Y)

	msg := fmt.Sprintf("PLAY  %s   arrows: move   R: reset   Tab: edit   Esc: pause\nmoves=%d", p.level.Name, p.moves)
	if p.won {
		msg += "   SOLVED"
	}
	ebitenutil.DebugPrint(screen, msg)
}
