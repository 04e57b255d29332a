// Package grid implements the editing core for grid-based puzzle levels:
// the placement rules for floors, blocks, goals and the player start, the
// automatic wall border maintained around floor tiles, and the export of the
// sparse placement state as a dense numeric level grid.
//
// The package is presentation-agnostic. Placed items are tracked by opaque
// handles owned by the caller; the editor stores them by identity and never
// inspects them.
package grid

import (
	"errors"
	"fmt"
)

// Tile values used in serialized level grids.
const (
	TileEmpty  = 0
	TilePlayer = 1
	TileBlock  = 2
	TileGoal   = 4
	TileWall   = 8
)

// ErrNoWalls is returned by Serialize when no walls have been placed. The
// exported grid's extent is the bounding box of the wall border, so an editor
// without walls has no defined extent.
var ErrNoWalls = errors.New("grid: no walls placed")

// Position identifies one grid cell. The grid is unbounded and sparse;
// coordinates may be negative.
type Position struct {
	X, Y int
}

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// neighborOffsets is the 8-neighborhood used for the wall border.
var neighborOffsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type playerEntry[H any] struct {
	pos    Position
	handle H
}

// Editor owns all placement state for one editing session. H is the handle
// type the presentation layer associates with each placed item (a sprite
// entity, typically).
//
// An Editor is not safe for concurrent use. Every command is a synchronous
// state transition issued from a single control thread.
type Editor[H any] struct {
	floors map[Position]H
	walls  map[Position]H
	blocks map[Position]H
	goals  map[Position]H

	player *playerEntry[H]
}

// NewEditor returns an empty editor.
func NewEditor[H any]() *Editor[H] {
	return &Editor[H]{
		floors: make(map[Position]H),
		walls:  make(map[Position]H),
		blocks: make(map[Position]H),
		goals:  make(map[Position]H),
	}
}

// CanPlace reports whether an occupant (block, goal or player) may be placed
// at p: the cell must hold a floor and no occupant. It does not gate floor
// placement.
func (e *Editor[H]) CanPlace(p Position) bool {
	if _, ok := e.floors[p]; !ok {
		return false
	}
	if _, ok := e.blocks[p]; ok {
		return false
	}
	if _, ok := e.goals[p]; ok {
		return false
	}
	return e.player == nil || e.player.pos != p
}

// PlaceFloor records a floor at p, converting any wall there into floor and
// extending the wall border: every 8-neighbor that has neither a floor nor a
// wall gains one. makeWall is called once per new wall so the caller can mint
// a handle for it (a nil makeWall records zero-valued handles). The removed
// wall handle, if any, is returned so its visual can be destroyed.
//
// Placing a floor twice at the same cell only overwrites the stored handle;
// floors and walls are otherwise unchanged. Walls are never removed when this
// grows the floor region, only converted cell by cell.
func (e *Editor[H]) PlaceFloor(p Position, floor H, makeWall func(Position) H) (removed H, hadWall bool) {
	e.floors[p] = floor

	if h, ok := e.walls[p]; ok {
		delete(e.walls, p)
		removed, hadWall = h, true
	}

	for _, off := range neighborOffsets {
		n := p.Add(off.X, off.Y)
		if _, ok := e.floors[n]; ok {
			continue
		}
		if _, ok := e.walls[n]; ok {
			continue
		}
		var h H
		if makeWall != nil {
			h = makeWall(n)
		}
		e.walls[n] = h
	}

	return removed, hadWall
}

// PlaceBlock places a block at p. It reports false, leaving the state
// untouched, when the cell cannot hold an occupant.
func (e *Editor[H]) PlaceBlock(p Position, h H) bool {
	if !e.CanPlace(p) {
		return false
	}
	e.blocks[p] = h
	return true
}

// PlaceGoal places a goal at p. It reports false, leaving the state
// untouched, when the cell cannot hold an occupant.
func (e *Editor[H]) PlaceGoal(p Position, h H) bool {
	if !e.CanPlace(p) {
		return false
	}
	e.goals[p] = h
	return true
}

// PlacePlayer installs the player start marker at p. There is at most one
// player: any existing entry is removed first and its handle returned so the
// caller can despawn it. The placement is a no-op when p cannot hold an
// occupant.
func (e *Editor[H]) PlacePlayer(p Position, h H) (prev H, hadPrev, placed bool) {
	if !e.CanPlace(p) {
		return prev, false, false
	}
	if e.player != nil {
		prev, hadPrev = e.player.handle, true
	}
	e.player = &playerEntry[H]{pos: p, handle: h}
	return prev, hadPrev, true
}

// RemoveObject removes the occupant at p and returns its handle. Categories
// are checked in a fixed order: block, then goal, then player. Floors and
// walls are never removable. The second return is false when the cell holds
// no occupant.
func (e *Editor[H]) RemoveObject(p Position) (H, bool) {
	if h, ok := e.blocks[p]; ok {
		delete(e.blocks, p)
		return h, true
	}
	if h, ok := e.goals[p]; ok {
		delete(e.goals, p)
		return h, true
	}
	if e.player != nil && e.player.pos == p {
		h := e.player.handle
		e.player = nil
		return h, true
	}
	var zero H
	return zero, false
}

// HasFloor reports whether p holds a floor tile.
func (e *Editor[H]) HasFloor(p Position) bool {
	_, ok := e.floors[p]
	return ok
}

// HasWall reports whether p holds a wall tile.
func (e *Editor[H]) HasWall(p Position) bool {
	_, ok := e.walls[p]
	return ok
}

// Player returns the player start entry, if one has been placed.
func (e *Editor[H]) Player() (Position, H, bool) {
	if e.player == nil {
		var zero H
		return Position{}, zero, false
	}
	return e.player.pos, e.player.handle, true
}

// Counts returns how many floors, walls, blocks and goals are recorded.
func (e *Editor[H]) Counts() (floors, walls, blocks, goals int) {
	return len(e.floors), len(e.walls), len(e.blocks), len(e.goals)
}

// Serialize exports the placement state as a dense row-major grid of tile
// values. The grid's extent is the bounding box of the wall border; walls
// paint TileWall, then goals, blocks and the player, later categories
// overwriting earlier ones at the same cell. Floors are not painted and stay
// TileEmpty. Row 0 corresponds to the minimum wall y coordinate and column 0
// to the minimum wall x coordinate.
//
// Serialize fails with ErrNoWalls on an editor without walls, and with a
// descriptive error when an occupant lies outside the wall bounding box
// instead of writing out of range.
func (e *Editor[H]) Serialize() ([][]int, error) {
	if len(e.walls) == 0 {
		return nil, ErrNoWalls
	}

	first := true
	var minX, maxX, minY, maxY int
	for p := range e.walls {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	level := make([][]int, maxY-minY+1)
	for i := range level {
		level[i] = make([]int, maxX-minX+1)
	}

	outside := func(p Position) bool {
		return p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY
	}

	for p := range e.walls {
		level[p.Y-minY][p.X-minX] = TileWall
	}
	for p := range e.goals {
		if outside(p) {
			return nil, fmt.Errorf("grid: goal at (%d, %d) outside wall bounds", p.X, p.Y)
		}
		level[p.Y-minY][p.X-minX] = TileGoal
	}
	for p := range e.blocks {
		if outside(p) {
			return nil, fmt.Errorf("grid: block at (%d, %d) outside wall bounds", p.X, p.Y)
		}
		level[p.Y-minY][p.X-minX] = TileBlock
	}
	if e.player != nil {
		p := e.player.pos
		if outside(p) {
			return nil, fmt.Errorf("grid: player at (%d, %d) outside wall bounds", p.X, p.Y)
		}
		level[p.Y-minY][p.X-minX] = TilePlayer
	}

	return level, nil
}
