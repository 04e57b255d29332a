package main

import (
	"testing"

	"github.com/milk9111/blockpush/grid"
	"github.com/milk9111/blockpush/levels"
)

func testLevel(t *testing.T, rows [][]int) *levels.Level {
	t.Helper()
	lvl, err := levels.FromGrid(rows)
	if err != nil {
		t.Fatalf("FromGrid: %v", err)
	}
	lvl.Name = "test"
	return lvl
}

func TestMovePushesBlocks(t *testing.T) {
	// player, block, goal, wall in a row
	lvl := testLevel(t, [][]int{
		{8, 8, 8, 8, 8, 8},
		{8, 1, 2, 4, 0, 8},
		{8, 8, 8, 8, 8, 8},
	})

	p, err := newPlayState(lvl)
	if err != nil {
		t.Fatalf("newPlayState: %v", err)
	}

	if !p.move(1, 0) {
		t.Fatalf("push onto the goal should succeed")
	}
	if p.player != (grid.Position{X: 2, Y: 1}) {
		t.Fatalf("player at %v", p.player)
	}
	if !p.blocks[grid.Position{X: 3, Y: 1}] {
		t.Fatalf("block should sit on the goal")
	}
	if !p.solved() {
		t.Fatalf("level should be solved")
	}
	if p.moves != 1 {
		t.Fatalf("moves = %d", p.moves)
	}
}

func TestMoveBlockedCases(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		dx   int
	}{
		{
			name: "into_wall",
			rows: [][]int{
				{8, 8, 8},
				{8, 1, 8},
				{8, 8, 8},
			},
			dx: 1,
		},
		{
			name: "block_against_wall",
			rows: [][]int{
				{8, 8, 8, 8},
				{8, 1, 2, 8},
				{8, 8, 8, 8},
			},
			dx: 1,
		},
		{
			name: "two_blocks_in_a_row",
			rows: [][]int{
				{8, 8, 8, 8, 8, 8},
				{8, 1, 2, 2, 0, 8},
				{8, 8, 8, 8, 8, 8},
			},
			dx: 1,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := newPlayState(testLevel(t, c.rows))
			if err != nil {
				t.Fatalf("newPlayState: %v", err)
			}
			start := p.player
			if p.move(c.dx, 0) {
				t.Fatalf("move should be blocked")
			}
			if p.player != start {
				t.Fatalf("player moved to %v", p.player)
			}
			if p.moves != 0 {
				t.Fatalf("blocked move should not count, moves = %d", p.moves)
			}
		})
	}
}

func TestReset(t *testing.T) {
	lvl := testLevel(t, [][]int{
		{8, 8, 8, 8, 8, 8},
		{8, 1, 2, 0, 4, 8},
		{8, 8, 8, 8, 8, 8},
	})

	p, err := newPlayState(lvl)
	if err != nil {
		t.Fatalf("newPlayState: %v", err)
	}

	p.move(1, 0)
	p.move(1, 0)
	if !p.solved() {
		t.Fatalf("expected a solved level before reset")
	}

	p.reset()
	if p.player != (grid.Position{X: 1, Y: 1}) {
		t.Fatalf("player not back at spawn: %v", p.player)
	}
	if !p.blocks[grid.Position{X: 2, Y: 1}] {
		t.Fatalf("block not back at its start")
	}
	if p.moves != 0 || p.won {
		t.Fatalf("reset should clear progress")
	}
}

func TestNewPlayStateRequiresSpawn(t *testing.T) {
	lvl := testLevel(t, [][]int{
		{8, 8, 8},
		{8, 0, 8},
		{8, 8, 8},
	})
	if _, err := newPlayState(lvl); err == nil {
		t.Fatalf("expected an error for a level without a player")
	}
}

func TestSolvedNeedsBlocks(t *testing.T) {
	lvl := testLevel(t, [][]int{
		{8, 8, 8},
		{8, 1, 8},
		{8, 8, 8},
	})
	p, err := newPlayState(lvl)
	if err != nil {
		t.Fatalf("newPlayState: %v", err)
	}
	if p.solved() {
		t.Fatalf("a level without blocks should not count as solved")
	}
}
