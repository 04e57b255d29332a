package session

import "testing"

func TestMemoryOnlySession(t *testing.T) {
	// A zero Manager is the degraded, memory-only mode.
	s := &Manager{}

	if s.LastLevel() != "" {
		t.Fatalf("fresh session should have no last level")
	}

	s.SetLastLevel("levels/level_5.json")
	if s.LastLevel() != "levels/level_5.json" {
		t.Fatalf("last level = %q", s.LastLevel())
	}
}

func TestMarkCompleted(t *testing.T) {
	s := &Manager{}

	if s.IsCompleted("level_1") {
		t.Fatalf("nothing should be completed yet")
	}

	s.MarkCompleted("level_1")
	s.MarkCompleted("level_1")
	s.MarkCompleted("")

	if !s.IsCompleted("level_1") {
		t.Fatalf("level_1 should be completed")
	}
	if len(s.state.Completed) != 1 {
		t.Fatalf("completed list should dedupe, got %v", s.state.Completed)
	}
}
