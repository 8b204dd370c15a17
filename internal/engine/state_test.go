package engine

import (
	"errors"
	"testing"
)

func testDefinition(t *testing.T, capacity int, containers ...Container) *Definition {
	t.Helper()
	return &Definition{
		ID:         "test",
		Name:       "Test Puzzle",
		Capacity:   capacity,
		Containers: containers,
	}
}

func mustState(t *testing.T, def *Definition) PuzzleState {
	t.Helper()
	s, err := NewState(def)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	return s
}

func mustApply(t *testing.T, s PuzzleState, from, to string) PuzzleState {
	t.Helper()
	next, err := s.Apply(from, to)
	if err != nil {
		t.Fatalf("Apply(%s, %s) failed: %v", from, to, err)
	}
	return next
}

func TestNewStateRejectsDuplicateIDs(t *testing.T) {
	def := testDefinition(t, 4,
		NewEmptyContainer("A", 4),
		NewEmptyContainer("A", 4),
	)
	if _, err := NewState(def); err == nil {
		t.Fatal("expected error for duplicate container ids")
	}
}

func TestApplyPoursTopRun(t *testing.T) {
	def := testDefinition(t, 4,
		mustContainer(t, "A", []Color{ColorRed, ColorBlue, ColorBlue, ColorBlue}, 4),
		NewEmptyContainer("B", 4),
	)
	s := mustState(t, def)

	next := mustApply(t, s, "A", "B")

	a, _ := next.Container("A")
	b, _ := next.Container("B")
	if a.Len() != 1 {
		t.Errorf("source should keep 1 unit, has %d", a.Len())
	}
	if b.Len() != 3 {
		t.Errorf("target should hold 3 units, has %d", b.Len())
	}
	for i := 0; i < 3; i++ {
		if c, _ := b.ColorAt(i); c != ColorBlue {
			t.Errorf("target unit %d = %v, want blue", i, c)
		}
	}

	wantMove := Move{From: "A", To: "B", Color: ColorBlue, Count: 3}
	if got := next.History(); len(got) != 1 || got[0] != wantMove {
		t.Errorf("history = %v, want [%v]", got, wantMove)
	}

	// The original state is untouched.
	origA, _ := s.Container("A")
	if origA.Len() != 4 {
		t.Errorf("original state mutated: source has %d units", origA.Len())
	}
	if s.MoveCount() != 0 {
		t.Errorf("original history grew to %d", s.MoveCount())
	}
}

func TestApplyErrors(t *testing.T) {
	def := testDefinition(t, 4,
		mustContainer(t, "A", []Color{ColorRed}, 4),
		mustContainer(t, "B", []Color{ColorBlue}, 4),
	)
	s := mustState(t, def)

	_, err := s.Apply("A", "Z")
	var ime *InvalidMoveError
	if !errors.As(err, &ime) || ime.Reason != RejectUnknownContainer {
		t.Fatalf("expected unknown-container rejection, got %v", err)
	}
	if !errors.Is(err, ErrInvalidMove) {
		t.Error("InvalidMoveError should match ErrInvalidMove")
	}

	_, err = s.Apply("A", "B")
	if !errors.As(err, &ime) || ime.Reason != RejectColorMismatch {
		t.Fatalf("expected color-mismatch rejection, got %v", err)
	}
}

func TestUndoRestoresPreviousState(t *testing.T) {
	def := testDefinition(t, 4,
		mustContainer(t, "A", []Color{ColorRed, ColorBlue, ColorBlue}, 4),
		mustContainer(t, "B", []Color{ColorBlue}, 4),
		NewEmptyContainer("C", 4),
	)
	s := mustState(t, def)

	after := mustApply(t, s, "A", "B")
	back, err := after.Undo()
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if !back.Equal(s) {
		t.Errorf("undo did not restore state:\n got %s\nwant %s", back.Key(), s.Key())
	}

	if _, err := s.Undo(); !errors.Is(err, ErrNoHistory) {
		t.Errorf("expected ErrNoHistory on fresh state, got %v", err)
	}
}

func TestUndoPartialPour(t *testing.T) {
	// A pours only 1 of its 2-unit run into B (one slot free). Undo must move
	// exactly that 1 unit back, not the whole run now sitting in B.
	def := testDefinition(t, 4,
		mustContainer(t, "A", []Color{ColorRed, ColorBlue, ColorBlue}, 4),
		mustContainer(t, "B", []Color{ColorRed, ColorRed, ColorBlue}, 4),
	)
	s := mustState(t, def)

	after := mustApply(t, s, "A", "B")
	b, _ := after.Container("B")
	if !b.IsFull() {
		t.Fatalf("expected full target after pour, len %d", b.Len())
	}

	back, err := after.Undo()
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if !back.Equal(s) {
		t.Errorf("undo did not restore state:\n got %s\nwant %s", back.Key(), s.Key())
	}
}

func TestResetDropsHistory(t *testing.T) {
	def := testDefinition(t, 4,
		mustContainer(t, "A", []Color{ColorBlue, ColorBlue}, 4),
		NewEmptyContainer("B", 4),
	)
	s := mustState(t, def)

	moved := mustApply(t, s, "A", "B")
	reset, err := moved.Reset()
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if !reset.Equal(s) {
		t.Error("reset should match the initial state")
	}
	if reset.MoveCount() != 0 {
		t.Errorf("reset kept %d history entries", reset.MoveCount())
	}
}

func TestColorConservation(t *testing.T) {
	def := testDefinition(t, 4,
		mustContainer(t, "A", []Color{ColorRed, ColorBlue, ColorRed, ColorBlue}, 4),
		mustContainer(t, "B", []Color{ColorBlue, ColorRed, ColorBlue, ColorRed}, 4),
		NewEmptyContainer("C", 4),
		NewEmptyContainer("D", 4),
	)
	s := mustState(t, def)
	want := colorCounts(s)

	// Walk a handful of legal moves greedily and recount after each.
	for step := 0; step < 10; step++ {
		moved := false
		cs := s.Containers()
		for i := range cs {
			for j := range cs {
				if i == j || !CanMove(cs[i], cs[j]) {
					continue
				}
				s = mustApply(t, s, cs[i].ID, cs[j].ID)
				moved = true
				break
			}
			if moved {
				break
			}
		}
		if !moved {
			break
		}
		got := colorCounts(s)
		for c, n := range want {
			if got[c] != n {
				t.Fatalf("step %d: color %v count %d, want %d", step, c, got[c], n)
			}
		}
	}
}

func colorCounts(s PuzzleState) map[Color]int {
	counts := make(map[Color]int)
	for _, c := range s.Containers() {
		for _, col := range c.Colors() {
			counts[col]++
		}
	}
	return counts
}

func TestKeyCanonical(t *testing.T) {
	def := testDefinition(t, 4,
		mustContainer(t, "A", []Color{ColorRed, ColorBlue}, 4),
		NewEmptyContainer("B", 4),
		mustContainer(t, "C", []Color{ColorGreen}, 4),
	)
	s := mustState(t, def)

	if got, want := s.Key(), "RB||G"; got != want {
		t.Errorf("Key = %q, want %q", got, want)
	}
	if s.Key() != s.Key() {
		t.Error("Key should be deterministic")
	}

	// History does not participate in the key: a move and its undo land on
	// the same key as the start.
	moved := mustApply(t, s, "C", "B")
	if moved.Key() == s.Key() {
		t.Error("different configurations should have different keys")
	}
	back, _ := moved.Undo()
	if back.Key() != s.Key() {
		t.Errorf("undone state key %q differs from original %q", back.Key(), s.Key())
	}
}

func TestWinDetection(t *testing.T) {
	def := testDefinition(t, 2,
		mustContainer(t, "A", []Color{ColorRed, ColorRed}, 2),
		mustContainer(t, "B", []Color{ColorBlue}, 2),
		mustContainer(t, "C", []Color{ColorBlue}, 2),
	)
	s := mustState(t, def)
	if s.IsWon() {
		t.Fatal("puzzle should not start won")
	}

	done := mustApply(t, s, "B", "C")
	if !done.IsWon() {
		t.Errorf("expected win, state %s", done.Key())
	}
	if done.IsStuck() {
		t.Error("a won state is not stuck")
	}
}

func TestLossAgainstMoveLimit(t *testing.T) {
	def := testDefinition(t, 4,
		mustContainer(t, "A", []Color{ColorRed, ColorBlue}, 4),
		NewEmptyContainer("B", 4),
		NewEmptyContainer("C", 4),
	)
	def.MoveLimit = 1

	s := mustState(t, def)
	if s.IsLost() {
		t.Fatal("fresh state should not be lost")
	}

	// One wasted move hits the limit without winning.
	wasted := mustApply(t, s, "A", "B")
	if !wasted.IsLost() {
		t.Error("limit reached without win should be lost")
	}
}

func TestStarsGrading(t *testing.T) {
	def := &Definition{StarThresholds: [3]int{10, 8, 6}}

	tests := []struct {
		moves int
		want  int
	}{
		{5, 3},
		{6, 3},
		{7, 2},
		{8, 2},
		{9, 1},
		{10, 1},
		{11, 0},
	}
	for _, tt := range tests {
		if got := def.Stars(tt.moves); got != tt.want {
			t.Errorf("Stars(%d) = %d, want %d", tt.moves, got, tt.want)
		}
	}

	ungraded := &Definition{}
	if ungraded.Stars(1) != 0 {
		t.Error("ungraded puzzle should award 0 stars")
	}
}
