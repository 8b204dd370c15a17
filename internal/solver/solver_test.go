package solver

import (
	"testing"

	"github.com/EngEryx/tubesort/internal/engine"
)

func mustContainer(t *testing.T, id string, colors []engine.Color, capacity int) engine.Container {
	t.Helper()
	c, err := engine.NewContainer(id, colors, capacity)
	if err != nil {
		t.Fatalf("NewContainer(%s) failed: %v", id, err)
	}
	return c
}

func mustState(t *testing.T, capacity int, containers ...engine.Container) engine.PuzzleState {
	t.Helper()
	def := &engine.Definition{ID: "test", Capacity: capacity, Containers: containers}
	s, err := engine.NewState(def)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	return s
}

func TestSolveAlreadyWon(t *testing.T) {
	s := mustState(t, 2,
		mustContainer(t, "A", []engine.Color{engine.ColorRed, engine.ColorRed}, 2),
		engine.NewEmptyContainer("B", 2),
	)

	res := Solve(s, DefaultOptions())
	if !res.Found() {
		t.Fatalf("expected solved, got %v", res.Outcome)
	}
	if len(res.Moves) != 0 {
		t.Errorf("won state needs 0 moves, got %d", len(res.Moves))
	}
}

func TestSolveFindsShortestPath(t *testing.T) {
	// Solvable in exactly 2 moves: A's blue onto B, then A's red onto C.
	s := mustState(t, 2,
		mustContainer(t, "A", []engine.Color{engine.ColorRed, engine.ColorBlue}, 2),
		mustContainer(t, "B", []engine.Color{engine.ColorBlue}, 2),
		mustContainer(t, "C", []engine.Color{engine.ColorRed}, 2),
	)

	res := Solve(s, DefaultOptions())
	if !res.Found() {
		t.Fatalf("expected solved, got %v", res.Outcome)
	}
	if len(res.Moves) != 2 {
		t.Fatalf("expected 2-move solution, got %d: %v", len(res.Moves), res.Moves)
	}

	// The reported path must actually solve the puzzle.
	cur := s
	for _, m := range res.Moves {
		next, err := cur.Apply(m.From, m.To)
		if err != nil {
			t.Fatalf("solution move %v is illegal: %v", m, err)
		}
		cur = next
	}
	if !cur.IsWon() {
		t.Errorf("solution path does not reach a won state: %s", cur.Key())
	}
}

func TestSolvePathExcludesPriorHistory(t *testing.T) {
	// Solving from a mid-game state must return only the remaining moves,
	// not the moves already played.
	s := mustState(t, 2,
		mustContainer(t, "A", []engine.Color{engine.ColorRed, engine.ColorBlue}, 2),
		mustContainer(t, "B", []engine.Color{engine.ColorBlue}, 2),
		mustContainer(t, "C", []engine.Color{engine.ColorRed}, 2),
	)
	mid, err := s.Apply("A", "B")
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	res := Solve(mid, DefaultOptions())
	if !res.Found() {
		t.Fatalf("expected solved, got %v", res.Outcome)
	}
	if len(res.Moves) != 1 {
		t.Errorf("expected 1 remaining move, got %d: %v", len(res.Moves), res.Moves)
	}
}

func TestSolveProvesUnsolvable(t *testing.T) {
	// Both containers full and mixed: no legal move exists anywhere.
	s := mustState(t, 2,
		mustContainer(t, "A", []engine.Color{engine.ColorRed, engine.ColorBlue}, 2),
		mustContainer(t, "B", []engine.Color{engine.ColorBlue, engine.ColorRed}, 2),
	)

	res := Solve(s, DefaultOptions())
	if res.Outcome != OutcomeUnsolvable {
		t.Fatalf("expected unsolvable, got %v", res.Outcome)
	}
	if res.Found() {
		t.Error("unsolvable result must not report a solution")
	}
}

func TestSolveRespectsStateBudget(t *testing.T) {
	s := mustState(t, 4,
		mustContainer(t, "A", []engine.Color{engine.ColorRed, engine.ColorBlue, engine.ColorRed, engine.ColorBlue}, 4),
		mustContainer(t, "B", []engine.Color{engine.ColorBlue, engine.ColorRed, engine.ColorBlue, engine.ColorRed}, 4),
		engine.NewEmptyContainer("C", 4),
		engine.NewEmptyContainer("D", 4),
	)

	res := Solve(s, Options{MaxStates: 3, MaxDepth: 80})
	if res.Outcome != OutcomeBudgetExceeded {
		t.Fatalf("expected budget exceeded, got %v", res.Outcome)
	}
	if res.StatesExplored > 3 {
		t.Errorf("explored %d states past a budget of 3", res.StatesExplored)
	}
}

func TestSolveRespectsDepthBudget(t *testing.T) {
	// Needs 2 moves but the search may only go 1 deep.
	s := mustState(t, 2,
		mustContainer(t, "A", []engine.Color{engine.ColorRed, engine.ColorBlue}, 2),
		mustContainer(t, "B", []engine.Color{engine.ColorBlue}, 2),
		mustContainer(t, "C", []engine.Color{engine.ColorRed}, 2),
	)

	res := Solve(s, Options{MaxStates: 200_000, MaxDepth: 1})
	if res.Outcome != OutcomeBudgetExceeded {
		t.Fatalf("expected budget exceeded at depth 1, got %v", res.Outcome)
	}
}

func TestNextHint(t *testing.T) {
	s := mustState(t, 2,
		mustContainer(t, "A", []engine.Color{engine.ColorRed, engine.ColorBlue}, 2),
		mustContainer(t, "B", []engine.Color{engine.ColorBlue}, 2),
		mustContainer(t, "C", []engine.Color{engine.ColorRed}, 2),
	)

	hint := NextHint(s, DefaultOptions())
	if !hint.Found {
		t.Fatalf("expected a hint, outcome %v", hint.Outcome)
	}
	if hint.MovesRemaining != 2 {
		t.Errorf("MovesRemaining = %d, want 2", hint.MovesRemaining)
	}

	// Following the hint must keep the puzzle on a shortest path.
	next, err := s.Apply(hint.Move.From, hint.Move.To)
	if err != nil {
		t.Fatalf("hinted move is illegal: %v", err)
	}
	res := Solve(next, DefaultOptions())
	if !res.Found() || len(res.Moves) != 1 {
		t.Errorf("after hint expected 1 move left, got %v (%d moves)", res.Outcome, len(res.Moves))
	}
}

func TestNextHintOnWonState(t *testing.T) {
	s := mustState(t, 2,
		mustContainer(t, "A", []engine.Color{engine.ColorRed, engine.ColorRed}, 2),
	)

	hint := NextHint(s, DefaultOptions())
	if hint.Found {
		t.Error("won state has no next move to hint")
	}
	if hint.Outcome != OutcomeSolved {
		t.Errorf("outcome = %v, want solved", hint.Outcome)
	}
}

func TestNextHintUnsolvable(t *testing.T) {
	s := mustState(t, 2,
		mustContainer(t, "A", []engine.Color{engine.ColorRed, engine.ColorBlue}, 2),
		mustContainer(t, "B", []engine.Color{engine.ColorBlue, engine.ColorRed}, 2),
	)

	hint := NextHint(s, DefaultOptions())
	if hint.Found {
		t.Error("unsolvable state must not produce a hint")
	}
	if hint.Outcome != OutcomeUnsolvable {
		t.Errorf("outcome = %v, want unsolvable", hint.Outcome)
	}
}
