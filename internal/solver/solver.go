// Package solver finds shortest solutions for tube puzzles via breadth-first
// search over the legal-move graph. BFS rather than DFS because the first
// solution it reaches is guaranteed optimal, which hint quality depends on.
package solver

import (
	"time"

	"github.com/EngEryx/tubesort/internal/engine"
)

// Options bound the search effort. Exceeding a budget is a soft failure
// reported as OutcomeBudgetExceeded, never a crash.
type Options struct {
	// MaxStates caps the number of states explored.
	MaxStates int

	// MaxDepth caps the solution length searched for.
	MaxDepth int
}

// DefaultOptions returns budgets that comfortably cover generated puzzles.
func DefaultOptions() Options {
	return Options{
		MaxStates: 200_000,
		MaxDepth:  80,
	}
}

// Outcome classifies a search result. An exhausted budget is explicitly not
// a proof of unsolvability and callers must not conflate the two.
type Outcome uint8

const (
	// OutcomeSolved means an optimal solution was found.
	OutcomeSolved Outcome = iota

	// OutcomeUnsolvable means the full reachable state space was explored
	// without finding a solved state.
	OutcomeUnsolvable

	// OutcomeBudgetExceeded means no solution was found within the
	// state/depth budget.
	OutcomeBudgetExceeded
)

// String returns a human-readable outcome description.
func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeUnsolvable:
		return "unsolvable"
	case OutcomeBudgetExceeded:
		return "no solution found within budget"
	default:
		return "unknown"
	}
}

// Result is the outcome of a full solve.
type Result struct {
	Outcome        Outcome
	Moves          []engine.Move // Optimal path when Outcome is OutcomeSolved
	StatesExplored int
	Elapsed        time.Duration
}

// Found returns true when an optimal solution was found.
func (r Result) Found() bool {
	return r.Outcome == OutcomeSolved
}

// Hint is the outcome of a next-move query.
type Hint struct {
	Found          bool
	Move           engine.Move // First move of an optimal solution
	MovesRemaining int         // Total moves to a solved state, including Move
	Outcome        Outcome
	StatesExplored int
	Elapsed        time.Duration
}

// node is one frontier entry: a reached state and its depth from the start.
// The path is carried by the state's own move history.
type node struct {
	state engine.PuzzleState
	depth int
}

// Solve runs BFS from the given state and returns the shortest sequence of
// legal moves to a solved state, or the reason none was found.
func Solve(start engine.PuzzleState, opts Options) Result {
	began := time.Now()

	if start.IsWon() {
		return Result{
			Outcome:        OutcomeSolved,
			Moves:          []engine.Move{},
			StatesExplored: 1,
			Elapsed:        time.Since(began),
		}
	}

	baseDepth := start.MoveCount()
	visited := map[string]struct{}{start.Key(): {}}
	frontier := []node{{state: start, depth: 0}}
	explored := 1

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		if cur.depth >= opts.MaxDepth {
			return Result{
				Outcome:        OutcomeBudgetExceeded,
				StatesExplored: explored,
				Elapsed:        time.Since(began),
			}
		}

		containers := cur.state.Containers()
		for i := range containers {
			for j := range containers {
				if i == j || !engine.CanMove(containers[i], containers[j]) {
					continue
				}

				next, err := cur.state.Apply(containers[i].ID, containers[j].ID)
				if err != nil {
					continue
				}

				key := next.Key()
				if _, seen := visited[key]; seen {
					continue
				}
				visited[key] = struct{}{}
				explored++

				if next.IsWon() {
					return Result{
						Outcome:        OutcomeSolved,
						Moves:          pathFrom(next, baseDepth),
						StatesExplored: explored,
						Elapsed:        time.Since(began),
					}
				}

				if explored >= opts.MaxStates {
					return Result{
						Outcome:        OutcomeBudgetExceeded,
						StatesExplored: explored,
						Elapsed:        time.Since(began),
					}
				}

				frontier = append(frontier, node{state: next, depth: cur.depth + 1})
			}
		}
	}

	// Frontier exhausted without a win: the state space is fully explored.
	return Result{
		Outcome:        OutcomeUnsolvable,
		StatesExplored: explored,
		Elapsed:        time.Since(began),
	}
}

// NextHint runs the same search as Solve and returns only the first step of
// the optimal path. The full BFS is still required: the first move is only
// guaranteed optimal once a complete shortest path is known.
func NextHint(start engine.PuzzleState, opts Options) Hint {
	res := Solve(start, opts)
	hint := Hint{
		Outcome:        res.Outcome,
		StatesExplored: res.StatesExplored,
		Elapsed:        res.Elapsed,
	}
	if res.Found() && len(res.Moves) > 0 {
		hint.Found = true
		hint.Move = res.Moves[0]
		hint.MovesRemaining = len(res.Moves)
	}
	return hint
}

// pathFrom extracts the moves made since the search started: the state's
// history minus whatever the caller had already played.
func pathFrom(won engine.PuzzleState, baseDepth int) []engine.Move {
	history := won.History()
	path := make([]engine.Move, len(history)-baseDepth)
	copy(path, history[baseDepth:])
	return path
}
