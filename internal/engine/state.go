package engine

import (
	"fmt"
	"strings"
)

// Definition is the static description of a puzzle: the initial container
// configuration plus the optional move limit and star thresholds derived at
// generation time. A Definition is shared read-only by every state of a game.
type Definition struct {
	ID       string
	Name     string
	Capacity int

	// Containers holds the initial configuration.
	Containers []Container

	// MoveLimit is the maximum number of moves before the game is lost.
	// Zero means unlimited.
	MoveLimit int

	// StarThresholds are move-count cutoffs for 1, 2 and 3 stars,
	// loosest to tightest. All zero means the puzzle is ungraded.
	StarThresholds [3]int
}

// Stars grades a finished game: 3 stars at or under the tightest threshold,
// down to 0 when even the loosest is exceeded. Ungraded puzzles return 0.
func (d *Definition) Stars(movesUsed int) int {
	for i := 2; i >= 0; i-- {
		if d.StarThresholds[i] > 0 && movesUsed <= d.StarThresholds[i] {
			return i + 1
		}
	}
	return 0
}

// PuzzleState is one node in a game's lifecycle: an ordered collection of
// containers plus the move history that produced it. States are immutable;
// Apply, Undo and Reset all return new values and leave the receiver valid.
type PuzzleState struct {
	def        *Definition
	containers []Container
	history    []Move
}

// NewState creates the initial state for a puzzle definition.
// Container ids must be unique within the definition.
func NewState(def *Definition) (PuzzleState, error) {
	seen := make(map[string]struct{}, len(def.Containers))
	for _, c := range def.Containers {
		if _, dup := seen[c.ID]; dup {
			return PuzzleState{}, fmt.Errorf("engine: duplicate container id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	containers := make([]Container, len(def.Containers))
	copy(containers, def.Containers)
	return PuzzleState{def: def, containers: containers}, nil
}

// Definition returns the puzzle definition this state belongs to.
func (s PuzzleState) Definition() *Definition {
	return s.def
}

// Containers returns the containers in their fixed order.
// The returned slice must not be modified.
func (s PuzzleState) Containers() []Container {
	return s.containers
}

// Container looks up a container by id.
func (s PuzzleState) Container(id string) (Container, bool) {
	for _, c := range s.containers {
		if c.ID == id {
			return c, true
		}
	}
	return Container{}, false
}

// History returns the moves applied so far, oldest first.
// The returned slice must not be modified.
func (s PuzzleState) History() []Move {
	return s.history
}

// MoveCount returns the number of moves applied so far.
func (s PuzzleState) MoveCount() int {
	return len(s.history)
}

// Apply pours the top run from one container into another and returns the
// resulting state. Only the two affected containers are reallocated; all
// others are carried over unchanged. Fails with *InvalidMoveError when
// either id is missing or the legality rules reject the pair.
func (s PuzzleState) Apply(fromID, toID string) (PuzzleState, error) {
	fromIdx, toIdx := -1, -1
	for i, c := range s.containers {
		switch c.ID {
		case fromID:
			fromIdx = i
		case toID:
			toIdx = i
		}
	}
	if fromIdx < 0 || toIdx < 0 {
		return PuzzleState{}, &InvalidMoveError{From: fromID, To: toID, Reason: RejectUnknownContainer}
	}

	from, to := s.containers[fromIdx], s.containers[toIdx]
	if reason := RejectionFor(from, to); reason != RejectNone {
		return PuzzleState{}, &InvalidMoveError{From: fromID, To: toID, Reason: reason}
	}

	n := TransferAmount(from, to)
	color, _ := from.TopColor()

	newFrom, err := from.RemoveTop(n)
	if err != nil {
		return PuzzleState{}, err
	}
	poured := make([]Color, n)
	for i := range poured {
		poured[i] = color
	}
	newTo := to.Add(poured...)

	containers := make([]Container, len(s.containers))
	copy(containers, s.containers)
	containers[fromIdx] = newFrom
	containers[toIdx] = newTo

	move := Move{From: fromID, To: toID, Color: color, Count: n}
	history := make([]Move, len(s.history), len(s.history)+1)
	copy(history, s.history)
	history = append(history, move)

	return PuzzleState{def: s.def, containers: containers, history: history}, nil
}

// Undo replays the inverse of the last move and drops it from history.
// Fails with ErrNoHistory when no moves have been made.
func (s PuzzleState) Undo() (PuzzleState, error) {
	if len(s.history) == 0 {
		return PuzzleState{}, ErrNoHistory
	}
	last := s.history[len(s.history)-1]
	inv := last.Inverse()

	fromIdx, toIdx := -1, -1
	for i, c := range s.containers {
		switch c.ID {
		case inv.From:
			fromIdx = i
		case inv.To:
			toIdx = i
		}
	}
	if fromIdx < 0 || toIdx < 0 {
		return PuzzleState{}, &InvalidMoveError{From: inv.From, To: inv.To, Reason: RejectUnknownContainer}
	}

	// The inverse pour moves exactly inv.Count units of inv.Color back,
	// regardless of what TransferAmount would compute now.
	newFrom, err := s.containers[fromIdx].RemoveTop(inv.Count)
	if err != nil {
		return PuzzleState{}, err
	}
	poured := make([]Color, inv.Count)
	for i := range poured {
		poured[i] = inv.Color
	}
	newTo := s.containers[toIdx].Add(poured...)

	containers := make([]Container, len(s.containers))
	copy(containers, s.containers)
	containers[fromIdx] = newFrom
	containers[toIdx] = newTo

	history := make([]Move, len(s.history)-1)
	copy(history, s.history[:len(s.history)-1])

	return PuzzleState{def: s.def, containers: containers, history: history}, nil
}

// Reset discards the history and returns the initial configuration.
func (s PuzzleState) Reset() (PuzzleState, error) {
	return NewState(s.def)
}

// IsWon returns true when every container is solved.
func (s PuzzleState) IsWon() bool {
	for _, c := range s.containers {
		if !c.IsSolved() {
			return false
		}
	}
	return true
}

// IsLost returns true when a move limit exists and has been reached
// without winning.
func (s PuzzleState) IsLost() bool {
	if s.def == nil || s.def.MoveLimit <= 0 {
		return false
	}
	return len(s.history) >= s.def.MoveLimit && !s.IsWon()
}

// IsStuck returns true when the state is not won and no legal move remains.
func (s PuzzleState) IsStuck() bool {
	return !s.IsWon() && !HasAnyLegalMove(s.containers)
}

// Key returns the canonical encoding used for deduplication in search:
// each container's color sequence bottom to top, one rune per color,
// containers in their fixed order separated by '|'. Empty containers render
// as empty segments. Two states with identical keys are interchangeable
// for search purposes.
func (s PuzzleState) Key() string {
	size := 0
	for _, c := range s.containers {
		size += c.Capacity + 1
	}
	var sb strings.Builder
	sb.Grow(size)
	for i, c := range s.containers {
		if i > 0 {
			sb.WriteByte('|')
		}
		for j := 0; j < c.Len(); j++ {
			color, _ := c.ColorAt(j)
			sb.WriteRune(color.Rune())
		}
	}
	return sb.String()
}

// Equal reports value equality of the container configurations and
// histories of two states.
func (s PuzzleState) Equal(other PuzzleState) bool {
	if len(s.containers) != len(other.containers) || len(s.history) != len(other.history) {
		return false
	}
	for i := range s.containers {
		if !s.containers[i].Equal(other.containers[i]) {
			return false
		}
	}
	for i := range s.history {
		if s.history[i] != other.history[i] {
			return false
		}
	}
	return true
}
