package engine

import "fmt"

// Move records a single pour: the contiguous top-color run of one container
// transferred into another. Moves are plain value types; equality is
// structural and == works.
type Move struct {
	From  string
	To    string
	Color Color
	Count int
}

// Inverse returns the move that undoes this one: the same colors poured
// back from the target into the source. Count and Color are unchanged.
// Replaying the inverse is how Undo reconstructs the previous state
// without persisting full snapshots.
func (m Move) Inverse() Move {
	return Move{From: m.To, To: m.From, Color: m.Color, Count: m.Count}
}

// String renders the move for logs and CLI output.
func (m Move) String() string {
	return fmt.Sprintf("%s -> %s (%d %s)", m.From, m.To, m.Count, m.Color)
}
