package engine

// Move legality rules. These are pure predicate and quantity functions over
// container pairs, kept separate from the state model so the same rule set
// serves the solver (exploring all pairs), the generator (sampling random
// pairs), and external move validators.

// CanMove returns true if pouring from one container into the other is legal:
// distinct containers, a non-empty source, a non-full target, and a matching
// top color when the target is non-empty.
func CanMove(from, to Container) bool {
	return RejectionFor(from, to) == RejectNone
}

// RejectionFor returns the first legality rule the pair violates, or
// RejectNone when the move is legal.
func RejectionFor(from, to Container) MoveRejection {
	if from.ID == to.ID {
		return RejectSelfMove
	}
	if from.IsEmpty() {
		return RejectEmptySource
	}
	if to.IsFull() {
		return RejectFullTarget
	}
	if !to.IsEmpty() {
		fromTop, _ := from.TopColor()
		toTop, _ := to.TopColor()
		if fromTop != toTop {
			return RejectColorMismatch
		}
	}
	return RejectNone
}

// TransferAmount returns how many units a legal pour moves: the top run of
// the source, limited by the free space of the target. Zero when the pair
// is not a legal move.
func TransferAmount(from, to Container) int {
	if !CanMove(from, to) {
		return 0
	}
	run := from.TopRun()
	space := to.FreeSpace()
	if run < space {
		return run
	}
	return space
}

// HasAnyLegalMove returns true if some ordered pair of containers admits a
// legal move. Used to detect dead states.
func HasAnyLegalMove(containers []Container) bool {
	for i := range containers {
		for j := range containers {
			if i == j {
				continue
			}
			if CanMove(containers[i], containers[j]) {
				return true
			}
		}
	}
	return false
}
