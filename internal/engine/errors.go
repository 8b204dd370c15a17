package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned when a container is constructed with
	// more colors than its capacity allows.
	ErrCapacityExceeded = errors.New("engine: capacity exceeded")

	// ErrInsufficientColors is returned when more colors are removed from a
	// container than it holds.
	ErrInsufficientColors = errors.New("engine: not enough colors to remove")

	// ErrNoHistory is returned by Undo when no moves have been made.
	ErrNoHistory = errors.New("engine: no moves to undo")

	// ErrInvalidMove is the sentinel matched by errors.Is for any
	// *InvalidMoveError.
	ErrInvalidMove = errors.New("engine: invalid move")
)

// MoveRejection enumerates the legality rule a rejected move violated.
type MoveRejection uint8

const (
	RejectNone MoveRejection = iota
	RejectUnknownContainer
	RejectSelfMove
	RejectEmptySource
	RejectFullTarget
	RejectColorMismatch
)

// String returns a human-readable description of the rejection.
func (r MoveRejection) String() string {
	switch r {
	case RejectNone:
		return "legal"
	case RejectUnknownContainer:
		return "unknown container id"
	case RejectSelfMove:
		return "source and target are the same container"
	case RejectEmptySource:
		return "source container is empty"
	case RejectFullTarget:
		return "target container is full"
	case RejectColorMismatch:
		return "target top color does not match"
	default:
		return "unknown rejection"
	}
}

// InvalidMoveError reports why a move was rejected.
// The Reason field identifies the violated rule for UI feedback.
type InvalidMoveError struct {
	From   string
	To     string
	Reason MoveRejection
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("engine: invalid move %s -> %s: %s", e.From, e.To, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidMove) match any InvalidMoveError.
func (e *InvalidMoveError) Is(target error) bool {
	return target == ErrInvalidMove
}
