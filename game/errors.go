package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("board is too small for connect four")
	ErrInvalidMove       = errors.New("invalid move")
)

// InvalidMoveError reports the first move of a replayed sequence that could
// not be applied.
type InvalidMoveError struct {
	Index  int // Position in the replayed sequence
	Column int
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move sequence: move %d (column %d) cannot be played", e.Index, e.Column)
}

func (e *InvalidMoveError) Unwrap() error {
	return ErrInvalidMove
}
