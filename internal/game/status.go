package game

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/chess"
)

// Status is the state of the game for the side to move.
type Status int

const (
	Active Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "active"
	}
}

// Over reports whether no further move can be played.
func (s Status) Over() bool {
	return s != Active
}

// statusLine renders the one-line summary shown under the board.
func statusLine(status Status, toMove chess.Side, inCheck bool) string {
	switch status {
	case Checkmate:
		return fmt.Sprintf("Checkmate! %s wins.", toMove.Opposite())
	case Stalemate:
		return "Stalemate."
	}
	if inCheck {
		return fmt.Sprintf("%s to move, in check.", toMove)
	}
	return fmt.Sprintf("%s to move.", toMove)
}
