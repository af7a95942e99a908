package testutil

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules/internal/chess"
)

// MoveStrings returns the UCI text of each move, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.UCI())
	}
	slices.Sort(out)
	return out
}

// FindMove returns the move going from one square to another, given in
// algebraic notation. It fails the test when there is none.
func FindMove(t *testing.T, moves []chess.Move, from, to string) chess.Move {
	t.Helper()
	f, tsq := chess.MustSquare(from), chess.MustSquare(to)
	for _, m := range moves {
		if m.From == f && m.To == tsq {
			return m
		}
	}
	t.Fatalf("no move %s%s among %v", from, to, MoveStrings(moves))
	return chess.Move{}
}

// HasMove reports whether moves contains a move between the two squares.
func HasMove(moves []chess.Move, from, to string) bool {
	f, tsq := chess.MustSquare(from), chess.MustSquare(to)
	for _, m := range moves {
		if m.From == f && m.To == tsq {
			return true
		}
	}
	return false
}
