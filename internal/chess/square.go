package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// Square addresses a board cell. Row 0 is the eighth rank (the top row of the
// board as drawn from White's side) and Col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare marks the absence of a square, e.g. no en passant target.
var NoSquare = Square{Row: -1, Col: -1}

// Sq creates a square from row and column.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square is on the board.
func (sq Square) Valid() bool {
	return sq.Row >= 0 && sq.Row < BoardSize && sq.Col >= 0 && sq.Col < BoardSize
}

// Offset returns the square shifted by dr rows and dc columns.
// The result may be off the board; check Valid.
func (sq Square) Offset(dr, dc int) Square {
	return Square{Row: sq.Row + dr, Col: sq.Col + dc}
}

// String returns algebraic notation ("e4"), or "-" for an off-board square.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.Col, BoardSize-sq.Row)
}

// ParseSquare parses algebraic notation ("e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}
	col := int(s[0]) - 'a'
	rank := int(s[1]) - '0'
	sq := Square{Row: BoardSize - rank, Col: col}
	if rank < 1 || rank > BoardSize || !sq.Valid() {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}
	return sq, nil
}

// MustSquare parses a square and panics on malformed input.
// Intended for constants and tests.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
