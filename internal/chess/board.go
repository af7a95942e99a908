package chess

import (
	"fmt"
	"strings"
)

// Position represents a chess position with all state needed for the game.
// A Position is owned by exactly one game session and mutated in place by
// move application and undo.
type Position struct {
	// The board cells, Board[row][col]. Row 0 is the eighth rank.
	Board [BoardSize][BoardSize]Piece

	// Who has the next move.
	SideToMove Side

	// Remaining castling rights.
	Castling CastlingRights

	// Square a pawn may capture into en passant, NoSquare if none.
	EnPassant Square

	// Plies since the last pawn move or capture.
	HalfmoveClock int

	// Full move counter, starts at 1 and increments after Black moves.
	FullmoveNumber int

	// Terminal flags for the side to move. Only the full legal move
	// generation sets them; both are false until it has run.
	Checkmate bool
	Stalemate bool
}

// NewPosition creates an empty board with White to move.
func NewPosition() *Position {
	return &Position{
		SideToMove:     White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

// At returns the piece on a square, Empty if the square is off the board.
func (p *Position) At(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return p.Board[sq.Row][sq.Col]
}

// Set places a piece on a square. Off-board squares are ignored.
func (p *Position) Set(sq Square, piece Piece) {
	if sq.Valid() {
		p.Board[sq.Row][sq.Col] = piece
	}
}

// KingSquare returns the square of the given side's king, or NoSquare.
func (p *Position) KingSquare(side Side) Square {
	king := MakePiece(side, King)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p.Board[row][col] == king {
				return Square{Row: row, Col: col}
			}
		}
	}
	return NoSquare
}

// Count returns how many pieces of the given side and kind are on the board.
func (p *Position) Count(side Side, kind PieceKind) int {
	want := MakePiece(side, kind)
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p.Board[row][col] == want {
				n++
			}
		}
	}
	return n
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// String returns a diagram of the position for logs and test failures.
func (p *Position) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, "%d  ", BoardSize-row)
		for col := 0; col < BoardSize; col++ {
			sb.WriteString(p.Board[row][col].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	fmt.Fprintf(&sb, "%s to move, castling %s, en passant %s, clocks %d/%d\n",
		p.SideToMove, p.Castling, p.EnPassant, p.HalfmoveClock, p.FullmoveNumber)
	return sb.String()
}
