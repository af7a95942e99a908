package engine

import "github.com/lgbarn/chessrules/internal/chess"

// Files used by castling. The king starts on the e-file.
const (
	kingCol          = 4
	kingsideRookCol  = 7
	queensideRookCol = 0
)

// castleGeometry describes one castling wing for one side.
type castleGeometry struct {
	rookFrom int   // rook's corner column
	rookTo   int   // rook's column after castling
	kingTo   int   // king's column after castling
	empty    []int // columns between king and rook that must be empty
	safe     []int // columns the king stands on, passes or lands on
}

var (
	kingsideCastle = castleGeometry{
		rookFrom: kingsideRookCol, rookTo: 5, kingTo: 6,
		empty: []int{5, 6},
		safe:  []int{4, 5, 6},
	}
	queensideCastle = castleGeometry{
		rookFrom: queensideRookCol, rookTo: 3, kingTo: 2,
		empty: []int{1, 2, 3},
		safe:  []int{4, 3, 2},
	}
)

// castleFor returns the geometry of the wing a castling move goes to.
func castleFor(kingside bool) castleGeometry {
	if kingside {
		return kingsideCastle
	}
	return queensideCastle
}

// appendCastlingMoves adds the castling moves available to the king on from.
func appendCastlingMoves(moves []chess.Move, pos *chess.Position, from chess.Square, king chess.Piece) []chess.Move {
	side := king.Side()
	row := side.HomeRow()
	if from != chess.Sq(row, kingCol) {
		return moves
	}

	for _, kingside := range []bool{true, false} {
		if !canCastle(pos, side, kingside) {
			continue
		}
		g := castleFor(kingside)
		moves = append(moves, chess.Move{
			From:   from,
			To:     chess.Sq(row, g.kingTo),
			Piece:  king,
			Castle: true,
		})
	}
	return moves
}

// canCastle checks the right, the rook on its corner, the empty squares
// between, and that no square the king touches is attacked.
func canCastle(pos *chess.Position, side chess.Side, kingside bool) bool {
	if !pos.Castling.Has(side, kingside) {
		return false
	}

	row := side.HomeRow()
	g := castleFor(kingside)
	if pos.At(chess.Sq(row, g.rookFrom)) != chess.MakePiece(side, chess.Rook) {
		return false
	}
	for _, col := range g.empty {
		if !pos.At(chess.Sq(row, col)).IsEmpty() {
			return false
		}
	}

	enemy := side.Opposite()
	for _, col := range g.safe {
		if IsSquareAttacked(pos, chess.Sq(row, col), enemy) {
			return false
		}
	}
	return true
}

// moveCastlingRook relocates the rook for a castling king move.
// Passing undo moves it back to its corner.
func moveCastlingRook(pos *chess.Position, m chess.Move, undo bool) {
	g := castleFor(m.IsKingsideCastle())
	row := m.From.Row
	from, to := chess.Sq(row, g.rookFrom), chess.Sq(row, g.rookTo)
	if undo {
		from, to = to, from
	}
	pos.Set(to, pos.At(from))
	pos.Set(from, chess.Empty)
}

// updateCastlingRights removes rights lost by a move: a king move clears
// both of its side's rights, and any move from or onto a rook corner
// clears the right tied to that corner.
func updateCastlingRights(pos *chess.Position, m chess.Move) {
	if m.Piece.Kind() == chess.King {
		pos.Castling.ClearSide(m.Piece.Side())
	}
	clearCornerRight(pos, m.From)
	clearCornerRight(pos, m.To)
}

// clearCornerRight clears the castling right whose rook starts on sq.
func clearCornerRight(pos *chess.Position, sq chess.Square) {
	for _, side := range []chess.Side{chess.White, chess.Black} {
		if sq.Row != side.HomeRow() {
			continue
		}
		switch sq.Col {
		case kingsideRookCol:
			pos.Castling.Clear(side, true)
		case queensideRookCol:
			pos.Castling.Clear(side, false)
		}
	}
}
