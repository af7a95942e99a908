package engine

import "github.com/lgbarn/chessrules/internal/chess"

// appendPawnMoves adds pushes, double pushes, captures and en passant for
// the pawn on from. Moves landing on the far row are marked Promotion with
// the kind left unresolved.
func appendPawnMoves(moves []chess.Move, pos *chess.Position, from chess.Square, pawn chess.Piece) []chess.Move {
	side := pawn.Side()
	dir := side.Forward()
	promotes := from.Row+dir == side.PromotionRow()

	// Forward move
	one := from.Offset(dir, 0)
	if one.Valid() && pos.At(one).IsEmpty() {
		moves = append(moves, chess.Move{From: from, To: one, Piece: pawn, Promotion: promotes})

		// Double push from the starting row
		two := from.Offset(2*dir, 0)
		if from.Row == side.PawnRow() && pos.At(two).IsEmpty() {
			moves = append(moves, chess.Move{From: from, To: two, Piece: pawn})
		}
	}

	// Captures
	enemyPawn := chess.MakePiece(side.Opposite(), chess.Pawn)
	for _, dc := range []int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		target := pos.At(to)
		if !target.IsEmpty() && target.Side() != side {
			moves = append(moves, chess.Move{From: from, To: to, Piece: pawn, Captured: target, Promotion: promotes})
			continue
		}
		// En passant: the passed pawn stands beside us, behind the target.
		if to == pos.EnPassant && target.IsEmpty() && pos.At(chess.Sq(from.Row, to.Col)) == enemyPawn {
			moves = append(moves, chess.Move{From: from, To: to, Piece: pawn, Captured: enemyPawn, EnPassant: true})
		}
	}

	return moves
}

// enPassantVictim returns the square of the pawn captured by an en passant
// move: one row behind the destination from the mover's point of view.
func enPassantVictim(m chess.Move) chess.Square {
	return m.To.Offset(-m.Piece.Side().Forward(), 0)
}
