package engine

import "github.com/lgbarn/chessrules/internal/chess"

// appendStepMoves adds the single-step moves of a knight or king.
// The target must be empty or hold an enemy piece.
func appendStepMoves(moves []chess.Move, pos *chess.Position, from chess.Square, piece chess.Piece, offsets []offset) []chess.Move {
	for _, o := range offsets {
		to := from.Offset(o.dr, o.dc)
		if !to.Valid() {
			continue
		}
		target := pos.At(to)
		if target.IsEmpty() || target.Side() != piece.Side() {
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
		}
	}
	return moves
}

// appendSlidingMoves walks each ray until blocked. An enemy blocker is
// included as a capture; an own piece stops the ray before its square.
func appendSlidingMoves(moves []chess.Move, pos *chess.Position, from chess.Square, piece chess.Piece, dirs []offset) []chess.Move {
	for _, dir := range dirs {
		for to := from.Offset(dir.dr, dir.dc); to.Valid(); to = to.Offset(dir.dr, dir.dc) {
			target := pos.At(to)
			if target.IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: to, Piece: piece})
				continue
			}
			if target.Side() != piece.Side() {
				moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
			}
			break // Blocked
		}
	}
	return moves
}
