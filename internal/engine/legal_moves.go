package engine

import "github.com/lgbarn/chessrules/internal/chess"

// LegalMoves returns the legal moves of side. When side is the side to
// move, the position's Checkmate and Stalemate flags are recomputed.
func LegalMoves(pos *chess.Position, side chess.Side) []chess.Move {
	moves := filterLegal(pos, GeneratePseudoLegal(pos, side))

	if side == pos.SideToMove {
		empty := len(moves) == 0
		inCheck := InCheck(pos, side)
		pos.Checkmate = empty && inCheck
		pos.Stalemate = empty && !inCheck
	}
	return moves
}

// LegalMovesFrom returns the legal moves of the side-to-move piece on sq.
// It never changes the terminal flags.
func LegalMovesFrom(pos *chess.Position, sq chess.Square) []chess.Move {
	return filterLegal(pos, generateFrom(pos, sq, pos.SideToMove))
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	for _, m := range GeneratePseudoLegal(pos, pos.SideToMove) {
		if isLegal(pos, m) {
			return true
		}
	}
	return false
}

// filterLegal keeps the moves that do not leave the mover's king attacked.
func filterLegal(pos *chess.Position, moves []chess.Move) []chess.Move {
	legal := moves[:0]
	for _, m := range moves {
		if isLegal(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal applies m, tests the mover's king and undoes it. The position,
// terminal flags included, is unchanged on return.
func isLegal(pos *chess.Position, m chess.Move) bool {
	checkmate, stalemate := pos.Checkmate, pos.Stalemate

	tried := m
	if tried.Promotion {
		tried.PromoteTo = chess.Queen
	}
	applyMove(pos, &tried)
	legal := !InCheck(pos, m.Piece.Side())
	_ = UndoMove(pos, tried) // tried carries a snapshot

	pos.Checkmate, pos.Stalemate = checkmate, stalemate
	return legal
}
