package engine

import "github.com/lgbarn/chessrules/internal/chess"

// IsCheckmate reports whether the side to move is in check with no legal move.
// Unlike LegalMoves it does not touch the position's flags.
func IsCheckmate(pos *chess.Position) bool {
	return InCheck(pos, pos.SideToMove) && !HasLegalMoves(pos)
}

// IsStalemate reports whether the side to move has no legal move and is not
// in check.
func IsStalemate(pos *chess.Position) bool {
	return !InCheck(pos, pos.SideToMove) && !HasLegalMoves(pos)
}
