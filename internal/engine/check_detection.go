package engine

import "github.com/lgbarn/chessrules/internal/chess"

// InCheck returns true if the given side's king is attacked.
// A side without a king is never in check.
func InCheck(pos *chess.Position, side chess.Side) bool {
	king := pos.KingSquare(side)
	if king == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(pos, king, side.Opposite())
}

// IsSquareAttacked returns true if any piece of side by attacks sq.
// It has no side effects and works on any intermediate board state.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, by chess.Side) bool {
	// Pawns attack diagonally forward, so look one row behind the target
	// from the attacker's point of view.
	pawn := chess.MakePiece(by, chess.Pawn)
	for _, dc := range []int{-1, 1} {
		if pos.At(sq.Offset(-by.Forward(), dc)) == pawn {
			return true
		}
	}

	knight := chess.MakePiece(by, chess.Knight)
	for _, o := range knightOffsets {
		if pos.At(sq.Offset(o.dr, o.dc)) == knight {
			return true
		}
	}

	king := chess.MakePiece(by, chess.King)
	for _, o := range kingOffsets {
		if pos.At(sq.Offset(o.dr, o.dc)) == king {
			return true
		}
	}

	queen := chess.MakePiece(by, chess.Queen)
	if rayHits(pos, sq, diagonalDirs, chess.MakePiece(by, chess.Bishop), queen) {
		return true
	}
	return rayHits(pos, sq, straightDirs, chess.MakePiece(by, chess.Rook), queen)
}

// rayHits walks each direction from sq and reports whether the first piece
// met is one of the two sliders.
func rayHits(pos *chess.Position, sq chess.Square, dirs []offset, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		for cur := sq.Offset(dir.dr, dir.dc); cur.Valid(); cur = cur.Offset(dir.dr, dir.dc) {
			piece := pos.At(cur)
			if piece.IsEmpty() {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break // Blocked
		}
	}
	return false
}
