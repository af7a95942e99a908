package engine

import "github.com/lgbarn/chessrules/internal/chess"

// GeneratePseudoLegal returns every move of side that obeys the piece
// movement rules, including moves that leave side's own king attacked.
func GeneratePseudoLegal(pos *chess.Position, side chess.Side) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			moves = appendPieceMoves(moves, pos, chess.Sq(row, col), side)
		}
	}
	return moves
}

// generateFrom returns the pseudo-legal moves of the side's piece on sq.
func generateFrom(pos *chess.Position, sq chess.Square, side chess.Side) []chess.Move {
	return appendPieceMoves(nil, pos, sq, side)
}

// appendPieceMoves dispatches on the kind of the piece standing on from.
func appendPieceMoves(moves []chess.Move, pos *chess.Position, from chess.Square, side chess.Side) []chess.Move {
	piece := pos.At(from)
	if piece.IsEmpty() || piece.Side() != side {
		return moves
	}

	switch piece.Kind() {
	case chess.Pawn:
		return appendPawnMoves(moves, pos, from, piece)
	case chess.Knight:
		return appendStepMoves(moves, pos, from, piece, knightOffsets)
	case chess.Bishop:
		return appendSlidingMoves(moves, pos, from, piece, diagonalDirs)
	case chess.Rook:
		return appendSlidingMoves(moves, pos, from, piece, straightDirs)
	case chess.Queen:
		return appendSlidingMoves(moves, pos, from, piece, allDirs)
	case chess.King:
		moves = appendStepMoves(moves, pos, from, piece, kingOffsets)
		return appendCastlingMoves(moves, pos, from, piece)
	}
	return moves
}
