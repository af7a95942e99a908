package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// ApplyMove applies a generated move to the position and returns the applied
// copy, which carries the pre-move snapshot needed by UndoMove.
//
// promoteTo resolves a pending promotion; NoKind means Queen. Supplying a
// kind for a move that does not promote, or a kind a pawn cannot become, is
// rejected with ErrInvalidPromotion and leaves the position untouched.
// The move itself is not checked for legality.
func ApplyMove(pos *chess.Position, m chess.Move, promoteTo chess.PieceKind) (chess.Move, error) {
	if promoteTo != chess.NoKind {
		if !m.Promotion {
			return m, errors.Wrapf(errors.ErrInvalidPromotion, "%s does not promote", m.UCI())
		}
		if !promoteTo.IsPromotionTarget() {
			return m, errors.Wrapf(errors.ErrInvalidPromotion, "cannot promote to %s", promoteTo)
		}
	}

	applied := m
	if applied.Promotion {
		applied.PromoteTo = promoteTo
		if applied.PromoteTo == chess.NoKind {
			applied.PromoteTo = chess.Queen
		}
	}
	applyMove(pos, &applied)
	return applied, nil
}

// applyMove performs the board update and records the snapshot in m.
func applyMove(pos *chess.Position, m *chess.Move) {
	m.Snapshot = &chess.Snapshot{
		Castling:       pos.Castling,
		EnPassant:      pos.EnPassant,
		HalfmoveClock:  pos.HalfmoveClock,
		FullmoveNumber: pos.FullmoveNumber,
	}

	mover := m.Piece.Side()
	isPawn := m.Piece.Kind() == chess.Pawn

	// Update clocks
	if isPawn || m.IsCapture() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if mover == chess.Black {
		pos.FullmoveNumber++
	}

	// Relocate the piece
	pos.Set(m.From, chess.Empty)
	if m.EnPassant {
		pos.Set(enPassantVictim(*m), chess.Empty)
	}
	arrived := m.Piece
	if m.Promotion {
		arrived = chess.MakePiece(mover, m.PromoteTo)
	}
	pos.Set(m.To, arrived)

	if m.Castle {
		moveCastlingRook(pos, *m, false)
	}

	updateCastlingRights(pos, *m)

	// En passant target
	pos.EnPassant = chess.NoSquare
	if isPawn && abs(m.To.Row-m.From.Row) == 2 {
		pos.EnPassant = chess.Sq((m.From.Row+m.To.Row)/2, m.From.Col)
	}

	pos.SideToMove = pos.SideToMove.Opposite()
	pos.Checkmate = false
	pos.Stalemate = false
}

// UndoMove reverts a move previously returned by ApplyMove. Moves must be
// undone in the reverse order they were applied.
// The terminal flags are cleared; the next full legal move query sets them.
func UndoMove(pos *chess.Position, m chess.Move) error {
	if m.Snapshot == nil {
		return errors.Wrapf(errors.ErrMoveNotApplied, "%s", m.UCI())
	}

	pos.SideToMove = pos.SideToMove.Opposite()

	if m.Castle {
		moveCastlingRook(pos, m, true)
	}

	pos.Set(m.From, m.Piece)
	if m.EnPassant {
		pos.Set(m.To, chess.Empty)
		pos.Set(enPassantVictim(m), m.Captured)
	} else {
		pos.Set(m.To, m.Captured)
	}

	pos.Castling = m.Snapshot.Castling
	pos.EnPassant = m.Snapshot.EnPassant
	pos.HalfmoveClock = m.Snapshot.HalfmoveClock
	pos.FullmoveNumber = m.Snapshot.FullmoveNumber

	pos.Checkmate = false
	pos.Stalemate = false
	return nil
}
