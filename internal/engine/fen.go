// Package engine implements the chess rules: position setup, attack
// detection, move generation, legality filtering, and move application.
package engine

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenError builds a FENError for the given field.
func fenError(field, value, reason string) error {
	return &errors.FENError{
		Err:   errors.Wrap(errors.ErrInvalidFEN, reason),
		Field: field,
		Value: value,
	}
}

// NewPositionFromFEN creates a position from a FEN string.
// The halfmove clock and fullmove number may be omitted and default to 0 and 1.
// Malformed input is rejected as a whole; no partial position is returned.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fenError("fields", fen, "need 4 to 6 fields")
	}

	pos := chess.NewPosition()

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, parts[4:]); err != nil {
		return nil, err
	}
	if err := validatePosition(pos); err != nil {
		return nil, err
	}

	return pos, nil
}

// NewInitialPosition creates a position with the standard starting layout.
func NewInitialPosition() *chess.Position {
	pos, err := NewPositionFromFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePlacement parses the piece placement field, back rank first.
func parsePiecePlacement(pos *chess.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fenError("placement", placement, "need 8 ranks")
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				kind := chess.ParsePieceKind(byte(c))
				if kind == chess.NoKind || c > unicode.MaxASCII {
					return fenError("placement", string(c), "unknown piece letter")
				}
				if col >= chess.BoardSize {
					return fenError("placement", rank, "rank overflows 8 files")
				}
				side := chess.White
				if unicode.IsLower(c) {
					side = chess.Black
				}
				pos.Set(chess.Sq(row, col), chess.MakePiece(side, kind))
				col++
			}
			if col > chess.BoardSize {
				return fenError("placement", rank, "rank overflows 8 files")
			}
		}
		if col != chess.BoardSize {
			return fenError("placement", rank, "rank does not cover 8 files")
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, field string) error {
	switch field {
	case "w":
		pos.SideToMove = chess.White
	case "b":
		pos.SideToMove = chess.Black
	default:
		return fenError("side", field, "want w or b")
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, field string) error {
	pos.Castling = chess.CastlingRights{}
	if field == "-" {
		return nil
	}

	for _, c := range field {
		switch c {
		case 'K':
			pos.Castling.WhiteKingside = true
		case 'Q':
			pos.Castling.WhiteQueenside = true
		case 'k':
			pos.Castling.BlackKingside = true
		case 'q':
			pos.Castling.BlackQueenside = true
		default:
			return fenError("castling", field, "want letters from KQkq or -")
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, field string) error {
	pos.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}

	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError("en passant", field, "bad square")
	}
	// The target sits behind a pawn of the side that just moved, which
	// advanced two squares.
	mover := pos.SideToMove.Opposite()
	if sq.Row != mover.PawnRow()+mover.Forward() {
		return fenError("en passant", field, "target on the wrong rank for the side to move")
	}
	if pos.At(sq.Offset(mover.Forward(), 0)) != chess.MakePiece(mover, chess.Pawn) {
		return fenError("en passant", field, "no pawn in front of the target")
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, fields []string) error {
	if len(fields) >= 1 {
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return fenError("halfmove clock", fields[0], "want a non-negative integer")
		}
		pos.HalfmoveClock = n
	}
	if len(fields) >= 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return fenError("fullmove number", fields[1], "want a positive integer")
		}
		pos.FullmoveNumber = n
	}
	return nil
}

// validatePosition checks the structural invariants the rules rely on.
func validatePosition(pos *chess.Position) error {
	for _, side := range []chess.Side{chess.White, chess.Black} {
		if n := pos.Count(side, chess.King); n != 1 {
			return fenError("placement", side.String(), "each side needs exactly one king")
		}
	}
	for col := 0; col < chess.BoardSize; col++ {
		for _, row := range []int{0, chess.BoardSize - 1} {
			if pos.At(chess.Sq(row, col)).Kind() == chess.Pawn {
				return fenError("placement", chess.Sq(row, col).String(), "pawn on a back rank")
			}
		}
	}
	return nil
}
