package chess

// Snapshot holds the irreversible parts of a position captured just before a
// move is applied, so that undo can restore them exactly.
type Snapshot struct {
	Castling       CastlingRights
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int
}

// Move represents a single move produced by move generation.
//
// A Move is only meaningful against the exact position it was generated from.
// Generated moves are never mutated; applying one yields a copy carrying the
// Snapshot and the resolved promotion kind.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece standing on From before the move.
	Piece Piece

	// The piece captured, Empty if none. For en passant this is the enemy
	// pawn, which does not stand on To.
	Captured Piece

	// Promotion is set when a pawn reaches the far row; the kind is chosen
	// at application time.
	Promotion bool

	// PromoteTo is the kind the pawn became. NoKind until applied.
	PromoteTo PieceKind

	EnPassant bool
	Castle    bool

	// Snapshot of the pre-move state, nil until applied.
	Snapshot *Snapshot
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// Applied reports whether the move carries an application snapshot.
func (m Move) Applied() bool {
	return m.Snapshot != nil
}

// IsKingsideCastle returns true for a castling move towards the h-file.
func (m Move) IsKingsideCastle() bool {
	return m.Castle && m.To.Col > m.From.Col
}

// UCI returns the move in long algebraic form ("e2e4"). The promotion letter
// is appended once the kind has been resolved ("e7e8q").
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promotion && m.PromoteTo != NoKind {
		s += string(m.PromoteTo.Letter() + ('a' - 'A'))
	}
	return s
}

// String returns the UCI text of the move.
func (m Move) String() string {
	return m.UCI()
}

// SameMove reports whether two moves describe the same action (squares and
// special-move flags), ignoring application state.
func (m Move) SameMove(other Move) bool {
	return m.From == other.From && m.To == other.To &&
		m.Piece == other.Piece && m.Captured == other.Captured &&
		m.Promotion == other.Promotion && m.EnPassant == other.EnPassant &&
		m.Castle == other.Castle
}
