// Package chess provides the core chess types: sides, pieces, squares,
// castling rights, positions and moves.
package chess

// Side represents the colour of a piece or player.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn advance: -1 for White, +1 for Black.
// Row 0 is the eighth rank.
func (s Side) Forward() int {
	if s == White {
		return -1
	}
	return 1
}

// HomeRow returns the row holding the side's king and rooks at the start.
func (s Side) HomeRow() int {
	if s == White {
		return 7
	}
	return 0
}

// PawnRow returns the row the side's pawns start on.
func (s Side) PawnRow() int {
	if s == White {
		return 6
	}
	return 1
}

// PromotionRow returns the far row on which the side's pawns promote.
func (s Side) PromotionRow() int {
	return s.Opposite().HomeRow()
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter of a piece kind.
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotionTarget reports whether a pawn may promote to this kind.
func (k PieceKind) IsPromotionTarget() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// ParsePieceKind converts a piece letter of either case to a kind.
// It returns NoKind for anything else.
func ParsePieceKind(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// Piece is the content of a board cell: either Empty or a (Side, PieceKind)
// pair packed as kind<<PieceShift | side.
type Piece uint8

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// Empty is the value of an unoccupied cell.
const Empty Piece = 0

// MakePiece creates a coloured piece value.
func MakePiece(side Side, kind PieceKind) Piece {
	if kind == NoKind {
		return Empty
	}
	return Piece(int(kind)<<PieceShift | int(side))
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether the cell holds no piece.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Side extracts the side from a coloured piece. Meaningless for Empty.
func (p Piece) Side() Side {
	return Side(p & 0x01)
}

// Kind extracts the piece kind; NoKind for Empty.
func (p Piece) Kind() PieceKind {
	return PieceKind(p >> PieceShift)
}

// Is reports whether the piece is the given side and kind.
func (p Piece) Is(side Side, kind PieceKind) bool {
	return p == MakePiece(side, kind)
}

// String returns the FEN letter of the piece, uppercase for White,
// or "." for an empty cell.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	letter := p.Kind().Letter()
	if p.Side() == Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}

// CastlingRights holds the four independent castling flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastling has every right set, as in the standard starting position.
var AllCastling = CastlingRights{true, true, true, true}

// Has reports whether the side may still castle on the given wing.
func (cr CastlingRights) Has(side Side, kingside bool) bool {
	switch {
	case side == White && kingside:
		return cr.WhiteKingside
	case side == White:
		return cr.WhiteQueenside
	case kingside:
		return cr.BlackKingside
	default:
		return cr.BlackQueenside
	}
}

// Clear removes one right. Rights are never restored except by undo.
func (cr *CastlingRights) Clear(side Side, kingside bool) {
	switch {
	case side == White && kingside:
		cr.WhiteKingside = false
	case side == White:
		cr.WhiteQueenside = false
	case kingside:
		cr.BlackKingside = false
	default:
		cr.BlackQueenside = false
	}
}

// ClearSide removes both rights of a side.
func (cr *CastlingRights) ClearSide(side Side) {
	cr.Clear(side, true)
	cr.Clear(side, false)
}

// String returns the FEN castling field ("KQkq", "-").
func (cr CastlingRights) String() string {
	s := ""
	if cr.WhiteKingside {
		s += "K"
	}
	if cr.WhiteQueenside {
		s += "Q"
	}
	if cr.BlackKingside {
		s += "k"
	}
	if cr.BlackQueenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// BoardSize is the number of rows and columns.
const BoardSize = 8
