package chess

import (
	"errors"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chessrules/internal/errors"
)

func TestNewPosition(t *testing.T) {
	p := NewPosition()

	t.Run("initial state", func(t *testing.T) {
		if p.SideToMove != White {
			t.Errorf("SideToMove = %v; want White", p.SideToMove)
		}
		if p.FullmoveNumber != 1 {
			t.Errorf("FullmoveNumber = %d; want 1", p.FullmoveNumber)
		}
		if p.EnPassant != NoSquare {
			t.Errorf("EnPassant = %v; want NoSquare", p.EnPassant)
		}
		if p.Castling != (CastlingRights{}) {
			t.Errorf("Castling = %v; want none", p.Castling)
		}
		if p.Checkmate || p.Stalemate {
			t.Error("terminal flags set on a fresh position")
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				if got := p.At(Sq(row, col)); got != Empty {
					t.Errorf("At(%v) = %v; want Empty", Sq(row, col), got)
				}
			}
		}
	})

	t.Run("off-board access", func(t *testing.T) {
		p.Set(Sq(8, 0), W(Queen))
		if got := p.At(Sq(8, 0)); got != Empty {
			t.Errorf("At(off board) = %v; want Empty", got)
		}
		if got := p.At(Sq(-1, 3)); got != Empty {
			t.Errorf("At(off board) = %v; want Empty", got)
		}
	})
}

func TestPieceEncoding(t *testing.T) {
	for _, side := range []Side{White, Black} {
		for kind := Pawn; kind <= King; kind++ {
			p := MakePiece(side, kind)
			if p.IsEmpty() {
				t.Errorf("MakePiece(%v, %v) is Empty", side, kind)
			}
			if p.Side() != side {
				t.Errorf("MakePiece(%v, %v).Side() = %v", side, kind, p.Side())
			}
			if p.Kind() != kind {
				t.Errorf("MakePiece(%v, %v).Kind() = %v", side, kind, p.Kind())
			}
			if !p.Is(side, kind) {
				t.Errorf("MakePiece(%v, %v).Is() = false", side, kind)
			}
		}
	}
	if MakePiece(White, NoKind) != Empty {
		t.Error("MakePiece(White, NoKind) should be Empty")
	}
	if Empty.Kind() != NoKind {
		t.Errorf("Empty.Kind() = %v; want NoKind", Empty.Kind())
	}
}

func TestPieceString(t *testing.T) {
	tests := []struct {
		piece Piece
		want  string
	}{
		{W(King), "K"},
		{B(King), "k"},
		{W(Knight), "N"},
		{B(Pawn), "p"},
		{Empty, "."},
	}
	for _, tt := range tests {
		if got := tt.piece.String(); got != tt.want {
			t.Errorf("%v.String() = %q; want %q", tt.piece.Kind(), got, tt.want)
		}
	}
}

func TestParsePieceKind(t *testing.T) {
	for _, c := range []byte("PNBRQK") {
		kind := ParsePieceKind(c)
		if kind.Letter() != c {
			t.Errorf("ParsePieceKind(%c).Letter() = %c", c, kind.Letter())
		}
		if lower := ParsePieceKind(c + 'a' - 'A'); lower != kind {
			t.Errorf("ParsePieceKind(%c) = %v; want %v", c+'a'-'A', lower, kind)
		}
	}
	if ParsePieceKind('x') != NoKind {
		t.Error("ParsePieceKind('x') should be NoKind")
	}
}

func TestSideGeometry(t *testing.T) {
	if White.Forward() != -1 || Black.Forward() != 1 {
		t.Errorf("Forward() = %d/%d; want -1/1", White.Forward(), Black.Forward())
	}
	if White.PromotionRow() != 0 || Black.PromotionRow() != 7 {
		t.Errorf("PromotionRow() = %d/%d; want 0/7", White.PromotionRow(), Black.PromotionRow())
	}
	if White.PawnRow() != 6 || Black.PawnRow() != 1 {
		t.Errorf("PawnRow() = %d/%d; want 6/1", White.PawnRow(), Black.PawnRow())
	}
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
}

func TestCastlingRights(t *testing.T) {
	cr := AllCastling
	if cr.String() != "KQkq" {
		t.Errorf("AllCastling.String() = %q; want KQkq", cr.String())
	}

	cr.Clear(White, true)
	if cr.Has(White, true) {
		t.Error("Has(White, kingside) after Clear")
	}
	if !cr.Has(White, false) || !cr.Has(Black, true) || !cr.Has(Black, false) {
		t.Error("Clear removed more than one right")
	}

	cr.ClearSide(Black)
	if cr.String() != "Q" {
		t.Errorf("String() = %q; want Q", cr.String())
	}

	cr.ClearSide(White)
	if cr.String() != "-" {
		t.Errorf("String() = %q; want -", cr.String())
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
	}{
		{"a8", Sq(0, 0)},
		{"h8", Sq(0, 7)},
		{"a1", Sq(7, 0)},
		{"e4", Sq(4, 4)},
		{"e3", Sq(5, 4)},
	}
	for _, tt := range tests {
		got, err := ParseSquare(tt.in)
		if err != nil {
			t.Fatalf("ParseSquare(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("ParseSquare(%q).String() = %q", tt.in, got.String())
		}
	}

	for _, bad := range []string{"", "e", "e9", "i1", "e0", "e44", "E4"} {
		_, err := ParseSquare(bad)
		if !errors.Is(err, chesserrors.ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", bad, err)
		}
	}
}

func TestKingSquareAndCount(t *testing.T) {
	p := NewPosition()
	p.Set(MustSquare("e1"), W(King))
	p.Set(MustSquare("g8"), B(King))
	p.Set(MustSquare("a2"), W(Pawn))
	p.Set(MustSquare("b2"), W(Pawn))

	if got := p.KingSquare(White); got != MustSquare("e1") {
		t.Errorf("KingSquare(White) = %v; want e1", got)
	}
	if got := p.KingSquare(Black); got != MustSquare("g8") {
		t.Errorf("KingSquare(Black) = %v; want g8", got)
	}
	if got := p.Count(White, Pawn); got != 2 {
		t.Errorf("Count(White, Pawn) = %d; want 2", got)
	}

	p.Set(MustSquare("g8"), Empty)
	if got := p.KingSquare(Black); got != NoSquare {
		t.Errorf("KingSquare(Black) = %v; want NoSquare", got)
	}
}

func TestPositionCopyIsIndependent(t *testing.T) {
	p := NewPosition()
	p.Set(MustSquare("d4"), W(Queen))
	c := p.Copy()
	c.Set(MustSquare("d4"), Empty)
	c.Castling.WhiteKingside = true

	if p.At(MustSquare("d4")) != W(Queen) {
		t.Error("Copy shares board storage with the original")
	}
	if p.Castling.WhiteKingside {
		t.Error("Copy shares castling rights with the original")
	}
}

func TestPositionString(t *testing.T) {
	p := NewPosition()
	p.Set(MustSquare("e1"), W(King))
	s := p.String()
	if !strings.Contains(s, "1  . . . . K . . .") {
		t.Errorf("String() missing first rank:\n%s", s)
	}
	if !strings.Contains(s, "White to move") {
		t.Errorf("String() missing side to move:\n%s", s)
	}
}

func TestMoveUCI(t *testing.T) {
	m := Move{From: MustSquare("e7"), To: MustSquare("e8"), Piece: W(Pawn), Promotion: true}
	if m.UCI() != "e7e8" {
		t.Errorf("UCI() = %q; want e7e8 before application", m.UCI())
	}
	m.PromoteTo = Knight
	if m.UCI() != "e7e8n" {
		t.Errorf("UCI() = %q; want e7e8n", m.UCI())
	}

	applied := m
	applied.Snapshot = &Snapshot{FullmoveNumber: 1}
	if !applied.SameMove(m) {
		t.Error("SameMove should ignore application state")
	}
	if applied.SameMove(Move{From: m.From, To: m.To, Piece: W(Pawn)}) {
		t.Error("SameMove should compare the promotion flag")
	}

	castle := Move{From: MustSquare("e1"), To: MustSquare("g1"), Piece: W(King), Castle: true}
	if !castle.IsKingsideCastle() {
		t.Error("e1g1 castle should be kingside")
	}
	if castle.IsCapture() || castle.Applied() {
		t.Error("fresh castle move should not be a capture or applied")
	}
}
