package engine

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
)

func BenchmarkNewPositionFromFEN(b *testing.B) {
	for name, fen := range testFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewPositionFromFEN(fen)
			}
		})
	}
}

func BenchmarkApplyUndo(b *testing.B) {
	cases := []struct {
		name     string
		fen      string
		from, to string
	}{
		{"PawnMove", InitialFEN, "e2", "e4"},
		{"PieceMove", InitialFEN, "g1", "f3"},
		{"KingsideCastle", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1", "e1", "g1"},
		{"EnPassant", testFENs["EnPassant"], "f5", "e6"},
		{"Promotion", "8/P7/8/8/8/8/8/4K2k w - - 0 1", "a7", "a8"},
	}

	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			pos := mustPosition(b, tt.fen)
			var move chess.Move
			for _, m := range LegalMoves(pos, pos.SideToMove) {
				if m.From == chess.MustSquare(tt.from) && m.To == chess.MustSquare(tt.to) {
					move = m
				}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				applied, _ := ApplyMove(pos, move, chess.NoKind)
				UndoMove(pos, applied)
			}
		})
	}
}

func BenchmarkInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		pos := NewInitialPosition()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			InCheck(pos, chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		pos := mustPosition(b, checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			InCheck(pos, chess.White)
		}
	})
}

func BenchmarkLegalMoves(b *testing.B) {
	for _, name := range []string{"Initial", "Midgame", "Kiwipete"} {
		b.Run(name, func(b *testing.B) {
			pos := mustPosition(b, testFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(pos, pos.SideToMove)
			}
		})
	}
}

func BenchmarkPerft3(b *testing.B) {
	pos := NewInitialPosition()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Perft(pos, 3)
	}
}
