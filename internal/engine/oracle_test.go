package engine

import (
	"sort"
	"testing"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/testutil"
)

// oracleMoves returns notnil/chess's legal moves as from+to strings, with
// promotions collapsed to one entry.
func oracleMoves(g *notnil.Game) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range g.ValidMoves() {
		key := m.S1().String() + m.S2().String()
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func oracleGame(t *testing.T, fen string) *notnil.Game {
	t.Helper()
	opt, err := notnil.FEN(fen)
	if err != nil {
		t.Fatalf("notnil FEN(%q): %v", fen, err)
	}
	return notnil.NewGame(opt, notnil.UseNotation(notnil.UCINotation{}))
}

// Walks a deterministic line from each test position and compares the legal
// move sets with notnil/chess at every ply.
func TestLegalMoves_AgainstOracle(t *testing.T) {
	const plies = 40

	for name, fen := range testFENs {
		t.Run(name, func(t *testing.T) {
			pos := mustPosition(t, fen)
			g := oracleGame(t, fen)

			for ply := 0; ply < plies; ply++ {
				moves := LegalMoves(pos, pos.SideToMove)
				testutil.AssertEqual(t, testutil.MoveStrings(moves), oracleMoves(g), "ply %d of\n%s", ply, pos)
				if len(moves) == 0 || g.Outcome() != notnil.NoOutcome {
					return
				}

				m := moves[(ply*7+3)%len(moves)]
				promo := chess.NoKind
				if m.Promotion {
					promo = promotionKinds[ply%len(promotionKinds)]
				}
				applied, err := ApplyMove(pos, m, promo)
				testutil.AssertNoError(t, err)
				if err := g.MoveStr(applied.UCI()); err != nil {
					t.Fatalf("oracle rejected %s at ply %d: %v", applied.UCI(), ply, err)
				}
			}
		})
	}
}

// Terminal positions must agree with the oracle's outcome method.
func TestTerminalState_AgainstOracle(t *testing.T) {
	tests := []struct {
		fen  string
		want notnil.Method
	}{
		{"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", notnil.Checkmate},
		{"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", notnil.Stalemate},
		{"8/8/8/8/8/2k5/1r6/K7 w - - 0 1", notnil.Stalemate},
	}

	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			LegalMoves(pos, pos.SideToMove)
			g := oracleGame(t, tt.fen)

			testutil.AssertEqual(t, g.Method(), tt.want)
			testutil.AssertEqual(t, pos.Checkmate, tt.want == notnil.Checkmate)
			testutil.AssertEqual(t, pos.Stalemate, tt.want == notnil.Stalemate)
		})
	}
}
