package engine

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/hashing"
	"github.com/lgbarn/chessrules/internal/testutil"
)

// testFENs covers castling, en passant, promotions, pins and checks.
var testFENs = map[string]string{
	"Initial":    InitialFEN,
	"Kiwipete":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"Position3":  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"Position4":  "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"Position5":  "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"Promotions": "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	"EnPassant":  "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Midgame":    "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
}

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		nodes []int64 // by depth, starting at 1
		slow  int     // depths from here on are skipped in -short mode
	}{
		{"initial", InitialFEN, []int64{20, 400, 8902, 197281}, 4},
		{"kiwipete", testFENs["Kiwipete"], []int64{48, 2039, 97862}, 3},
		{"position 3", testFENs["Position3"], []int64{14, 191, 2812, 43238}, 4},
		{"position 4", testFENs["Position4"], []int64{6, 264, 9467}, 3},
		{"position 5", testFENs["Position5"], []int64{44, 1486, 62379}, 3},
		{"promotions", testFENs["Promotions"], []int64{24, 496, 9483}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			before := pos.Copy()
			for i, want := range tt.nodes {
				depth := i + 1
				if depth >= tt.slow && testing.Short() {
					t.Skipf("depth %d skipped in short mode", depth)
				}
				testutil.AssertEqual(t, Perft(pos, depth), want, "depth %d", depth)
			}
			testutil.AssertEqual(t, pos, before, "position restored")
		})
	}
}

func TestPerft_DepthZero(t *testing.T) {
	testutil.AssertEqual(t, Perft(NewInitialPosition(), 0), int64(1))
	testutil.AssertEqual(t, len(Divide(NewInitialPosition(), 0)), 0)
}

func TestDivide(t *testing.T) {
	pos := mustPosition(t, testFENs["Kiwipete"])
	counts := Divide(pos, 2)

	testutil.AssertEqual(t, len(counts), 48)
	var total int64
	for _, n := range counts {
		total += n
	}
	testutil.AssertEqual(t, total, int64(2039))
	testutil.AssertEqual(t, counts["e1g1"], int64(43))
	testutil.AssertEqual(t, counts["d5e6"], int64(46))
}

func TestDivide_PromotionKeys(t *testing.T) {
	pos := mustPosition(t, "k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	counts := Divide(pos, 1)

	for _, key := range []string{"e7e8q", "e7e8r", "e7e8b", "e7e8n"} {
		testutil.AssertEqual(t, counts[key], int64(1), key)
	}
	_, bare := counts["e7e8"]
	testutil.AssertFalse(t, bare, "unresolved promotion key")
}

func TestParallelDivide(t *testing.T) {
	for _, name := range []string{"Initial", "Kiwipete", "Promotions"} {
		t.Run(name, func(t *testing.T) {
			pos := mustPosition(t, testFENs[name])
			before := pos.Copy()

			want := Divide(pos, 3)
			got, err := ParallelDivide(pos, 3, 4, nil)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, want)
			testutil.AssertEqual(t, pos, before, "root position untouched")

			hashed, err := ParallelDivide(pos, 3, 4, hashing.NewTable(0))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, hashed, want, "shared table")
		})
	}
}

func TestHashedPerft(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		want  int64
	}{
		{"Initial", 4, 197281},
		{"Kiwipete", 3, 97862},
		{"Position3", 4, 43238},
		{"Promotions", 3, 9483},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, testFENs[tt.name])
			before := pos.Copy()
			table := hashing.NewTable(0)

			testutil.AssertEqual(t, HashedPerft(pos, tt.depth, table), tt.want)
			testutil.AssertEqual(t, pos, before, "position restored")
			testutil.AssertTrue(t, table.Len() > 0, "table filled")

			// A second run is answered from the root entry.
			testutil.AssertEqual(t, HashedPerft(pos, tt.depth, table), tt.want)
			testutil.AssertTrue(t, table.Hits() > 0, "no cache hits")
		})
	}
}

func TestHashedPerft_FullTable(t *testing.T) {
	pos := mustPosition(t, testFENs["Kiwipete"])
	table := hashing.NewTable(1)
	testutil.AssertEqual(t, HashedPerft(pos, 3, table), int64(97862))
	testutil.AssertEqual(t, table.Len(), 1)
}
