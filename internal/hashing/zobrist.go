// Package hashing computes Zobrist keys for positions and caches perft
// counts by key.
package hashing

import "github.com/lgbarn/chessrules/internal/chess"

// Key tables. Piece values index pieceKeys directly.
var (
	pieceKeys  [16][chess.BoardSize * chess.BoardSize]uint64
	sideKey    uint64
	castleKeys [4]uint64
	epKeys     [chess.BoardSize]uint64
)

func init() {
	// splitmix64 with a fixed seed keeps keys identical across runs.
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for p := range pieceKeys {
		for sq := range pieceKeys[p] {
			pieceKeys[p][sq] = next()
		}
	}
	sideKey = next()
	for i := range castleKeys {
		castleKeys[i] = next()
	}
	for i := range epKeys {
		epKeys[i] = next()
	}
}

// Key returns the Zobrist key of the position: placement, side to move,
// castling rights and en passant file. Clocks are not part of the key.
func Key(pos *chess.Position) uint64 {
	var key uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := pos.Board[row][col]; !p.IsEmpty() {
				key ^= pieceKeys[p][row*chess.BoardSize+col]
			}
		}
	}

	if pos.SideToMove == chess.Black {
		key ^= sideKey
	}

	rights := []bool{
		pos.Castling.WhiteKingside, pos.Castling.WhiteQueenside,
		pos.Castling.BlackKingside, pos.Castling.BlackQueenside,
	}
	for i, has := range rights {
		if has {
			key ^= castleKeys[i]
		}
	}

	if pos.EnPassant.Valid() {
		key ^= epKeys[pos.EnPassant.Col]
	}
	return key
}
