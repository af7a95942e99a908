package engine

import (
	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/hashing"
	"github.com/lgbarn/chessrules/internal/worker"
)

// promotionKinds lists the kinds a promotion expands into when counting.
var promotionKinds = []chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Every promotion counts once per possible kind, which gives the standard
// published numbers. The position is restored before returning.
func Perft(pos *chess.Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}

	var nodes int64
	for _, m := range filterLegal(pos, GeneratePseudoLegal(pos, pos.SideToMove)) {
		for _, kind := range expansions(m) {
			if depth == 1 {
				nodes++
				continue
			}
			applied, _ := ApplyMove(pos, m, kind)
			nodes += Perft(pos, depth-1)
			_ = UndoMove(pos, applied)
		}
	}
	return nodes
}

// HashedPerft is Perft with interior counts cached in table by position key.
// A nil table falls back to Perft.
func HashedPerft(pos *chess.Position, depth int, table *hashing.Table) int64 {
	if table == nil || depth <= 1 {
		return Perft(pos, depth)
	}

	key := hashing.Key(pos)
	if nodes, ok := table.Lookup(key, depth); ok {
		return nodes
	}

	var nodes int64
	for _, m := range filterLegal(pos, GeneratePseudoLegal(pos, pos.SideToMove)) {
		for _, kind := range expansions(m) {
			applied, _ := ApplyMove(pos, m, kind)
			nodes += HashedPerft(pos, depth-1, table)
			_ = UndoMove(pos, applied)
		}
	}
	table.Store(key, depth, nodes)
	return nodes
}

// Divide returns the perft count below each root move, keyed by the move's
// UCI text with the promotion letter included.
func Divide(pos *chess.Position, depth int) map[string]int64 {
	counts := make(map[string]int64)
	if depth <= 0 {
		return counts
	}
	for _, m := range filterLegal(pos, GeneratePseudoLegal(pos, pos.SideToMove)) {
		for _, kind := range expansions(m) {
			applied, _ := ApplyMove(pos, m, kind)
			counts[applied.UCI()] = Perft(pos, depth-1)
			_ = UndoMove(pos, applied)
		}
	}
	return counts
}

// ParallelDivide computes the same result as Divide with the root moves
// spread over a worker pool. Each item works on its own copy of pos. Workers
// share table when it is non-nil.
func ParallelDivide(pos *chess.Position, depth, workers int, table *hashing.Table) (map[string]int64, error) {
	counts := make(map[string]int64)
	if depth <= 0 {
		return counts, nil
	}

	var items []worker.WorkItem
	for _, m := range filterLegal(pos, GeneratePseudoLegal(pos, pos.SideToMove)) {
		for _, kind := range expansions(m) {
			resolved := m
			resolved.PromoteTo = kind
			items = append(items, worker.WorkItem{
				Position: pos.Copy(),
				Move:     resolved,
				Depth:    depth,
				Index:    len(items),
			})
		}
	}

	process := func(item worker.WorkItem) worker.ProcessResult {
		return divideSubtree(item, table)
	}
	pool := worker.NewPool(process, worker.WithWorkers(workers), worker.WithBufferSize(len(items)+1))
	pool.Start()
	go func() {
		for _, it := range items {
			pool.Submit(it)
		}
		pool.Close()
	}()

	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
				pool.Stop()
			}
			continue
		}
		counts[r.Move.UCI()] = r.Nodes
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return counts, nil
}

// divideSubtree counts the subtree below one root move.
func divideSubtree(item worker.WorkItem, table *hashing.Table) worker.ProcessResult {
	applied, err := ApplyMove(item.Position, item.Move, item.Move.PromoteTo)
	if err != nil {
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Error: errors.Wrap(err, "divide")}
	}
	return worker.ProcessResult{
		Move:  applied,
		Index: item.Index,
		Nodes: HashedPerft(item.Position, item.Depth-1, table),
	}
}

// expansions returns the promotion kinds to try for m, or a single NoKind
// for a move that does not promote.
func expansions(m chess.Move) []chess.PieceKind {
	if m.Promotion {
		return promotionKinds
	}
	return []chess.PieceKind{chess.NoKind}
}
