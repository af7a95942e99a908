// perft counts the leaf nodes of the legal move tree, for checking the move
// generator against published numbers.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/hashing"
	"github.com/lgbarn/chessrules/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the count described by cfg and writes it to cfg.OutputFile.
func run(cfg *config.Config, logger *zap.Logger) error {
	pos, err := engine.NewPositionFromFEN(cfg.InitialFEN)
	if err != nil {
		return err
	}

	var table *hashing.Table
	if cfg.Perft.HashEntries > 0 {
		table = hashing.NewTable(cfg.Perft.HashEntries)
	}

	start := time.Now()
	var nodes int64
	var counts map[string]int64
	if cfg.Perft.Divide {
		counts, err = engine.ParallelDivide(pos, cfg.Perft.Depth, cfg.Perft.Workers, table)
		if err != nil {
			return err
		}
		for _, n := range counts {
			nodes += n
		}
	} else {
		nodes = engine.HashedPerft(pos, cfg.Perft.Depth, table)
	}
	elapsed := time.Since(start)

	if cfg.JSONOutput {
		result := output.NewPerftResult(cfg.InitialFEN, cfg.Perft.Depth, nodes, counts)
		if err := output.WritePerftJSON(cfg.OutputFile, result); err != nil {
			return err
		}
	} else {
		if counts != nil {
			printDivide(cfg.OutputFile, counts)
		}
		fmt.Fprintf(cfg.OutputFile, "Nodes: %d\n", nodes)
	}
	logger.Info("perft done",
		zap.String("fen", cfg.InitialFEN),
		zap.Int("depth", cfg.Perft.Depth),
		zap.Int64("nodes", nodes),
		zap.Duration("elapsed", elapsed),
		zap.Int("workers", cfg.Perft.Workers),
	)
	if table != nil {
		logger.Debug("hash table",
			zap.Int("entries", table.Len()),
			zap.Int64("hits", table.Hits()),
			zap.Bool("full", table.IsFull()),
		)
	}
	return nil
}

// printDivide writes the counts sorted by move.
func printDivide(w io.Writer, counts map[string]int64) {
	moves := maps.Keys(counts)
	slices.Sort(moves)

	for _, m := range moves {
		fmt.Fprintf(w, "%s: %d\n", m, counts[m])
	}
	fmt.Fprintln(w)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts legal move sequences to a fixed depth.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
