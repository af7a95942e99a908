// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules/internal/config"
)

var (
	fenFlag = flag.String("fen", "", "Position to count from in FEN (default: standard start)")
	depth   = flag.Int("depth", 4, "Search depth in plies")
	divide  = flag.Bool("divide", false, "Print the count below each root move")
	workers = flag.Int("workers", 0, "Worker goroutines for -divide (default: number of CPUs)")
	hash    = flag.Int("hash", 0, "Transposition table entries, 0 disables")
	jsonOut = flag.Bool("json", false, "Print the result as JSON")

	verbosity = flag.Int("v", 0, "Log verbosity: 0=off, 1=summary, 2=debug")
	logFile   = flag.String("log", "", "Write logs to this file (default: stderr)")

	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) error {
	if *fenFlag != "" {
		cfg.InitialFEN = *fenFlag
	}
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	cfg.Perft.HashEntries = *hash
	cfg.JSONOutput = *jsonOut
	cfg.Log.Verbosity = *verbosity
	cfg.Log.File = *logFile

	return cfg.Validate()
}
