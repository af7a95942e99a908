// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules/internal/config"
)

var (
	fenFlag   = flag.String("fen", "", "Starting position in FEN (default: standard start)")
	colorFlag = flag.String("color", "auto", "Colour output: auto, always, never")
	flipFlag  = flag.Bool("flip", false, "Draw the board from Black's side")
	noTargets = flag.Bool("notargets", false, "Don't mark legal destinations after 'moves'")

	verbosity = flag.Int("v", 0, "Log verbosity: 0=off, 1=game events, 2=every move")
	logFile   = flag.String("log", "", "Write logs to this file (default: stderr)")

	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) error {
	if *fenFlag != "" {
		cfg.InitialFEN = *fenFlag
	}

	mode, err := config.ParseColorMode(*colorFlag)
	if err != nil {
		return err
	}
	cfg.Display.Color = mode
	cfg.Display.Flipped = *flipFlag
	cfg.Display.ShowLegalTargets = !*noTargets

	cfg.Log.Verbosity = *verbosity
	cfg.Log.File = *logFile

	return cfg.Validate()
}
