// Package config provides the program configuration shared by the chess
// front-ends.
package config

import (
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
)

// DefaultFEN is the standard starting position.
const DefaultFEN = engine.InitialFEN

// Config holds all program configuration.
type Config struct {
	// Starting position of every game, including after a restart.
	InitialFEN string

	Display DisplayConfig
	Log     LogConfig
	Perft   PerftConfig

	// Write results as JSON instead of text
	JSONOutput bool

	// Output streams
	OutputFile io.Writer
	ErrorFile  io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		InitialFEN: DefaultFEN,
		Display:    *NewDisplayConfig(),
		Log:        *NewLogConfig(),
		Perft:      *NewPerftConfig(),
		OutputFile: os.Stdout,
		ErrorFile:  os.Stderr,
	}
}

// Validate reports the first setting that cannot be used.
// The FEN itself is checked when a game is created from it.
func (c *Config) Validate() error {
	if c.InitialFEN == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "initial FEN is empty")
	}
	if c.Log.Verbosity < 0 || c.Log.Verbosity > MaxVerbosity {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range 0-%d", c.Log.Verbosity, MaxVerbosity)
	}
	if c.Perft.Depth < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d must be at least 1", c.Perft.Depth)
	}
	if c.Perft.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d must be at least 1", c.Perft.Workers)
	}
	if c.Perft.HashEntries < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "hash entries %d must not be negative", c.Perft.HashEntries)
	}
	return nil
}

// PerftConfig holds settings for move generator verification.
type PerftConfig struct {
	// Depth in plies
	Depth int

	// Divide prints per-root-move counts
	Divide bool

	// Workers used by the parallel divide
	Workers int

	// HashEntries caps the transposition table; 0 disables hashing
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   4,
		Workers: runtime.NumCPU(),
	}
}
