package config

import (
	"strings"

	"github.com/lgbarn/chessrules/internal/errors"
)

// ColorMode selects when the board is drawn with ANSI colours.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // colour when writing to a terminal
	ColorAlways                  // always colour
	ColorNever                   // plain text
)

// String returns the flag spelling of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode parses "auto", "always" or "never", ignoring case.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, errors.Wrapf(errors.ErrInvalidConfig, "color mode %q", s)
}

// DisplayConfig holds settings for the terminal board.
type DisplayConfig struct {
	Color ColorMode

	// ShowLegalTargets marks the destinations of a selected piece
	ShowLegalTargets bool

	// Flipped draws the board from Black's side
	Flipped bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Color:            ColorAuto,
		ShowLegalTargets: true,
	}
}
