// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the contract violations the engine reports and structured error
// types that preserve context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for contract violations.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed board-setup string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the current legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPromotion indicates a promotion kind that cannot be applied.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrNoMoveToUndo indicates an undo request with an empty move history.
	ErrNoMoveToUndo = errors.New("no move to undo")

	// ErrMoveNotApplied indicates an undo of a move that carries no snapshot.
	ErrMoveNotApplied = errors.New("move was never applied")

	// ErrGameOver indicates a move request after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidSquare indicates a square outside the board or badly written.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FENError wraps a board-setup failure with the field that caused it.
type FENError struct {
	Err   error  // The underlying error
	Field string // FEN field name ("placement", "side", "castling", ...)
	Value string // The offending text (if applicable)
}

// Error returns a formatted error message naming the field and value.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return "fen error"
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// MoveError wraps a rejected move with game context. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // Ply the move would have been (1-based, 0 if not applicable)
	Move string // Move text as supplied by the caller
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return context
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
