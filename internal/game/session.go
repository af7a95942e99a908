// Package game manages a single chess game: the position, the move history
// and the terminal state after every change.
package game

import (
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
)

// Session owns one game. After construction and after every Apply, Undo
// and Restart it regenerates the legal moves of the side to move, so the
// check and terminal state never depend on which queries a caller made.
//
// A Session is not safe for concurrent use.
type Session struct {
	id         string
	name       string
	initialFEN string
	pos        *chess.Position
	history    []chess.Move
	legal      []chess.Move
	logger     *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. A nil logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession starts a game from fen, or from the standard position when fen
// is empty.
func NewSession(fen string, opts ...Option) (*Session, error) {
	if strings.TrimSpace(fen) == "" {
		fen = engine.InitialFEN
	}
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:         uuid.NewString(),
		name:       petname.Generate(2, "-"),
		initialFEN: fen,
		pos:        pos,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.logger = s.logger.With(zap.String("session_id", s.id))

	s.logger.Info("game started", zap.String("name", s.name), zap.String("fen", fen))
	s.refresh()
	return s, nil
}

// ID returns the unique identifier of the session.
func (s *Session) ID() string { return s.id }

// Name returns a short readable label such as "brave-otter". Names are not
// unique; use ID to tell sessions apart.
func (s *Session) Name() string { return s.name }

// InitialFEN returns the position the game starts and restarts from.
func (s *Session) InitialFEN() string { return s.initialFEN }

// Position returns a copy of the current position.
func (s *Session) Position() *chess.Position { return s.pos.Copy() }

// PieceAt returns the piece on sq, Empty for an empty or off-board square.
func (s *Session) PieceAt(sq chess.Square) chess.Piece { return s.pos.At(sq) }

// SideToMove returns the side whose turn it is.
func (s *Session) SideToMove() chess.Side { return s.pos.SideToMove }

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool { return engine.InCheck(s.pos, s.pos.SideToMove) }

// KingSquare returns where side's king stands.
func (s *Session) KingSquare(side chess.Side) chess.Square { return s.pos.KingSquare(side) }

// LegalMoves returns the legal moves of the side to move.
func (s *Session) LegalMoves() []chess.Move {
	return append([]chess.Move(nil), s.legal...)
}

// LegalMovesFrom returns the legal moves of the piece on sq. It is empty
// when sq does not hold a piece of the side to move.
func (s *Session) LegalMovesFrom(sq chess.Square) []chess.Move {
	return engine.LegalMovesFrom(s.pos, sq)
}

// Checkmate reports whether the side to move has been mated.
func (s *Session) Checkmate() bool { return s.pos.Checkmate }

// Stalemate reports whether the side to move is stalemated.
func (s *Session) Stalemate() bool { return s.pos.Stalemate }

// Status returns the current game status.
func (s *Session) Status() Status {
	switch {
	case s.pos.Checkmate:
		return Checkmate
	case s.pos.Stalemate:
		return Stalemate
	default:
		return Active
	}
}

// Winner returns the side that delivered mate. ok is false unless the game
// ended in checkmate.
func (s *Session) Winner() (winner chess.Side, ok bool) {
	if !s.pos.Checkmate {
		return chess.White, false
	}
	return s.pos.SideToMove.Opposite(), true
}

// StatusLine returns a short human readable summary of the game state.
func (s *Session) StatusLine() string {
	return statusLine(s.Status(), s.pos.SideToMove, s.InCheck())
}

// Ply returns the number of moves played.
func (s *Session) Ply() int { return len(s.history) }

// History returns the applied moves, oldest first.
func (s *Session) History() []chess.Move {
	return append([]chess.Move(nil), s.history...)
}

// LastMove returns the most recent move. ok is false at the start.
func (s *Session) LastMove() (m chess.Move, ok bool) {
	if len(s.history) == 0 {
		return chess.Move{}, false
	}
	return s.history[len(s.history)-1], true
}

// Apply plays the legal move from one square to another. promoteTo resolves
// a promotion and must be NoKind otherwise; NoKind on a promotion means
// Queen. On error the game is unchanged.
func (s *Session) Apply(from, to chess.Square, promoteTo chess.PieceKind) (chess.Move, error) {
	text := from.String() + to.String()
	if promoteTo != chess.NoKind {
		text += strings.ToLower(string(promoteTo.Letter()))
	}

	if s.Status().Over() {
		return chess.Move{}, s.reject(errors.ErrGameOver, text)
	}

	m, found := s.findLegal(from, to)
	if !found {
		return chess.Move{}, s.reject(errors.ErrIllegalMove, text)
	}

	applied, err := engine.ApplyMove(s.pos, m, promoteTo)
	if err != nil {
		return chess.Move{}, s.reject(err, text)
	}
	s.history = append(s.history, applied)

	s.logger.Debug("move applied",
		zap.String("move", applied.UCI()),
		zap.Int("ply", len(s.history)),
	)
	s.refresh()
	return applied, nil
}

// ApplyUCI parses a move in long algebraic form ("e2e4", "e7e8n") and
// applies it.
func (s *Session) ApplyUCI(text string) (chess.Move, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, s.reject(errors.Wrap(errors.ErrIllegalMove, "want from and to squares"), text)
	}

	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, s.reject(err, text)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, s.reject(err, text)
	}

	promo := chess.NoKind
	if len(text) == 5 {
		promo = chess.ParsePieceKind(text[4])
		if !promo.IsPromotionTarget() {
			return chess.Move{}, s.reject(errors.Wrapf(errors.ErrInvalidPromotion, "letter %q", text[4]), text)
		}
	}
	return s.Apply(from, to, promo)
}

// Undo takes back the most recent move and returns it.
func (s *Session) Undo() (chess.Move, error) {
	if len(s.history) == 0 {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrNoMoveToUndo}
	}

	last := s.history[len(s.history)-1]
	if err := engine.UndoMove(s.pos, last); err != nil {
		return chess.Move{}, &errors.MoveError{Err: err, Ply: len(s.history), Move: last.UCI()}
	}
	s.history = s.history[:len(s.history)-1]

	s.logger.Debug("move undone",
		zap.String("move", last.UCI()),
		zap.Int("ply", len(s.history)+1),
	)
	s.refresh()
	return last, nil
}

// Restart replaces the position with a fresh one from the initial FEN and
// clears the history.
func (s *Session) Restart() error {
	pos, err := engine.NewPositionFromFEN(s.initialFEN)
	if err != nil {
		return err
	}
	s.pos = pos
	s.history = nil

	s.logger.Info("game restarted")
	s.refresh()
	return nil
}

// findLegal looks up the current legal move between two squares.
func (s *Session) findLegal(from, to chess.Square) (chess.Move, bool) {
	for _, m := range s.legal {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return chess.Move{}, false
}

// refresh regenerates the legal moves, which also sets the terminal flags.
func (s *Session) refresh() {
	s.legal = engine.LegalMoves(s.pos, s.pos.SideToMove)

	switch s.Status() {
	case Checkmate:
		s.logger.Info("checkmate",
			zap.Stringer("winner", s.pos.SideToMove.Opposite()),
			zap.Int("ply", len(s.history)),
		)
	case Stalemate:
		s.logger.Info("stalemate", zap.Int("ply", len(s.history)))
	}
}

// reject logs a refused move and wraps err with the game context.
func (s *Session) reject(err error, text string) error {
	ply := len(s.history) + 1
	s.logger.Warn("move rejected",
		zap.String("move", text),
		zap.Int("ply", ply),
		zap.Error(err),
	)
	return &errors.MoveError{Err: err, Ply: ply, Move: text}
}
