// Package output encodes game sessions and perft results as JSON.
package output

import (
	"encoding/json"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/game"
)

// JSONSession represents a session in JSON format.
type JSONSession struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	InitialFEN string     `json:"initialFEN"`
	Moves      []JSONMove `json:"moves"`
	PlyCount   int        `json:"plyCount"`
	SideToMove string     `json:"sideToMove"`
	Status     string     `json:"status"`
	Winner     string     `json:"winner,omitempty"`
	InCheck    bool       `json:"inCheck,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	EnPassant  bool   `json:"enPassant,omitempty"`
	Castle     bool   `json:"castle,omitempty"`
}

// JSONPerft holds a perft result, with per-move counts when divided.
type JSONPerft struct {
	FEN    string          `json:"fen"`
	Depth  int             `json:"depth"`
	Nodes  int64           `json:"nodes"`
	Divide []JSONDivideRow `json:"divide,omitempty"`
}

// JSONDivideRow is the count below one root move.
type JSONDivideRow struct {
	Move  string `json:"move"`
	Nodes int64  `json:"nodes"`
}

// SessionToJSON converts a session to JSON format.
func SessionToJSON(s *game.Session) *JSONSession {
	js := &JSONSession{
		ID:         s.ID(),
		Name:       s.Name(),
		InitialFEN: s.InitialFEN(),
		PlyCount:   s.Ply(),
		SideToMove: colorName(s.SideToMove()),
		Status:     s.Status().String(),
		InCheck:    s.InCheck(),
	}
	if winner, ok := s.Winner(); ok {
		js.Winner = colorName(winner)
	}

	js.Moves = make([]JSONMove, 0, s.Ply())
	for _, m := range s.History() {
		js.Moves = append(js.Moves, convertMove(m))
	}
	return js
}

func convertMove(m chess.Move) JSONMove {
	jm := JSONMove{
		Color:     colorName(m.Piece.Side()),
		UCI:       m.UCI(),
		From:      m.From.String(),
		To:        m.To.String(),
		Piece:     string(m.Piece.Kind().Letter()),
		EnPassant: m.EnPassant,
		Castle:    m.Castle,
	}
	if m.Snapshot != nil {
		jm.MoveNumber = m.Snapshot.FullmoveNumber
	}
	if m.IsCapture() {
		jm.Captured = string(m.Captured.Kind().Letter())
	}
	if m.Promotion && m.PromoteTo != chess.NoKind {
		jm.Promotion = string(m.PromoteTo.Letter())
	}
	return jm
}

// NewPerftResult builds a JSONPerft; counts may be nil for a plain count.
// Divide rows are sorted by move.
func NewPerftResult(fen string, depth int, nodes int64, counts map[string]int64) *JSONPerft {
	jp := &JSONPerft{FEN: fen, Depth: depth, Nodes: nodes}
	moves := maps.Keys(counts)
	slices.Sort(moves)
	for _, move := range moves {
		jp.Divide = append(jp.Divide, JSONDivideRow{Move: move, Nodes: counts[move]})
	}
	return jp
}

// WriteSessionJSON writes the session as indented JSON.
func WriteSessionJSON(w io.Writer, s *game.Session) error {
	return encode(w, SessionToJSON(s))
}

// WritePerftJSON writes a perft result as indented JSON.
func WritePerftJSON(w io.Writer, jp *JSONPerft) error {
	return encode(w, jp)
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encode json")
	}
	return nil
}

func colorName(side chess.Side) string {
	if side == chess.Black {
		return "black"
	}
	return "white"
}
