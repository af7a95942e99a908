package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/game"
)

// Square backgrounds, highest priority first.
const (
	checkBg    = color.BgRed
	targetBg   = color.BgGreen
	lastMoveBg = color.BgYellow
	lightBg    = color.BgHiWhite
	darkBg     = color.BgWhite
)

// renderer draws the board and status line.
type renderer struct {
	display config.DisplayConfig
	colored bool
}

func newRenderer(display config.DisplayConfig, colored bool) *renderer {
	return &renderer{display: display, colored: colored}
}

// paint applies attrs to text unless colour is off.
func (r *renderer) paint(text string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if r.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

// Draw writes the board followed by the status line. targets are moves
// whose destinations get marked.
func (r *renderer) Draw(w io.Writer, s *game.Session, targets []chess.Move) {
	marked := make(map[chess.Square]bool)
	if r.display.ShowLegalTargets {
		for _, m := range targets {
			marked[m.To] = true
		}
	}

	checkSq := chess.NoSquare
	if s.InCheck() {
		checkSq = s.KingSquare(s.SideToMove())
	}
	last, hasLast := s.LastMove()

	var sb strings.Builder
	for i := 0; i < chess.BoardSize; i++ {
		row := r.orient(i)
		fmt.Fprintf(&sb, "%d ", chess.BoardSize-row)
		for j := 0; j < chess.BoardSize; j++ {
			sq := chess.Sq(row, r.orient(j))

			bg := lightBg
			if (sq.Row+sq.Col)%2 == 1 {
				bg = darkBg
			}
			switch {
			case sq == checkSq:
				bg = checkBg
			case marked[sq]:
				bg = targetBg
			case hasLast && (sq == last.From || sq == last.To):
				bg = lastMoveBg
			}

			attrs := []color.Attribute{bg}
			piece := s.PieceAt(sq)
			switch {
			case piece.IsEmpty():
			case piece.Side() == chess.White:
				attrs = append(attrs, color.FgHiBlue, color.Bold)
			default:
				attrs = append(attrs, color.FgBlack, color.Bold)
			}
			sb.WriteString(r.paint(" "+r.cell(piece, marked[sq])+" ", attrs...))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for j := 0; j < chess.BoardSize; j++ {
		fmt.Fprintf(&sb, " %c ", 'a'+r.orient(j))
	}
	sb.WriteByte('\n')

	fmt.Fprint(w, sb.String())
	fmt.Fprintln(w, r.paint(s.StatusLine(), color.FgCyan, color.Bold))
}

// cell returns the glyph for one square. Without colour, legal targets on
// empty squares show as '*'.
func (r *renderer) cell(p chess.Piece, target bool) string {
	if p.IsEmpty() && target && !r.colored {
		return "*"
	}
	return p.String()
}

// orient maps a drawing index to a board index.
func (r *renderer) orient(i int) int {
	if r.display.Flipped {
		return chess.BoardSize - 1 - i
	}
	return i
}
