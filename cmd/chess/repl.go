package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/game"
	"github.com/lgbarn/chessrules/internal/output"
)

const commandHelp = `  <move>       play a move in long algebraic form (e2e4, e7e8n)
  moves <sq>   show the legal moves of the piece on a square
  undo         take back the last move
  restart      start again from the initial position
  board        redraw the board
  export       print the game so far as JSON
  help         show this list
  quit         leave the game
`

// REPL reads commands line by line and plays them on a session.
type REPL struct {
	session  *game.Session
	renderer *renderer
	in       io.Reader
	out      io.Writer
	logger   *zap.Logger
}

// Run draws the board and processes commands until quit or end of input.
func (r *REPL) Run() error {
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	r.renderer.Draw(r.out, r.session, nil)

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		if quit := r.handle(scanner.Text()); quit {
			return nil
		}
	}
}

// handle executes one command line and reports whether to stop.
func (r *REPL) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprint(r.out, commandHelp)
	case "board":
		r.renderer.Draw(r.out, r.session, nil)
	case "undo", "u":
		if _, err := r.session.Undo(); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return false
		}
		r.renderer.Draw(r.out, r.session, nil)
	case "restart", "r":
		if err := r.session.Restart(); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return false
		}
		r.renderer.Draw(r.out, r.session, nil)
	case "moves":
		r.showMoves(fields[1:])
	case "export":
		if err := output.WriteSessionJSON(r.out, r.session); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
	default:
		if _, err := r.session.ApplyUCI(fields[0]); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return false
		}
		r.renderer.Draw(r.out, r.session, nil)
	}
	return false
}

// showMoves lists and marks the destinations of the piece on a square.
func (r *REPL) showMoves(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: moves <square>")
		return
	}
	sq, err := chess.ParseSquare(strings.ToLower(args[0]))
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}

	moves := r.session.LegalMovesFrom(sq)
	if len(moves) == 0 {
		fmt.Fprintf(r.out, "No legal moves from %s\n", sq)
		return
	}
	r.renderer.Draw(r.out, r.session, moves)

	texts := make([]string, 0, len(moves))
	for _, m := range moves {
		texts = append(texts, m.UCI())
	}
	slices.Sort(texts)
	fmt.Fprintln(r.out, strings.Join(texts, " "))
}
