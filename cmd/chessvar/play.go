package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/maplefeline/chessvar"
)

// splitMove accepts "e2 e4", "e2e4", "e2-e4" and "e2xe4". Squares are
// passed through unparsed so the game reports bounds errors itself.
func splitMove(line string) (string, string, bool) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 2:
		return fields[0], fields[1], true
	case 1:
		token := fields[0]
		if len(token) < 4 {
			return "", "", false
		}
		return token[:2], strings.TrimLeft(token[2:], "-x"), true
	}
	return "", "", false
}

// play applies the moves read from r to game, one per line, and reports
// each result on w.
func play(r io.Reader, w io.Writer, game *chessvar.Game) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		switch line {
		case "":
			continue
		case "board":
			board := game.Board()
			fmt.Fprint(w, board.String())
			continue
		case "plays":
			plays := game.Plays()
			moves := make([]string, 0, len(plays))
			for _, m := range plays {
				moves = append(moves, m.String())
			}
			fmt.Fprintln(w, strings.Join(moves, " "))
			continue
		case "state":
			fmt.Fprintf(w, "%s %s to move\n", game.State(), game.Turn())
			continue
		}
		from, to, ok := splitMove(line)
		if !ok {
			fmt.Fprintf(w, "unreadable move %q\n", line)
			continue
		}
		if err := game.Play(from, to); err != nil {
			fmt.Fprintf(w, "rejected %s %s: %v\n", from, to, err)
			continue
		}
		board := game.Board()
		fmt.Fprintf(w, "%s %s\n", from, to)
		fmt.Fprint(w, board.String())
		if game.State() != chessvar.InProgress {
			fmt.Fprintln(w, game.State())
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	fmt.Fprintf(w, "final %s after %d moves\n", game.State(), game.Plies())
	return nil
}
