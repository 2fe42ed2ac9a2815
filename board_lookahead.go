package chessvar

const (
	winScore    = 100
	threatScore = winScore / 2
)

// Score rates a move for the side to move one reply deep. Captures are worth
// the captured kind's value, a capture that wins the game is worth winScore
// more, and leaving the opponent a winning reply costs threatScore.
func Score(board Board, turn Color, m Move) int {
	if err := board.check(turn, m.From, m.To); err != nil {
		return -winScore
	}
	captured := board.At(m.To)
	board.move(m.From, m.To)
	score := 0
	if !captured.Empty() {
		score += kindValues[captured.Kind()]
		if !board.Contains(captured.Kind(), captured.Color()) {
			return score + winScore
		}
	}
	if board.threatened(turn) {
		score -= threatScore
	}
	return score
}

// threatened reports whether color's opponent can capture the last piece of
// any of color's kinds on the next move.
func (board Board) threatened(color Color) bool {
	threat := false
	for m := range board.movesForBoard(color.Other()) {
		target := board.At(m.To)
		if threat || target.Empty() {
			continue
		}
		if board.last(target) {
			threat = true
		}
	}
	return threat
}

func (board *Board) last(p Piece) bool {
	count := 0
	for _, q := range board {
		if q.is(p.Kind(), p.Color()) {
			count++
		}
	}
	return count == 1
}
