package chessvar

import (
	"crypto/rand"
	"errors"
	"math"
	"math/big"

	"github.com/apex/log"
	"github.com/montanaflynn/stats"
)

// ErrNoPlays is returned by Decide when the side to move has no legal move.
var ErrNoPlays = errors.New("no moves available")

// Decide picks a move for the side to move. Plays scoring at or above the
// 80th percentile are kept and drawn at random, weighted by how far they
// clear the cut.
func Decide(game *Game) (Move, error) {
	if game.State() != InProgress {
		return Move{}, ErrGameOver
	}
	plays := game.Plays()
	if len(plays) == 0 {
		return Move{}, ErrNoPlays
	}
	board := game.Board()
	scores := make([]int, 0, len(plays))
	for _, play := range plays {
		scores = append(scores, Score(board, game.Turn(), play))
	}
	return decide(plays, scores)
}

func decide(plays []Move, scores []int) (Move, error) {
	if len(plays) == 1 {
		return plays[0], nil
	}
	percentile, err := stats.Percentile(stats.LoadRawData(scores), 80)
	if err != nil {
		log.WithError(err).Error("score percentile")
		return Move{}, err
	}
	lowScore := int(math.Round(percentile))
	choices := make([]Move, 0, len(plays)*len(plays))
	for i, play := range plays {
		if lowScore <= scores[i] {
			count := (scores[i] - lowScore) + 1
			if count > len(plays) {
				count = len(plays)
			}
			for j := 0; j < count; j++ {
				choices = append(choices, play)
			}
		}
	}
	if len(choices) == 0 {
		choices = plays
	}
	choice, err := rand.Int(rand.Reader, big.NewInt(int64(len(choices))))
	if err != nil {
		log.WithError(err).Error("random choice")
		return Move{}, err
	}
	return choices[choice.Uint64()], nil
}
