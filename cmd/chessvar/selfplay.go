package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/apex/log"
	"github.com/maplefeline/chessvar"
	"github.com/montanaflynn/stats"
)

type result struct {
	ID    string         `json:"id"`
	State chessvar.State `json:"state"`
	Plies int            `json:"plies"`
	Final string         `json:"final"`
}

type summary struct {
	Games       int      `json:"games"`
	WhiteWon    int      `json:"whiteWon"`
	BlackWon    int      `json:"blackWon"`
	Unfinished  int      `json:"unfinished"`
	MeanPlies   float64  `json:"meanPlies"`
	MedianPlies float64  `json:"medianPlies"`
	MaxPlies    float64  `json:"maxPlies"`
	Results     []result `json:"results"`
}

// playOut runs one agent-vs-agent game until it is decided, a side has no
// move, or maxPlies moves have been made.
func playOut(maxPlies int) (result, error) {
	game := chessvar.New()
	for game.State() == chessvar.InProgress && game.Plies() < maxPlies {
		m, err := chessvar.Decide(game)
		if errors.Is(err, chessvar.ErrNoPlays) {
			break
		}
		if err != nil {
			return result{}, err
		}
		if err := game.Move(m.From, m.To); err != nil {
			return result{}, fmt.Errorf("agent move %s: %w", m, err)
		}
	}
	return result{
		ID:    game.ID.String(),
		State: game.State(),
		Plies: game.Plies(),
		Final: game.Board().Fingerprint(),
	}, nil
}

// selfplay runs cfg.games games on cfg.workers goroutines, one Game each.
// Closing stop abandons the games not yet started.
func selfplay(cfg *config, stop <-chan struct{}) (*summary, error) {
	jobs := make(chan int)
	results := make(chan result, cfg.games)
	errs := make(chan error, cfg.workers)

	var group sync.WaitGroup
	for i := 0; i < cfg.workers; i++ {
		group.Add(1)
		go func() {
			defer group.Done()
			failed := false
			for n := range jobs {
				if failed {
					continue
				}
				res, err := playOut(cfg.maxPlies)
				if err != nil {
					errs <- err
					failed = true
					continue
				}
				log.WithFields(log.Fields{
					"game":  res.ID,
					"n":     n,
					"state": res.State.String(),
					"plies": res.Plies,
				}).Info("game finished")
				results <- res
			}
		}()
	}

	go func() {
		defer close(jobs)
		for n := 0; n < cfg.games; n++ {
			select {
			case jobs <- n:
			case <-stop:
				log.Info("self-play interrupted")
				return
			}
		}
	}()

	group.Wait()
	close(results)
	close(errs)
	if err := <-errs; err != nil {
		return nil, err
	}

	sum := &summary{Results: make([]result, 0, cfg.games)}
	plies := make([]int, 0, cfg.games)
	for res := range results {
		sum.Results = append(sum.Results, res)
		plies = append(plies, res.Plies)
		switch res.State {
		case chessvar.WhiteWon:
			sum.WhiteWon++
		case chessvar.BlackWon:
			sum.BlackWon++
		default:
			sum.Unfinished++
		}
	}
	sum.Games = len(sum.Results)
	if sum.Games == 0 {
		return sum, nil
	}
	data := stats.LoadRawData(plies)
	var err error
	if sum.MeanPlies, err = stats.Mean(data); err != nil {
		return nil, err
	}
	if sum.MedianPlies, err = stats.Median(data); err != nil {
		return nil, err
	}
	if sum.MaxPlies, err = stats.Max(data); err != nil {
		return nil, err
	}
	return sum, nil
}

func (sum *summary) write(w io.Writer, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(sum)
	}
	_, err := fmt.Fprintf(w, "games %d: white won %d, black won %d, unfinished %d\nplies mean %.1f median %.1f max %.0f\n",
		sum.Games, sum.WhiteWon, sum.BlackWon, sum.Unfinished, sum.MeanPlies, sum.MedianPlies, sum.MaxPlies)
	return err
}
