package chessvar

import (
	"errors"
	"fmt"
	"sort"

	"github.com/apex/log"
	uuid "github.com/satori/go.uuid"
)

// State is the outcome of a game. It only ever moves forward from
// InProgress.
type State uint8

const (
	InProgress State = iota
	WhiteWon
	BlackWon
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "IN_PROGRESS"
	case WhiteWon:
		return "WHITE_WON"
	case BlackWon:
		return "BLACK_WON"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Reasons a move is rejected.
var (
	ErrGameOver    = errors.New("game is over")
	ErrOutOfBounds = errors.New("square out of bounds")
	ErrEmptySquare = errors.New("no piece on square")
	ErrOwnPiece    = errors.New("destination holds own piece")
	ErrWrongTurn   = errors.New("not your turn")
	ErrIllegalMove = errors.New("illegal move")
)

// Game owns one board, its turn and its outcome. A Game is not safe for
// concurrent use; run one Game per goroutine.
type Game struct {
	ID uuid.UUID

	board Board
	turn  Color
	state State
	plies int
	log   *log.Entry
}

// New returns an initialized game.
func New() *Game {
	game := &Game{}
	game.Initialize()
	return game
}

// Initialize sets up the standard starting position with white to move.
func (game *Game) Initialize() {
	game.ID = uuid.NewV4()
	game.board = initialBoard
	game.turn = White
	game.state = InProgress
	game.plies = 0
	game.log = log.WithField("game", game.ID.String())
}

func (game *Game) State() State {
	return game.state
}

func (game *Game) Turn() Color {
	return game.turn
}

// Board returns a copy of the current position.
func (game *Game) Board() Board {
	return game.board
}

// Plies returns the number of accepted moves.
func (game *Game) Plies() int {
	return game.plies
}

// MakeMove applies from-to and reports whether the move was accepted.
func (game *Game) MakeMove(from, to string) bool {
	return game.Play(from, to) == nil
}

// Play is MakeMove with the rejection reason.
func (game *Game) Play(from, to string) error {
	if game.state != InProgress {
		return game.reject(from, to, ErrGameOver)
	}
	src, err := ParseSquare(from)
	if err != nil {
		return game.reject(from, to, err)
	}
	dst, err := ParseSquare(to)
	if err != nil {
		return game.reject(from, to, err)
	}
	return game.Move(src, dst)
}

// Move validates and applies a move. On error nothing changes except that a
// pawn's first-move flag may have been consumed by its legality check.
func (game *Game) Move(from, to Square) error {
	if game.state != InProgress {
		return game.reject(from.String(), to.String(), ErrGameOver)
	}
	if err := game.board.check(game.turn, from, to); err != nil {
		return game.reject(from.String(), to.String(), err)
	}
	captured := game.board.At(to)
	game.board.move(from, to)
	game.turn = game.turn.Other()
	game.plies++
	game.logger().WithFields(log.Fields{
		"move":     Move{From: from, To: to}.String(),
		"captured": captured.String(),
		"ply":      game.plies,
	}).Debug("move")
	game.updateState()
	return nil
}

// Legal reports whether Move would accept from-to, without touching the game.
func (game *Game) Legal(from, to Square) bool {
	if game.state != InProgress {
		return false
	}
	probe := game.board
	return probe.check(game.turn, from, to) == nil
}

// Plays lists every legal move for the side to move, ordered by source then
// destination square.
func (game *Game) Plays() []Move {
	moves := make([]Move, 0, 32)
	if game.state != InProgress {
		return moves
	}
	for move := range game.board.movesForBoard(game.turn) {
		moves = append(moves, move)
	}
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].From != moves[j].From {
			return moves[i].From.index() < moves[j].From.index()
		}
		return moves[i].To.index() < moves[j].To.index()
	})
	return moves
}

func (game *Game) logger() *log.Entry {
	if game.log == nil {
		game.log = log.WithField("game", game.ID.String())
	}
	return game.log
}

func (game *Game) reject(from, to string, err error) error {
	game.logger().WithFields(log.Fields{
		"from": from,
		"to":   to,
	}).WithError(err).Debug("move rejected")
	return err
}

// updateState checks every kind for each color in a fixed order. A color
// with no piece of some kind left loses; the last missing pair decides.
func (game *Game) updateState() {
	for _, kind := range Kinds {
		if !game.board.Contains(kind, White) {
			game.state = BlackWon
		}
		if !game.board.Contains(kind, Black) {
			game.state = WhiteWon
		}
	}
	if game.state != InProgress {
		game.logger().WithFields(log.Fields{
			"state": game.state.String(),
			"plies": game.plies,
		}).Info("game decided")
	}
}
