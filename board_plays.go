package chessvar

import (
	"fmt"
	"sync"
)

// ValidMove reports whether the piece p, standing on from, may move to to.
// The caller has already checked bounds, turn and that to does not hold a
// piece of p's color. A pawn's first-move flag is consumed by the first call
// whatever the result.
func (p *Piece) ValidMove(from, to Square, board *Board) bool {
	switch p.Kind() {
	case Bishop:
		return bishopLegal(from, to, board)
	case King:
		return kingLegal(from, to)
	case Knight:
		return knightLegal(from, to)
	case Pawn:
		return pawnLegal(p, from, to, board)
	case Queen:
		return rookLegal(from, to, board) || bishopLegal(from, to, board)
	case Rook:
		return rookLegal(from, to, board)
	default:
		return false
	}
}

func pawnLegal(p *Piece, from, to Square, board *Board) bool {
	forward := 1
	if p.Color() == Black {
		forward = -1
	}
	files := to.File - from.File
	ranks := to.Rank - from.Rank
	if p.FirstMove() {
		*p &^= firstMove
		if files != 0 {
			return false
		}
		switch ranks {
		case forward:
			return board.empty(to)
		case 2 * forward:
			return board.empty(from.offset(0, forward)) && board.empty(to)
		}
		return false
	}
	if files == 0 {
		return ranks == forward && board.empty(to)
	}
	return abs(files) == 1 && ranks == forward && !board.empty(to)
}

func rookLegal(from, to Square, board *Board) bool {
	if (from.File == to.File) == (from.Rank == to.Rank) {
		return false
	}
	return clearPath(from, to, board)
}

func bishopLegal(from, to Square, board *Board) bool {
	files := to.File - from.File
	if files == 0 || abs(files) != abs(to.Rank-from.Rank) {
		return false
	}
	return clearPath(from, to, board)
}

func knightLegal(from, to Square) bool {
	files := abs(to.File - from.File)
	ranks := abs(to.Rank - from.Rank)
	return (files == 1 && ranks == 2) || (files == 2 && ranks == 1)
}

func kingLegal(from, to Square) bool {
	files := abs(to.File - from.File)
	ranks := abs(to.Rank - from.Rank)
	return files <= 1 && ranks <= 1 && files+ranks != 0
}

// clearPath walks from toward to along a straight or diagonal line and
// reports whether every square strictly between them is empty.
func clearPath(from, to Square, board *Board) bool {
	file := sign(to.File - from.File)
	rank := sign(to.Rank - from.Rank)
	for s := from.offset(file, rank); s != to; s = s.offset(file, rank) {
		if !board.empty(s) {
			return false
		}
	}
	return true
}

// check runs every test a move must pass except the game-over test. It
// mutates board only through ValidMove's first-move bookkeeping.
func (board *Board) check(turn Color, from, to Square) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: %s-%s", ErrOutOfBounds, from, to)
	}
	piece := &board[from.index()]
	if piece.Empty() {
		return fmt.Errorf("%w: %s", ErrEmptySquare, from)
	}
	if dest := board.At(to); !dest.Empty() && dest.Color() == piece.Color() {
		return fmt.Errorf("%w: %s on %s", ErrOwnPiece, dest, to)
	}
	if piece.Color() != turn {
		return fmt.Errorf("%w: %s to move", ErrWrongTurn, turn)
	}
	if !piece.ValidMove(from, to, board) {
		return fmt.Errorf("%w: %s %s-%s", ErrIllegalMove, piece.Kind(), from, to)
	}
	return nil
}

func (board Board) movesForPiece(group *sync.WaitGroup, moves chan<- Move, turn Color, from Square) {
	group.Add(1)
	go func() {
		defer group.Done()
		for i := range board {
			to := squareAt(i)
			probe := board
			if probe.check(turn, from, to) == nil {
				moves <- Move{From: from, To: to}
			}
		}
	}()
}

// movesForBoard streams every legal move for turn. Each probe runs on its
// own copy of the board.
func (board Board) movesForBoard(turn Color) <-chan Move {
	moves := make(chan Move, 32)
	go func() {
		defer close(moves)
		var group sync.WaitGroup
		for _, from := range board.Pieces(turn) {
			board.movesForPiece(&group, moves, turn, from)
		}
		group.Wait()
	}()
	return moves
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
