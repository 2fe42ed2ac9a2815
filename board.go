// Package chessvar implements a chess variant where a player wins by
// capturing every piece of any one kind of the opposing color.
package chessvar

// Kind kind.
type Kind uint8

// Color color.
type Color uint8

// Piece is a board square's content: kind, color and the pawn first-move
// flag packed into one byte. The zero Piece is an empty square.
type Piece uint8

// Square is a board coordinate with File and Rank in [1,8].
type Square struct {
	File int
	Rank int
}

// Board board.
type Board [64]Piece

// Move move.
type Move struct {
	From Square
	To   Square
}

// NewPiece returns a piece of the given kind and color. Pawns start with
// their first-move flag set.
func NewPiece(kind Kind, color Color) Piece {
	p := Piece(kind) | Piece(color)&colorMask
	if kind == Pawn {
		p |= firstMove
	}
	return p
}

func (p Piece) Kind() Kind {
	return Kind(p & kindMask)
}

func (p Piece) Color() Color {
	return Color(p & colorMask)
}

func (p Piece) Empty() bool {
	return p&kindMask == 0
}

// FirstMove reports whether p is a pawn that has not attempted a move.
func (p Piece) FirstMove() bool {
	return p.Kind() == Pawn && p&firstMove != 0
}

func (p Piece) is(kind Kind, color Color) bool {
	return p&(kindMask|colorMask) == Piece(kind)|Piece(color)
}

func (c Color) Other() Color {
	return c ^ 1
}

// Valid reports whether s lies on the 8x8 board.
func (s Square) Valid() bool {
	return s.File >= 1 && s.File <= 8 && s.Rank >= 1 && s.Rank <= 8
}

func (s Square) index() int {
	return (s.Rank-1)*8 + (s.File - 1)
}

func (s Square) offset(file, rank int) Square {
	return Square{File: s.File + file, Rank: s.Rank + rank}
}

func squareAt(index int) Square {
	return Square{File: index%8 + 1, Rank: index/8 + 1}
}

// At returns the piece on s, or the empty piece if s is off the board.
func (board *Board) At(s Square) Piece {
	if !s.Valid() {
		return 0
	}
	return board[s.index()]
}

func (board *Board) empty(s Square) bool {
	return board.At(s).Empty()
}

// Contains reports whether any piece of kind and color remains.
func (board *Board) Contains(kind Kind, color Color) bool {
	for _, p := range board {
		if p.is(kind, color) {
			return true
		}
	}
	return false
}

// Count returns the number of occupied squares.
func (board *Board) Count() int {
	count := 0
	for _, p := range board {
		if !p.Empty() {
			count++
		}
	}
	return count
}

// Pieces returns the squares holding pieces of color in index order.
func (board *Board) Pieces(color Color) []Square {
	squares := make([]Square, 0, 16)
	for i, p := range board {
		if !p.Empty() && p.Color() == color {
			squares = append(squares, squareAt(i))
		}
	}
	return squares
}

func (board *Board) move(from, to Square) {
	board[to.index()] = board[from.index()]
	board[from.index()] = 0
}
