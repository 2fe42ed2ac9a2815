package chessvar

// Kind bits of a Piece. The low bit holds the color and bit 4 marks a pawn
// that has not yet attempted a move.
const (
	None   Kind = iota << 1
	Bishop Kind = iota << 1
	King   Kind = iota << 1
	Knight Kind = iota << 1
	Pawn   Kind = iota << 1
	Queen  Kind = iota << 1
	Rook   Kind = iota << 1
)

const (
	White Color = 0
	Black Color = 1
)

const (
	colorMask Piece = 0x1
	kindMask  Piece = 0xE
	firstMove Piece = 0x10
)

// Kinds lists every piece kind in win-evaluation order.
var Kinds = [...]Kind{Pawn, Rook, Knight, Bishop, Queen, King}

var (
	wp = NewPiece(Pawn, White)
	wr = NewPiece(Rook, White)
	wn = NewPiece(Knight, White)
	wb = NewPiece(Bishop, White)
	wq = NewPiece(Queen, White)
	wk = NewPiece(King, White)
	bp = NewPiece(Pawn, Black)
	br = NewPiece(Rook, Black)
	bn = NewPiece(Knight, Black)
	bb = NewPiece(Bishop, Black)
	bq = NewPiece(Queen, Black)
	bk = NewPiece(King, Black)
)

// initialBoard is indexed a1, b1, ... h1, a2, ... h8.
var initialBoard = Board{
	wr, wn, wb, wq, wk, wb, wn, wr,
	wp, wp, wp, wp, wp, wp, wp, wp,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	bp, bp, bp, bp, bp, bp, bp, bp,
	br, bn, bb, bq, bk, bb, bn, br,
}

var kindNames = map[Kind]string{
	None:   "none",
	Bishop: "bishop",
	King:   "king",
	Knight: "knight",
	Pawn:   "pawn",
	Queen:  "queen",
	Rook:   "rook",
}

var kindToGlyphWhite = map[Kind]rune{
	Bishop: '♗',
	King:   '♔',
	Knight: '♘',
	Pawn:   '♙',
	Queen:  '♕',
	Rook:   '♖',
}

var kindToGlyphBlack = map[Kind]rune{
	Bishop: '♝',
	King:   '♚',
	Knight: '♞',
	Pawn:   '♟',
	Queen:  '♛',
	Rook:   '♜',
}

// kindValues weights captures for the agent.
var kindValues = map[Kind]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   4,
}
