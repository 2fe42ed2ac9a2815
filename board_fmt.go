package chessvar

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// ParseSquare parses a square such as "e2". Anything other than a file
// letter a-h followed by a rank digit 1-8 is out of bounds.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrOutOfBounds, s)
	}
	square := Square{File: int(s[0]) - 'a' + 1, Rank: int(s[1]) - '1' + 1}
	if !square.Valid() {
		return Square{}, fmt.Errorf("%w: %q", ErrOutOfBounds, s)
	}
	return square, nil
}

// ParseMove parses "e2e4", "e2-e4" or "e2xe4".
func ParseMove(s string) (Move, error) {
	var m Move
	if len(s) == 5 && (s[2] == '-' || s[2] == 'x') {
		s = s[:2] + s[3:]
	}
	if len(s) != 4 {
		return m, fmt.Errorf("invalid move format %q", s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return m, fmt.Errorf("invalid move format %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return m, fmt.Errorf("invalid move format %q: %w", s, err)
	}
	return Move{From: from, To: to}, nil
}

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+s.File-1, s.Rank)
}

func (s *Square) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	square, err := ParseSquare(string(token))
	if err != nil {
		return err
	}
	*s = square
	return nil
}

func (s Square) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d,%d", ErrOutOfBounds, s.File, s.Rank)
	}
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(text []byte) error {
	square, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = square
	return nil
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

func (m *Move) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	move, err := ParseMove(string(token))
	if err != nil {
		return err
	}
	*m = move
	return nil
}

func (m *Move) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	_, err := fmt.Sscan(s, m)
	return err
}

func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Glyph returns the unicode chess symbol for p, or '·' for an empty square.
func (p Piece) Glyph() rune {
	if p.Empty() {
		return '·'
	}
	if p.Color() == White {
		return kindToGlyphWhite[p.Kind()]
	}
	return kindToGlyphBlack[p.Kind()]
}

func (p Piece) String() string {
	if p.Empty() {
		return "empty"
	}
	return p.Color().String() + " " + p.Kind().String()
}

// String draws the board from rank 8 down to rank 1.
func (board Board) String() string {
	var b strings.Builder
	for rank := 8; rank >= 1; rank-- {
		fmt.Fprintf(&b, "%d ", rank)
		for file := 1; file <= 8; file++ {
			b.WriteRune(board.At(Square{File: file, Rank: rank}).Glyph())
			if file < 8 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("  a b c d e f g h\n")
	return b.String()
}

// Fingerprint encodes the 64 squares as hex, a1 first.
func (board Board) Fingerprint() string {
	raw := make([]byte, len(board))
	for i, p := range board {
		raw[i] = byte(p)
	}
	return hex.EncodeToString(raw)
}

// ParseFingerprint decodes the output of Fingerprint.
func ParseFingerprint(s string) (Board, error) {
	var board Board
	src, err := hex.DecodeString(s)
	if err != nil {
		return board, err
	}
	if len(src) != len(board) {
		return board, fmt.Errorf("invalid fingerprint length %d", len(src))
	}
	for i, b := range src {
		board[i] = Piece(b)
	}
	return board, nil
}
