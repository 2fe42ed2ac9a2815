package chessvar

import (
	. "gopkg.in/check.v1"
)

func (s *ChessVarSuite) TestInitialize(c *C) {
	game := New()
	c.Assert(game.State(), Equals, InProgress)
	c.Assert(game.Turn(), Equals, White)
	c.Assert(game.Plies(), Equals, 0)

	board := game.Board()
	c.Assert(board.Count(), Equals, 32)
	c.Assert(board.Fingerprint(), Equals, initialFingerprint)
	c.Assert(board.At(sq(c, "a1")), Equals, NewPiece(Rook, White))
	c.Assert(board.At(sq(c, "d1")), Equals, NewPiece(Queen, White))
	c.Assert(board.At(sq(c, "e1")), Equals, NewPiece(King, White))
	c.Assert(board.At(sq(c, "d8")), Equals, NewPiece(Queen, Black))
	c.Assert(board.At(sq(c, "e8")), Equals, NewPiece(King, Black))
	c.Assert(board.At(sq(c, "g8")), Equals, NewPiece(Knight, Black))
	for file := 1; file <= 8; file++ {
		c.Assert(board.At(Square{File: file, Rank: 2}).FirstMove(), Equals, true)
		c.Assert(board.At(Square{File: file, Rank: 7}).Color(), Equals, Black)
		for rank := 3; rank <= 6; rank++ {
			c.Assert(board.At(Square{File: file, Rank: rank}).Empty(), Equals, true)
		}
	}
	c.Assert(board.Pieces(White), HasLen, 16)
	c.Assert(board.Pieces(Black), HasLen, 16)
}

func (s *ChessVarSuite) TestInitializeResets(c *C) {
	game := New()
	id := game.ID
	s.play(c, game, "e2e4")
	game.Initialize()
	c.Assert(game.ID, Not(Equals), id)
	c.Assert(game.Turn(), Equals, White)
	c.Assert(game.Plies(), Equals, 0)
	board := game.Board()
	c.Assert(board.Fingerprint(), Equals, initialFingerprint)
}

func (s *ChessVarSuite) TestTurnAlternation(c *C) {
	game := New()
	c.Assert(game.MakeMove("e2", "e4"), Equals, true)
	c.Assert(game.Turn(), Equals, Black)
	c.Assert(game.Play("d2", "d4"), errorIs, ErrWrongTurn)
	c.Assert(game.Turn(), Equals, Black)
	c.Assert(game.MakeMove("e7", "e5"), Equals, true)
	c.Assert(game.Turn(), Equals, White)
	c.Assert(game.MakeMove("g1", "f3"), Equals, true)
	c.Assert(game.Turn(), Equals, Black)
	c.Assert(game.Plies(), Equals, 3)
}

func (s *ChessVarSuite) TestWrongTurnKeepsFirstMove(c *C) {
	game := New()
	c.Assert(game.Play("e7", "e5"), errorIs, ErrWrongTurn)
	s.play(c, game, "a2a3")
	c.Assert(game.MakeMove("e7", "e5"), Equals, true)
}

func (s *ChessVarSuite) TestBounds(c *C) {
	game := New()
	before := game.Board()
	for _, m := range [][2]string{
		{"a1", "a9"},
		{"a1", "a0"},
		{"i1", "a1"},
		{"a2", "`3"},
		{"e2", "e10"},
		{"", "e4"},
		{"E2", "E4"},
	} {
		c.Assert(game.MakeMove(m[0], m[1]), Equals, false, Commentf("%s-%s", m[0], m[1]))
		c.Assert(game.Play(m[0], m[1]), errorIs, ErrOutOfBounds)
	}
	c.Assert(game.Move(Square{File: 1, Rank: 1}, Square{File: 1, Rank: 9}), errorIs, ErrOutOfBounds)
	c.Assert(game.Move(Square{File: 0, Rank: 2}, Square{File: 1, Rank: 3}), errorIs, ErrOutOfBounds)
	c.Assert(game.Board(), Equals, before)
	c.Assert(game.Turn(), Equals, White)
}

func (s *ChessVarSuite) TestEmptySource(c *C) {
	game := New()
	c.Assert(game.Play("e4", "e5"), errorIs, ErrEmptySquare)
	c.Assert(game.Turn(), Equals, White)
}

func (s *ChessVarSuite) TestSameColorBlocking(c *C) {
	game := New()
	before := game.Board()
	c.Assert(game.MakeMove("a1", "a2"), Equals, false)
	c.Assert(game.Play("d1", "e1"), errorIs, ErrOwnPiece)
	c.Assert(game.Play("e2", "d1"), errorIs, ErrOwnPiece)
	c.Assert(game.Board(), Equals, before)
	c.Assert(game.Turn(), Equals, White)
	// the own-piece check runs before the pawn's legality check
	c.Assert(game.MakeMove("e2", "e4"), Equals, true)
}

func (s *ChessVarSuite) TestRookObstruction(c *C) {
	game := New()
	c.Assert(game.Play("a1", "a5"), errorIs, ErrIllegalMove)
	c.Assert(game.Turn(), Equals, White)
	s.play(c, game, "a2a4", "b7b5", "a4b5", "h7h6")
	c.Assert(game.MakeMove("a1", "a5"), Equals, true)
	board := game.Board()
	c.Assert(board.At(sq(c, "a5")), Equals, NewPiece(Rook, White))
	c.Assert(board.At(sq(c, "a1")).Empty(), Equals, true)
}

func (s *ChessVarSuite) TestPawnDoubleAdvanceConsumed(c *C) {
	game := New()
	c.Assert(game.MakeMove("e2", "e4"), Equals, true)
	c.Assert(game.MakeMove("a7", "a6"), Equals, true)
	c.Assert(game.MakeMove("e4", "e6"), Equals, false)
	c.Assert(game.MakeMove("e4", "e5"), Equals, true)
}

func (s *ChessVarSuite) TestPawnFirstMoveConsumedByRejection(c *C) {
	game := New()
	c.Assert(game.Play("e2", "e5"), errorIs, ErrIllegalMove)
	board := game.Board()
	c.Assert(board.At(sq(c, "e2")).FirstMove(), Equals, false)
	c.Assert(game.Play("e2", "e4"), errorIs, ErrIllegalMove)
	c.Assert(game.MakeMove("e2", "e3"), Equals, true)
}

func (s *ChessVarSuite) TestPawnFirstMoveCannotCapture(c *C) {
	game := New()
	s.play(c, game, "a2a3", "g8f6", "a3a4", "f6e4", "a4a5", "e4c3")
	c.Assert(game.Play("d2", "c3"), errorIs, ErrIllegalMove)
	c.Assert(game.MakeMove("d2", "c3"), Equals, true)
	board := game.Board()
	c.Assert(board.At(sq(c, "c3")).Color(), Equals, White)
	c.Assert(board.Count(), Equals, 31)
}

func (s *ChessVarSuite) TestKnightJump(c *C) {
	game := New()
	c.Assert(game.MakeMove("b1", "c3"), Equals, true)
	c.Assert(game.MakeMove("g8", "f6"), Equals, true)
	c.Assert(game.MakeMove("c3", "d5"), Equals, true)
	c.Assert(game.MakeMove("f6", "d5"), Equals, true)
	board := game.Board()
	c.Assert(board.At(sq(c, "d5")), Equals, NewPiece(Knight, Black))
	c.Assert(board.Count(), Equals, 31)
	c.Assert(game.State(), Equals, InProgress)
}

func (s *ChessVarSuite) TestCaptureMovesPawnFlag(c *C) {
	game := New()
	s.play(c, game, "e2e4", "d7d5", "e4d5")
	board := game.Board()
	c.Assert(board.At(sq(c, "d5")).Kind(), Equals, Pawn)
	c.Assert(board.At(sq(c, "d5")).FirstMove(), Equals, false)
	c.Assert(board.At(sq(c, "e4")).Empty(), Equals, true)
}

func (s *ChessVarSuite) TestWinByPawnElimination(c *C) {
	pieces := fullArmy()
	pieces["h5"] = wr
	game := gameAt(position(c, pieces), White)
	c.Assert(game.MakeMove("h5", "h7"), Equals, true)
	c.Assert(game.State(), Equals, WhiteWon)
	c.Assert(s.messages(), DeepEquals, []string{"move", "game decided"})
}

func (s *ChessVarSuite) TestWinByQueenCapture(c *C) {
	game := gameAt(position(c, fullArmy()), Black)
	c.Assert(game.MakeMove("b8", "b1"), Equals, true)
	c.Assert(game.State(), Equals, BlackWon)
}

func (s *ChessVarSuite) TestSequentialPawnCaptures(c *C) {
	pieces := fullArmy()
	pieces["g7"] = bp
	pieces["h4"] = wr
	pieces["g4"] = wr
	game := gameAt(position(c, pieces), White)
	s.play(c, game, "h4h7")
	c.Assert(game.State(), Equals, InProgress)
	s.play(c, game, "a8a7", "g4g7")
	c.Assert(game.State(), Equals, WhiteWon)
}

func (s *ChessVarSuite) TestPostGameLock(c *C) {
	pieces := fullArmy()
	pieces["h5"] = wr
	game := gameAt(position(c, pieces), White)
	s.play(c, game, "h5h7")
	c.Assert(game.State(), Equals, WhiteWon)
	before := game.Board()
	c.Assert(game.MakeMove("a8", "a7"), Equals, false)
	c.Assert(game.Play("a8", "a7"), errorIs, ErrGameOver)
	c.Assert(game.Play("a1", "a9"), errorIs, ErrGameOver)
	c.Assert(game.Legal(sq(c, "a8"), sq(c, "a7")), Equals, false)
	c.Assert(game.Plays(), HasLen, 0)
	c.Assert(game.Board(), Equals, before)
	c.Assert(game.State(), Equals, WhiteWon)
	c.Assert(game.Turn(), Equals, Black)
}

func (s *ChessVarSuite) TestWinEvaluationOrder(c *C) {
	pieces := fullArmy()
	delete(pieces, "b1")
	delete(pieces, "c8")
	game := gameAt(position(c, pieces), White)
	game.updateState()
	c.Assert(game.State(), Equals, BlackWon)

	pieces = fullArmy()
	delete(pieces, "h2")
	delete(pieces, "a8")
	game = gameAt(position(c, pieces), White)
	game.updateState()
	c.Assert(game.State(), Equals, WhiteWon)

	game = gameAt(position(c, fullArmy()), White)
	game.updateState()
	c.Assert(game.State(), Equals, InProgress)
}

func (s *ChessVarSuite) TestRejectionLogged(c *C) {
	game := New()
	c.Assert(game.MakeMove("e4", "e5"), Equals, false)
	c.Assert(s.logs.Entries, HasLen, 1)
	entry := s.logs.Entries[0]
	c.Assert(entry.Message, Equals, "move rejected")
	c.Assert(entry.Fields.Get("game"), Equals, game.ID.String())
	c.Assert(entry.Fields.Get("from"), Equals, "e4")
}

func (s *ChessVarSuite) TestLegalDoesNotMutate(c *C) {
	game := New()
	c.Assert(game.Legal(sq(c, "e2"), sq(c, "e4")), Equals, true)
	c.Assert(game.Legal(sq(c, "e2"), sq(c, "e5")), Equals, false)
	c.Assert(game.Legal(sq(c, "e2"), sq(c, "e4")), Equals, true)
	board := game.Board()
	c.Assert(board.Fingerprint(), Equals, initialFingerprint)
	c.Assert(game.MakeMove("e2", "e4"), Equals, true)
}

func (s *ChessVarSuite) TestPlays(c *C) {
	game := New()
	plays := game.Plays()
	c.Assert(plays, HasLen, 20)
	c.Assert(plays[0].String(), Equals, "b1a3")
	c.Assert(plays[1].String(), Equals, "b1c3")
	c.Assert(plays[2].String(), Equals, "g1f3")
	c.Assert(plays[3].String(), Equals, "g1h3")
	c.Assert(plays[4].String(), Equals, "a2a3")
	c.Assert(plays[5].String(), Equals, "a2a4")
	board := game.Board()
	c.Assert(board.Fingerprint(), Equals, initialFingerprint)
	for _, play := range plays {
		c.Assert(game.Legal(play.From, play.To), Equals, true)
	}

	s.play(c, game, "e2e4")
	plays = game.Plays()
	c.Assert(plays, HasLen, 20)
	board = game.Board()
	for _, play := range plays {
		c.Assert(board.At(play.From).Color(), Equals, Black)
	}
}

func (s *ChessVarSuite) TestStateString(c *C) {
	c.Assert(InProgress.String(), Equals, "IN_PROGRESS")
	c.Assert(WhiteWon.String(), Equals, "WHITE_WON")
	c.Assert(BlackWon.String(), Equals, "BLACK_WON")
}
