package chess

import (
	"math/rand"
	"testing"
)

// TestInitialMoves is scenario S1: the starting position has exactly 20
// pseudo-legal moves (16 pawn moves, 4 knight moves).
func TestInitialMoves(t *testing.T) {
	st := NewState()
	moves := st.GenerateMoves()
	if got, want := len(moves), 20; got != want {
		t.Fatalf("initial position has %d moves, want %d", got, want)
	}
}

// TestForcedKingCapture is scenario S5: once a side's move leaves the
// opponent attacking its king, the opponent's move list is restricted to
// capturing that king, and the game ends the instant it does.
func TestForcedKingCapture(t *testing.T) {
	st, err := ParseFEN("8/5B2/8/Q1pk4/8/8/PPP5/6K1 b - - 0 0")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	move := findMove(t, st, SquareD5, SquareC4, NoFigure)
	st.MakeMove(move)

	if !st.TheirKingAttacked() {
		t.Fatalf("after d5c4, white should already be attacking the black king")
	}

	moves := st.GenerateMoves()
	if len(moves) == 0 {
		t.Fatalf("forced king-capture position produced no moves")
	}
	blackKing := st.Board[ColorBlack][King].LSB()
	for _, m := range moves {
		if m.To() != blackKing {
			t.Errorf("move %v does not target the attacked king at %v", m, blackKing)
		}
	}

	st.MakeMove(moves[0])
	if st.Winner() != ColorWhite {
		t.Fatalf("Winner() = %v, want white", st.Winner())
	}
	if next := st.GenerateMoves(); len(next) != 0 {
		t.Fatalf("post-capture move list has %d moves, want 0", len(next))
	}
}

// TestEnPassantCaptureSquare is a regression test for R1: the captured
// pawn's square must be read from the en-passant target before it is
// overwritten by the move being applied.
func TestEnPassantCaptureSquare(t *testing.T) {
	st, err := ParseFEN("4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	double := findMove(t, st, SquareD7, SquareD5, NoFigure)
	st.MakeMove(double)
	if st.EnPassant() != SquareD6 {
		t.Fatalf("EnPassant() = %v, want d6", st.EnPassant())
	}

	capture := findMove(t, st, SquareE5, SquareD6, NoFigure)
	if capture.Type() != CaptureMove {
		t.Fatalf("e5d6 should generate as an en-passant CaptureMove, got %v", capture.Type())
	}
	st.MakeMove(capture)

	if p := st.Get(SquareD5); p != NoPiece {
		t.Errorf("captured pawn still on d5: %v", p)
	}
	if p := st.Get(SquareD6); p != ColorFigure(ColorWhite, Pawn) {
		t.Errorf("Get(d6) = %v, want white pawn", p)
	}

	st.UnmakeMove()
	if p := st.Get(SquareD5); p != ColorFigure(ColorBlack, Pawn) {
		t.Errorf("after UnmakeMove, d5 should have the black pawn back, got %v", p)
	}
	if p := st.Get(SquareE5); p != ColorFigure(ColorWhite, Pawn) {
		t.Errorf("after UnmakeMove, e5 should have the white pawn back, got %v", p)
	}
}

// TestCaptureOnRookCornerClearsCastling is a regression test for R2: a
// capture landing on a rook's home square drops that castling right even
// though the rook, not the king, is the piece removed.
func TestCaptureOnRookCornerClearsCastling(t *testing.T) {
	st, err := ParseFEN("4k3/8/8/8/8/8/6b1/4K2R b K - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if st.Castling()&WhiteOO == 0 {
		t.Fatalf("test setup: expected WhiteOO to be set")
	}

	capture := findMove(t, st, SquareG2, SquareH1, NoFigure)
	st.MakeMove(capture)

	if st.Castling()&WhiteOO != 0 {
		t.Errorf("WhiteOO should be cleared after the rook on h1 is captured")
	}

	st.UnmakeMove()
	if st.Castling()&WhiteOO == 0 {
		t.Errorf("UnmakeMove should restore WhiteOO")
	}
}

// TestUnmakeMoveRoundTrip plays a short game and checks that unmaking
// every move restores the exact starting hash and FEN.
func TestUnmakeMoveRoundTrip(t *testing.T) {
	st := NewState()
	startFEN := st.String()
	startHash := st.Hash()

	var played []Move
	for i := 0; i < 6; i++ {
		moves := st.GenerateMoves()
		if len(moves) == 0 {
			break
		}
		m := moves[i%len(moves)]
		st.MakeMove(m)
		played = append(played, m)
	}
	for i := len(played) - 1; i >= 0; i-- {
		st.UnmakeMove()
	}

	if got := st.String(); got != startFEN {
		t.Errorf("FEN after round trip = %q, want %q", got, startFEN)
	}
	if got := st.Hash(); got != startHash {
		t.Errorf("Hash after round trip = %#x, want %#x", got, startHash)
	}
}

// TestComplexMidgameMoveSet is scenario S2: a busy mid-game position
// whose move list must include queenside castling, an en-passant
// capture, and the full eight-way promotion fan for a pawn one step
// from queening (four straight pushes, four captures).
func TestComplexMidgameMoveSet(t *testing.T) {
	st, err := ParseFEN("r1b2rk1/pp1P1p1p/q1p2n2/2N2PpB/1NP2bP1/2R1B3/PP2Q2P/R3K3 w Q g6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	moves := st.GenerateMoves()

	hasCastle := false
	for _, m := range moves {
		if m.Type() == CastleQueensideMove && m.From() == SquareE1 && m.To() == SquareC1 {
			hasCastle = true
		}
	}
	if !hasCastle {
		t.Errorf("move set is missing queenside castling e1-c1")
	}

	epCapture := findMove(t, st, SquareF5, SquareG6, NoFigure)
	if epCapture.Type() != CaptureMove {
		t.Errorf("f5g6 should generate as an en-passant CaptureMove, got %v", epCapture.Type())
	}

	promoFigures := []Figure{Queen, Rook, Bishop, Knight}
	for _, to := range []Square{SquareD8, SquareC8} {
		for _, fig := range promoFigures {
			found := false
			for _, m := range moves {
				if m.From() == SquareD7 && m.To() == to && m.PromotionFigure() == fig {
					found = true
				}
			}
			if !found {
				t.Errorf("missing d7-%v promotion to %v", to, fig)
			}
		}
	}
}

func TestRequireConsistent(t *testing.T) {
	st := NewState()
	if err := st.RequireConsistent(); err != nil {
		t.Errorf("initial position should be consistent: %v", err)
	}
}

// TestRandomGamesStayConsistent mirrors original_source/tests/test.cpp's
// move_randomly: several seeded random games of 100 plies each, asserting
// RequireConsistent() after every move. Covers spec.md §8's "for every
// reachable state s, require_consistent(s) holds" beyond the handful of
// fixed positions the other tests exercise.
func TestRandomGamesStayConsistent(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		st, err := PositionFromFEN(StartFEN)
		if err != nil {
			t.Fatalf("PositionFromFEN: %v", err)
		}
		for ply := 0; ply < 100; ply++ {
			moves := st.GenerateMoves()
			if len(moves) == 0 {
				break
			}
			st.MakeMove(moves[rng.Intn(len(moves))])
			if err := st.RequireConsistent(); err != nil {
				t.Fatalf("seed %d ply %d: RequireConsistent failed after %v: %v", seed, ply, st.history[len(st.history)-1].move, err)
			}
		}
	}
}

// TestRandomGamesUnmakeIsIdentity mirrors original_source/tests/test.cpp's
// unmake_move: at every ply of several seeded random games, clone the
// state, make a random move on the clone, then unmake it, and assert the
// clone's FEN and hash match the pre-move state exactly. Covers spec.md
// §8's "unmake_move(make_move(m)) == identity ... for every legal m" for
// more than the handful of fixed positions TestUnmakeMoveRoundTrip covers.
func TestRandomGamesUnmakeIsIdentity(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed + 100))
		st, err := PositionFromFEN(StartFEN)
		if err != nil {
			t.Fatalf("PositionFromFEN: %v", err)
		}
		for ply := 0; ply < 100; ply++ {
			moves := st.GenerateMoves()
			if len(moves) == 0 {
				break
			}
			m := moves[rng.Intn(len(moves))]

			clone := st.Clone()
			beforeFEN, beforeHash := clone.String(), clone.Hash()
			clone.MakeMove(m)
			clone.UnmakeMove()
			if got := clone.String(); got != beforeFEN {
				t.Fatalf("seed %d ply %d: UnmakeMove(%v) FEN = %q, want %q", seed, ply, m, got, beforeFEN)
			}
			if got := clone.Hash(); got != beforeHash {
				t.Fatalf("seed %d ply %d: UnmakeMove(%v) hash = %#x, want %#x", seed, ply, m, got, beforeHash)
			}

			st.MakeMove(m)
		}
	}
}

// findMove locates the unique legal move from `from` to `to`, optionally
// restricted to a promotion figure, or fails the test.
func findMove(t *testing.T, st *State, from, to Square, promo Figure) Move {
	t.Helper()
	for _, m := range st.GenerateMoves() {
		if m.From() == from && m.To() == to && (promo == NoFigure || m.PromotionFigure() == promo) {
			return m
		}
	}
	t.Fatalf("no legal move %v->%v in %s", from, to, st.String())
	return NoMove
}
