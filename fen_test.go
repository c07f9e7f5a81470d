package chess

import "testing"

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"8/5B2/8/Q1pk4/8/8/PPP5/6K1 b - - 0 0",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	}
	for _, fen := range fens {
		st, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := st.String(); got != fen {
			t.Errorf("ParseFEN(%q).String() = %q, want %q", fen, got, fen)
		}
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1",
	}
	for _, fen := range cases {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) succeeded, want error", fen)
		}
	}
}

func TestPositionFromFENMatchesParseFEN(t *testing.T) {
	st, err := PositionFromFEN(StartFEN)
	if err != nil {
		t.Fatalf("PositionFromFEN(%q): %v", StartFEN, err)
	}
	if got := st.String(); got != StartFEN {
		t.Errorf("PositionFromFEN(%q).String() = %q, want %q", StartFEN, got, StartFEN)
	}
}

func TestParseCoordinateMove(t *testing.T) {
	st := NewState()
	m, err := ParseCoordinateMove("e2e4", st)
	if err != nil {
		t.Fatalf("ParseCoordinateMove(e2e4): %v", err)
	}
	if m.Type() != DoublePushMove {
		t.Errorf("e2e4 should decode as a double push, got %v", m.Type())
	}

	if _, err := ParseCoordinateMove("e2e5", st); err == nil {
		t.Errorf("ParseCoordinateMove(e2e5) should fail: not a legal move")
	}
}
