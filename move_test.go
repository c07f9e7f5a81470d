package chess

import "testing"

func TestMovePacking(t *testing.T) {
	cases := []struct {
		mt   MoveType
		from Square
		to   Square
	}{
		{NormalMove, SquareE2, SquareE3},
		{DoublePushMove, SquareE2, SquareE4},
		{CastleKingsideMove, SquareE1, SquareG1},
		{CapturingPromotionQueenMove, SquareD7, SquareC8},
	}
	for _, c := range cases {
		m := NewMove(c.mt, c.from, c.to)
		if m.Type() != c.mt {
			t.Errorf("NewMove(%v, %v, %v).Type() = %v, want %v", c.mt, c.from, c.to, m.Type(), c.mt)
		}
		if m.From() != c.from {
			t.Errorf("NewMove(...).From() = %v, want %v", m.From(), c.from)
		}
		if m.To() != c.to {
			t.Errorf("NewMove(...).To() = %v, want %v", m.To(), c.to)
		}
	}
}

func TestMoveIsCaptureIsPromotion(t *testing.T) {
	m := NewMove(CapturingPromotionRookMove, SquareB7, SquareA8)
	if !m.IsCapture() {
		t.Errorf("CapturingPromotionRookMove should be a capture")
	}
	if !m.IsPromotion() {
		t.Errorf("CapturingPromotionRookMove should be a promotion")
	}
	if m.PromotionFigure() != Rook {
		t.Errorf("PromotionFigure() = %v, want Rook", m.PromotionFigure())
	}

	quiet := NewMove(NormalMove, SquareE2, SquareE3)
	if quiet.IsCapture() || quiet.IsPromotion() {
		t.Errorf("NormalMove should be neither a capture nor a promotion")
	}
}

func TestMoveUCI(t *testing.T) {
	m := NewMove(PromotionQueenMove, SquareD7, SquareD8)
	if got, want := m.UCI(), "d7d8q"; got != want {
		t.Errorf("UCI() = %q, want %q", got, want)
	}
}
