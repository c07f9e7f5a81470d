package mcts

import (
	"math/rand"
	"testing"

	chess "github.com/ponderchess/engine"
)

func TestSampleGrowsRootChildren(t *testing.T) {
	root := NewRoot(DefaultParams())
	state := chess.NewState()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		root.Sample(state, rng, 200)
	}

	if root.Visits() != 50 {
		t.Fatalf("root visits = %d, want 50", root.Visits())
	}
	if !root.expanded {
		t.Fatalf("root was never expanded after 50 samples")
	}
	if len(root.order) != 20 {
		t.Fatalf("root has %d children, want 20 (the initial position's move count)", len(root.order))
	}
	if _, ok := root.BestMove(); !ok {
		t.Fatalf("BestMove() reported no children after sampling")
	}
}

func TestBestMoveTieBreaksOnInsertionOrder(t *testing.T) {
	root := NewRoot(DefaultParams())
	root.expand([]chess.Move{
		chess.NewMove(chess.NormalMove, chess.SquareE2, chess.SquareE4),
		chess.NewMove(chess.NormalMove, chess.SquareD2, chess.SquareD4),
	})

	move, ok := root.BestMove()
	if !ok {
		t.Fatalf("BestMove() reported no children")
	}
	if want := root.order[0]; move != want {
		t.Fatalf("BestMove() = %v with all-zero visits, want first child %v", move, want)
	}
}

func TestDropParentAndSiblingsDetaches(t *testing.T) {
	root := NewRoot(DefaultParams())
	moves := []chess.Move{
		chess.NewMove(chess.NormalMove, chess.SquareE2, chess.SquareE4),
		chess.NewMove(chess.NormalMove, chess.SquareD2, chess.SquareD4),
	}
	root.expand(moves)
	child := root.Child(moves[0])
	if child == nil {
		t.Fatalf("Child(%v) = nil", moves[0])
	}

	newRoot := child.DropParentAndSiblings()
	if newRoot != child {
		t.Fatalf("DropParentAndSiblings() returned a different node")
	}
	if newRoot.parentNode() != nil {
		t.Fatalf("new root still has a parent after re-rooting")
	}
}

func TestValueForColor(t *testing.T) {
	cases := []struct {
		color, winner chess.Color
		draw          bool
		want          float64
	}{
		{chess.ColorWhite, chess.ColorWhite, false, 1},
		{chess.ColorWhite, chess.ColorBlack, false, -1},
		{chess.ColorWhite, chess.NoColor, true, 0},
	}
	for _, tc := range cases {
		if got := valueForColor(tc.color, tc.winner, tc.draw); got != tc.want {
			t.Errorf("valueForColor(%v, %v, %v) = %v, want %v", tc.color, tc.winner, tc.draw, got, tc.want)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	root := NewRoot(DefaultParams())
	state := chess.NewState()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 30; i++ {
		root.Sample(state, rng, 200)
	}

	snap := root.Snapshot()
	restored := RestoreNode(snap, DefaultParams().ExplorationConstant)

	if restored.Visits() != root.Visits() {
		t.Fatalf("restored visits = %d, want %d", restored.Visits(), root.Visits())
	}
	if len(restored.order) != len(root.order) {
		t.Fatalf("restored has %d children, want %d", len(restored.order), len(root.order))
	}
	for _, mv := range root.order {
		orig := root.children[mv]
		got := restored.children[mv]
		if got == nil {
			t.Fatalf("restored tree missing child %v", mv)
		}
		if got.Visits() != orig.Visits() {
			t.Errorf("child %v visits = %d, want %d", mv, got.Visits(), orig.Visits())
		}
		if got.parentNode() != restored {
			t.Errorf("child %v parent not reconnected to restored root", mv)
		}
	}
}

func TestPlayoutAlwaysTerminates(t *testing.T) {
	st := chess.NewState()
	rng := rand.New(rand.NewSource(3))
	winner, draw := playout(st, rng, 200)
	if draw {
		return
	}
	if winner != chess.ColorWhite && winner != chess.ColorBlack {
		t.Fatalf("playout returned a decisive result with an invalid winner %v", winner)
	}
}
