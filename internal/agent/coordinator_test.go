package agent

import (
	"os"
	"testing"
	"time"

	chess "github.com/ponderchess/engine"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Workers = 2
	cfg.Params.SamplesPerBatch = 20
	return cfg
}

// TestDecisionReturnsLegalMove is scenario S6: a two-worker agent given
// the initial position returns one of its 20 legal moves within budget,
// and a second decision after AdvanceState also completes.
func TestDecisionReturnsLegalMove(t *testing.T) {
	coord := New(testConfig())
	defer coord.Close()

	coord.SetState(chess.NewState())

	decision := coord.StartDecision(150 * time.Millisecond)
	move := decision.Wait()

	legal := chess.NewState().GenerateMoves()
	if !containsMove(legal, move) {
		t.Fatalf("decided move %v is not among the initial position's legal moves", move)
	}

	if err := coord.AdvanceState(move); err != nil {
		t.Fatalf("AdvanceState: %v", err)
	}

	second := coord.StartDecision(150 * time.Millisecond)
	if m := second.Wait(); m == chess.NoMove {
		t.Fatalf("second decision returned no move")
	}
}

// TestAdvanceStateBeforeSetStateFails checks the protocol-misuse error
// path spec.md §7 calls out.
func TestAdvanceStateBeforeSetStateFails(t *testing.T) {
	coord := New(testConfig())
	defer coord.Close()

	if err := coord.AdvanceState(chess.NewMove(chess.NormalMove, chess.SquareE2, chess.SquareE4)); err != ErrNotReady {
		t.Fatalf("AdvanceState before SetState = %v, want ErrNotReady", err)
	}
}

// TestSaveLoadRoundTrip is scenario S7: after a save/load cycle the
// agent still produces a legal decision.
func TestSaveLoadRoundTrip(t *testing.T) {
	coord := New(testConfig())
	defer coord.Close()
	coord.SetState(chess.NewState())
	coord.StartPondering()
	time.Sleep(30 * time.Millisecond)
	coord.StopPondering()

	f, err := os.CreateTemp(t.TempDir(), "tree-*.gob")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	path := f.Name()
	f.Close()

	if err := coord.SaveYourself(path); err != nil {
		t.Fatalf("SaveYourself: %v", err)
	}

	loaded := New(testConfig())
	defer loaded.Close()
	if err := loaded.LoadYourself(path); err != nil {
		t.Fatalf("LoadYourself: %v", err)
	}

	decision := loaded.StartDecision(150 * time.Millisecond)
	move := decision.Wait()
	legal := chess.NewState().GenerateMoves()
	if !containsMove(legal, move) {
		t.Fatalf("post-load decision %v is not a legal initial move", move)
	}
}

func TestAcceptDrawRespectsConfiguredProbability(t *testing.T) {
	cfg := testConfig()
	cfg.DrawAcceptanceProbability = 0
	coord := New(cfg)
	defer coord.Close()
	if coord.AcceptDraw(chess.ColorWhite) {
		t.Fatalf("AcceptDraw with probability 0 accepted a draw")
	}

	cfg.DrawAcceptanceProbability = 1
	coord2 := New(cfg)
	defer coord2.Close()
	if !coord2.AcceptDraw(chess.ColorWhite) {
		t.Fatalf("AcceptDraw with probability 1 rejected a draw")
	}
}

func containsMove(moves []chess.Move, m chess.Move) bool {
	for _, mv := range moves {
		if mv == m {
			return true
		}
	}
	return false
}
