// persistence.go implements SaveYourself/LoadYourself (spec.md §4.6,
// §6's "persisted tree format" — implementation-defined, round-trip is
// the only contract). Grounded on gomoku/backend/tt_persistence.go: a
// small exported snapshot struct, encoding/gob to a file, restored by
// decoding the same struct back. The position itself round-trips through
// chess.State's FEN string rather than gob-encoding State's private
// fields directly, matching the teacher's own String()/ParseFEN pairing.

package agent

import (
	"encoding/gob"
	"log"
	"os"

	chess "github.com/ponderchess/engine"
	"github.com/ponderchess/engine/internal/mcts"
)

type snapshot struct {
	FEN  string
	Root *mcts.NodeSnapshot
}

// SaveYourself writes the current position and complete search tree to
// path. Per spec.md §4.6 this must be called with the agent idle (no
// pondering, no decision in flight); it returns ErrBusy if pondering is
// active and ErrNotReady if SetState was never called.
func (c *Coordinator) SaveYourself(path string) error {
	if c.doPonder.Load() {
		return ErrBusy
	}
	state, root := c.snapshot()
	if state == nil || root == nil {
		return ErrNotReady
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	snap := snapshot{FEN: state.String(), Root: root.Snapshot()}
	if err := gob.NewEncoder(f).Encode(&snap); err != nil {
		return err
	}
	log.Printf("[agent] saved tree to %s (%d root visits)", path, root.Visits())
	return nil
}

// LoadYourself restores a position and search tree previously written by
// SaveYourself, replacing whatever the agent currently holds. Per
// spec.md §4.6 this must be called with the agent idle.
func (c *Coordinator) LoadYourself(path string) error {
	if c.doPonder.Load() {
		return ErrBusy
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var snap snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return err
	}
	state, err := chess.ParseFEN(snap.FEN)
	if err != nil {
		return err
	}
	root := mcts.RestoreNode(snap.Root, c.cfg.Params.ExplorationConstant)

	c.ptrMu.Lock()
	c.state = state
	c.root = root
	c.ptrMu.Unlock()
	log.Printf("[agent] loaded tree from %s (%d root visits)", path, root.Visits())
	return nil
}
