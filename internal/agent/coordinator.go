// coordinator.go implements MCTSAgent from spec.md §4.6: the dual-barrier
// protocol that lets n ponder workers run lock-free between controller
// events, and the controller-side operations (SetState, AdvanceState,
// StartPondering, StopPondering, StartDecision) that all run inside
// betweenPonderings so they never interleave with a worker's sampling
// batch. Grounded almost line-for-line on
// original_source/mcts_agent.cpp's between_ponderings/perform_pondering/
// ponder/start_decision; the worker pool itself is launched with
// golang.org/x/sync/errgroup (already present in the retrieved
// dependency graph via xionghan/go.mod) in place of
// boost::thread_group.

package agent

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	mathrand "math/rand"
	"sync"
	"sync/atomic"
	"time"

	chess "github.com/ponderchess/engine"
	"github.com/ponderchess/engine/internal/mcts"
	"golang.org/x/sync/errgroup"
)

// ErrNotReady reports a protocol misuse: an operation that needs a
// position was called before SetState established one. Per spec.md §7
// this is a precondition violation the caller must not trigger in
// steady-state use; it is returned rather than panicked so
// cmd/ponderbench can report it cleanly.
var ErrNotReady = errors.New("agent: SetState must be called before this operation")

// ErrBusy reports that SaveYourself/LoadYourself was called while the
// agent is pondering. spec.md §4.6 requires the agent be idle first.
var ErrBusy = errors.New("agent: must StopPondering before save/load")

// Coordinator owns the current position, the current search tree root,
// and a fixed pool of ponder workers synchronized through a two-phase
// barrier. It is the Go name for spec.md's MCTSAgent.
type Coordinator struct {
	cfg Config

	ptrMu sync.Mutex
	state *chess.State
	root  *mcts.Node

	barrierBeforeChange *barrier
	barrierAfterChange  *barrier

	pendingChange atomic.Bool
	doPonder      atomic.Bool
	doTerminate   atomic.Bool

	group *errgroup.Group

	drawRNG   *mathrand.Rand
	drawRNGMu sync.Mutex
}

// New launches cfg.Workers ponder goroutines and returns a Coordinator
// with no position set; call SetState before pondering or deciding.
func New(cfg Config) *Coordinator {
	cfg = cfg.normalized()
	c := &Coordinator{
		cfg:                 cfg,
		barrierBeforeChange: newBarrier(cfg.Workers + 1),
		barrierAfterChange:  newBarrier(cfg.Workers + 1),
		drawRNG:             mathrand.New(mathrand.NewSource(seedFromEntropy())),
	}
	c.group = new(errgroup.Group)
	for i := 0; i < cfg.Workers; i++ {
		rng := mathrand.New(mathrand.NewSource(seedFromEntropy()))
		c.group.Go(func() error {
			c.workerLoop(rng)
			return nil
		})
	}
	return c
}

func seedFromEntropy() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// betweenPonderings runs change with every ponder worker parked at the
// barrier pair, establishing the happens-before relation spec.md §5
// requires: everything change() does happens-before the next sample on
// any worker.
func (c *Coordinator) betweenPonderings(change func()) {
	c.pendingChange.Store(true)
	c.barrierBeforeChange.Wait()
	change()
	c.pendingChange.Store(false)
	c.barrierAfterChange.Wait()
}

// workerLoop is one ponder worker: spec.md §4.6's pseudocode verbatim.
func (c *Coordinator) workerLoop(rng *mathrand.Rand) {
	for !c.doTerminate.Load() {
		if c.pendingChange.Load() || !c.doPonder.Load() {
			c.barrierBeforeChange.Wait()
			c.barrierAfterChange.Wait()
			continue
		}
		state, root := c.snapshot()
		if state == nil || root == nil {
			continue
		}
		for i := 0; i < c.cfg.Params.SamplesPerBatch; i++ {
			root.Sample(state, rng, c.cfg.Params.MaxPlayoutPlies)
		}
	}
}

func (c *Coordinator) snapshot() (*chess.State, *mcts.Node) {
	c.ptrMu.Lock()
	defer c.ptrMu.Unlock()
	return c.state, c.root
}

// SetState replaces the current position and starts a fresh tree rooted
// on it, discarding any prior pondering.
func (c *Coordinator) SetState(state *chess.State) {
	c.betweenPonderings(func() {
		c.ptrMu.Lock()
		c.state = state.Clone()
		c.root = mcts.NewRoot(c.cfg.Params)
		c.ptrMu.Unlock()
	})
}

// AdvanceState applies move to the current position and re-roots the
// search tree on the corresponding child, preserving whatever statistics
// pondering has already accumulated for that branch. If the tree never
// expanded that branch (no pondering happened between SetState and
// AdvanceState), a fresh node is created instead — nothing is thrown
// away because there was nothing to throw away. Returns ErrNotReady if
// SetState hasn't been called yet.
func (c *Coordinator) AdvanceState(move chess.Move) error {
	var err error
	c.betweenPonderings(func() {
		c.ptrMu.Lock()
		defer c.ptrMu.Unlock()
		if c.state == nil || c.root == nil {
			err = ErrNotReady
			return
		}
		c.state.MakeMove(move)
		if child := c.root.Child(move); child != nil {
			c.root = child.DropParentAndSiblings()
		} else {
			c.root = mcts.NewNode(nil, move, c.cfg.Params.ExplorationConstant)
		}
	})
	return err
}

// StartPondering lets the worker pool resume growing the tree.
func (c *Coordinator) StartPondering() {
	c.betweenPonderings(func() {
		c.doPonder.Store(true)
	})
}

// StopPondering idempotently quiesces the worker pool. It is the only
// way to stop pondering short of Close, per spec.md §5.
func (c *Coordinator) StopPondering() {
	c.betweenPonderings(func() {
		c.doPonder.Store(false)
	})
}

// Idle stops pondering; there is no in-flight decision to abort (spec.md
// §9 Open Question (a): decisions complete only by elapsed time).
func (c *Coordinator) Idle() { c.StopPondering() }

// Pause stops pondering.
func (c *Coordinator) Pause() { c.StopPondering() }

// Resume restarts pondering.
func (c *Coordinator) Resume() { c.StartPondering() }

// AcceptDraw reports whether the agent accepts a draw offer, using the
// fixed Bernoulli probability in Config — spec.md §9 Open Question (b);
// color is accepted for interface symmetry with a caller that tracks
// per-side state, but the probability doesn't depend on it today.
func (c *Coordinator) AcceptDraw(_ chess.Color) bool {
	c.drawRNGMu.Lock()
	defer c.drawRNGMu.Unlock()
	return c.drawRNG.Float64() < c.cfg.DrawAcceptanceProbability
}

// Close terminates the worker pool. It sets doTerminate inside a
// betweenPonderings round, so any worker parked at the barrier (because
// pondering was already stopped) is released and then sees the flag
// instead of deadlocking the final Wait — spec.md §7's "joining must not
// deadlock".
func (c *Coordinator) Close() error {
	c.betweenPonderings(func() {
		c.doTerminate.Store(true)
	})
	return c.group.Wait()
}
