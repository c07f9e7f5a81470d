// node.go implements the search tree: a Node owns its children outright
// (deleting a Node's only live reference makes the whole subtree
// collectible, so re-rooting needs no manual free), while a non-owning
// parent pointer lets backpropagation and re-rooting walk upward. Visit
// and win counters are updated with atomics so ponder workers can share
// a tree without a tree-wide lock, per the relaxed-concurrency design
// spec.md §5/§9 sanctions; the children map and its insertion-order
// slice are guarded by a per-node mutex instead, since expansion mutates
// both together and Go map iteration order is randomized (the robust
// move and the tie-break both need a stable order).
//
// Grounded on xionghan/internal/mcts/node.go's mutex-plus-atomic node
// shape, generalized from PUCT+NN-prior selection to the plain
// UCT+random-playout search spec.md specifies, and on
// original_source/mcts_agent.cpp's destroy_parent_and_siblings re-root.

package mcts

import (
	"math"
	"sync"
	"sync/atomic"

	chess "github.com/ponderchess/engine"
)

// winsScale turns the floating accumulator spec.md describes into a
// fixed-point int64 so it can be updated with atomic.AddInt64, per
// spec.md §9's portable-rewrite recommendation.
const winsScale = 1 << 16

// Node is one vertex of the search tree. The zero Node is not usable;
// construct with NewNode or NewRoot.
type Node struct {
	mu sync.Mutex

	parent *Node
	move   chess.Move // the move that led from parent to this node

	children map[chess.Move]*Node
	order    []chess.Move // insertion order, for deterministic tie-breaks
	expanded bool
	terminal bool

	explorationConstant float64

	visits int64 // atomic
	wins   int64 // atomic, fixed-point scaled by winsScale
}

// NewNode constructs a node reached from parent via move. parent may be
// nil (a detached root); move is meaningless when parent is nil.
func NewNode(parent *Node, move chess.Move, explorationConstant float64) *Node {
	if explorationConstant == 0 {
		explorationConstant = math.Sqrt2
	}
	return &Node{parent: parent, move: move, explorationConstant: explorationConstant}
}

// NewRoot constructs a parentless root configured by params.
func NewRoot(params Params) *Node {
	return NewNode(nil, chess.NoMove, params.ExplorationConstant)
}

// Visits returns the number of times Sample has backpropagated through
// this node.
func (n *Node) Visits() int64 {
	return atomic.LoadInt64(&n.visits)
}

// meanValue returns the current win/visit ratio from this node's own
// perspective (the side that moved into it), or 0 if unvisited.
func (n *Node) meanValue() float64 {
	v := atomic.LoadInt64(&n.visits)
	if v == 0 {
		return 0
	}
	return float64(atomic.LoadInt64(&n.wins)) / winsScale / float64(v)
}

func (n *Node) record(value float64) {
	atomic.AddInt64(&n.visits, 1)
	atomic.AddInt64(&n.wins, int64(value*winsScale))
}

// uctScore is the selection criterion: unvisited children sort first
// (infinite score), matching the usual convention of trying every move
// once before UCT's explore/exploit balance takes over.
func (n *Node) uctScore(parentVisits int64) float64 {
	v := atomic.LoadInt64(&n.visits)
	if v == 0 {
		return math.Inf(1)
	}
	explore := n.explorationConstant * math.Sqrt(math.Log(float64(parentVisits))/float64(v))
	return n.meanValue() + explore
}

func (n *Node) snapshotFlags() (expanded, terminal bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.expanded, n.terminal
}

func (n *Node) parentNode() *Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.parent
}

// selectChild returns the child maximizing UCT, breaking ties by
// insertion order (the first child enumerated wins).
func (n *Node) selectChild() *Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	parentVisits := atomic.LoadInt64(&n.visits)
	var best *Node
	bestScore := math.Inf(-1)
	for _, mv := range n.order {
		c := n.children[mv]
		if score := c.uctScore(parentVisits); score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// expand populates n's children, one per move, unless another worker
// already raced it to expansion.
func (n *Node) expand(moves []chess.Move) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.expanded {
		return
	}
	n.children = make(map[chess.Move]*Node, len(moves))
	n.order = make([]chess.Move, 0, len(moves))
	for _, mv := range moves {
		n.children[mv] = NewNode(n, mv, n.explorationConstant)
		n.order = append(n.order, mv)
	}
	n.expanded = true
}

func (n *Node) markTerminal() {
	n.mu.Lock()
	n.terminal = true
	n.mu.Unlock()
}

// randomChild returns a uniformly chosen child, or nil if n has none.
func (n *Node) randomChild(pick func(int) int) *Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.order) == 0 {
		return nil
	}
	return n.children[n.order[pick(len(n.order))]]
}

// Child returns the already-expanded child reached by move, or nil if n
// is unexpanded or move isn't among its children. Used by the agent
// coordinator to re-root after AdvanceState.
func (n *Node) Child(move chess.Move) *Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.expanded {
		return nil
	}
	return n.children[move]
}

// DropParentAndSiblings detaches n from its parent and returns n as the
// new root. The former parent (and n's siblings, reachable only through
// it) become unreachable and are reclaimed by the garbage collector —
// the Go counterpart of the original engine's explicit
// destroy_parent_and_siblings.
func (n *Node) DropParentAndSiblings() *Node {
	n.mu.Lock()
	n.parent = nil
	n.mu.Unlock()
	return n
}

// BestMove returns the root's most-visited child (the "robust child"),
// breaking ties by insertion order, per spec.md §4.5 and §9 Open
// Question (c). ok is false if n has no children yet.
func (n *Node) BestMove() (move chess.Move, ok bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.expanded || len(n.order) == 0 {
		return chess.NoMove, false
	}
	bestVisits := int64(-1)
	for _, mv := range n.order {
		if v := n.children[mv].Visits(); v > bestVisits {
			bestVisits = v
			move = mv
		}
	}
	return move, true
}

func valueForColor(c, winner chess.Color, draw bool) float64 {
	if draw || winner == chess.NoColor {
		return 0
	}
	if c == winner {
		return 1
	}
	return -1
}

// backpropagate walks from start up through its ancestors (inclusive),
// recording value-for-startColor at start and flipping the sign at each
// ancestor, since color alternates every ply along the path to the root.
func backpropagate(start *Node, startColor, winner chess.Color, draw bool) {
	color := startColor
	for node := start; node != nil; node = node.parentNode() {
		node.record(valueForColor(color, winner, draw))
		color = color.Opposite()
	}
}
