// snapshot.go supports tree persistence: Node itself carries private
// fields and a mutex, so it can't be gob-encoded directly. NodeSnapshot
// is the exported, tree-shaped DTO internal/agent gob-encodes, grounded
// on gomoku/backend/tt_persistence.go's snapshot-struct-then-gob
// convention (there applied to a transposition table, here to a search
// tree).

package mcts

import (
	"sync/atomic"

	chess "github.com/ponderchess/engine"
)

// NodeSnapshot is a serializable copy of one Node and its subtree.
type NodeSnapshot struct {
	Move     chess.Move
	Visits   int64
	Wins     int64
	Expanded bool
	Terminal bool
	Order    []chess.Move
	Children map[chess.Move]*NodeSnapshot
}

// Snapshot recursively copies n and its subtree into a NodeSnapshot
// suitable for gob encoding.
func (n *Node) Snapshot() *NodeSnapshot {
	n.mu.Lock()
	defer n.mu.Unlock()

	snap := &NodeSnapshot{
		Move:     n.move,
		Visits:   atomic.LoadInt64(&n.visits),
		Wins:     atomic.LoadInt64(&n.wins),
		Expanded: n.expanded,
		Terminal: n.terminal,
	}
	if n.expanded {
		snap.Order = append([]chess.Move(nil), n.order...)
		snap.Children = make(map[chess.Move]*NodeSnapshot, len(n.children))
		for mv, child := range n.children {
			snap.Children[mv] = child.Snapshot()
		}
	}
	return snap
}

// RestoreNode rebuilds a live tree from a NodeSnapshot, reconnecting
// parent pointers as it goes. explorationConstant is applied uniformly,
// since it is a search-time tuning knob rather than persisted state.
func RestoreNode(snap *NodeSnapshot, explorationConstant float64) *Node {
	return restoreNode(nil, snap, explorationConstant)
}

func restoreNode(parent *Node, snap *NodeSnapshot, explorationConstant float64) *Node {
	n := NewNode(parent, snap.Move, explorationConstant)
	n.visits = snap.Visits
	n.wins = snap.Wins
	n.expanded = snap.Expanded
	n.terminal = snap.Terminal
	if snap.Expanded {
		n.order = append([]chess.Move(nil), snap.Order...)
		n.children = make(map[chess.Move]*Node, len(snap.Children))
		for _, mv := range n.order {
			n.children[mv] = restoreNode(n, snap.Children[mv], explorationConstant)
		}
	}
	return n
}
