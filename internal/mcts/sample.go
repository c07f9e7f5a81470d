// sample.go implements one selection-expansion-playout-backpropagation
// iteration, per spec.md §4.5. It is the only entry point workers call;
// everything else in this package exists to support it.

package mcts

import (
	"math/rand"

	chess "github.com/ponderchess/engine"
)

// Sample runs one MCTS iteration starting from n against a clone of
// rootState, and backpropagates the result through n's ancestors.
// maxPlayoutPlies bounds the random-playout phase; values <= 0 fall back
// to DefaultParams()'s 200.
func (n *Node) Sample(rootState *chess.State, rng *rand.Rand, maxPlayoutPlies int) {
	if maxPlayoutPlies <= 0 {
		maxPlayoutPlies = 200
	}
	working := rootState.Clone()

	node := n
	for {
		expanded, terminal := node.snapshotFlags()
		if terminal {
			// Another sample already proved this position has no moves
			// for the side to move; re-score it without re-deriving
			// anything, since working already holds that exact state.
			loser := working.SideToMove()
			backpropagate(node, loser.Opposite(), loser.Opposite(), false)
			return
		}
		if !expanded {
			break
		}
		child := node.selectChild()
		if child == nil {
			break
		}
		working.MakeMove(child.move)
		node = child
	}

	moves := working.GenerateMoves()
	if len(moves) == 0 {
		node.markTerminal()
		loser := working.SideToMove()
		backpropagate(node, loser.Opposite(), loser.Opposite(), false)
		return
	}

	node.expand(moves)
	chosen := node.randomChild(rng.Intn)
	moverIntoChosen := working.SideToMove()
	working.MakeMove(chosen.move)

	winner, draw := playout(working, rng, maxPlayoutPlies)
	backpropagate(chosen, moverIntoChosen, winner, draw)
}

// playout plays uniform-random pseudo-legal moves from state (which it
// mutates in place) until either side has none left — the forced
// king-capture mechanism in GenerateMoves means this only happens after
// a king has been captured — or maxPlies is reached, which scores as a
// draw to bound the cost of lines that could otherwise loop forever.
func playout(state *chess.State, rng *rand.Rand, maxPlies int) (winner chess.Color, draw bool) {
	for ply := 0; ply < maxPlies; ply++ {
		moves := state.GenerateMoves()
		if len(moves) == 0 {
			loser := state.SideToMove()
			return loser.Opposite(), false
		}
		state.MakeMove(moves[rng.Intn(len(moves))])
	}
	return chess.NoColor, true
}
