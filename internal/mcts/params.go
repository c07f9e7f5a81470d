// params.go collects the tunables Sample reads, following the teacher
// corpus's own DefaultParams()-constructor convention for search
// parameters (xionghan/internal/mcts/params.go) rather than scattering
// magic numbers through the selection/playout code.

package mcts

import "math"

// Params tunes one search tree's selection and playout behavior. Every
// Node in a tree shares the ExplorationConstant its root was built with;
// MaxPlayoutPlies and SamplesPerBatch are read by the caller driving
// Sample (internal/agent's worker loop), not by Node itself.
type Params struct {
	// ExplorationConstant is C in the UCT formula
	// wins/visits + C*sqrt(ln(parentVisits)/visits). Spec fixes it at
	// sqrt(2); left overridable for experimentation.
	ExplorationConstant float64

	// MaxPlayoutPlies caps a single random playout before it is scored
	// as a draw, bounding the cost of self-checking lines that could
	// otherwise extend indefinitely through repetition.
	MaxPlayoutPlies int

	// SamplesPerBatch is how many Sample calls a ponder worker runs
	// between barrier checks (spec's "for i in 1..100").
	SamplesPerBatch int
}

// DefaultParams returns the values named in the specification: C =
// sqrt(2), a 200-ply playout cap, and 100 samples per pondering batch.
func DefaultParams() Params {
	return Params{
		ExplorationConstant: math.Sqrt2,
		MaxPlayoutPlies:     200,
		SamplesPerBatch:     100,
	}
}
