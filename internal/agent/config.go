// config.go defines the coordinator's tunables as a flat struct with a
// Default constructor, following gomoku/backend/config.go's shape; no
// viper/cobra/config library appears anywhere in the corpus, so this
// stays a plain struct per the ambient-stack convention SPEC_FULL.md §4
// documents.

package agent

import (
	"time"

	"github.com/ponderchess/engine/internal/mcts"
)

// Config configures a Coordinator: how many ponder workers it runs, the
// search tuning they share, and the default decision budget.
type Config struct {
	// Workers is the number of ponder goroutines (spec.md's n).
	Workers int

	// Params tunes the search tree every worker samples against.
	Params mcts.Params

	// DrawAcceptanceProbability is the fixed Bernoulli probability
	// AcceptDraw uses, per spec.md §9 Open Question (b) — arbitrary by
	// the spec's own admission, so it is a knob rather than a constant.
	DrawAcceptanceProbability float64

	// DecisionBudget is the default time StartDecision waits before
	// reading BestMove, used when callers don't override it explicitly.
	DecisionBudget time.Duration
}

// DefaultConfig returns the values spec.md names: 100 samples/batch and
// C=sqrt(2) via mcts.DefaultParams, a 10% draw-acceptance probability,
// and a 5-second decision budget matching the original
// MCTSAgent::start_decision.
func DefaultConfig() Config {
	return Config{
		Workers:                   4,
		Params:                    mcts.DefaultParams(),
		DrawAcceptanceProbability: 0.1,
		DecisionBudget:            5 * time.Second,
	}
}

func (c Config) normalized() Config {
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Params.SamplesPerBatch <= 0 {
		c.Params.SamplesPerBatch = 100
	}
	if c.Params.MaxPlayoutPlies <= 0 {
		c.Params.MaxPlayoutPlies = 200
	}
	if c.Params.ExplorationConstant == 0 {
		c.Params.ExplorationConstant = mcts.DefaultParams().ExplorationConstant
	}
	if c.DecisionBudget <= 0 {
		c.DecisionBudget = 5 * time.Second
	}
	return c
}
