// Command ponderbench drives an agent.Coordinator for a fixed number of
// decisions and prints visit statistics after each one. It is the one
// concession to having something executable in a module whose CLI/UCI
// surface is otherwise out of scope (spec.md §1); grounded on the
// teacher corpus's library-first posture, not on any protocol spec.
package main

import (
	"flag"
	"log"
	"time"

	chess "github.com/ponderchess/engine"
	"github.com/ponderchess/engine/internal/agent"
)

func main() {
	workers := flag.Int("workers", 4, "number of ponder workers")
	decisions := flag.Int("decisions", 4, "number of decisions to make before exiting")
	budget := flag.Duration("budget", 2*time.Second, "per-decision time budget")
	fen := flag.String("fen", chess.StartFEN, "starting position, in FEN")
	flag.Parse()

	start, err := chess.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("[ponderbench] invalid FEN %q: %v", *fen, err)
	}

	cfg := agent.DefaultConfig()
	cfg.Workers = *workers
	cfg.DecisionBudget = *budget
	coord := agent.New(cfg)
	defer coord.Close()

	coord.SetState(start)

	for i := 0; i < *decisions; i++ {
		decision := coord.StartDecision(*budget)
		move := decision.Wait()
		if move == chess.NoMove {
			log.Printf("[ponderbench] decision %d: no legal move, game over", i+1)
			break
		}
		log.Printf("[ponderbench] decision %d: %s", i+1, move)
		if err := coord.AdvanceState(move); err != nil {
			log.Fatalf("[ponderbench] advance failed: %v", err)
		}
	}
}
