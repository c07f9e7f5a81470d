// decision.go implements start_decision from spec.md §4.6/§9 Open
// Question (a): pondering plus a fixed-duration timer that reads
// BestMove when it fires. The original's boost::future<Move> becomes a
// Decision with a Wait method, Go's usual stand-in for a one-shot
// future; each decision gets a github.com/google/uuid ID, grounded on
// xionghan/internal/server/game/manager.go tagging sessions with
// uuid.NewString(). The ID appears in the decision's own log line
// ("decision <id>: <move> after <budget> (<n> root visits)"); worker
// sampling batches do not log.

package agent

import (
	"log"
	"time"

	"github.com/google/uuid"
	chess "github.com/ponderchess/engine"
)

// Decision is an in-flight StartDecision call.
type Decision struct {
	ID   string
	done chan struct{}
	move chess.Move
}

// Wait blocks until the decision's time budget has elapsed and returns
// the resulting move (the Go analogue of boost::future<Move>::get()).
func (d *Decision) Wait() chess.Move {
	<-d.done
	return d.move
}

// StartDecision begins pondering (if not already) and, after budget has
// elapsed, resolves to the root's current BestMove. There is no explicit
// abort path — per spec.md §5, decisions are cancelled only by elapsed
// time — and a zero or negative budget falls back to Config.DecisionBudget.
func (c *Coordinator) StartDecision(budget time.Duration) *Decision {
	if budget <= 0 {
		budget = c.cfg.DecisionBudget
	}
	c.StartPondering()

	d := &Decision{ID: uuid.NewString(), done: make(chan struct{})}
	go func() {
		time.Sleep(budget)
		_, root := c.snapshot()
		if root == nil {
			log.Printf("[agent] decision %s: no position set, returning no move", d.ID)
			close(d.done)
			return
		}
		move, ok := root.BestMove()
		if !ok {
			move = chess.NoMove
		}
		d.move = move
		log.Printf("[agent] decision %s: %s after %s (%d root visits)", d.ID, move, budget, root.Visits())
		close(d.done)
	}()
	return d
}
