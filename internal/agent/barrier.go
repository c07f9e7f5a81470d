// barrier.go implements the two-phase cyclic barrier the coordinator and
// its ponder workers rendezvous on. spec.md §4.6/§9 names this protocol
// explicitly and allows substituting "a (readers-write-exclusive) lock"
// as long as the external semantics match; no barrier primitive appears
// anywhere in the corpus's dependency graph, so this is hand-rolled on
// sync.Cond, grounded on gomoku/backend/ai_player.go's
// sync.Cond-guarded ponder-worker wakeup loop — the corpus's only other
// "pause workers, let the controller mutate shared state, resume" shape.

package agent

import "sync"

// barrier blocks Wait callers until exactly width of them have arrived,
// then releases all of them together and resets for the next round
// (the "cyclic" part — unlike sync.WaitGroup, it can be reused).
type barrier struct {
	mu    sync.Mutex
	cond  *sync.Cond
	width int
	count int
	gen   uint64
}

func newBarrier(width int) *barrier {
	b := &barrier{width: width}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	gen := b.gen
	b.count++
	if b.count == b.width {
		b.count = 0
		b.gen++
		b.cond.Broadcast()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
}
