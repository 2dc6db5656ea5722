package conversation

import (
	"context"
	"sync"
	"time"
)

// chainStep is one delayed action in a scheduled chain.
type chainStep struct {
	delay time.Duration
	run   func(context.Context)
}

// scheduler executes chains of delayed steps. Every chain captures the
// session's step generation when scheduled; once the session moves to a
// different step the remaining steps of the chain are dropped, so stale
// timers can never stack messages into a conversation that has moved on.
type scheduler struct {
	store *Store
	after func(time.Duration) <-chan time.Time
	wg    sync.WaitGroup
}

func newScheduler(store *Store, after func(time.Duration) <-chan time.Time) *scheduler {
	if after == nil {
		after = time.After
	}
	return &scheduler{store: store, after: after}
}

// runChain executes steps in order on a new goroutine. gen is the step
// generation the chain belongs to; the chain stops as soon as the store's
// generation moves past it or ctx is cancelled.
func (s *scheduler) runChain(ctx context.Context, gen uint64, steps []chainStep) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for _, step := range steps {
			if step.delay > 0 {
				select {
				case <-s.after(step.delay):
				case <-ctx.Done():
					return
				}
			}
			if s.store.Generation() != gen {
				return
			}
			step.run(ctx)
		}
	}()
}

// wait blocks until every scheduled chain has finished. Used by tests that
// run with an immediate clock.
func (s *scheduler) wait() {
	s.wg.Wait()
}
