// Package work provides bounded parallel execution of judgment batches.
package work

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/aivend/judge/internal/engine"
)

// Pool fans a batch of judgment inputs out over a fixed number of
// workers. Judgments are independent and share only the immutable
// catalog, so the pool needs no coordination beyond the job channel.
type Pool struct {
	engine  *engine.Engine
	workers int
	log     zerolog.Logger
}

// NewPool creates a pool with the given worker count (minimum 1).
func NewPool(eng *engine.Engine, workers int, log zerolog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		engine:  eng,
		workers: workers,
		log:     log.With().Str("component", "work_pool").Logger(),
	}
}

// JudgeAll evaluates every input and returns decisions in input order.
// On context cancellation it stops dispatching and returns the context
// error; already-computed decisions are discarded by the caller.
func (p *Pool) JudgeAll(ctx context.Context, inputs []engine.Input) ([]engine.Decision, error) {
	decisions := make([]engine.Decision, len(inputs))

	type job struct {
		index int
		input engine.Input
	}

	jobs := make(chan job)
	var wg sync.WaitGroup

	workers := p.workers
	if len(inputs) < workers {
		workers = len(inputs)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				decisions[j.index] = p.engine.Judge(j.input)
			}
		}()
	}

	var err error
dispatch:
	for i, input := range inputs {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		case jobs <- job{index: i, input: input}:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		p.log.Warn().Err(err).Int("batch_size", len(inputs)).Msg("Batch judgment cancelled")
		return nil, err
	}

	return decisions, nil
}
