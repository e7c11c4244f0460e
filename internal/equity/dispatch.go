package equity

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-equity/internal/randutil"
)

// batchTask describes one unit of concurrent work: a trial count plus
// the seed of the batch's private RNG. Only this plain record crosses
// the worker boundary; workers share no mutable state.
type batchTask struct {
	trials int
	seed   int64
}

// splitTrials partitions total trials into n batches differing in size
// by at most one, the remainder going one-per-batch to the first
// batches. Seeds are derived deterministically per stream index so a
// fixed engine seed reproduces every batch.
func splitTrials(total, n int, baseSeed int64, firstStream int) []batchTask {
	if n > total {
		n = total
	}
	if n < 1 {
		n = 1
	}

	per := total / n
	remainder := total % n

	tasks := make([]batchTask, n)
	for i := range tasks {
		trials := per
		if i < remainder {
			trials++
		}
		tasks[i] = batchTask{
			trials: trials,
			seed:   randutil.Derive(baseSeed, firstStream+i),
		}
	}
	return tasks
}

// runBatches executes tasks concurrently through the fixed worker
// entry point run, each batch accumulating into private counters, and
// merges the results once every batch completes. Any batch failure
// fails the whole call.
func runBatches(ctx context.Context, players int, tasks []batchTask, run func(ctx context.Context, task batchTask, tally *counters) error) (*counters, error) {
	g, ctx := errgroup.WithContext(ctx)

	results := make([]*counters, len(tasks))
	for i, task := range tasks {
		g.Go(func() error {
			tally := newCounters(players)
			if err := run(ctx, task, tally); err != nil {
				return &BatchExecutionError{Batch: i, Err: err}
			}
			results[i] = tally
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := newCounters(players)
	for _, tally := range results {
		merged.merge(tally)
	}
	return merged, nil
}
