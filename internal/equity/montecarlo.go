package equity

import (
	"context"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/randutil"
)

// mirrorCard applies the fixed antithetic suit pairing: ♠↔♥ and ♦↔♣,
// rank unchanged. The pairing is an involution, so mirroring twice
// returns the original card.
func mirrorCard(c deck.Card) deck.Card {
	switch c.Suit {
	case deck.Spades:
		c.Suit = deck.Hearts
	case deck.Hearts:
		c.Suit = deck.Spades
	case deck.Diamonds:
		c.Suit = deck.Clubs
	case deck.Clubs:
		c.Suit = deck.Diamonds
	}
	return c
}

// targetTrials resolves the sampling budget: requested iterations
// raised to the per-player-count floor, then scaled down when
// antithetic pairing is on since each pair cuts variance roughly as
// much as doubling the primary draws would.
func (e *Engine) targetTrials(players int) int {
	target := e.cfg.Iterations
	if floor := sampleFloor(players); target < floor {
		target = floor
	}
	if e.cfg.Antithetic {
		target = int(float64(target) * e.cfg.AntitheticScale)
	}
	return target
}

// simulate estimates equity for boards with fewer than 3 known cards
// by chunked parallel Monte Carlo sampling with early stopping.
func (e *Engine) simulate(ctx context.Context, hands [][]deck.Card, board []deck.Card) (*counters, error) {
	players := len(hands)
	target := e.targetTrials(players)

	known := deck.NewCardSet(board)
	for _, hand := range hands {
		for _, card := range hand {
			known.Add(card)
		}
	}
	pool := deck.Remaining(known)

	chunkSize := target / e.cfg.Checkpoints
	if chunkSize < minChunkTrials {
		chunkSize = minChunkTrials
	}

	monitor := newConvergenceMonitor(e.cfg.ConvergenceThreshold, e.cfg.ConvergenceWindow)
	total := newCounters(players)
	warmup := target / 3
	stream := 0

	for total.trials < target {
		chunk := chunkSize
		if left := target - total.trials; chunk > left {
			chunk = left
		}

		tasks := splitTrials(chunk, e.cfg.Device.Parallelism, e.cfg.Seed, stream)
		stream += len(tasks)

		merged, err := runBatches(ctx, players, tasks, func(ctx context.Context, task batchTask, tally *counters) error {
			return e.runSampleBatch(task, hands, board, pool, known, tally)
		})
		if err != nil {
			return nil, err
		}
		total.merge(merged)

		monitor.observe(total.percentages())
		if total.trials >= warmup && monitor.converged() {
			if e.logger != nil {
				e.logger.Debug("sampling converged early", "trials", total.trials, "target", target)
			}
			break
		}
	}

	return total, nil
}

// runSampleBatch is the fixed worker entry point for one batch. It
// owns a private RNG, a private copy of the card pool, and private
// counters; nothing it touches is shared.
func (e *Engine) runSampleBatch(task batchTask, hands [][]deck.Card, board []deck.Card, pool []deck.Card, known deck.CardSet, tally *counters) error {
	rng := randutil.New(task.seed)

	cards := make([]deck.Card, len(pool))
	copy(cards, pool)

	unseen := 5 - len(board)
	draw := make([]deck.Card, unseen)
	full := make([]deck.Card, 5)
	mirrored := make([]deck.Card, 5)
	copy(full, board)
	copy(mirrored, board)

	for done := 0; done < task.trials; {
		if err := deck.SampleInto(cards, unseen, rng, draw); err != nil {
			return err
		}
		copy(full[len(board):], draw)

		winners, err := e.oracle.Winners(hands, full)
		if err != nil {
			return err
		}
		tally.credit(winners)
		done++

		if !e.cfg.Antithetic || done >= task.trials {
			continue
		}

		// The mirror of a drawn card can collide with a known hole or
		// board card, in which case the mirrored board is not a legal
		// deal; the pair then counts the primary completion twice,
		// which keeps the trial count exact and the estimate unbiased.
		legal := true
		for i, c := range draw {
			m := mirrorCard(c)
			if known.Contains(m) {
				legal = false
				break
			}
			mirrored[len(board)+i] = m
		}

		if legal {
			mirrorWinners, err := e.oracle.Winners(hands, mirrored)
			if err != nil {
				return err
			}
			tally.credit(mirrorWinners)
		} else {
			tally.credit(winners)
		}
		done++
	}

	return nil
}
