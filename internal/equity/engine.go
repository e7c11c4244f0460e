// Package equity estimates each player's probability of winning a
// hold'em showdown. Boards with 3 or more known cards are enumerated
// exactly; earlier streets are sampled with antithetic variates,
// convergence-based early stopping, and parallel batch execution.
package equity

import (
	"context"
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-equity/internal/deck"
)

const (
	MinPlayers = 2
	MaxPlayers = 9

	holeCardsPerHand = 2
	maxBoardCards    = 5
)

// Oracle compares completed hands. Implementations must be pure
// functions of their inputs returning a total order consistent across
// calls; Winners returns the indices of the hands achieving maximum
// strength (more than one signals a tie).
type Oracle interface {
	Winners(hands [][]deck.Card, board []deck.Card) ([]int, error)
}

// Engine routes evaluation requests to exact enumeration or Monte
// Carlo sampling and converts the accumulated counts to percentages.
type Engine struct {
	cfg    Config
	oracle Oracle
	logger *log.Logger
}

// New creates an engine evaluating showdowns with the given oracle.
func New(oracle Oracle, cfg Config) *Engine {
	return &Engine{
		cfg:    cfg.withDefaults(),
		oracle: oracle,
		logger: cfg.Logger,
	}
}

// Result holds per-player win percentages indexed by player position.
// Values are rounded to 2 decimal places and sum to 100 within
// tolerance (exactly for enumerated boards, statistically for sampled
// ones).
type Result struct {
	Percentages []float64
	Trials      int
	Exact       bool
}

// Labels formats the result as the external 1-based player mapping.
func (r Result) Labels() map[string]float64 {
	labels := make(map[string]float64, len(r.Percentages))
	for i, pct := range r.Percentages {
		labels[fmt.Sprintf("Player %d", i+1)] = pct
	}
	return labels
}

// Estimate computes win percentages for 2-9 players given their hole
// cards and a partially revealed board. Boards holding 3 or more cards
// are enumerated exactly; otherwise the engine samples.
func (e *Engine) Estimate(ctx context.Context, hands [][]deck.Card, board []deck.Card) (Result, error) {
	if err := validateRequest(hands, board); err != nil {
		return Result{}, err
	}

	exact := len(board) >= 3
	if e.logger != nil {
		strategy := "monte-carlo"
		if exact {
			strategy = "exact"
		}
		e.logger.Debug("estimating equity",
			"players", len(hands), "board", len(board), "strategy", strategy,
			"device", e.cfg.Device.Name, "workers", e.cfg.Device.Parallelism)
	}

	var (
		tally *counters
		err   error
	)
	if exact {
		tally, err = e.enumerateExact(hands, board)
	} else {
		tally, err = e.simulate(ctx, hands, board)
	}
	if err != nil {
		return Result{}, err
	}

	pcts := tally.percentages()
	for i := range pcts {
		pcts[i] = round2(pcts[i])
	}

	return Result{Percentages: pcts, Trials: tally.trials, Exact: exact}, nil
}

func validateRequest(hands [][]deck.Card, board []deck.Card) error {
	if len(hands) < MinPlayers || len(hands) > MaxPlayers {
		return invalidInputf("number of players must be between %d and %d, got %d", MinPlayers, MaxPlayers, len(hands))
	}
	if len(board) > maxBoardCards {
		return invalidInputf("board holds %d cards, maximum is %d", len(board), maxBoardCards)
	}

	seen := make(map[deck.Card]bool, len(hands)*holeCardsPerHand+len(board))
	for _, card := range board {
		if err := checkCard(card, seen); err != nil {
			return err
		}
	}
	for i, hand := range hands {
		if len(hand) != holeCardsPerHand {
			return invalidInputf("hand %d must contain exactly %d cards, got %d", i+1, holeCardsPerHand, len(hand))
		}
		for _, card := range hand {
			if err := checkCard(card, seen); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkCard(card deck.Card, seen map[deck.Card]bool) error {
	if card.Rank < deck.Two || card.Rank > deck.Ace || card.Suit < deck.Spades || card.Suit > deck.Clubs {
		return invalidInputf("malformed card %q", card.Code())
	}
	if seen[card] {
		return invalidInputf("duplicate card %s", card.Code())
	}
	seen[card] = true
	return nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
