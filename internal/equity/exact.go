package equity

import (
	"github.com/lox/holdem-equity/internal/deck"
)

// enumerateExact evaluates every possible completion of a board that
// already holds 3-5 cards and accumulates exact win fractions. With at
// most C(45,2)=990 completions the pass is cheap enough that batching
// it would cost more than it saves, so it runs sequentially.
func (e *Engine) enumerateExact(hands [][]deck.Card, board []deck.Card) (*counters, error) {
	excluded := deck.NewCardSet(board)
	for _, hand := range hands {
		for _, card := range hand {
			excluded.Add(card)
		}
	}

	unseen := 5 - len(board)
	remaining := deck.Remaining(excluded)

	tally := newCounters(len(hands))
	full := make([]deck.Card, 5)
	copy(full, board)

	var evalErr error
	err := deck.EachCombination(remaining, unseen, func(combo []deck.Card) bool {
		copy(full[len(board):], combo)

		winners, err := e.oracle.Winners(hands, full)
		if err != nil {
			evalErr = err
			return false
		}

		tally.credit(winners)
		return true
	})
	if err != nil {
		return nil, err
	}
	if evalErr != nil {
		return nil, evalErr
	}

	return tally, nil
}
