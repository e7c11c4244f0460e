// Package handrank adapts the paulhankin/poker seven-card evaluator
// into the showdown oracle consumed by the equity engine. Scores are
// totally ordered and pure functions of the cards; higher is stronger.
package handrank

import (
	"fmt"

	"github.com/paulhankin/poker"

	"github.com/lox/holdem-equity/internal/deck"
)

// cardTable maps (suit, rank) to the evaluator's card encoding so the
// hot path never goes through MakeCard's validation.
var cardTable [4][15]poker.Card

func init() {
	for suit := deck.Spades; suit <= deck.Clubs; suit++ {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			card, err := poker.MakeCard(pokerSuit(suit), pokerRank(rank))
			if err != nil {
				panic(fmt.Sprintf("handrank: cannot encode %v: %v", deck.Card{Suit: suit, Rank: rank}, err))
			}
			cardTable[suit][rank] = card
		}
	}
}

func pokerSuit(s deck.Suit) poker.Suit {
	switch s {
	case deck.Spades:
		return poker.Spade
	case deck.Hearts:
		return poker.Heart
	case deck.Diamonds:
		return poker.Diamond
	default:
		return poker.Club
	}
}

// The evaluator numbers aces low (1); our deck numbers them high (14).
func pokerRank(r deck.Rank) poker.Rank {
	if r == deck.Ace {
		return 1
	}
	return poker.Rank(r)
}

// Evaluator scores completed hold'em hands.
type Evaluator struct{}

// New creates a new evaluator
func New() *Evaluator {
	return &Evaluator{}
}

// Strength returns the strength of two hole cards against a full
// five-card board. Higher scores beat lower ones, and equal scores tie.
func (e *Evaluator) Strength(hole []deck.Card, board []deck.Card) (int16, error) {
	if len(hole) != 2 {
		return 0, fmt.Errorf("hand must contain exactly 2 cards, got %d", len(hole))
	}
	if len(board) != 5 {
		return 0, fmt.Errorf("board must contain exactly 5 cards, got %d", len(board))
	}

	var cards [7]poker.Card
	cards[0] = cardTable[hole[0].Suit][hole[0].Rank]
	cards[1] = cardTable[hole[1].Suit][hole[1].Rank]
	for i, c := range board {
		cards[2+i] = cardTable[c.Suit][c.Rank]
	}

	return poker.Eval7(&cards), nil
}

// Winners evaluates every hand against the board and returns the
// indices of the hands achieving the maximum strength. More than one
// index signals a tie.
func (e *Evaluator) Winners(hands [][]deck.Card, board []deck.Card) ([]int, error) {
	if len(hands) == 0 {
		return nil, fmt.Errorf("no hands to evaluate")
	}

	best := int16(0)
	var winners []int
	for i, hand := range hands {
		score, err := e.Strength(hand, board)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}

		switch {
		case i == 0 || score > best:
			best = score
			winners = append(winners[:0], i)
		case score == best:
			winners = append(winners, i)
		}
	}

	return winners, nil
}
