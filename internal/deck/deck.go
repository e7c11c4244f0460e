package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// CardSet represents a set of cards using a bitset for fast operations.
// Each card maps to a bit: index = (rank-2)*4 + suit
type CardSet uint64

func cardIndex(card Card) int {
	return int(card.Rank-Two)*4 + int(card.Suit)
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << cardIndex(card)
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<cardIndex(card)) != 0
}

// NewCardSet creates a CardSet from one or more card slices
func NewCardSet(groups ...[]Card) CardSet {
	var cs CardSet
	for _, cards := range groups {
		for _, card := range cards {
			cs.Add(card)
		}
	}
	return cs
}

// InsufficientCardsError reports a draw that exceeds the remaining deck.
type InsufficientCardsError struct {
	Requested int
	Remaining int
}

func (e *InsufficientCardsError) Error() string {
	return fmt.Sprintf("cannot draw %d cards: only %d remaining in deck", e.Requested, e.Remaining)
}

// Remaining returns the 52-card universe minus the excluded cards, in a
// fixed suit-major order. The order is what makes combination
// enumeration deterministic across runs.
func Remaining(excluded CardSet) []Card {
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := Card{Suit: suit, Rank: rank}
			if !excluded.Contains(card) {
				cards = append(cards, card)
			}
		}
	}
	return cards
}

// EachCombination calls fn for every k-card combination of cards, in
// lexicographic order over the input slice. The combo slice passed to
// fn is reused between calls; fn must copy it to retain it. Returning
// false from fn stops the enumeration.
func EachCombination(cards []Card, k int, fn func(combo []Card) bool) error {
	if k > len(cards) {
		return &InsufficientCardsError{Requested: k, Remaining: len(cards)}
	}
	if k == 0 {
		fn(nil)
		return nil
	}

	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}

	combo := make([]Card, k)
	for {
		for i, idx := range indices {
			combo[i] = cards[idx]
		}
		if !fn(combo) {
			return nil
		}

		// Advance to the next combination: find the rightmost index
		// that can still move, bump it, and reset everything after it.
		i := k - 1
		for i >= 0 && indices[i] == len(cards)-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}

// CountCombinations returns C(n, k), the number of combinations
// EachCombination will produce for n cards.
func CountCombinations(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// SampleInto draws k distinct cards uniformly at random from cards into
// dst, without replacement. The source slice is reordered in place
// (partial Fisher-Yates), so callers running concurrently must each own
// their copy. dst must have length k.
func SampleInto(cards []Card, k int, rng *rand.Rand, dst []Card) error {
	if k > len(cards) {
		return &InsufficientCardsError{Requested: k, Remaining: len(cards)}
	}

	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(cards)-i)
		cards[i], cards[j] = cards[j], cards[i]
		dst[i] = cards[i]
	}

	return nil
}

// Sample draws k distinct cards uniformly at random from the deck
// remaining after excluded. Fails when fewer than k cards remain.
func Sample(excluded CardSet, k int, rng *rand.Rand) ([]Card, error) {
	remaining := Remaining(excluded)
	dst := make([]Card, k)
	if err := SampleInto(remaining, k, rng, dst); err != nil {
		return nil, err
	}
	return dst, nil
}
