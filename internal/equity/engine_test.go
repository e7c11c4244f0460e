package equity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/handrank"
)

func hands(codes ...string) [][]deck.Card {
	parsed := make([][]deck.Card, len(codes))
	for i, code := range codes {
		parsed[i] = deck.MustParseCards(code)
	}
	return parsed
}

func sumOf(pcts []float64) float64 {
	sum := 0.0
	for _, pct := range pcts {
		sum += pct
	}
	return sum
}

func TestEstimateValidation(t *testing.T) {
	e := New(handrank.New(), testConfig(1))

	tests := []struct {
		name    string
		hands   [][]deck.Card
		board   []deck.Card
		wantMsg string
	}{
		{
			name:    "too few players",
			hands:   hands("AsAc"),
			wantMsg: "number of players",
		},
		{
			name: "too many players",
			hands: hands("2s2c", "3s3c", "4s4c", "5s5c", "6s6c",
				"7s7c", "8s8c", "9s9c", "TsTc", "JsJc"),
			wantMsg: "number of players",
		},
		{
			name:    "short hand",
			hands:   [][]deck.Card{deck.MustParseCards("AsAc"), deck.MustParseCards("Ks")},
			wantMsg: "hand 2 must contain exactly 2 cards",
		},
		{
			name:    "board too large",
			hands:   hands("AsAc", "KsKc"),
			board:   deck.MustParseCards("2h3h4h5h6h7h"),
			wantMsg: "board holds 6 cards",
		},
		{
			name:    "duplicate across hands",
			hands:   hands("AsAc", "AsKc"),
			wantMsg: "duplicate card AS",
		},
		{
			name:    "duplicate between hand and board",
			hands:   hands("AsAc", "KsKc"),
			board:   deck.MustParseCards("As2h3h"),
			wantMsg: "duplicate card AS",
		},
		{
			name:    "malformed card",
			hands:   [][]deck.Card{deck.MustParseCards("AsAc"), {{}, {Suit: deck.Clubs, Rank: deck.King}}},
			wantMsg: "malformed card",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Estimate(t.Context(), tt.hands, tt.board)

			var invalidErr *InvalidInputError
			require.True(t, errors.As(err, &invalidErr), "want InvalidInputError, got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestEstimateFullBoardSingleComparison(t *testing.T) {
	e := New(handrank.New(), testConfig(1))

	// Flush over high card: the comparison is decided outright.
	result, err := e.Estimate(t.Context(),
		hands("AhKh", "QsJd"),
		deck.MustParseCards("2h3h4h5c7d"))
	require.NoError(t, err)

	assert.True(t, result.Exact)
	assert.Equal(t, 1, result.Trials)
	assert.Equal(t, []float64{100, 0}, result.Percentages)
}

func TestEstimateFullBoardTie(t *testing.T) {
	e := New(handrank.New(), testConfig(1))

	// Board plays for both.
	result, err := e.Estimate(t.Context(),
		hands("2h3d", "4s5h"),
		deck.MustParseCards("TsJdQcKhAd"))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Trials)
	assert.Equal(t, []float64{50, 50}, result.Percentages)
}

func TestEstimateExactDeterministic(t *testing.T) {
	e := New(handrank.New(), testConfig(1))
	players := hands("AhKd", "KsQc", "QsJc")
	board := deck.MustParseCards("2c7d8s")

	first, err := e.Estimate(t.Context(), players, board)
	require.NoError(t, err)
	assert.True(t, first.Exact)
	assert.Equal(t, deck.CountCombinations(43, 2), first.Trials)

	for i := 0; i < 3; i++ {
		again, err := e.Estimate(t.Context(), players, board)
		require.NoError(t, err)
		assert.Equal(t, first.Percentages, again.Percentages)
	}
}

func TestEstimateExactSumsToHundred(t *testing.T) {
	e := New(handrank.New(), testConfig(1))

	result, err := e.Estimate(t.Context(),
		hands("AhKd", "KsQc", "QsJc"),
		deck.MustParseCards("2c7d8s"))
	require.NoError(t, err)

	assert.InDelta(t, 100.0, sumOf(result.Percentages), 0.01)

	// AK is ahead of both dominated hands on this dry flop.
	assert.Greater(t, result.Percentages[0], result.Percentages[1])
	assert.Greater(t, result.Percentages[0], result.Percentages[2])
}

func TestEstimateTurnAndRiverExact(t *testing.T) {
	e := New(handrank.New(), testConfig(1))
	players := hands("AsAd", "7h8h")

	turn, err := e.Estimate(t.Context(), players, deck.MustParseCards("2c7d8s9h"))
	require.NoError(t, err)
	assert.True(t, turn.Exact)
	assert.Equal(t, 44, turn.Trials)
	assert.InDelta(t, 100.0, sumOf(turn.Percentages), 0.01)
}

func TestEstimateAcesVersusKings(t *testing.T) {
	e := New(handrank.New(), testConfig(12345))

	result, err := e.Estimate(t.Context(), hands("AsAc", "KsKc"), nil)
	require.NoError(t, err)

	assert.False(t, result.Exact)
	assert.Greater(t, result.Percentages[0], 78.0)
	assert.Less(t, result.Percentages[0], 88.0)
	assert.InDelta(t, 100.0, sumOf(result.Percentages), 0.5)
}

func TestEstimateSymmetry(t *testing.T) {
	e := New(handrank.New(), testConfig(1))
	board := deck.MustParseCards("2c7d8s")

	forward, err := e.Estimate(t.Context(), hands("AhKd", "KsQc", "QsJc"), board)
	require.NoError(t, err)
	reversed, err := e.Estimate(t.Context(), hands("QsJc", "KsQc", "AhKd"), board)
	require.NoError(t, err)

	// Win percentages travel with the hand, not the seat.
	assert.Equal(t, forward.Percentages[0], reversed.Percentages[2])
	assert.Equal(t, forward.Percentages[1], reversed.Percentages[1])
	assert.Equal(t, forward.Percentages[2], reversed.Percentages[0])
}

func TestEstimateThreeWayTie(t *testing.T) {
	e := New(handrank.New(), testConfig(1))

	// Everyone plays the wheel; identical ace-king hands split evenly.
	result, err := e.Estimate(t.Context(),
		hands("AhKd", "AsKh", "AcKs"),
		deck.MustParseCards("2h3d4s5c7d"))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Trials)
	for i := 1; i < 3; i++ {
		assert.InDelta(t, result.Percentages[0], result.Percentages[i], 1.0)
	}
	assert.InDelta(t, 100.0, sumOf(result.Percentages), 0.5)
}

func TestEstimatePreflopSumsToHundred(t *testing.T) {
	e := New(handrank.New(), testConfig(777))

	result, err := e.Estimate(t.Context(),
		hands("AsAc", "KsKc", "QsQc", "JsJc"), nil)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, sumOf(result.Percentages), 0.5)
	assert.Greater(t, result.Percentages[0], result.Percentages[3])
}

func TestResultLabels(t *testing.T) {
	result := Result{Percentages: []float64{81.94, 18.06}}

	labels := result.Labels()
	require.Len(t, labels, 2)
	assert.Equal(t, 81.94, labels["Player 1"])
	assert.Equal(t, 18.06, labels["Player 2"])
}
