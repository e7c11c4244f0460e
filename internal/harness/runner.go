package harness

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/equity"
)

// DefaultTolerance is the largest per-player difference, in percentage
// points, a case may show and still pass.
const DefaultTolerance = 1.0

// Runner replays recorded cases through an equity engine.
type Runner struct {
	engine    *equity.Engine
	clock     quartz.Clock
	logger    *log.Logger
	tolerance float64
}

// NewRunner builds a runner around engine. A nil clock uses the real
// clock and a nil logger discards output.
func NewRunner(engine *equity.Engine, clock quartz.Clock, logger *log.Logger) *Runner {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		engine:    engine,
		clock:     clock,
		logger:    logger,
		tolerance: DefaultTolerance,
	}
}

// Run evaluates every case in order and returns one result per case.
// A case that fails to parse or evaluate aborts the run.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]CaseResult, error) {
	results := make([]CaseResult, 0, len(cases))
	for i, c := range cases {
		result, err := r.runCase(ctx, i+1, c)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
		r.logger.Info("case finished",
			"case", result.Case,
			"players", result.NumPlayers,
			"passed", result.Passed,
			"elapsed", fmt.Sprintf("%.2fs", result.ExecutionSeconds))
		results = append(results, result)
	}
	return results, nil
}

func (r *Runner) runCase(ctx context.Context, num int, c Case) (CaseResult, error) {
	hands := make([][]deck.Card, len(c.HoleCards))
	for i, hole := range c.HoleCards {
		cards, err := deck.ParseCards(strings.Join(hole, ""))
		if err != nil {
			return CaseResult{}, fmt.Errorf("hole cards for player %d: %w", i+1, err)
		}
		hands[i] = cards
	}
	board, err := deck.ParseCards(strings.Join(c.CommunityCards, ""))
	if err != nil {
		return CaseResult{}, fmt.Errorf("community cards: %w", err)
	}

	start := r.clock.Now()
	outcome, err := r.engine.Estimate(ctx, hands, board)
	if err != nil {
		return CaseResult{}, err
	}
	elapsed := r.clock.Now().Sub(start)

	calculated := outcome.Labels()
	differences := make(map[string]float64, len(calculated))
	passed := true
	for label, got := range calculated {
		diff := math.Abs(got - c.CollectedWinRates[label])
		differences[label] = diff
		if diff > r.tolerance {
			passed = false
		}
	}

	return CaseResult{
		Case:             num,
		NumPlayers:       c.NumPlayers,
		HoleCards:        c.HoleCards,
		CommunityCards:   c.CommunityCards,
		Expected:         c.CollectedWinRates,
		Calculated:       calculated,
		Differences:      differences,
		ExecutionSeconds: elapsed.Seconds(),
		Passed:           passed,
	}, nil
}

// RunFile loads cases from casesPath, runs them, and writes a JSON
// report to resultsPath. It returns the pass count and the case count.
func (r *Runner) RunFile(ctx context.Context, casesPath, resultsPath string) (passed, total int, err error) {
	cases, err := LoadCases(casesPath)
	if err != nil {
		return 0, 0, err
	}

	results, err := r.Run(ctx, cases)
	if err != nil {
		return 0, 0, err
	}

	for _, result := range results {
		if result.Passed {
			passed++
		}
	}

	if resultsPath != "" {
		report := Report{Passed: passed, Total: len(results), Results: results}
		if err := SaveReport(resultsPath, report); err != nil {
			return passed, len(results), err
		}
	}
	return passed, len(results), nil
}
