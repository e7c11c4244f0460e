package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"

	"github.com/lox/holdem-equity/internal/harness"
)

// CasesCmd replays a file of recorded cases through the engine and
// reports how close the computed win rates come to the collected ones.
type CasesCmd struct {
	engineFlags

	Cases   string `arg:"" required:"" help:"JSON file of recorded cases"`
	Results string `short:"o" help:"Where to write the JSON results report" default:"results.json"`
}

var (
	passStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

func (c *CasesCmd) Run() error {
	logger := setupLogger(c.Verbose)

	engine, err := c.buildEngine(logger)
	if err != nil {
		return err
	}
	runner := harness.NewRunner(engine, quartz.NewReal(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	passed, total, err := runner.RunFile(ctx, c.Cases, c.Results)
	if err != nil {
		return err
	}

	style := passStyle
	if passed < total {
		style = failStyle
	}
	fmt.Printf("%s\n", style.Render(fmt.Sprintf("%d/%d cases passed", passed, total)))
	if c.Results != "" {
		fmt.Printf("results written to %s\n", c.Results)
	}

	if passed < total {
		return fmt.Errorf("%d of %d cases failed", total-passed, total)
	}
	return nil
}
