package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-equity/internal/deck"
	"github.com/lox/holdem-equity/internal/equity"
)

// OddsCmd estimates showdown equity for a set of hands.
type OddsCmd struct {
	engineFlags

	Hands []string `arg:"" required:"" help:"Player hands in format 'AcKd' or 'Ac Kd' (quoted)"`
	Board string   `short:"b" help:"Community board cards (e.g. 'Td7s8h')"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	equityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func (c *OddsCmd) Run() error {
	logger := setupLogger(c.Verbose)

	hands, err := parseHands(c.Hands)
	if err != nil {
		return fmt.Errorf("parsing hands: %w", err)
	}

	var board []deck.Card
	if c.Board != "" {
		board, err = deck.ParseCards(strings.ReplaceAll(c.Board, " ", ""))
		if err != nil {
			return fmt.Errorf("parsing board: %w", err)
		}
	}

	engine, err := c.buildEngine(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	result, err := engine.Estimate(ctx, hands, board)
	if err != nil {
		return err
	}
	displayResult(hands, board, result, time.Since(start))
	return nil
}

func parseHands(handStrings []string) ([][]deck.Card, error) {
	hands := make([][]deck.Card, 0, len(handStrings))
	for i, handStr := range handStrings {
		handStr = strings.TrimSpace(handStr)
		cards, err := deck.ParseCards(strings.ReplaceAll(handStr, " ", ""))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(cards) != 2 {
			return nil, fmt.Errorf("hand %d: must contain exactly 2 cards, got %d", i+1, len(cards))
		}
		hands = append(hands, cards)
	}
	return hands, nil
}

func displayResult(hands [][]deck.Card, board []deck.Card, result equity.Result, duration time.Duration) {
	if len(board) > 0 {
		fmt.Printf("%s\n", headerStyle.Render("board"))
		fmt.Printf("%s\n\n", formatCards(board))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("player"),
		headerStyle.Render("hand"),
		headerStyle.Render("equity"))

	for i, hand := range hands {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			fmt.Sprintf("Player %d", i+1),
			handStyle.Render(formatCards(hand)),
			equityStyle.Render(fmt.Sprintf("%.2f%%", result.Percentages[i])))
	}
	w.Flush()

	mode := "monte carlo"
	if result.Exact {
		mode = "exact enumeration"
	}
	fmt.Printf("\n%s\n", footerStyle.Render(
		fmt.Sprintf("%d trials (%s) in %v", result.Trials, mode, duration.Truncate(time.Millisecond))))
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
