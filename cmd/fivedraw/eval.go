package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/fivedraw/internal/deck"
	"github.com/lox/fivedraw/internal/hand"
)

var (
	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	strengthStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

// EvalCmd ranks a hand given in shorthand notation.
type EvalCmd struct {
	Cards []string `arg:"" help:"Five cards in shorthand (e.g. As Kd Qh Js Tc)" required:""`
}

func (cmd *EvalCmd) Run() error {
	cards, err := deck.ParseHand(strings.Join(cmd.Cards, " "))
	if err != nil {
		return err
	}
	if len(cards) != hand.HandSize {
		return fmt.Errorf("expected %d cards, got %d", hand.HandSize, len(cards))
	}
	seen := map[deck.Card]bool{}
	for _, c := range cards {
		if seen[c] {
			return fmt.Errorf("duplicate card %s", c)
		}
		seen[c] = true
	}

	category, strength := hand.Evaluate(cards)

	for _, c := range cards {
		fmt.Println(c)
	}
	fmt.Printf("\n%s %s\n",
		categoryStyle.Render(category.String()),
		strengthStyle.Render(fmt.Sprintf("(strength %d)", strength)),
	)
	for _, m := range hand.Multiples(cards) {
		if m.Count >= 2 {
			fmt.Printf("  %d x %s\n", m.Count, m.Rank)
		}
	}
	return nil
}
