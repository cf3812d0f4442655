// Package display renders the game to a terminal and collects human
// input.
package display

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/fivedraw/internal/deck"
	"github.com/lox/fivedraw/internal/game"
	"github.com/lox/fivedraw/internal/hand"
	"github.com/lox/fivedraw/internal/phase"
)

// Styles contains styling for console output
type Styles struct {
	Header    lipgloss.Style
	Phase     lipgloss.Style
	Action    lipgloss.Style
	Winner    lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Pot       lipgloss.Style
	Prompt    lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles creates the default console styles
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		Phase: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Action: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		Pot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Console renders game events and prompts the human player. It
// implements both game.Observer and game.BetInput.
type Console struct {
	out    io.Writer
	in     *bufio.Reader
	styles *Styles
}

// NewConsole creates a console bound to the given streams.
func NewConsole(out io.Writer, in io.Reader) *Console {
	return &Console{
		out:    out,
		in:     bufio.NewReader(in),
		styles: NewStyles(),
	}
}

// FormatCard renders a card name, red suits colored.
func (c *Console) FormatCard(card deck.Card) string {
	name := card.String()
	switch card.Suit() {
	case deck.Hearts, deck.Diamonds:
		return c.styles.CardRed.Render(name)
	default:
		return c.styles.CardBlack.Render(name)
	}
}

// FormatHand renders a full hand on one line.
func (c *Console) FormatHand(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = c.FormatCard(card)
	}
	return strings.Join(parts, ", ")
}

// Banner prints the game header.
func (c *Console) Banner() {
	fmt.Fprintln(c.out, c.styles.Header.Render("Five Card Draw"))
}

// ShowPlayer prints one player's report line: name, chips and, when
// revealed, cards and ranking.
func (c *Console) ShowPlayer(p *game.Player, revealCards bool) {
	line := fmt.Sprintf("%s: %d chips", p.Name, p.Chips)
	if p.Folded {
		line += c.styles.Muted.Render(" (folded)")
	}
	fmt.Fprintln(c.out, line)
	if revealCards && len(p.Hand) == hand.HandSize {
		fmt.Fprintf(c.out, "  %s\n", c.FormatHand(p.Hand))
		fmt.Fprintf(c.out, "  %s\n", c.styles.Action.Render(hand.Describe(p.Category, p.Strength)))
	}
}

// HandleEvent renders game events as they arrive.
func (c *Console) HandleEvent(e game.Event) {
	switch ev := e.(type) {
	case game.PhaseChangedEvent:
		if ev.To == phase.RoundStart || ev.To == phase.CardExchange || ev.To == phase.FinalBetting {
			fmt.Fprintln(c.out, c.styles.Phase.Render(fmt.Sprintf("*** %s ***", strings.ToUpper(ev.To.String()))))
		}
	case game.BetPlacedEvent:
		switch ev.Action {
		case game.Fold, game.Check:
			fmt.Fprintln(c.out, c.styles.Action.Render(fmt.Sprintf("%s %ss", ev.Name, ev.Action)))
		default:
			fmt.Fprintln(c.out, c.styles.Action.Render(fmt.Sprintf("%s %ss %d", ev.Name, ev.Action, ev.Amount)))
		}
		fmt.Fprintf(c.out, "  %s\n", c.styles.Pot.Render(fmt.Sprintf("pot: %d", ev.Pot)))
	case game.CardsExchangedEvent:
		fmt.Fprintf(c.out, "%s exchanges %d card(s)\n", ev.Name, ev.Count)
	case game.PotAwardedEvent:
		fmt.Fprintln(c.out, c.styles.Winner.Render(fmt.Sprintf("%s wins %d chips", ev.Name, ev.Amount)))
	case game.RoundEndedEvent:
		fmt.Fprintln(c.out, c.styles.Muted.Render(fmt.Sprintf("--- end of round %d ---", ev.Round)))
	}
}

// RequestBet prompts for a chip amount. Unparseable input counts as
// zero, which folds when there is a bet to call.
func (c *Console) RequestBet(p *game.Player, view game.RoundView) int {
	fmt.Fprintf(c.out, "Your hand: %s\n", c.FormatHand(p.Hand))
	fmt.Fprintf(c.out, "  %s\n", c.styles.Action.Render(hand.Describe(p.Category, p.Strength)))
	fmt.Fprintf(c.out, "Pot %d, to call %d, you have %d chips.\n", view.Pot, view.CallAmount, p.Chips)
	fmt.Fprint(c.out, c.styles.Prompt.Render(fmt.Sprintf("Bet amount (%d to call, less folds): ", view.CallAmount)))

	line, err := c.in.ReadString('\n')
	if err != nil {
		return 0
	}
	amount, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0
	}
	return amount
}

// RequestExchange prompts for the card positions to discard, entered as
// space-separated numbers starting at 1. Anything unparseable is
// skipped.
func (c *Console) RequestExchange(p *game.Player, view game.RoundView) []int {
	fmt.Fprintf(c.out, "Your hand: %s\n", c.FormatHand(p.Hand))
	fmt.Fprint(c.out, c.styles.Prompt.Render("Cards to exchange (e.g. \"1 3 5\", empty keeps all): "))

	line, err := c.in.ReadString('\n')
	if err != nil {
		return nil
	}
	var picks []int
	for _, field := range strings.Fields(line) {
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		picks = append(picks, n-1)
	}
	return picks
}
