package deck

import (
	"fmt"
	"strings"
)

var parseRanks = map[byte]Rank{
	'a': Ace, 'k': King, 'q': Queen, 'j': Jack, 't': Ten,
	'9': Nine, '8': Eight, '7': Seven, '6': Six, '5': Five,
	'4': Four, '3': Three, '2': Two,
}

var parseSuits = map[byte]Suit{
	'c': Clubs, 's': Spades, 'h': Hearts, 'd': Diamonds,
}

// FromRankSuit builds the card identifier for a rank and suit.
func FromRankSuit(r Rank, s Suit) Card {
	return Card(4*int(r) - (4-int(s))%4)
}

// Parse reads a two-character card in shorthand notation, rank then
// suit ("As", "Td", "2c"). Case-insensitive.
func Parse(s string) (Card, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return NoCard, fmt.Errorf("deck: invalid card %q", s)
	}
	r, ok := parseRanks[s[0]]
	if !ok {
		return NoCard, fmt.Errorf("deck: invalid rank %q", s[0:1])
	}
	suit, ok := parseSuits[s[1]]
	if !ok {
		return NoCard, fmt.Errorf("deck: invalid suit %q", s[1:2])
	}
	return FromRankSuit(r, suit), nil
}

// ParseHand reads space-separated shorthand cards ("As Kd Qh Js Tc").
func ParseHand(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
