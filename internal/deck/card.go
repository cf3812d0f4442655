package deck

import "fmt"

// Card identifies a playing card as an integer in 1..52. The zero value
// (NoCard) marks an empty slot in a deck or hand.
type Card int

// NoCard is the sentinel for a drawn deck slot or a discarded hand slot.
const NoCard Card = 0

// Suit represents a card suit, derived from the card identifier.
type Suit int

const (
	Clubs Suit = iota
	Spades
	Hearts
	Diamonds
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	default:
		return "?"
	}
}

// Rank represents a card rank. Ranks are numbered 1..13 with 1 the
// strongest (Ace) down to 13 the weakest (Two), so comparisons on raw
// rank numbers are inverted: lower is better.
type Rank int

const (
	Ace Rank = iota + 1
	King
	Queen
	Jack
	Ten
	Nine
	Eight
	Seven
	Six
	Five
	Four
	Three
	Two
)

var rankNames = [...]string{
	"?", "Ace", "King", "Queen", "Jack", "Ten", "Nine", "Eight",
	"Seven", "Six", "Five", "Four", "Three", "Two",
}

// String returns the string representation of a rank
func (r Rank) String() string {
	if r < Ace || r > Two {
		return "?"
	}
	return rankNames[r]
}

// Beats returns true if r outranks other as a single card.
func (r Rank) Beats(other Rank) bool {
	return r < other
}

// Rank returns the card's rank, ceil(id/4).
func (c Card) Rank() Rank {
	r := int(c) / 4
	if int(c)%4 != 0 {
		r++
	}
	return Rank(r)
}

// Suit returns the card's suit, id mod 4.
func (c Card) Suit() Suit {
	return Suit(int(c) % 4)
}

// Valid reports whether the card is a live card identifier.
func (c Card) Valid() bool {
	return c >= 1 && c <= 52
}

// String returns the full display name (e.g. "Ace of Spades").
func (c Card) String() string {
	if !c.Valid() {
		return "No Card"
	}
	return fmt.Sprintf("%s of %s", c.Rank(), c.Suit())
}
