package deck

import (
	"errors"
	"math/rand"
)

// ErrEmptyDeck is returned when drawing from an exhausted deck.
var ErrEmptyDeck = errors.New("deck: no cards remaining")

// Size is the number of cards in a standard deck.
const Size = 52

// Deck holds the 52 card identifiers for one round. Drawn slots are
// zeroed rather than removed so the backing array never resizes; a live
// card value appears at most once.
type Deck struct {
	cards [Size]Card
	rng   *rand.Rand
}

// New creates a full deck using the supplied random source for draws.
// The source is explicit so games and tests can be seeded.
func New(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	for i := range d.cards {
		d.cards[i] = Card(i + 1)
	}
	return d
}

// Remaining returns the number of undrawn cards.
func (d *Deck) Remaining() int {
	n := 0
	for _, c := range d.cards {
		if c != NoCard {
			n++
		}
	}
	return n
}

// Draw removes and returns a uniformly random remaining card.
func (d *Deck) Draw() (Card, error) {
	remaining := d.Remaining()
	if remaining == 0 {
		return NoCard, ErrEmptyDeck
	}
	nth := d.rng.Intn(remaining)
	for i, c := range d.cards {
		if c == NoCard {
			continue
		}
		if nth == 0 {
			d.cards[i] = NoCard
			return c, nil
		}
		nth--
	}
	return NoCard, ErrEmptyDeck
}

// DrawHand draws n cards.
func (d *Deck) DrawHand(n int) ([]Card, error) {
	hand := make([]Card, n)
	for i := range hand {
		c, err := d.Draw()
		if err != nil {
			return nil, err
		}
		hand[i] = c
	}
	return hand, nil
}
