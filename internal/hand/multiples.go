package hand

import (
	"sort"

	"github.com/lox/fivedraw/internal/deck"
)

// Multiple records how many cards of one rank a hand holds.
type Multiple struct {
	Rank  deck.Rank
	Count int
}

// Occurrences counts cards in the hand sharing the given rank. An empty
// hand yields 0; it is queried transiently while multiples are being
// extracted, before the hand is fully resolved.
func Occurrences(cards []deck.Card, r deck.Rank) int {
	n := 0
	for _, c := range cards {
		if c != deck.NoCard && c.Rank() == r {
			n++
		}
	}
	return n
}

// Multiples summarizes the hand's distinct ranks as (rank, count) pairs
// ordered by descending count, then by the stronger rank. The ordering
// is deterministic for a given hand regardless of card order, so the
// leading entry is always the dominant multiple (or the best single
// card when nothing repeats).
func Multiples(cards []deck.Card) []Multiple {
	var counts [14]int
	for _, c := range cards {
		if c != deck.NoCard {
			counts[c.Rank()]++
		}
	}

	multiples := make([]Multiple, 0, len(cards))
	for r := deck.Ace; r <= deck.Two; r++ {
		if counts[r] > 0 {
			multiples = append(multiples, Multiple{Rank: r, Count: counts[r]})
		}
	}

	sort.SliceStable(multiples, func(i, j int) bool {
		if multiples[i].Count != multiples[j].Count {
			return multiples[i].Count > multiples[j].Count
		}
		return multiples[i].Rank.Beats(multiples[j].Rank)
	})
	return multiples
}
