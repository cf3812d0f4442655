// Package hand ranks five-card draw hands.
//
// A hand maps to one of eleven categories and a single integer strength
// used for winner comparison. Ranks follow the card encoding in the deck
// package: 1 is the Ace (strongest) down to 13, the Two. Straights are
// runs of five distinct ranks contiguous on the 13-rank cycle; a run
// that crosses the 13->1 boundary holds the Ace at the wrap and is the
// stronger AceHighStraight, which combined with a flush makes the royal.
package hand

import (
	"fmt"
	"sort"

	"github.com/lox/fivedraw/internal/deck"
)

// HandSize is the fixed number of cards in a draw-poker hand.
const HandSize = 5

// Evaluate classifies a fully-resolved five-card hand and computes its
// comparable strength. It is a pure function: identical cards in any
// order produce the same result. The caller must supply exactly five
// live cards; a partial hand (mid-exchange) is a programming error.
func Evaluate(cards []deck.Card) (Category, Strength) {
	if len(cards) != HandSize {
		panic(fmt.Sprintf("hand: evaluate requires %d cards, got %d", HandSize, len(cards)))
	}
	for _, c := range cards {
		if !c.Valid() {
			panic(fmt.Sprintf("hand: evaluate on unresolved hand slot %d", c))
		}
	}

	multiples := Multiples(cards)
	straight, aceHigh := straightShape(cards)
	flush := isFlush(cards)

	top := multiples[0]
	pairCount := 0
	hasTrips := false
	for _, m := range multiples {
		switch m.Count {
		case 2:
			pairCount++
		case 3:
			hasTrips = true
		}
	}

	switch {
	case aceHigh && flush:
		return RoyalFlush, valueRoyalFlush
	case straight && flush:
		return StraightFlush, valueStraightFl
	case top.Count == 4:
		return FourOfAKind, baseFourOfAKind + tiebreak(top.Rank)
	case hasTrips && pairCount > 0:
		return FullHouse, baseFullHouse + tiebreak(top.Rank)
	case flush:
		return Flush, valueFlush
	case aceHigh:
		return AceHighStraight, valueAceStraight
	case straight:
		return Straight, valueStraight
	case top.Count == 3:
		return ThreeOfAKind, baseThreeOfAKind + tiebreak(top.Rank)
	case pairCount >= 2:
		return TwoPair, baseTwoPair + tiebreak(top.Rank)
	case top.Count == 2:
		return Pair, basePair + tiebreak(top.Rank)
	default:
		return HighCard, baseHighCard + tiebreak(top.Rank)
	}
}

// tiebreak maps a rank to a within-category bonus, clamped to stay
// inside the category band. Rank numbers are inverted (1 is best) so the
// Ace earns 12 and the Two clamps at 1.
func tiebreak(r deck.Rank) Strength {
	t := Strength(13 - r)
	if t < 1 {
		t = 1
	}
	return t
}

// straightShape reports whether the hand's ranks form a straight, and
// if so whether the run wraps the 13->1 boundary (the ace-high form).
func straightShape(cards []deck.Card) (straight, aceHigh bool) {
	ranks := make([]int, 0, len(cards))
	seen := map[int]bool{}
	for _, c := range cards {
		r := int(c.Rank())
		if seen[r] {
			return false, false
		}
		seen[r] = true
		ranks = append(ranks, r)
	}
	sort.Ints(ranks)

	if ranks[len(ranks)-1]-ranks[0] == len(ranks)-1 {
		return true, false
	}

	// Wrap form: the run passes 13->1, so the sorted ranks must span the
	// whole cycle with a single interior gap of 13-HandSize.
	if ranks[0] != 1 || ranks[len(ranks)-1] != 13 {
		return false, false
	}
	gaps := 0
	for i := 1; i < len(ranks); i++ {
		if d := ranks[i] - ranks[i-1]; d > 1 {
			gaps++
			if d != 13-len(ranks)+1 {
				return false, false
			}
		}
	}
	if gaps == 1 {
		return true, true
	}
	return false, false
}

func isFlush(cards []deck.Card) bool {
	suit := cards[0].Suit()
	for _, c := range cards[1:] {
		if c.Suit() != suit {
			return false
		}
	}
	return true
}

// Describe renders a category and strength for display, e.g. used by
// presentation layers after a hand is ranked.
func Describe(c Category, s Strength) string {
	return fmt.Sprintf("%s (%d)", c, s)
}
