package hand

import (
	"math/rand"
	"testing"

	"github.com/lox/fivedraw/internal/deck"
)

func mustHand(t *testing.T, s string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseHand(s)
	if err != nil {
		t.Fatalf("parse hand %q: %v", s, err)
	}
	return cards
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name     string
		hand     string
		category Category
		strength Strength
	}{
		// The rank cycle runs Ace(1) down to Two(13), so a run crossing
		// the Two->Ace boundary is the ace-high form.
		{"royal flush at the wrap", "As Ks Qs Js 2s", RoyalFlush, 100},
		{"royal flush wheel form", "As 5s 4s 3s 2s", RoyalFlush, 100},
		{"straight flush", "6s 5s 4s 3s 2s", StraightFlush, 99},
		{"broadway is a plain straight flush", "As Ks Qs Js Ts", StraightFlush, 99},
		{"four aces", "As Ah Ad Ac Ks", FourOfAKind, 97},
		{"four twos", "2s 2h 2d 2c Ks", FourOfAKind, 86},
		{"full house tens over kings", "Ts Th Td Ks Kh", FullHouse, 78},
		{"flush", "As Ks Qs Js 9s", Flush, 65},
		{"ace high straight", "Ah 5s 4d 3c 2h", AceHighStraight, 60},
		{"wrap straight", "Qs Kh Ad 2c 3h", AceHighStraight, 60},
		{"six high straight", "6h 5s 4d 3c 2h", Straight, 55},
		{"broadway offsuit", "Ah Ks Qd Jc Th", Straight, 55},
		{"three tens", "Ts Th Td Ks Qh", ThreeOfAKind, 48},
		{"two pair kings up", "Ts Th Ks Kh 2d", TwoPair, 36},
		{"two pair threes and twos", "3s 3h 2s 2h Kd", TwoPair, 26},
		{"pair of aces", "As Ah Ks Qd Jc", Pair, 25},
		{"pair of twos", "2s 2h 5d 7c 9h", Pair, 14},
		{"ace high", "As Kh Qd Jc 9h", HighCard, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, strength := Evaluate(mustHand(t, tt.hand))
			if category != tt.category {
				t.Errorf("category = %v, want %v", category, tt.category)
			}
			if strength != tt.strength {
				t.Errorf("strength = %d, want %d", strength, tt.strength)
			}
		})
	}
}

func TestEvaluateCategoryOrdering(t *testing.T) {
	// One hand per category, weakest representative each time. Bands
	// must never overlap, so even the weakest member of a category beats
	// the strongest member of the one below.
	ascending := []string{
		"As Kh Qd Jc 9h", // high card, the strongest one
		"2s 2h 5d 7c 9h", // weakest pair
		"3s 3h 2s 2h Kd", // weakest two pair
		"2s 2h 2d 7c 9h", // weakest trips
		"6h 5s 4d 3c 2h", // straight
		"Ah 5s 4d 3c 2h", // ace high straight
		"As Ks Qs Js 9s", // flush
		"2s 2h 2d 3c 3h", // weakest full house
		"2s 2h 2d 2c 9h", // weakest quads
		"6s 5s 4s 3s 2s", // straight flush
		"As Ks Qs Js 2s", // royal flush
	}
	prev := Strength(-1)
	for _, s := range ascending {
		_, strength := Evaluate(mustHand(t, s))
		if strength <= prev {
			t.Errorf("hand %q: strength %d not above previous %d", s, strength, prev)
		}
		prev = strength
	}
}

func TestEvaluateOrderIndependent(t *testing.T) {
	cards := mustHand(t, "Ts Th Td Ks Kh")
	wantCategory, wantStrength := Evaluate(cards)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		shuffled := make([]deck.Card, len(cards))
		copy(shuffled, cards)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		category, strength := Evaluate(shuffled)
		if category != wantCategory || strength != wantStrength {
			t.Fatalf("permutation %d: got %v/%d, want %v/%d",
				i, category, strength, wantCategory, wantStrength)
		}
	}
}

func TestEvaluateNonStraights(t *testing.T) {
	tests := []struct {
		name string
		hand string
	}{
		{"gap in the middle", "As Kh Qd Jc 9h"},
		{"near wrap with a hole", "As Kh Qd 4c 2h"},
		{"spread ranks", "2s 4h 6d 8c Th"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, _ := Evaluate(mustHand(t, tt.hand))
			switch category {
			case Straight, AceHighStraight, StraightFlush, RoyalFlush:
				t.Errorf("category = %v, want no straight", category)
			}
		})
	}
}

func TestEvaluatePanicsOnShortHand(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for short hand")
		}
	}()
	Evaluate(mustHand(t, "As Kh"))
}

func TestEvaluatePanicsOnEmptySlot(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unresolved slot")
		}
	}()
	cards := mustHand(t, "As Kh Qd Jc 9h")
	cards[2] = deck.NoCard
	Evaluate(cards)
}

func TestOccurrences(t *testing.T) {
	if got := Occurrences(nil, deck.Ace); got != 0 {
		t.Errorf("occurrences in empty hand = %d, want 0", got)
	}
	cards := mustHand(t, "Ts Th Td Ks Kh")
	if got := Occurrences(cards, deck.Ten); got != 3 {
		t.Errorf("tens = %d, want 3", got)
	}
	if got := Occurrences(cards, deck.Ace); got != 0 {
		t.Errorf("aces = %d, want 0", got)
	}
}

func TestMultiplesOrdering(t *testing.T) {
	cards := mustHand(t, "Ts Th Td Ks Kh")
	multiples := Multiples(cards)
	want := []Multiple{
		{Rank: deck.Ten, Count: 3},
		{Rank: deck.King, Count: 2},
	}
	if len(multiples) != len(want) {
		t.Fatalf("got %d multiples, want %d", len(multiples), len(want))
	}
	for i := range want {
		if multiples[i] != want[i] {
			t.Errorf("multiple %d = %+v, want %+v", i, multiples[i], want[i])
		}
	}
}

func TestMultiplesTiedCountsFavorStrongerRank(t *testing.T) {
	cards := mustHand(t, "Ts Th Ks Kh 2d")
	multiples := Multiples(cards)
	if multiples[0].Rank != deck.King || multiples[0].Count != 2 {
		t.Errorf("leading multiple = %+v, want kings", multiples[0])
	}
}
