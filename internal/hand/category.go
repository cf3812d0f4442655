package hand

// Category classifies a five-card hand. Categories are mutually
// exclusive: Evaluate assigns the first match scanning from strongest
// to weakest.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	AceHighStraight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = [...]string{
	"High Card",
	"Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Ace High Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
}

// String returns the display name of the category
func (c Category) String() string {
	if c < HighCard || c > RoyalFlush {
		return "Unknown"
	}
	return categoryNames[c]
}

// Strength is a comparable score combining category and within-category
// ordering. Higher is better; the bands for distinct categories never
// overlap, so cross-category comparisons are always strict.
type Strength int

// Category base values. Multiple-based categories add a tiebreak term in
// 1..12 on top of the base; the straight and flush families are fixed
// constants, with equal-category ties resolved by the caller as ties.
const (
	baseHighCard     Strength = 0
	basePair         Strength = 13
	baseTwoPair      Strength = 25
	baseThreeOfAKind Strength = 40
	valueStraight    Strength = 55
	valueAceStraight Strength = 60
	valueFlush       Strength = 65
	baseFullHouse    Strength = 70
	baseFourOfAKind  Strength = 85
	valueStraightFl  Strength = 99
	valueRoyalFlush  Strength = 100
)
