package game

import (
	"github.com/lox/fivedraw/internal/hand"
)

// Policy holds the tunable constants of the automated player. The
// decision function is deliberately simple: it provides plausible
// opposition, not optimal play.
type Policy struct {
	ThresholdWeak   hand.Strength // below this the hand is weak
	ThresholdStrong hand.Strength // above this the hand is strong
	RaiseUnit       int
}

// DefaultPolicy returns the stock automated player tuning. A weak hand
// is anything below the pair band; a strong hand beats an ordinary
// straight.
func DefaultPolicy() Policy {
	return Policy{
		ThresholdWeak:   18,
		ThresholdStrong: 55,
		RaiseUnit:       20,
	}
}

// Context is the information an automated player decides from.
type Context struct {
	Strength hand.Strength
	Chips    int
	Bet      int // already committed this betting round
	HighBet  int
	Pot      int
}

// CallAmount returns the chips needed to match the high bet, capped at
// the remaining stack.
func (c Context) CallAmount() int {
	call := c.HighBet - c.Bet
	if call < 0 {
		call = 0
	}
	if call > c.Chips {
		call = c.Chips
	}
	return call
}

// Decide maps a betting context to an action. It is a pure function:
// the same context always produces the same decision.
//
// Rules, first match wins: fold a weak hand facing a significant bet;
// raise a strong hand when not already heavily committed; call (or
// check, when nothing is owed) any reasonable bet; otherwise call if
// affordable, else fold.
func (p Policy) Decide(ctx Context) Decision {
	call := ctx.CallAmount()

	var ratio float64
	if ctx.Chips > 0 {
		ratio = float64(call) / float64(ctx.Chips)
	}

	strong := ctx.Strength > p.ThresholdStrong
	weak := ctx.Strength < p.ThresholdWeak
	significant := ratio > 0.3
	reasonable := ratio <= 0.5
	canRaise := ctx.Chips >= call+p.RaiseUnit

	switch {
	case weak && significant:
		return Decision{Action: Fold}
	case strong && canRaise && !significant:
		return Decision{Action: Raise, Amount: call + p.raiseSize(ctx.Chips)}
	case call == 0:
		return Decision{Action: Check}
	case reasonable:
		return Decision{Action: Call, Amount: call}
	case call <= ctx.Chips:
		return Decision{Action: Call, Amount: call}
	default:
		return Decision{Action: Fold}
	}
}

// raiseSize is the amount added on top of a call: the fixed unit,
// shrunk for short stacks.
func (p Policy) raiseSize(chips int) int {
	size := p.RaiseUnit
	if quarter := chips / 4; quarter < size {
		size = quarter
	}
	return size
}
