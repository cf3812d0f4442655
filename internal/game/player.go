package game

import (
	"github.com/lox/fivedraw/internal/deck"
	"github.com/lox/fivedraw/internal/hand"
)

// Player holds one seat's state. Chips persist across rounds; hand, bet
// and fold status reset every round.
type Player struct {
	Seat    int
	Name    string
	Human   bool
	Chips   int
	Hand    []deck.Card
	Bet     int // cumulative bet in the current betting round
	LastBet int
	Folded  bool

	Category hand.Category
	Strength hand.Strength
}

// NewPlayer creates a player with a starting stack.
func NewPlayer(seat int, name string, human bool, chips int) *Player {
	return &Player{Seat: seat, Name: name, Human: human, Chips: chips}
}

// Active reports whether the player can still act in this round.
func (p *Player) Active() bool {
	return !p.Folded && p.Chips > 0
}

// PlaceBet moves up to amount chips into the player's current bet,
// clamping negative requests to zero and capping at the remaining
// stack. It returns the chips actually committed.
func (p *Player) PlaceBet(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > p.Chips {
		amount = p.Chips
	}
	p.Chips -= amount
	p.Bet += amount
	return amount
}

// AwardChips adds winnings to the stack.
func (p *Player) AwardChips(amount int) {
	if amount > 0 {
		p.Chips += amount
	}
}

// Fold marks the player out for the remainder of the round.
func (p *Player) Fold() {
	p.Folded = true
}

// RecordBet closes out a betting round, remembering the amount wagered.
func (p *Player) RecordBet() {
	p.LastBet = p.Bet
	p.Bet = 0
}

// ResetForRound clears per-round state ahead of a new deal.
func (p *Player) ResetForRound() {
	p.Hand = nil
	p.Bet = 0
	p.LastBet = 0
	p.Folded = false
	p.Category = 0
	p.Strength = 0
}

// Evaluate ranks the player's current hand and caches the result.
func (p *Player) Evaluate() {
	p.Category, p.Strength = hand.Evaluate(p.Hand)
}
