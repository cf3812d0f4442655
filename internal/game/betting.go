package game

import (
	"github.com/lox/fivedraw/internal/phase"
)

// RoundView is the read-only state handed to humans (via BetInput) and
// observers when a decision is needed.
type RoundView struct {
	Round      int
	Phase      phase.Phase
	Pot        int
	HighBet    int
	CallAmount int
}

// BetInput supplies human decisions. RequestBet returns the additional
// chips the player wants to commit; anything short of the call amount
// folds, anything above it raises. RequestExchange returns the hand
// indices to discard; invalid or duplicate indices are ignored.
type BetInput interface {
	RequestBet(p *Player, view RoundView) int
	RequestExchange(p *Player, view RoundView) []int
}

// view builds the player's current decision context.
func (g *Game) view(p *Player) RoundView {
	call := g.highBet - p.Bet
	if call < 0 {
		call = 0
	}
	if call > p.Chips {
		call = p.Chips
	}
	return RoundView{
		Round:      g.round,
		Phase:      g.phase,
		Pot:        g.pot,
		HighBet:    g.highBet,
		CallAmount: call,
	}
}

// activePlayers returns the players still able to act, in seat order.
func (g *Game) activePlayers() []*Player {
	var active []*Player
	for _, p := range g.players {
		if p.Active() {
			active = append(active, p)
		}
	}
	return active
}

// contenders returns the players still in the hand, all-in included.
func (g *Game) contenders() []*Player {
	var in []*Player
	for _, p := range g.players {
		if !p.Folded {
			in = append(in, p)
		}
	}
	return in
}

// bettingComplete reports whether the betting round can close: at most
// one contender remains, or every player still able to act has matched
// the high bet.
func (g *Game) bettingComplete() bool {
	if len(g.contenders()) <= 1 {
		return true
	}
	for _, p := range g.activePlayers() {
		if p.Bet != g.highBet {
			return false
		}
	}
	return true
}

// runBettingRound plays a full betting round: an opening pass where
// every active player acts once, then further passes until the round
// is complete. A raise lifts the high bet, so the completion check
// fails for everyone who has not yet answered it and the loop runs
// another pass.
func (g *Game) runBettingRound() error {
	if err := g.phase.AllowBetting(); err != nil {
		return err
	}
	g.runBettingPass(true)
	return g.finishBetting()
}

// finishBetting loops follow-up passes until the betting round closes.
// Only players short of the high bet act in these passes; matching it
// settles their action until someone raises again.
func (g *Game) finishBetting() error {
	if err := g.phase.AllowBetting(); err != nil {
		return err
	}
	for !g.bettingComplete() {
		g.runBettingPass(false)
	}
	return nil
}

// runBettingPass offers one decision to each active player in seat
// order. Players who fold or go all-in mid-pass are skipped for the
// rest of it; a raise takes effect immediately for later seats. The
// opening pass includes players already level with the high bet, so
// everyone can open, check or raise at least once.
func (g *Game) runBettingPass(everyone bool) {
	for _, p := range g.players {
		if !p.Active() {
			continue
		}
		if len(g.contenders()) <= 1 {
			return
		}
		if !everyone && p.Bet == g.highBet {
			continue
		}
		g.resolveBet(p, g.decide(p))
	}
}

// decide produces a decision for the player: humans through BetInput,
// automated players through the policy.
func (g *Game) decide(p *Player) Decision {
	if p.Human && g.input != nil {
		return g.humanDecision(p)
	}
	return g.policy.Decide(Context{
		Strength: p.Strength,
		Chips:    p.Chips,
		Bet:      p.Bet,
		HighBet:  g.highBet,
		Pot:      g.pot,
	})
}

// humanDecision converts a raw chip amount from BetInput into an
// action. Amounts are clamped to the stack; betting less than the call
// amount folds, matching it calls (or checks when nothing is owed), and
// exceeding it raises.
func (g *Game) humanDecision(p *Player) Decision {
	view := g.view(p)
	amount := g.input.RequestBet(p, view)
	if amount < 0 {
		amount = 0
	}
	if amount > p.Chips {
		amount = p.Chips
	}
	switch {
	case amount < view.CallAmount:
		return Decision{Action: Fold}
	case amount == 0:
		return Decision{Action: Check}
	case amount == view.CallAmount:
		return Decision{Action: Call, Amount: amount}
	default:
		return Decision{Action: Raise, Amount: amount}
	}
}

// resolveBet applies a decision to the table state and publishes it.
func (g *Game) resolveBet(p *Player, d Decision) {
	var committed int
	switch d.Action {
	case Fold:
		p.Fold()
	case Check:
		// nothing owed, nothing committed
	case Call, Raise:
		committed = p.PlaceBet(d.Amount)
		g.pot += committed
		if p.Bet > g.highBet {
			g.highBet = p.Bet
		}
	}

	g.log.Debug("bet resolved",
		"player", p.Name,
		"action", d.Action,
		"amount", committed,
		"pot", g.pot,
		"high_bet", g.highBet,
	)

	g.bus.Publish(BetPlacedEvent{
		BaseEvent: BaseEvent{Time: g.bus.Now()},
		Seat:      p.Seat,
		Name:      p.Name,
		Action:    d.Action,
		Amount:    committed,
		Pot:       g.pot,
	})
}

// collectBets closes a betting round: each player's committed bet is
// recorded and the high bet resets for the next round. The pot already
// holds the chips, accumulated as bets were placed.
func (g *Game) collectBets() {
	for _, p := range g.players {
		p.RecordBet()
	}
	g.highBet = 0
}
