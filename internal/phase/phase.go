// Package phase defines the round protocol as a pure data table.
//
// Each phase carries four capability flags and one declared successor.
// The table contains no conditional logic: anything situational (such as
// whether to start another round at RoundEnd) is decided by the caller
// driving the protocol.
package phase

import (
	"errors"
	"fmt"
)

// ErrNotAllowed is the base error for actions rejected by the current
// phase's capability flags.
var ErrNotAllowed = errors.New("phase: action not allowed")

// Phase is one step of the round protocol.
type Phase int

const (
	Initialization Phase = iota
	PlayerSetup
	DeckCreation
	RoundStart
	HandDealing
	HandEvaluation
	BettingRound
	PlayerActions
	PotManagement
	CardExchange
	HandReevaluation
	FinalBetting
	WinnerDetermination
	PotDistribution
	RoundEnd
	GameEnd
)

// Count is the number of phases in the protocol.
const Count = 16

// Capabilities declares which player-facing actions a phase permits.
type Capabilities struct {
	ShowCards   bool
	Betting     bool
	Exchange    bool
	Progression bool
}

type info struct {
	name string
	caps Capabilities
	next Phase
}

// The successor of RoundEnd is declared as RoundStart; Advance resolves
// the external continue/quit decision.
var table = [Count]info{
	Initialization:      {"Initialization", Capabilities{}, PlayerSetup},
	PlayerSetup:         {"Player Setup", Capabilities{}, DeckCreation},
	DeckCreation:        {"Deck Creation", Capabilities{}, RoundStart},
	RoundStart:          {"Round Start", Capabilities{}, HandDealing},
	HandDealing:         {"Hand Dealing", Capabilities{}, HandEvaluation},
	HandEvaluation:      {"Hand Evaluation", Capabilities{ShowCards: true}, BettingRound},
	BettingRound:        {"Betting Round", Capabilities{ShowCards: true, Betting: true}, PlayerActions},
	PlayerActions:       {"Player Actions", Capabilities{ShowCards: true, Betting: true}, PotManagement},
	PotManagement:       {"Pot Management", Capabilities{ShowCards: true}, CardExchange},
	CardExchange:        {"Card Exchange", Capabilities{ShowCards: true, Exchange: true}, HandReevaluation},
	HandReevaluation:    {"Hand Re-evaluation", Capabilities{ShowCards: true}, FinalBetting},
	FinalBetting:        {"Final Betting", Capabilities{ShowCards: true, Betting: true}, WinnerDetermination},
	WinnerDetermination: {"Winner Determination", Capabilities{ShowCards: true}, PotDistribution},
	PotDistribution:     {"Pot Distribution", Capabilities{ShowCards: true}, RoundEnd},
	RoundEnd:            {"Round End", Capabilities{ShowCards: true, Progression: true}, RoundStart},
	GameEnd:             {"Game End", Capabilities{ShowCards: true}, GameEnd},
}

// String returns the phase display name
func (p Phase) String() string {
	if p < Initialization || p >= Count {
		return "Unknown"
	}
	return table[p].name
}

// Caps returns the phase's capability flags.
func (p Phase) Caps() Capabilities {
	return table[p].caps
}

// Next returns the declared successor. RoundEnd declares RoundStart;
// callers holding a quit decision use Advance instead. GameEnd is
// terminal and succeeds itself.
func (p Phase) Next() Phase {
	return table[p].next
}

// Advance resolves the successor including the one decision the table
// cannot hold: at RoundEnd, continueGame selects another round or the
// end of the game.
func Advance(p Phase, continueGame bool) Phase {
	if p == RoundEnd && !continueGame {
		return GameEnd
	}
	return p.Next()
}

// AllowBetting returns a rejected-action error unless the phase permits
// betting.
func (p Phase) AllowBetting() error {
	if !table[p].caps.Betting {
		return fmt.Errorf("%w: betting during %s", ErrNotAllowed, p)
	}
	return nil
}

// AllowExchange returns a rejected-action error unless the phase permits
// card exchange.
func (p Phase) AllowExchange() error {
	if !table[p].caps.Exchange {
		return fmt.Errorf("%w: card exchange during %s", ErrNotAllowed, p)
	}
	return nil
}
