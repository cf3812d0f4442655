package game

import (
	"time"

	"github.com/coder/quartz"

	"github.com/lox/fivedraw/internal/deck"
	"github.com/lox/fivedraw/internal/hand"
	"github.com/lox/fivedraw/internal/phase"
)

// EventType identifies the kind of game event.
type EventType string

const (
	EventPhaseChanged   EventType = "phase_changed"
	EventHandDealt      EventType = "hand_dealt"
	EventHandRanked     EventType = "hand_ranked"
	EventBetPlaced      EventType = "bet_placed"
	EventCardsExchanged EventType = "cards_exchanged"
	EventPotAwarded     EventType = "pot_awarded"
	EventRoundEnded     EventType = "round_ended"
)

// Event is the common interface for all game events.
type Event interface {
	Type() EventType
	Timestamp() time.Time
}

// BaseEvent provides the shared timestamp.
type BaseEvent struct {
	Time time.Time
}

func (e BaseEvent) Timestamp() time.Time { return e.Time }

// PhaseChangedEvent fires on every phase transition.
type PhaseChangedEvent struct {
	BaseEvent
	From phase.Phase
	To   phase.Phase
}

func (e PhaseChangedEvent) Type() EventType { return EventPhaseChanged }

// HandDealtEvent fires once per player after the deal.
type HandDealtEvent struct {
	BaseEvent
	Seat  int
	Name  string
	Cards []deck.Card
}

func (e HandDealtEvent) Type() EventType { return EventHandDealt }

// HandRankedEvent fires when a player's hand is (re-)evaluated.
type HandRankedEvent struct {
	BaseEvent
	Seat     int
	Name     string
	Category hand.Category
	Strength hand.Strength
}

func (e HandRankedEvent) Type() EventType { return EventHandRanked }

// BetPlacedEvent fires for every resolved betting decision, folds
// included.
type BetPlacedEvent struct {
	BaseEvent
	Seat   int
	Name   string
	Action Action
	Amount int
	Pot    int
}

func (e BetPlacedEvent) Type() EventType { return EventBetPlaced }

// CardsExchangedEvent fires after a player swaps cards.
type CardsExchangedEvent struct {
	BaseEvent
	Seat  int
	Name  string
	Count int
}

func (e CardsExchangedEvent) Type() EventType { return EventCardsExchanged }

// PotAwardedEvent fires once per winner during pot distribution.
type PotAwardedEvent struct {
	BaseEvent
	Seat   int
	Name   string
	Amount int
}

func (e PotAwardedEvent) Type() EventType { return EventPotAwarded }

// RoundEndedEvent fires at the end of each round with the surviving
// stacks.
type RoundEndedEvent struct {
	BaseEvent
	Round   int
	Winners []int
	Chips   map[string]int
}

func (e RoundEndedEvent) Type() EventType { return EventRoundEnded }

// Observer receives game events. Handlers run synchronously on the
// engine goroutine and must not call back into the game.
type Observer interface {
	HandleEvent(Event)
}

// EventBus fans events out to observers. It is notify-only: observers
// cannot influence the engine through it.
type EventBus struct {
	clock     quartz.Clock
	observers []Observer
}

// NewEventBus creates a bus stamping events from the given clock.
func NewEventBus(clock quartz.Clock) *EventBus {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &EventBus{clock: clock}
}

// Subscribe registers an observer for all subsequent events.
func (b *EventBus) Subscribe(o Observer) {
	b.observers = append(b.observers, o)
}

// Publish delivers an event to every observer in subscription order.
func (b *EventBus) Publish(e Event) {
	for _, o := range b.observers {
		o.HandleEvent(e)
	}
}

// Now returns the bus clock's current time, used by the engine to stamp
// events at creation.
func (b *EventBus) Now() time.Time {
	return b.clock.Now()
}
