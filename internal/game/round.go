package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/fivedraw/internal/deck"
	"github.com/lox/fivedraw/internal/hand"
	"github.com/lox/fivedraw/internal/phase"
)

// Returning-player top-up amounts, applied between rounds when the rule
// is enabled.
const (
	topUpBusted   = 200
	topUpSurvivor = 100
)

// Options configures a Game. Zero-value fields fall back to sensible
// defaults in New.
type Options struct {
	StartingChips int
	Policy        Policy
	Input         BetInput
	Clock         quartz.Clock
	Logger        *log.Logger
	Rand          *rand.Rand

	// TopUp re-enters busted players with fresh chips at the start of
	// each round and pays survivors a bonus. Off by default.
	TopUp bool
}

// Game owns the state of one table and drives the round protocol. It is
// not safe for concurrent use; all calls must come from one goroutine.
type Game struct {
	log    *log.Logger
	bus    *EventBus
	input  BetInput
	policy Policy
	rng    *rand.Rand

	startingChips int
	topUp         bool

	players    []*Player
	deck       *deck.Deck
	phase      phase.Phase
	round      int
	pot        int
	highBet    int
	totalChips int
}

// New creates a game in the Initialization phase.
func New(opts Options) *Game {
	if opts.StartingChips <= 0 {
		opts.StartingChips = 1000
	}
	if opts.Policy == (Policy{}) {
		opts.Policy = DefaultPolicy()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Game{
		log:           opts.Logger,
		bus:           NewEventBus(opts.Clock),
		input:         opts.Input,
		policy:        opts.Policy,
		rng:           opts.Rand,
		startingChips: opts.StartingChips,
		topUp:         opts.TopUp,
		phase:         phase.Initialization,
	}
}

// Subscribe registers an observer on the game's event bus.
func (g *Game) Subscribe(o Observer) {
	g.bus.Subscribe(o)
}

// AddPlayer seats a player with the starting stack. Players must be
// added before Setup.
func (g *Game) AddPlayer(name string, human bool) *Player {
	p := NewPlayer(len(g.players), name, human, g.startingChips)
	g.players = append(g.players, p)
	return p
}

// Players returns the seated players in seat order.
func (g *Game) Players() []*Player { return g.players }

// Phase returns the current protocol phase.
func (g *Game) Phase() phase.Phase { return g.phase }

// Round returns the number of the round in progress (1-based), or zero
// before the first round.
func (g *Game) Round() int { return g.round }

// Pot returns the chips currently in the pot.
func (g *Game) Pot() int { return g.pot }

// HighBet returns the bet active players must match in the current
// betting round.
func (g *Game) HighBet() int { return g.highBet }

// Setup validates the table and walks the one-time phases, leaving the
// game at RoundStart ready for the first round.
func (g *Game) Setup() error {
	if len(g.players) < 2 {
		return ErrInsufficientPlayers
	}
	// Worst case each player draws a full hand twice (deal plus a
	// complete exchange); the deck must cover it so a round can never
	// exhaust the deck mid-exchange.
	if len(g.players)*hand.HandSize*2 > deck.Size {
		return ErrTooManyPlayers
	}
	g.totalChips = 0
	for _, p := range g.players {
		g.totalChips += p.Chips
	}
	g.log.Info("game set up", "players", len(g.players), "chips", g.startingChips)

	g.setPhase(phase.PlayerSetup)
	g.setPhase(phase.DeckCreation)
	g.setPhase(phase.RoundStart)
	return nil
}

// PlayRound drives one complete round: deal, evaluate, bet, exchange,
// re-evaluate, final betting, winner determination, pot distribution.
// The game must be at RoundStart; it finishes at RoundEnd.
func (g *Game) PlayRound() error {
	if g.phase == phase.GameEnd {
		return ErrGameOver
	}
	if g.phase != phase.RoundStart {
		return fmt.Errorf("%w: round start during %s", phase.ErrNotAllowed, g.phase)
	}
	if err := g.startRound(); err != nil {
		return err
	}

	g.setPhase(phase.HandDealing)
	if err := g.dealHands(); err != nil {
		return err
	}

	g.setPhase(phase.HandEvaluation)
	g.evaluateHands()

	g.setPhase(phase.BettingRound)
	if err := g.phase.AllowBetting(); err != nil {
		return err
	}
	g.runBettingPass(true)

	g.setPhase(phase.PlayerActions)
	if err := g.finishBetting(); err != nil {
		return err
	}

	g.setPhase(phase.PotManagement)
	g.collectBets()

	g.setPhase(phase.CardExchange)
	if err := g.runExchange(); err != nil {
		return err
	}

	g.setPhase(phase.HandReevaluation)
	g.evaluateHands()

	g.setPhase(phase.FinalBetting)
	if err := g.runBettingRound(); err != nil {
		return err
	}
	g.collectBets()

	g.setPhase(phase.WinnerDetermination)
	winners := g.determineWinners()

	g.setPhase(phase.PotDistribution)
	if err := g.distributePot(winners); err != nil {
		return err
	}

	g.setPhase(phase.RoundEnd)
	g.publishRoundEnd(winners)
	return nil
}

// Advance resolves the RoundEnd progression decision: continue into
// another round or end the game.
func (g *Game) Advance(continueGame bool) phase.Phase {
	g.setPhase(phase.Advance(g.phase, continueGame))
	return g.phase
}

// Playable reports whether another round can be funded: at least two
// players holding chips (any table under the top-up rule can always
// continue).
func (g *Game) Playable() bool {
	if len(g.players) < 2 {
		return false
	}
	if g.topUp {
		return true
	}
	funded := 0
	for _, p := range g.players {
		if p.Chips > 0 {
			funded++
		}
	}
	return funded >= 2
}

// Run plays up to maxRounds rounds, stopping early when the table can
// no longer fund a round.
func (g *Game) Run(maxRounds int) error {
	if err := g.Setup(); err != nil {
		return err
	}
	for i := 0; i < maxRounds; i++ {
		if err := g.PlayRound(); err != nil {
			return err
		}
		cont := i+1 < maxRounds && g.Playable()
		if g.Advance(cont) == phase.GameEnd {
			break
		}
	}
	return nil
}

func (g *Game) setPhase(next phase.Phase) {
	if next == g.phase {
		return
	}
	from := g.phase
	g.phase = next
	g.log.Debug("phase changed", "from", from, "to", next)
	g.bus.Publish(PhaseChangedEvent{
		BaseEvent: BaseEvent{Time: g.bus.Now()},
		From:      from,
		To:        next,
	})
}

// startRound resets per-round state, applies the top-up rule and builds
// a fresh deck.
func (g *Game) startRound() error {
	g.round++
	g.pot = 0
	g.highBet = 0
	for _, p := range g.players {
		p.ResetForRound()
		if g.topUp && g.round > 1 {
			if p.Chips == 0 {
				p.Chips = topUpBusted
				g.totalChips += topUpBusted
			} else {
				p.Chips += topUpSurvivor
				g.totalChips += topUpSurvivor
			}
		}
		// Busted players sit the round out.
		if p.Chips == 0 {
			p.Fold()
		}
	}
	if len(g.contenders()) < 2 {
		return ErrInsufficientPlayers
	}
	g.deck = deck.New(g.rng)
	g.log.Info("round started", "round", g.round)
	return nil
}

func (g *Game) dealHands() error {
	for _, p := range g.players {
		if p.Folded {
			continue
		}
		cards, err := g.deck.DrawHand(hand.HandSize)
		if err != nil {
			return err
		}
		p.Hand = cards
		g.bus.Publish(HandDealtEvent{
			BaseEvent: BaseEvent{Time: g.bus.Now()},
			Seat:      p.Seat,
			Name:      p.Name,
			Cards:     cards,
		})
	}
	return nil
}

func (g *Game) evaluateHands() {
	for _, p := range g.contenders() {
		p.Evaluate()
		g.bus.Publish(HandRankedEvent{
			BaseEvent: BaseEvent{Time: g.bus.Now()},
			Seat:      p.Seat,
			Name:      p.Name,
			Category:  p.Category,
			Strength:  p.Strength,
		})
	}
}

// runExchange lets each contender swap cards: humans pick indices
// through BetInput, automated players follow the discard heuristic.
// Invalid and duplicate indices are ignored.
func (g *Game) runExchange() error {
	if err := g.phase.AllowExchange(); err != nil {
		return err
	}
	for _, p := range g.contenders() {
		var picks []int
		if p.Human && g.input != nil {
			picks = g.input.RequestExchange(p, g.view(p))
		} else {
			picks = autoDiscards(p)
		}
		n, err := g.exchange(p, picks)
		if err != nil {
			return err
		}
		if n > 0 {
			g.bus.Publish(CardsExchangedEvent{
				BaseEvent: BaseEvent{Time: g.bus.Now()},
				Seat:      p.Seat,
				Name:      p.Name,
				Count:     n,
			})
		}
	}
	return nil
}

// exchange replaces the hand slots at the given indices with fresh
// draws and returns how many cards were swapped. The hand is always a
// full five cards afterwards.
func (g *Game) exchange(p *Player, picks []int) (int, error) {
	seen := map[int]bool{}
	n := 0
	for _, i := range picks {
		if i < 0 || i >= len(p.Hand) || seen[i] {
			continue
		}
		seen[i] = true
		c, err := g.deck.Draw()
		if err != nil {
			return n, err
		}
		p.Hand[i] = c
		n++
	}
	return n, nil
}

// autoDiscards picks the indices an automated player throws away: with
// a straight or better, nothing; otherwise everything outside the
// paired ranks, keeping the single strongest card when no pair exists.
func autoDiscards(p *Player) []int {
	if p.Category >= hand.Straight {
		return nil
	}
	keep := map[deck.Rank]bool{}
	for _, m := range hand.Multiples(p.Hand) {
		if m.Count >= 2 {
			keep[m.Rank] = true
		}
	}
	var picks []int
	if len(keep) > 0 {
		for i, c := range p.Hand {
			if !keep[c.Rank()] {
				picks = append(picks, i)
			}
		}
		return picks
	}
	// No pair: keep the best card, rank 1 being the strongest.
	best := 0
	for i, c := range p.Hand {
		if c.Rank().Beats(p.Hand[best].Rank()) {
			best = i
		}
	}
	for i := range p.Hand {
		if i != best {
			picks = append(picks, i)
		}
	}
	return picks
}

// determineWinners returns the unfolded players holding the maximum
// strength, in seat order. More than one entry means a tie.
func (g *Game) determineWinners() []*Player {
	var winners []*Player
	best := hand.Strength(-1)
	for _, p := range g.contenders() {
		switch {
		case p.Strength > best:
			best = p.Strength
			winners = []*Player{p}
		case p.Strength == best:
			winners = append(winners, p)
		}
	}
	return winners
}

// distributePot splits the pot evenly among the winners, giving the
// remainder chips to the earliest seats, and verifies that no chips
// were created or destroyed.
func (g *Game) distributePot(winners []*Player) error {
	if len(winners) == 0 {
		return fmt.Errorf("game: no winners for pot of %d", g.pot)
	}
	share := g.pot / len(winners)
	remainder := g.pot % len(winners)
	for i, p := range winners {
		amount := share
		if i < remainder {
			amount++
		}
		p.AwardChips(amount)
		g.log.Info("pot awarded", "player", p.Name, "amount", amount)
		g.bus.Publish(PotAwardedEvent{
			BaseEvent: BaseEvent{Time: g.bus.Now()},
			Seat:      p.Seat,
			Name:      p.Name,
			Amount:    amount,
		})
	}
	g.pot = 0

	total := 0
	for _, p := range g.players {
		total += p.Chips
	}
	if total != g.totalChips {
		return fmt.Errorf("game: chip conservation violated: have %d, want %d", total, g.totalChips)
	}
	return nil
}

func (g *Game) publishRoundEnd(winners []*Player) {
	seats := make([]int, len(winners))
	for i, p := range winners {
		seats[i] = p.Seat
	}
	chips := make(map[string]int, len(g.players))
	for _, p := range g.players {
		chips[p.Name] = p.Chips
	}
	g.bus.Publish(RoundEndedEvent{
		BaseEvent: BaseEvent{Time: g.bus.Now()},
		Round:     g.round,
		Winners:   seats,
		Chips:     chips,
	})
}
