// Package simulator runs batches of automated self-play games for
// policy evaluation.
package simulator

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/fivedraw/internal/game"
)

// Options configures a simulation batch.
type Options struct {
	Games         int
	Rounds        int // rounds per game
	Players       int
	StartingChips int
	Seed          int64
	Workers       int
	Logger        *log.Logger
}

// Result aggregates a finished batch.
type Result struct {
	Games       int
	Rounds      int
	WinsBySeat  []int // games won (most chips) per seat
	ChipsBySeat []int // final chips summed per seat
	Ties        int
}

// workerResult holds one worker's partial tallies.
type workerResult struct {
	games  int
	rounds int
	wins   []int
	chips  []int
	ties   int
}

// Run plays opts.Games automated games and aggregates who ended each
// game with the biggest stack. Games are independent, so they are
// spread over a worker pool; each worker gets its own seeded RNG.
func Run(opts Options) (*Result, error) {
	if opts.Games <= 0 {
		return nil, fmt.Errorf("simulator: games must be positive, got %d", opts.Games)
	}
	if opts.Players < 2 {
		return nil, fmt.Errorf("simulator: at least two players required, got %d", opts.Players)
	}
	if opts.Rounds <= 0 {
		opts.Rounds = 10
	}
	if opts.StartingChips <= 0 {
		opts.StartingChips = 1000
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.Games {
		workers = opts.Games
	}

	seedRng := rand.New(rand.NewSource(opts.Seed))
	perWorker := opts.Games / workers
	remainder := opts.Games % workers

	g, ctx := errgroup.WithContext(context.Background())
	results := make(chan workerResult, workers)

	for w := 0; w < workers; w++ {
		workerGames := perWorker
		if w < remainder {
			workerGames++
		}
		workerSeed := seedRng.Int63()

		g.Go(func() error {
			rng := rand.New(rand.NewSource(workerSeed))
			result, err := runWorker(workerGames, opts, rng)
			if err != nil {
				return err
			}
			select {
			case results <- result:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	var collectErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		collectErr = g.Wait()
		close(results)
	}()

	total := &Result{
		WinsBySeat:  make([]int, opts.Players),
		ChipsBySeat: make([]int, opts.Players),
	}
	for r := range results {
		total.Games += r.games
		total.Rounds += r.rounds
		total.Ties += r.ties
		for i := 0; i < opts.Players; i++ {
			total.WinsBySeat[i] += r.wins[i]
			total.ChipsBySeat[i] += r.chips[i]
		}
	}
	wg.Wait()
	if collectErr != nil {
		return nil, collectErr
	}

	opts.Logger.Info("simulation complete",
		"games", total.Games,
		"rounds", total.Rounds,
		"ties", total.Ties,
	)
	return total, nil
}

// runWorker plays the worker's share of games sequentially.
func runWorker(games int, opts Options, rng *rand.Rand) (workerResult, error) {
	result := workerResult{
		wins:  make([]int, opts.Players),
		chips: make([]int, opts.Players),
	}
	for i := 0; i < games; i++ {
		gm := game.New(game.Options{
			StartingChips: opts.StartingChips,
			Rand:          rng,
		})
		for _, name := range game.PickNames(rng, opts.Players) {
			gm.AddPlayer(name, false)
		}
		if err := gm.Run(opts.Rounds); err != nil {
			return result, fmt.Errorf("simulator: game %d: %w", i, err)
		}

		result.games++
		result.rounds += gm.Round()
		tallyWinner(&result, gm.Players())
	}
	return result, nil
}

// tallyWinner credits the seat with the biggest final stack, counting a
// shared maximum as a tie.
func tallyWinner(result *workerResult, players []*game.Player) {
	best, tied := 0, false
	for _, p := range players {
		result.chips[p.Seat] += p.Chips
		if p.Seat == 0 {
			continue
		}
		switch {
		case p.Chips > players[best].Chips:
			best, tied = p.Seat, false
		case p.Chips == players[best].Chips:
			tied = true
		}
	}
	if tied {
		result.ties++
		return
	}
	result.wins[best]++
}
