package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/fivedraw/internal/simulator"
)

// SimulateCmd runs a batch of automated self-play games.
type SimulateCmd struct {
	Games   int    `short:"g" help:"Number of games to play" default:"1000"`
	Rounds  int    `short:"r" help:"Rounds per game" default:"10"`
	Players int    `short:"p" help:"Players per table" default:"4"`
	Chips   int    `help:"Starting chips" default:"1000"`
	Seed    *int64 `help:"Random seed for reproducible results"`
	Workers int    `short:"w" help:"Worker goroutines (default: CPU count)"`
}

func (cmd *SimulateCmd) Run() error {
	var seed int64
	if cmd.Seed != nil {
		seed = *cmd.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "simulate",
	})

	start := time.Now()
	result, err := simulator.Run(simulator.Options{
		Games:         cmd.Games,
		Rounds:        cmd.Rounds,
		Players:       cmd.Players,
		StartingChips: cmd.Chips,
		Seed:          seed,
		Workers:       cmd.Workers,
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("%d games (%d rounds) in %s, seed %d\n\n",
		result.Games, result.Rounds, elapsed.Round(time.Millisecond), seed)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEAT\tWINS\tWIN %\tAVG CHIPS")
	for seat := 0; seat < cmd.Players; seat++ {
		fmt.Fprintf(w, "%d\t%d\t%.1f%%\t%.0f\n",
			seat,
			result.WinsBySeat[seat],
			100*float64(result.WinsBySeat[seat])/float64(result.Games),
			float64(result.ChipsBySeat[seat])/float64(result.Games),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nties: %d\n", result.Ties)
	return nil
}
