package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/fivedraw/internal/config"
	"github.com/lox/fivedraw/internal/display"
	"github.com/lox/fivedraw/internal/game"
	"github.com/lox/fivedraw/internal/hand"
	"github.com/lox/fivedraw/internal/history"
)

// PlayCmd runs an interactive game against automated opponents.
type PlayCmd struct {
	Config    string `short:"c" help:"Path to HCL config file" default:"fivedraw.hcl"`
	Name      string `short:"n" help:"Your player name" default:"You"`
	Opponents int    `short:"o" help:"Number of automated opponents" default:"3"`
	Rounds    int    `short:"r" help:"Maximum number of rounds" default:"10"`
	Chips     int    `help:"Starting chips (overrides config)"`
	Seed      *int64 `help:"Random seed for reproducible deals"`
	TopUp     bool   `help:"Re-enter busted players with fresh chips each round"`
	History   string `help:"Write round history to this file as JSON lines"`
}

func (cmd *PlayCmd) Run() error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	chips := cfg.Rules.StartingChips
	if cmd.Chips > 0 {
		chips = cmd.Chips
	}

	var seed int64
	if cmd.Seed != nil {
		seed = *cmd.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "fivedraw",
	})
	if level, err := log.ParseLevel(cfg.Rules.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	console := display.NewConsole(os.Stdout, os.Stdin)
	console.Banner()

	gm := game.New(game.Options{
		StartingChips: chips,
		Policy: game.Policy{
			ThresholdWeak:   hand.Strength(cfg.Rules.ThresholdWeak),
			ThresholdStrong: hand.Strength(cfg.Rules.ThresholdStrong),
			RaiseUnit:       cfg.Rules.RaiseUnit,
		},
		Input:  console,
		Logger: logger,
		Rand:   rng,
		TopUp:  cmd.TopUp || cfg.Rules.TopUp,
	})
	gm.Subscribe(console)

	var recorder *history.Recorder
	if cmd.History != "" {
		recorder = history.NewRecorder()
		gm.Subscribe(recorder)
	}

	if len(cfg.Players) > 0 {
		for _, p := range cfg.Players {
			gm.AddPlayer(p.Name, !p.Automated)
		}
	} else {
		gm.AddPlayer(cmd.Name, true)
		for _, name := range game.PickNames(rng, cmd.Opponents) {
			gm.AddPlayer(name, false)
		}
	}

	if err := gm.Run(cmd.Rounds); err != nil {
		return err
	}

	fmt.Println()
	for _, p := range gm.Players() {
		console.ShowPlayer(p, false)
	}

	if recorder != nil {
		if err := recorder.SaveToFile(cmd.History); err != nil {
			return err
		}
		logger.Info("history written", "path", cmd.History, "rounds", len(recorder.Rounds()))
	}
	return nil
}
