// Package config loads game configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete game configuration
type Config struct {
	Rules   RulesConfig    `hcl:"rules,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// RulesConfig contains the table rules
type RulesConfig struct {
	StartingChips   int    `hcl:"starting_chips,optional"`
	MaxPlayers      int    `hcl:"max_players,optional"`
	RaiseUnit       int    `hcl:"raise_unit,optional"`
	ThresholdWeak   int    `hcl:"threshold_weak,optional"`
	ThresholdStrong int    `hcl:"threshold_strong,optional"`
	TopUp           bool   `hcl:"top_up,optional"`
	LogLevel        string `hcl:"log_level,optional"`
}

// PlayerConfig defines one seat at the table
type PlayerConfig struct {
	Name      string `hcl:"name,label"`
	Automated bool   `hcl:"automated,optional"`
}

// Default returns the stock configuration: one human seat against three
// automated opponents.
func Default() *Config {
	return &Config{
		Rules: RulesConfig{
			StartingChips:   1000,
			MaxPlayers:      4,
			RaiseUnit:       20,
			ThresholdWeak:   18,
			ThresholdStrong: 55,
			LogLevel:        "info",
		},
	}
}

// Load reads configuration from an HCL file, falling back to Default
// when the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default().Rules
	if config.Rules.StartingChips == 0 {
		config.Rules.StartingChips = defaults.StartingChips
	}
	if config.Rules.MaxPlayers == 0 {
		config.Rules.MaxPlayers = defaults.MaxPlayers
	}
	if config.Rules.RaiseUnit == 0 {
		config.Rules.RaiseUnit = defaults.RaiseUnit
	}
	if config.Rules.ThresholdWeak == 0 {
		config.Rules.ThresholdWeak = defaults.ThresholdWeak
	}
	if config.Rules.ThresholdStrong == 0 {
		config.Rules.ThresholdStrong = defaults.ThresholdStrong
	}
	if config.Rules.LogLevel == "" {
		config.Rules.LogLevel = defaults.LogLevel
	}

	return &config, nil
}

// Validate checks the configuration for playable values.
func (c *Config) Validate() error {
	if c.Rules.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be positive, got %d", c.Rules.StartingChips)
	}
	// Five seats is the most a 52-card deck can cover when every player
	// deals and fully exchanges a five-card hand.
	if c.Rules.MaxPlayers < 2 || c.Rules.MaxPlayers > 5 {
		return fmt.Errorf("max players must be between 2 and 5, got %d", c.Rules.MaxPlayers)
	}
	if c.Rules.RaiseUnit <= 0 {
		return fmt.Errorf("raise unit must be positive, got %d", c.Rules.RaiseUnit)
	}
	if c.Rules.ThresholdWeak >= c.Rules.ThresholdStrong {
		return fmt.Errorf("weak threshold %d must be below strong threshold %d",
			c.Rules.ThresholdWeak, c.Rules.ThresholdStrong)
	}
	if len(c.Players) > c.Rules.MaxPlayers {
		return fmt.Errorf("%d players configured but max is %d", len(c.Players), c.Rules.MaxPlayers)
	}
	seen := map[string]bool{}
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("player name cannot be empty")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate player name %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}
