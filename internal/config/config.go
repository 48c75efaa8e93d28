// Package config loads liarsdice.hcl.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/liarsdice/internal/bot"
	"github.com/lox/liarsdice/internal/game"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "liarsdice.hcl"

// KindHuman marks the seat played from the terminal.
const KindHuman = "human"

// Config represents the complete configuration file.
type Config struct {
	LogLevel      string            `hcl:"log_level,optional"`
	LogFile       string            `hcl:"log_file,optional"`
	Seed          int64             `hcl:"seed,optional"` // zero means seed from the clock
	DicePerPlayer int               `hcl:"dice_per_player,optional"`
	TurnDelay     string            `hcl:"turn_delay,optional"`
	RevealDelay   string            `hcl:"reveal_delay,optional"`
	MaxTurns      int               `hcl:"max_turns,optional"`
	Players       []PlayerConfig    `hcl:"player,block"`
	Simulation    *SimulationConfig `hcl:"simulation,block"`
}

// PlayerConfig seats one player.
type PlayerConfig struct {
	Name string `hcl:"name,label"`
	Kind string `hcl:"kind,optional"`
}

// IsHuman reports whether the seat is played from the terminal.
func (p PlayerConfig) IsHuman() bool {
	return strings.EqualFold(p.Kind, KindHuman)
}

// SimulationConfig holds defaults for the simulate command.
type SimulationConfig struct {
	Games   int    `hcl:"games,optional"`
	Workers int    `hcl:"workers,optional"`
	Timeout string `hcl:"timeout,optional"`
	Out     string `hcl:"out,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel:      "warn",
		LogFile:       "liarsdice.log",
		DicePerPlayer: game.DefaultDicePerPlayer,
		TurnDelay:     "1s",
		RevealDelay:   "3s",
		Players: []PlayerConfig{
			{Name: "You", Kind: KindHuman},
			{Name: "Player 2", Kind: string(bot.KindCautious)},
			{Name: "Player 3", Kind: string(bot.KindRandom)},
			{Name: "Player 4", Kind: string(bot.KindCautious)},
		},
		Simulation: defaultSimulation(),
	}
}

func defaultSimulation() *SimulationConfig {
	return &SimulationConfig{Games: 1000, Timeout: "5s"}
}

// Load reads filename, returning defaults if it does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
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

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.LogFile == "" {
		c.LogFile = defaults.LogFile
	}
	if c.DicePerPlayer == 0 {
		c.DicePerPlayer = defaults.DicePerPlayer
	}
	if c.TurnDelay == "" {
		c.TurnDelay = defaults.TurnDelay
	}
	if c.RevealDelay == "" {
		c.RevealDelay = defaults.RevealDelay
	}
	if len(c.Players) == 0 {
		c.Players = defaults.Players
	}
	for i := range c.Players {
		if c.Players[i].Kind == "" {
			c.Players[i].Kind = string(bot.KindRandom)
		}
	}

	if c.Simulation == nil {
		c.Simulation = defaultSimulation()
	}
	if c.Simulation.Games == 0 {
		c.Simulation.Games = defaults.Simulation.Games
	}
	if c.Simulation.Timeout == "" {
		c.Simulation.Timeout = defaults.Simulation.Timeout
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.DicePerPlayer < 1 {
		return fmt.Errorf("dice_per_player must be positive")
	}
	if c.MaxTurns < 0 {
		return fmt.Errorf("max_turns cannot be negative")
	}
	for field, value := range map[string]string{"turn_delay": c.TurnDelay, "reveal_delay": c.RevealDelay} {
		if _, err := parseDelay(value); err != nil {
			return fmt.Errorf("invalid %s: %w", field, err)
		}
	}

	if n := len(c.Players); n < game.MinPlayers || n > game.MaxPlayers {
		return fmt.Errorf("need %d to %d players, got %d", game.MinPlayers, game.MaxPlayers, n)
	}
	humans := 0
	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if seen[p.Name] {
			return fmt.Errorf("duplicate player name %q", p.Name)
		}
		seen[p.Name] = true

		if p.IsHuman() {
			humans++
			continue
		}
		if _, err := bot.ParseKind(p.Kind); err != nil {
			return fmt.Errorf("player %q: %w", p.Name, err)
		}
	}
	if humans > 1 {
		return fmt.Errorf("at most one human player is supported, got %d", humans)
	}

	if c.Simulation != nil {
		if c.Simulation.Games < 0 {
			return fmt.Errorf("simulation games cannot be negative")
		}
		if c.Simulation.Workers < 0 {
			return fmt.Errorf("simulation workers cannot be negative")
		}
		if _, err := parseDelay(c.Simulation.Timeout); err != nil {
			return fmt.Errorf("invalid simulation timeout: %w", err)
		}
	}
	return nil
}

// Level returns the configured log level, falling back to warn.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// TurnDelayDuration returns the pause before automated turns.
func (c *Config) TurnDelayDuration() time.Duration {
	d, _ := parseDelay(c.TurnDelay)
	return d
}

// RevealDelayDuration returns the pause after a call.
func (c *Config) RevealDelayDuration() time.Duration {
	d, _ := parseDelay(c.RevealDelay)
	return d
}

// TimeoutDuration returns the per-game simulation timeout.
func (s *SimulationConfig) TimeoutDuration() time.Duration {
	d, _ := parseDelay(s.Timeout)
	return d
}

// Names returns the player names in seat order.
func (c *Config) Names() []string {
	names := make([]string, len(c.Players))
	for i, p := range c.Players {
		names[i] = p.Name
	}
	return names
}

// BotKinds returns the kinds of the non-human seats in seat order.
func (c *Config) BotKinds() []bot.Kind {
	var kinds []bot.Kind
	for _, p := range c.Players {
		if p.IsHuman() {
			continue
		}
		if k, err := bot.ParseKind(p.Kind); err == nil {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func parseDelay(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration %q cannot be negative", s)
	}
	return d, nil
}
