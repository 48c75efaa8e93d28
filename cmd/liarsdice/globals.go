package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/liarsdice/internal/bot"
	"github.com/lox/liarsdice/internal/config"
	"github.com/lox/liarsdice/internal/game"
	"github.com/lox/liarsdice/internal/randutil"
	"github.com/muesli/termenv"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"liarsdice.hcl" help:"Path to HCL config file"`
	LogLevel string `help:"Log level (debug|info|warn|error), overrides the config file"`
	Seed     int64  `help:"RNG seed (0 uses the config file, or the clock)"`
	Dice     int    `help:"Dice per player, overrides the config file"`
	NoColor  bool   `help:"Disable colour output"`
}

// load reads and validates the config file, applying flag overrides.
func (g *Globals) load() (*config.Config, error) {
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Seed != 0 {
		cfg.Seed = g.Seed
	}
	if g.Dice != 0 {
		cfg.DicePerPlayer = g.Dice
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg *config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// openLogFile returns a logger writing to the configured log file, for
// commands that own the terminal.
func openLogFile(cfg *config.Config) (*log.Logger, func(), error) {
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}
	closer := func() {
		if err := f.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}
	return newLogger(f, cfg), closer, nil
}

// seededSource returns the game's random source and the seed that replays it.
func seededSource(cfg *config.Config) (randutil.Source, int64) {
	if cfg.Seed != 0 {
		return randutil.New(cfg.Seed), cfg.Seed
	}
	return randutil.NewTimeSeeded()
}

// newGame seats cfg.Players around a fresh table.
func newGame(cfg *config.Config, src randutil.Source) (*game.Game, error) {
	return game.NewGame(len(cfg.Players),
		game.WithNames(cfg.Names()...),
		game.WithDicePerPlayer(cfg.DicePerPlayer),
		game.WithSource(src))
}

// buildAgents creates one agent per seat. The human seat gets a nil agent
// unless humanAs is set, in which case a bot of that kind plays it.
func buildAgents(cfg *config.Config, src randutil.Source, logger *log.Logger, humanAs bot.Kind) ([]game.Agent, error) {
	agents := make([]game.Agent, len(cfg.Players))
	for seat, p := range cfg.Players {
		kind := bot.Kind(strings.ToLower(p.Kind))
		if p.IsHuman() {
			if humanAs == "" {
				continue
			}
			kind = humanAs
		}
		agent, err := bot.New(kind, src, logger.WithPrefix(p.Name))
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", p.Name, err)
		}
		agents[seat] = agent
	}
	return agents, nil
}
