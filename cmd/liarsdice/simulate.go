package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/liarsdice/internal/bot"
	"github.com/lox/liarsdice/internal/config"
	"github.com/lox/liarsdice/internal/fileutil"
	"github.com/lox/liarsdice/internal/simulator"
)

type SimulateCmd struct {
	Games   int           `short:"n" help:"Number of games (default from config)"`
	Bots    []string      `help:"Bot kinds per seat, comma separated (default from config)"`
	Workers int           `help:"Parallel games (default GOMAXPROCS)"`
	Timeout time.Duration `help:"Per-game timeout (default from config)"`
	Out     string        `short:"o" help:"Write a JSON summary to this file"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	kinds, err := c.kinds(cfg)
	if err != nil {
		return err
	}

	games := cfg.Simulation.Games
	if c.Games > 0 {
		games = c.Games
	}
	workers := cfg.Simulation.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}
	timeout := cfg.Simulation.TimeoutDuration()
	if c.Timeout > 0 {
		timeout = c.Timeout
	}
	out := cfg.Simulation.Out
	if c.Out != "" {
		out = c.Out
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := newLogger(os.Stderr, cfg)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting simulation", "games", games, "bots", kinds, "seed", seed)
	start := time.Now()

	stats, err := simulator.New(simulator.Config{
		Games:         games,
		Kinds:         kinds,
		Seed:          seed,
		DicePerPlayer: cfg.DicePerPlayer,
		MaxTurns:      cfg.MaxTurns,
		Workers:       workers,
		Timeout:       timeout,
		Logger:        logger,
	}).Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	simulator.PrintSummary(os.Stdout, stats, kinds)
	fmt.Printf("\nCompleted in %v (seed %d)\n", elapsed.Round(time.Millisecond), seed)

	if out == "" {
		return nil
	}
	summary := stats.Summarize(len(kinds))
	summary.Extra = map[string]any{
		"seed":            seed,
		"bots":            kinds,
		"dice_per_player": cfg.DicePerPlayer,
		"elapsed_ms":      elapsed.Milliseconds(),
	}
	if err := fileutil.WriteJSONAtomic(out, summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	logger.Info("Wrote summary", "path", out)
	return nil
}

// kinds returns the seat line-up from --bots, or every configured seat with
// the human replaced by a cautious bot.
func (c *SimulateCmd) kinds(cfg *config.Config) ([]bot.Kind, error) {
	if len(c.Bots) == 0 {
		var kinds []bot.Kind
		for _, p := range cfg.Players {
			if p.IsHuman() {
				kinds = append(kinds, bot.KindCautious)
				continue
			}
			k, err := bot.ParseKind(p.Kind)
			if err != nil {
				return nil, err
			}
			kinds = append(kinds, k)
		}
		return kinds, nil
	}

	kinds := make([]bot.Kind, 0, len(c.Bots))
	for _, name := range c.Bots {
		k, err := bot.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
