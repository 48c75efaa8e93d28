package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"
	"github.com/lox/liarsdice/internal/bot"
	"github.com/lox/liarsdice/internal/runner"
)

type WatchCmd struct {
	Headless bool   `help:"Log the game to stderr instead of opening the TUI"`
	HumanAs  string `default:"cautious" help:"Bot kind that takes over a human seat (random|cautious)"`
}

func (c *WatchCmd) Run(globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	humanAs, err := bot.ParseKind(c.HumanAs)
	if err != nil {
		return err
	}

	src, seed := seededSource(cfg)
	g, err := newGame(cfg, src)
	if err != nil {
		return err
	}

	if !c.Headless {
		logger, closeLog, err := openLogFile(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		agents, err := buildAgents(cfg, src, logger, humanAs)
		if err != nil {
			return err
		}
		return runTUI(g, agents, logger, cfg, seed)
	}

	logger := newLogger(os.Stderr, cfg)
	agents, err := buildAgents(cfg, src, logger, humanAs)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Watching game", "seed", seed)
	r := runner.New(agents, quartz.NewReal(), logger, runner.Config{
		TurnDelay:   cfg.TurnDelayDuration(),
		RevealDelay: cfg.RevealDelayDuration(),
		MaxTurns:    cfg.MaxTurns,
	})
	res, err := r.Run(ctx, g)
	if err != nil {
		return err
	}

	fmt.Printf("%s won after %d rounds, %d turns, %d calls (seed %d, session %s)\n",
		res.WinnerName, res.Rounds, res.Turns, res.Calls, seed, res.SessionID)
	return nil
}
