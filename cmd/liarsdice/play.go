package main

import (
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/liarsdice/internal/config"
	"github.com/lox/liarsdice/internal/game"
	"github.com/lox/liarsdice/internal/tui"
)

type PlayCmd struct{}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := globals.load()
	if err != nil {
		return err
	}
	if !slices.ContainsFunc(cfg.Players, config.PlayerConfig.IsHuman) {
		return errors.New("config has no human player; use the watch command instead")
	}

	logger, closeLog, err := openLogFile(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	src, seed := seededSource(cfg)
	g, err := newGame(cfg, src)
	if err != nil {
		return err
	}
	agents, err := buildAgents(cfg, src, logger, "")
	if err != nil {
		return err
	}
	return runTUI(g, agents, logger, cfg, seed)
}

// runTUI runs the interactive model until the player quits and prints the outcome.
func runTUI(g *game.Game, agents []game.Agent, logger *log.Logger, cfg *config.Config, seed int64) error {
	logger.Info("Starting game", "seed", seed, "players", g.PlayerCount(), "dice", g.DicePerPlayer())

	model, err := tui.New(g, agents, logger, tui.Config{
		TurnDelay:   cfg.TurnDelayDuration(),
		RevealDelay: cfg.RevealDelayDuration(),
	})
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	final := model.Game()
	if winner, ok := final.Winner(); ok {
		fmt.Printf("%s won after %d rounds (seed %d)\n", final.Player(winner).Name, final.Round(), seed)
		logger.Info("Game over", "winner", final.Player(winner).Name, "rounds", final.Round())
	} else {
		fmt.Printf("Game abandoned in round %d (seed %d)\n", final.Round(), seed)
	}
	return nil
}
