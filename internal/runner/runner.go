// Package runner drives a game of Liar's Dice to completion with a set of
// agents, one per seat.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/liarsdice/internal/game"
	"github.com/lox/liarsdice/internal/sessionid"
)

// DefaultMaxTurns bounds a game so a pair of agents that never call cannot hang the runner.
const DefaultMaxTurns = 10000

// ErrMaxTurns is returned when a game does not finish within Config.MaxTurns.
var ErrMaxTurns = errors.New("game exceeded maximum turns")

// Config controls pacing and limits.
type Config struct {
	TurnDelay   time.Duration // pause before each automated turn
	RevealDelay time.Duration // pause after a call so the reveal can be read
	MaxTurns    int
}

// Result summarises a finished game.
type Result struct {
	SessionID    string
	Winner       int
	WinnerName   string
	Rounds       int
	Turns        int
	Calls        int
	CallsWon     int // calls where the bet was a lie
	Fallbacks    int
	Eliminations []int // seats in the order they ran out of dice
	Duration     time.Duration
	Final        *game.Game
}

// Runner plays one game at a time. It is not safe for concurrent use.
type Runner struct {
	agents []game.Agent
	clock  quartz.Clock
	logger *log.Logger
	config Config
}

// New creates a runner. agents[i] plays seat i.
func New(agents []game.Agent, clock quartz.Clock, logger *log.Logger, config Config) *Runner {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if config.MaxTurns <= 0 {
		config.MaxTurns = DefaultMaxTurns
	}
	return &Runner{
		agents: agents,
		clock:  clock,
		logger: logger.WithPrefix("runner"),
		config: config,
	}
}

// Run plays g until a winner is decided, the context is cancelled, or the
// turn limit is hit.
func (r *Runner) Run(ctx context.Context, g *game.Game) (*Result, error) {
	if len(r.agents) != g.PlayerCount() {
		return nil, fmt.Errorf("have %d agents for %d seats", len(r.agents), g.PlayerCount())
	}

	result := &Result{SessionID: sessionid.New()}
	logger := r.logger.With("session", result.SessionID)
	start := r.clock.Now()

	logger.Info("Starting game", "players", g.PlayerCount(), "dice", g.TotalDice())

	for !g.IsOver() {
		if result.Turns >= r.config.MaxTurns {
			return result, fmt.Errorf("%w: %d", ErrMaxTurns, r.config.MaxTurns)
		}
		if err := r.pause(ctx, r.config.TurnDelay, "turn"); err != nil {
			return result, err
		}

		seat := g.CurrentPlayer()
		player := g.Player(seat)
		decision := r.agents[seat].Decide(g.ViewFor(seat))

		next, err := g.Apply(decision.Action)
		if err != nil {
			logger.Error("Failed to apply agent decision", "error", err, "player", player.Name)
			decision = FallbackDecision(g.ViewFor(seat))
			next, err = g.Apply(decision.Action)
			if err != nil {
				return result, fmt.Errorf("fallback decision for seat %d: %w", seat, err)
			}
			result.Fallbacks++
		}
		result.Turns++

		logger.Debug("Action",
			"round", g.Round(),
			"player", player.Name,
			"action", decision.Action,
			"reasoning", decision.Reasoning)

		if decision.Action.Kind == game.Call {
			res, _ := next.LastResolution()
			result.Calls++
			if !res.Valid {
				result.CallsWon++
			}
			if res.Eliminated {
				result.Eliminations = append(result.Eliminations, res.Loser)
			}
			logger.Info("Call resolved",
				"round", g.Round(),
				"caller", player.Name,
				"bet", res.Bet.Claim(),
				"actual", res.Actual,
				"loser", next.Player(res.Loser).Name,
				"remaining", next.DiceRemaining(res.Loser))
			if res.Eliminated {
				logger.Info("Player eliminated", "player", next.Player(res.Loser).Name)
			}
			if err := r.pause(ctx, r.config.RevealDelay, "reveal"); err != nil {
				g = next
				result.Final = g
				return result, err
			}
		}

		g = next
	}

	winner, _ := g.Winner()
	result.Winner = winner
	result.WinnerName = g.Player(winner).Name
	result.Rounds = g.Round()
	result.Final = g
	result.Duration = r.clock.Since(start)

	logger.Info("Game over",
		"winner", result.WinnerName,
		"rounds", result.Rounds,
		"turns", result.Turns)

	return result, nil
}

// pause waits d on the runner's clock. Zero or negative durations return at once.
func (r *Runner) pause(ctx context.Context, d time.Duration, tag string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := r.clock.NewTimer(d, "runner", tag)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FallbackDecision is always legal for a game that is not over: call a
// standing bet, otherwise open with the cheapest claim.
func FallbackDecision(view game.View) game.Decision {
	if view.LastBet() != nil {
		return game.Decision{Action: game.CallAction(), Reasoning: "fallback due to invalid decision"}
	}
	claim := game.MinimumRaise(nil)
	return game.Decision{
		Action:    game.BetAction(claim.Count, claim.Face),
		Reasoning: "fallback due to invalid decision",
	}
}
