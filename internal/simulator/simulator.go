package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/liarsdice/internal/bot"
	"github.com/lox/liarsdice/internal/game"
	"github.com/lox/liarsdice/internal/randutil"
	"github.com/lox/liarsdice/internal/runner"
	"github.com/lox/liarsdice/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Games         int
	Kinds         []bot.Kind // one per seat; rotated each game
	Seed          int64
	DicePerPlayer int
	MaxTurns      int
	Workers       int
	Timeout       time.Duration // per game; zero means none
	Logger        *log.Logger
}

// Simulator plays many bot-only games and aggregates the results.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.DicePerPlayer <= 0 {
		config.DicePerPlayer = game.DefaultDicePerPlayer
	}
	return &Simulator{config: config}
}

// Run plays every game and returns the validated statistics. Results are
// identical for a given seed regardless of the worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("invalid games count: %d", s.config.Games)
	}
	if n := len(s.config.Kinds); n < game.MinPlayers || n > game.MaxPlayers {
		return nil, fmt.Errorf("%w: %d", game.ErrInvalidPlayerCount, n)
	}

	results := make([]statistics.GameResult, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range s.config.Games {
		g.Go(func() error {
			result, err := s.playGame(ctx, i)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, s.gameSeed(i), err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.New()
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

func (s *Simulator) gameSeed(i int) int64 {
	return s.config.Seed + int64(i)
}

// SeatKinds returns the kind seated at each position for game i. Kinds shift
// one seat per game to cancel out positional bias.
func (s *Simulator) SeatKinds(i int) []bot.Kind {
	n := len(s.config.Kinds)
	kinds := make([]bot.Kind, n)
	for seat := range kinds {
		kinds[seat] = s.config.Kinds[(seat+i)%n]
	}
	return kinds
}

func (s *Simulator) playGame(ctx context.Context, i int) (statistics.GameResult, error) {
	seed := s.gameSeed(i)
	rng := randutil.New(seed)
	kinds := s.SeatKinds(i)

	agents := make([]game.Agent, len(kinds))
	names := make([]string, len(kinds))
	for seat, kind := range kinds {
		agent, err := bot.New(kind, rng, s.config.Logger)
		if err != nil {
			return statistics.GameResult{}, err
		}
		agents[seat] = agent
		names[seat] = fmt.Sprintf("%s-%d", kind, seat+1)
	}

	g, err := game.NewGame(len(kinds),
		game.WithSource(rng),
		game.WithNames(names...),
		game.WithDicePerPlayer(s.config.DicePerPlayer))
	if err != nil {
		return statistics.GameResult{}, err
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	r := runner.New(agents, quartz.NewReal(), s.config.Logger, runner.Config{MaxTurns: s.config.MaxTurns})
	res, err := r.Run(ctx, g)
	if errors.Is(err, context.DeadlineExceeded) {
		return statistics.GameResult{}, fmt.Errorf("game timed out after %v: %w", s.config.Timeout, err)
	}
	if err != nil {
		return statistics.GameResult{}, err
	}

	kindNames := make([]string, len(kinds))
	for seat, kind := range kinds {
		kindNames[seat] = string(kind)
	}
	return statistics.GameResult{
		Seed:      seed,
		Winner:    res.Winner,
		Kinds:     kindNames,
		Rounds:    res.Rounds,
		Turns:     res.Turns,
		Calls:     res.Calls,
		CallsWon:  res.CallsWon,
		Fallbacks: res.Fallbacks,
	}, nil
}

// PrintSummary writes a human-readable report of simulation results.
func PrintSummary(w io.Writer, stats *statistics.Statistics, kinds []bot.Kind) {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== RESULTS (%s) ===\n", strings.Join(names, ", "))
	fmt.Fprintf(w, "Games played: %d\n", stats.Games)

	fmt.Fprintf(w, "\n=== GAME LENGTH ===\n")
	fmt.Fprintf(w, "Mean: %.2f rounds/game\n", stats.Mean())
	fmt.Fprintf(w, "Median: %.2f rounds/game\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.2f rounds\n", stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.2f, %.2f] rounds/game\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(w, "\n=== CALLS ===\n")
	fmt.Fprintf(w, "Calls: %d, caught lies: %d (%.1f%%)\n", stats.Calls, stats.CallsWon, stats.CallSuccessRate()*100)
	if stats.Fallbacks > 0 {
		fmt.Fprintf(w, "Fallback decisions: %d\n", stats.Fallbacks)
	}

	fmt.Fprintf(w, "\n=== WINS BY KIND ===\n")
	for _, k := range stats.Summarize(len(kinds)).Kinds {
		fmt.Fprintf(w, "%-10s %d wins from %d seats (%.1f%%)\n", k.Kind, k.Wins, k.Seats, k.WinRate*100)
	}

	fmt.Fprintf(w, "\n=== WINS BY SEAT ===\n")
	for seat := range kinds {
		fmt.Fprintf(w, "Seat %d: %d wins (%.1f%%)\n", seat+1, stats.SeatWins[seat], stats.WinRate(seat)*100)
	}
}
