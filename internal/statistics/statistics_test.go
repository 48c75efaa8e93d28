package statistics

import (
	"math"
	"strings"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.CallSuccessRate() != 0 {
		t.Errorf("Expected call success rate of 0 for empty stats, got %f", stats.CallSuccessRate())
	}
	if stats.WinRate(0) != 0 {
		t.Errorf("Expected win rate of 0 for empty stats, got %f", stats.WinRate(0))
	}
}

func TestStatistics_ZeroValueAdd(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Winner: 1, Kinds: []string{"random", "cautious"}, Rounds: 9})

	if stats.Games != 1 {
		t.Errorf("Expected 1 game, got %d", stats.Games)
	}
	if stats.SeatWins[1] != 1 {
		t.Errorf("Expected seat 1 to have 1 win, got %d", stats.SeatWins[1])
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}
}

func TestStatistics_MultipleGames(t *testing.T) {
	stats := New()
	kinds := []string{"cautious", "random", "random"}
	results := []GameResult{
		{Winner: 0, Kinds: kinds, Rounds: 10, Turns: 30, Calls: 10, CallsWon: 6},
		{Winner: 0, Kinds: kinds, Rounds: 12, Turns: 40, Calls: 12, CallsWon: 7},
		{Winner: 2, Kinds: kinds, Rounds: 14, Turns: 35, Calls: 14, CallsWon: 5, Fallbacks: 1},
		{Winner: 1, Kinds: kinds, Rounds: 16, Turns: 45, Calls: 14, CallsWon: 2},
	}
	for _, r := range results {
		stats.Add(r)
	}

	if stats.Mean() != 13 {
		t.Errorf("Expected mean of 13 rounds, got %f", stats.Mean())
	}
	// (9 + 1 + 1 + 9) / 3
	if math.Abs(stats.Variance()-20.0/3.0) > 1e-9 {
		t.Errorf("Expected variance of 6.667, got %f", stats.Variance())
	}
	if stats.Median() != 13 {
		t.Errorf("Expected median of 13, got %f", stats.Median())
	}
	if stats.Calls != 50 || stats.CallsWon != 20 {
		t.Errorf("Expected 50 calls with 20 successes, got %d/%d", stats.Calls, stats.CallsWon)
	}
	if stats.CallSuccessRate() != 0.4 {
		t.Errorf("Expected call success rate of 0.4, got %f", stats.CallSuccessRate())
	}
	if stats.WinRate(0) != 0.5 {
		t.Errorf("Expected seat 0 win rate of 0.5, got %f", stats.WinRate(0))
	}

	cautious := stats.Kinds["cautious"]
	if cautious.Seats != 4 || cautious.Wins != 2 {
		t.Errorf("Expected cautious 2 wins from 4 seats, got %d/%d", cautious.Wins, cautious.Seats)
	}
	random := stats.Kinds["random"]
	if random.Seats != 8 || random.Wins != 2 {
		t.Errorf("Expected random 2 wins from 8 seats, got %d/%d", random.Wins, random.Seats)
	}
	if random.WinRate() != 0.25 {
		t.Errorf("Expected random win rate of 0.25, got %f", random.WinRate())
	}

	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}
}

func TestStatistics_Percentiles(t *testing.T) {
	stats := New()
	for _, rounds := range []int{5, 1, 4, 2, 3} {
		stats.Add(GameResult{Winner: 0, Rounds: rounds})
	}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 2},
		{0.5, 3},
		{0.9, 4.6},
		{1, 5},
		{1.5, 5},
		{-1, 1},
	}
	for _, tt := range tests {
		if got := stats.Percentile(tt.p); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Percentile(%v) = %f, want %f", tt.p, got, tt.want)
		}
	}
}

func TestStatistics_ConfidenceInterval(t *testing.T) {
	stats := New()
	for _, rounds := range []int{8, 10, 12} {
		stats.Add(GameResult{Rounds: rounds})
	}

	lo, hi := stats.ConfidenceInterval95()
	if !(lo < stats.Mean() && stats.Mean() < hi) {
		t.Errorf("Expected mean %f inside interval [%f, %f]", stats.Mean(), lo, hi)
	}
	if math.Abs((hi-lo)/2-1.96*stats.StdError()) > 1e-9 {
		t.Errorf("Expected half-width of 1.96 standard errors, got %f", (hi-lo)/2)
	}
}

func TestStatistics_Validate(t *testing.T) {
	valid := func() *Statistics {
		s := New()
		s.Add(GameResult{Winner: 0, Kinds: []string{"a", "b"}, Rounds: 4, Calls: 4, CallsWon: 2})
		return s
	}

	tests := []struct {
		name   string
		mutate func(*Statistics)
		errMsg string
	}{
		{"valid", func(*Statistics) {}, ""},
		{"no games", func(s *Statistics) { *s = Statistics{} }, "invalid games count"},
		{"values mismatch", func(s *Statistics) { s.Values = nil }, "values array length"},
		{"seat wins mismatch", func(s *Statistics) { s.SeatWins[1]++ }, "seat wins total"},
		{"kind over seats", func(s *Statistics) { s.Kinds["a"].Wins = 5 }, "won 5 games"},
		{"kind wins mismatch", func(s *Statistics) { s.Kinds["b"].Wins = 1 }, "kind wins total"},
		{"calls", func(s *Statistics) { s.CallsWon = 9 }, "exceed calls"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := s.Validate()
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func TestGameResult_WinnerKind(t *testing.T) {
	r := GameResult{Winner: 1, Kinds: []string{"random", "cautious"}}
	if r.WinnerKind() != "cautious" {
		t.Errorf("Expected cautious, got %q", r.WinnerKind())
	}
	r.Winner = 5
	if r.WinnerKind() != "" {
		t.Errorf("Expected empty kind for out of range seat, got %q", r.WinnerKind())
	}
}

func TestStatistics_Summarize(t *testing.T) {
	stats := New()
	stats.Add(GameResult{Winner: 1, Kinds: []string{"random", "cautious", "random"}, Rounds: 6, Calls: 3, CallsWon: 3})

	sum := stats.Summarize(3)
	if sum.Games != 1 || sum.MeanRounds != 6 {
		t.Errorf("Unexpected summary header: %+v", sum)
	}
	if len(sum.SeatWins) != 3 || sum.SeatWins[1] != 1 {
		t.Errorf("Expected seat wins [0 1 0], got %v", sum.SeatWins)
	}
	if len(sum.Kinds) != 2 || sum.Kinds[0].Kind != "cautious" || sum.Kinds[1].Kind != "random" {
		t.Fatalf("Expected kinds sorted by name, got %+v", sum.Kinds)
	}
	if sum.Kinds[0].WinRate != 1 || sum.Kinds[1].Seats != 2 {
		t.Errorf("Unexpected kind summaries: %+v", sum.Kinds)
	}
	if sum.CallSuccessRate != 1 {
		t.Errorf("Expected call success rate of 1, got %f", sum.CallSuccessRate)
	}
}
