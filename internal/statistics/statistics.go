package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Seed      int64
	Winner    int      // winning seat
	Kinds     []string // agent kind per seat
	Rounds    int
	Turns     int
	Calls     int
	CallsWon  int // calls that exposed a lie
	Fallbacks int
}

// WinnerKind returns the kind of agent that won, or "" if unknown.
func (r GameResult) WinnerKind() string {
	if r.Winner < 0 || r.Winner >= len(r.Kinds) {
		return ""
	}
	return r.Kinds[r.Winner]
}

// KindStats tracks how often an agent kind played and won.
type KindStats struct {
	Seats int // seats occupied across all games
	Wins  int
}

// WinRate returns wins per seat played.
func (k KindStats) WinRate() float64 {
	if k.Seats == 0 {
		return 0
	}
	return float64(k.Wins) / float64(k.Seats)
}

// Statistics accumulates results over many games. Round counts feed the
// distribution helpers.
type Statistics struct {
	Games      int
	SumRounds  float64
	SumRounds2 float64   // sum of squares for variance
	Values     []float64 // rounds per game, for median and percentiles

	Turns     int
	Calls     int
	CallsWon  int
	Fallbacks int

	SeatWins map[int]int
	Kinds    map[string]*KindStats
}

// New returns empty statistics ready for Add.
func New() *Statistics {
	return &Statistics{
		SeatWins: make(map[int]int),
		Kinds:    make(map[string]*KindStats),
	}
}

// Add incorporates a finished game.
func (s *Statistics) Add(result GameResult) {
	if s.SeatWins == nil {
		s.SeatWins = make(map[int]int)
	}
	if s.Kinds == nil {
		s.Kinds = make(map[string]*KindStats)
	}

	rounds := float64(result.Rounds)
	s.Games++
	s.SumRounds += rounds
	s.SumRounds2 += rounds * rounds
	s.Values = append(s.Values, rounds)

	s.Turns += result.Turns
	s.Calls += result.Calls
	s.CallsWon += result.CallsWon
	s.Fallbacks += result.Fallbacks

	s.SeatWins[result.Winner]++
	for seat, kind := range result.Kinds {
		ks := s.kind(kind)
		ks.Seats++
		if seat == result.Winner {
			ks.Wins++
		}
	}
}

func (s *Statistics) kind(name string) *KindStats {
	ks, ok := s.Kinds[name]
	if !ok {
		ks = &KindStats{}
		s.Kinds[name] = ks
	}
	return ks
}

// Mean returns the mean number of rounds per game.
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Games)
}

// Variance returns the sample variance of rounds per game.
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumRounds2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of rounds per game.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median rounds per game.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the rounds value at p (0.0 to 1.0), interpolating
// between neighbours.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	p = min(max(p, 0), 1)
	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// CallSuccessRate returns the fraction of calls that caught a lie.
func (s *Statistics) CallSuccessRate() float64 {
	if s.Calls == 0 {
		return 0
	}
	return float64(s.CallsWon) / float64(s.Calls)
}

// WinRate returns the fraction of games won from seat.
func (s *Statistics) WinRate(seat int) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.SeatWins[seat]) / float64(s.Games)
}

// Validate checks that the accumulated counters agree with each other.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)", len(s.Values), s.Games)
	}

	wins := 0
	for _, n := range s.SeatWins {
		wins += n
	}
	if wins != s.Games {
		return fmt.Errorf("seat wins total (%d) does not match games count (%d)", wins, s.Games)
	}

	kindWins := 0
	for name, ks := range s.Kinds {
		if ks.Wins > ks.Seats {
			return fmt.Errorf("kind %q won %d games from %d seats", name, ks.Wins, ks.Seats)
		}
		kindWins += ks.Wins
	}
	if len(s.Kinds) > 0 && kindWins != s.Games {
		return fmt.Errorf("kind wins total (%d) does not match games count (%d)", kindWins, s.Games)
	}

	if s.CallsWon > s.Calls {
		return fmt.Errorf("successful calls (%d) exceed calls (%d)", s.CallsWon, s.Calls)
	}
	return nil
}
