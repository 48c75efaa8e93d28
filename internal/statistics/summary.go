package statistics

import "sort"

// Summary is the serialisable digest of a Statistics value.
type Summary struct {
	Games           int            `json:"games"`
	MeanRounds      float64        `json:"mean_rounds"`
	StdDevRounds    float64        `json:"stddev_rounds"`
	MedianRounds    float64        `json:"median_rounds"`
	P90Rounds       float64        `json:"p90_rounds"`
	CI95            [2]float64     `json:"ci95_rounds"`
	Turns           int            `json:"turns"`
	Calls           int            `json:"calls"`
	CallSuccessRate float64        `json:"call_success_rate"`
	Fallbacks       int            `json:"fallbacks"`
	SeatWins        []int          `json:"seat_wins"`
	Kinds           []KindSummary  `json:"kinds"`
	Extra           map[string]any `json:"extra,omitempty"`
}

// KindSummary reports one agent kind.
type KindSummary struct {
	Kind    string  `json:"kind"`
	Seats   int     `json:"seats"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// Summarize builds a Summary for a table of seats players.
func (s *Statistics) Summarize(seats int) Summary {
	lo, hi := s.ConfidenceInterval95()
	sum := Summary{
		Games:           s.Games,
		MeanRounds:      s.Mean(),
		StdDevRounds:    s.StdDev(),
		MedianRounds:    s.Median(),
		P90Rounds:       s.Percentile(0.9),
		CI95:            [2]float64{lo, hi},
		Turns:           s.Turns,
		Calls:           s.Calls,
		CallSuccessRate: s.CallSuccessRate(),
		Fallbacks:       s.Fallbacks,
		SeatWins:        make([]int, seats),
	}
	for seat := range sum.SeatWins {
		sum.SeatWins[seat] = s.SeatWins[seat]
	}

	names := make([]string, 0, len(s.Kinds))
	for name := range s.Kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ks := s.Kinds[name]
		sum.Kinds = append(sum.Kinds, KindSummary{
			Kind:    name,
			Seats:   ks.Seats,
			Wins:    ks.Wins,
			WinRate: ks.WinRate(),
		})
	}
	return sum
}
