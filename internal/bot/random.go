package bot

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/liarsdice/internal/dice"
	"github.com/lox/liarsdice/internal/game"
	"github.com/lox/liarsdice/internal/randutil"
)

// RandomBot calls any standing bet and otherwise opens with a random claim of
// up to its own number of dice.
type RandomBot struct {
	rng    randutil.Source
	logger *log.Logger
}

// NewRandomBot creates a new RandomBot instance
func NewRandomBot(rng randutil.Source, logger *log.Logger) *RandomBot {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &RandomBot{rng: rng, logger: logger}
}

func (r *RandomBot) Decide(view game.View) game.Decision {
	if view.LastBet() != nil {
		return game.Decision{Action: game.CallAction(), Reasoning: "random-bot calls every bet"}
	}

	count := 1 + r.rng.IntN(max(1, len(view.Hand)))
	face := dice.Roll(r.rng)
	r.logger.Debug("random opening", "seat", view.Seat, "count", count, "face", face)

	return game.Decision{Action: game.BetAction(count, face), Reasoning: "random-bot random opening"}
}
