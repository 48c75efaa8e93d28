package bot

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/liarsdice/internal/dice"
	"github.com/lox/liarsdice/internal/game"
)

// DefaultMargin is how far above its estimate a bet may go before the
// cautious bot stops believing it.
const DefaultMargin = 0.5

// CautiousBot estimates how many dice show each face from its own hand plus
// one sixth of the dice it cannot see. It calls bets that exceed that
// estimate and otherwise makes the cheapest raise on the face it expects the
// most of.
type CautiousBot struct {
	logger *log.Logger
	margin float64
}

// NewCautiousBot creates a new CautiousBot with DefaultMargin.
func NewCautiousBot(logger *log.Logger) *CautiousBot {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &CautiousBot{logger: logger, margin: DefaultMargin}
}

// Expected returns the estimated number of dice across the table showing face.
func Expected(view game.View, face dice.Face) float64 {
	return float64(dice.Count(view.Hand, face)) + float64(view.UnknownDice())/dice.Sides
}

func (c *CautiousBot) Decide(view game.View) game.Decision {
	last := view.LastBet()
	if last == nil {
		face := strongestFace(view.Hand)
		count := max(1, int(Expected(view, face)))
		return game.Decision{
			Action:    game.BetAction(count, face),
			Reasoning: fmt.Sprintf("opening on strongest face %s", face),
		}
	}

	if want := Expected(view, last.Face); float64(last.Count) > want+c.margin {
		return game.Decision{
			Action:    game.CallAction(),
			Reasoning: fmt.Sprintf("%s exceeds estimate %.2f", last.Claim(), want),
		}
	}

	bestFace := dice.MinFace
	bestCount := last.MinimumCount(bestFace)
	bestSlack := Expected(view, bestFace) - float64(bestCount)
	for face := dice.MinFace + 1; face <= dice.MaxFace; face++ {
		count := last.MinimumCount(face)
		slack := Expected(view, face) - float64(count)
		if slack > bestSlack {
			bestFace, bestCount, bestSlack = face, count, slack
		}
	}

	if bestSlack < -c.margin {
		return game.Decision{
			Action:    game.CallAction(),
			Reasoning: fmt.Sprintf("no believable raise over %s", last.Claim()),
		}
	}

	c.logger.Debug("raising", "seat", view.Seat, "count", bestCount, "face", bestFace, "slack", bestSlack)
	return game.Decision{
		Action:    game.BetAction(bestCount, bestFace),
		Reasoning: fmt.Sprintf("cheapest raise on %ss", bestFace),
	}
}

// strongestFace returns the face held most often, preferring higher faces on ties.
func strongestFace(hand []dice.Face) dice.Face {
	h := dice.Histogram(hand)
	best := dice.MaxFace
	for face := dice.MaxFace - 1; face >= dice.MinFace; face-- {
		if h[face] > h[best] {
			best = face
		}
	}
	return best
}
