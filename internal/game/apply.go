package game

import (
	"fmt"

	"github.com/lox/liarsdice/internal/dice"
)

// Apply validates action for the current player and returns the resulting
// snapshot. On error the receiver is still the authoritative state.
func (g *Game) Apply(action Action) (*Game, error) {
	if g.IsOver() {
		return nil, fmt.Errorf("%w: seat %d already won", ErrGameOver, g.winner)
	}

	switch action.Kind {
	case Raise:
		return g.applyBet(action.Claim)
	case Call:
		return g.applyCall()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, action.Kind)
	}
}

func (g *Game) applyBet(claim *Claim) (*Game, error) {
	if claim == nil {
		return nil, ErrMissingBetPayload
	}
	if !claim.Face.Valid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFaceValue, claim.Face)
	}
	if claim.Count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroDiceBet, claim.Count)
	}
	if last, ok := g.LastBet(); ok && !claim.Beats(last.Claim()) {
		return nil, fmt.Errorf("%w: %s does not beat %s", ErrBetTooLow, claim, last.Claim())
	}

	next := g.clone()
	next.bets = append(next.bets, Bet{
		Bettor: g.current,
		Count:  claim.Count,
		Face:   claim.Face,
	})
	next.current = next.nextActive(g.current)

	return next, nil
}

func (g *Game) applyCall() (*Game, error) {
	last, ok := g.LastBet()
	if !ok {
		return nil, ErrNoActiveBet
	}

	actual := g.CountFace(last.Face)
	valid := actual >= last.Count

	loser := last.Bettor
	if valid {
		loser = g.current
	}

	res := &Resolution{
		Bet:    last,
		Caller: g.current,
		Loser:  loser,
		Actual: actual,
		Valid:  valid,
		Hands:  make([][]dice.Face, len(g.players)),
	}
	for i, p := range g.players {
		res.Hands[i] = p.Hand()
	}

	next := g.clone()
	next.last = res
	if next.players[loser].DiceRemaining > 0 {
		next.players[loser].DiceRemaining--
	}
	res.Eliminated = next.players[loser].DiceRemaining == 0

	// New round: fresh dice, empty chain, opener moves on.
	next.rollAll()
	next.bets = []Bet{}
	next.starter = next.nextActive(g.starter)
	next.current = next.starter

	if next.ActivePlayers() == 1 {
		next.winner = next.starter
		res.Winner = next.winner
		res.GameOver = true
	} else {
		next.round++
	}

	return next, nil
}
