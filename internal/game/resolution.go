package game

import (
	"fmt"

	"github.com/lox/liarsdice/internal/dice"
)

// Resolution records what happened when a bet was called. Hands holds every
// seat's dice as they were before the new round was rolled, so they can be
// revealed.
type Resolution struct {
	Bet        Bet
	Caller     int
	Loser      int
	Actual     int
	Valid      bool // the bet held; the caller lost a die
	Eliminated bool // the loser has no dice left
	GameOver   bool
	Winner     int // only meaningful when GameOver
	Hands      [][]dice.Face
}

func (r Resolution) clone() Resolution {
	hands := make([][]dice.Face, len(r.Hands))
	for i, h := range r.Hands {
		hands[i] = append([]dice.Face(nil), h...)
	}
	r.Hands = hands
	return r
}

// String summarises the call, e.g. "bet 4 x 3s held (5 showing), seat 2 loses a die".
func (r Resolution) String() string {
	verdict := "was a lie"
	if r.Valid {
		verdict = "held"
	}
	return fmt.Sprintf("bet %s %s (%d showing), seat %d loses a die",
		r.Bet.Claim(), verdict, r.Actual, r.Loser)
}
