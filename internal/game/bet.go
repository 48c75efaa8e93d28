package game

import (
	"fmt"

	"github.com/lox/liarsdice/internal/dice"
)

// Claim is the payload of a bet: at least Count dice across the table show Face.
type Claim struct {
	Count int
	Face  dice.Face
}

// Beats reports whether c is strictly higher than prev: more dice, or the
// same number of dice on a higher face.
func (c Claim) Beats(prev Claim) bool {
	if c.Count != prev.Count {
		return c.Count > prev.Count
	}
	return c.Face > prev.Face
}

// String returns e.g. "3 x 5s".
func (c Claim) String() string {
	return fmt.Sprintf("%d x %ss", c.Count, c.Face)
}

// Bet is a claim made by a specific seat.
type Bet struct {
	Bettor int
	Count  int
	Face   dice.Face
}

// Claim returns the count and face of the bet.
func (b Bet) Claim() Claim {
	return Claim{Count: b.Count, Face: b.Face}
}

// MinimumCount returns the fewest dice a bet on face needs to beat b.
func (b Bet) MinimumCount(face dice.Face) int {
	if face > b.Face {
		return b.Count
	}
	return b.Count + 1
}

func (b Bet) String() string {
	return fmt.Sprintf("seat %d bets %s", b.Bettor, b.Claim())
}

// MinimumRaise returns the cheapest claim that beats last, or the cheapest
// opening claim when there is no previous bet.
func MinimumRaise(last *Bet) Claim {
	if last == nil {
		return Claim{Count: 1, Face: dice.MinFace}
	}
	if last.Face < dice.MaxFace {
		return Claim{Count: last.Count, Face: last.Face + 1}
	}
	return Claim{Count: last.Count + 1, Face: dice.MinFace}
}

// ActionKind identifies what a player does on their turn.
type ActionKind int

const (
	// Raise places a new, higher bet.
	Raise ActionKind = iota + 1
	// Call challenges the previous bet.
	Call
)

func (k ActionKind) String() string {
	switch k {
	case Raise:
		return "bet"
	case Call:
		return "call"
	default:
		return "unknown"
	}
}

// Action is submitted to Apply on behalf of the current player. Claim must be
// set for Raise and is ignored for Call.
type Action struct {
	Kind  ActionKind
	Claim *Claim
}

// BetAction returns a Raise action claiming count dice show face.
func BetAction(count int, face dice.Face) Action {
	return Action{Kind: Raise, Claim: &Claim{Count: count, Face: face}}
}

// CallAction returns a Call action.
func CallAction() Action {
	return Action{Kind: Call}
}

func (a Action) String() string {
	if a.Kind == Raise && a.Claim != nil {
		return "bet " + a.Claim.String()
	}
	return a.Kind.String()
}
