package game

import "github.com/lox/liarsdice/internal/dice"

// Decision represents a player's decision with reasoning
type Decision struct {
	Action    Action
	Reasoning string // Human-readable explanation
}

// PlayerView is the public part of a seat: what everyone at the table can see.
type PlayerView struct {
	Seat          int
	Name          string
	DiceRemaining int
}

// View is the read-only state of the game for decision making. Only the
// acting seat's own dice are included.
type View struct {
	Seat          int
	Hand          []dice.Face
	Players       []PlayerView
	Bets          []Bet
	CurrentPlayer int
	RoundStarter  int
	Round         int
	TotalDice     int
	DicePerPlayer int
}

// ViewFor returns the game as seen from seat.
func (g *Game) ViewFor(seat int) View {
	players := make([]PlayerView, len(g.players))
	for i, p := range g.players {
		players[i] = PlayerView{Seat: p.Seat, Name: p.Name, DiceRemaining: p.DiceRemaining}
	}
	return View{
		Seat:          seat,
		Hand:          g.Hand(seat),
		Players:       players,
		Bets:          g.Bets(),
		CurrentPlayer: g.current,
		RoundStarter:  g.starter,
		Round:         g.round,
		TotalDice:     g.TotalDice(),
		DicePerPlayer: g.dicePerPlayer,
	}
}

// LastBet returns the most recent bet of the round, or nil when the round
// has just started.
func (v View) LastBet() *Bet {
	if len(v.Bets) == 0 {
		return nil
	}
	b := v.Bets[len(v.Bets)-1]
	return &b
}

// UnknownDice returns how many dice in play the viewer cannot see.
func (v View) UnknownDice() int {
	return v.TotalDice - len(v.Hand)
}

// Agent represents any entity (human or AI) that can make decisions for a seat.
// Agents receive an immutable view and return decisions; the engine validates
// and applies them.
type Agent interface {
	Decide(view View) Decision
}
