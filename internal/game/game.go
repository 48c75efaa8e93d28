package game

import (
	"fmt"

	"github.com/lox/liarsdice/internal/dice"
	"github.com/lox/liarsdice/internal/randutil"
)

const noWinner = -1

// Game is an immutable snapshot of a Liar's Dice table. Every transition
// (Apply, Reroll) returns a new *Game and leaves the receiver unchanged.
//
// Snapshots derived from the same NewGame call share its randomness source,
// so transitions of one game must not run concurrently.
type Game struct {
	players       []Player
	dicePerPlayer int
	current       int
	starter       int
	round         int
	bets          []Bet
	winner        int
	last          *Resolution
	src           randutil.Source
}

// NewGame creates a game for playerCount seats with full dice, an empty bet
// chain and every hand rolled.
//
// Example usage:
//
//	// Production - time-seeded
//	g, err := NewGame(4)
//
//	// Testing - scripted dice
//	g, err := NewGame(2, WithDicePerPlayer(2), WithSource(dice.Fixed(1, 2, 3, 4)))
func NewGame(playerCount int, opts ...Option) (*Game, error) {
	if playerCount < MinPlayers || playerCount > MaxPlayers {
		return nil, fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidPlayerCount, playerCount, MinPlayers, MaxPlayers)
	}

	cfg := &gameConfig{
		dicePerPlayer: DefaultDicePerPlayer,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.dicePerPlayer <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDiceCount, cfg.dicePerPlayer)
	}
	if cfg.src == nil {
		cfg.src, _ = randutil.NewTimeSeeded()
	}
	if cfg.starter < 0 || cfg.starter >= playerCount {
		cfg.starter = 0
	}

	players := make([]Player, playerCount)
	for i := range players {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(cfg.names) && cfg.names[i] != "" {
			name = cfg.names[i]
		}
		players[i] = Player{
			Seat:          i,
			Name:          name,
			DiceRemaining: cfg.dicePerPlayer,
		}
	}

	g := &Game{
		players:       players,
		dicePerPlayer: cfg.dicePerPlayer,
		current:       cfg.starter,
		starter:       cfg.starter,
		round:         1,
		bets:          []Bet{},
		winner:        noWinner,
		src:           cfg.src,
	}
	g.rollAll()

	return g, nil
}

// Reroll returns a snapshot with every in-play die rolled again. Bets, turn
// and dice counts are unchanged.
func (g *Game) Reroll() *Game {
	next := g.clone()
	next.rollAll()
	return next
}

// rollAll rewrites each hand with exactly DiceRemaining fresh dice, seat by seat.
func (g *Game) rollAll() {
	for i := range g.players {
		g.players[i].hand = dice.RollN(g.src, g.players[i].DiceRemaining)
	}
}

func (g *Game) clone() *Game {
	next := *g
	next.players = make([]Player, len(g.players))
	for i, p := range g.players {
		next.players[i] = p.clone()
	}
	next.bets = append([]Bet{}, g.bets...)
	return &next
}

// nextActive returns the first seat after from, wrapping around, that still
// has dice. It returns from itself when no other seat qualifies.
func (g *Game) nextActive(from int) int {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		pos := (from + i) % n
		if g.players[pos].DiceRemaining > 0 {
			return pos
		}
	}
	return from
}

// PlayerCount returns the number of seats.
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// DicePerPlayer returns the starting number of dice for each seat.
func (g *Game) DicePerPlayer() int {
	return g.dicePerPlayer
}

// CurrentPlayer returns the seat whose turn it is.
func (g *Game) CurrentPlayer() int {
	return g.current
}

// RoundStarter returns the seat that opened the current round.
func (g *Game) RoundStarter() int {
	return g.starter
}

// Round returns the 1-based round number.
func (g *Game) Round() int {
	return g.round
}

// Player returns a copy of the player in seat. It panics if seat is out of range.
func (g *Game) Player(seat int) Player {
	return g.players[seat].clone()
}

// Players returns a copy of the roster.
func (g *Game) Players() []Player {
	out := make([]Player, len(g.players))
	for i, p := range g.players {
		out[i] = p.clone()
	}
	return out
}

// DiceRemaining returns how many dice seat still has.
func (g *Game) DiceRemaining(seat int) int {
	return g.players[seat].DiceRemaining
}

// Hand returns a copy of the dice seat has in play.
func (g *Game) Hand(seat int) []dice.Face {
	return g.players[seat].Hand()
}

// TotalDice returns the number of dice in play across the table.
func (g *Game) TotalDice() int {
	total := 0
	for _, p := range g.players {
		total += p.DiceRemaining
	}
	return total
}

// ActivePlayers returns the number of seats that still have dice.
func (g *Game) ActivePlayers() int {
	n := 0
	for _, p := range g.players {
		if p.DiceRemaining > 0 {
			n++
		}
	}
	return n
}

// CountFace returns how many in-play dice across every hand show face.
func (g *Game) CountFace(face dice.Face) int {
	n := 0
	for _, p := range g.players {
		n += dice.Count(p.Hand(), face)
	}
	return n
}

// Bets returns a copy of this round's bet chain, oldest first.
func (g *Game) Bets() []Bet {
	return append([]Bet{}, g.bets...)
}

// LastBet returns the most recent bet of the round.
func (g *Game) LastBet() (Bet, bool) {
	if len(g.bets) == 0 {
		return Bet{}, false
	}
	return g.bets[len(g.bets)-1], true
}

// Winner returns the winning seat once only one player has dice left.
func (g *Game) Winner() (int, bool) {
	if g.winner == noWinner {
		return 0, false
	}
	return g.winner, true
}

// IsOver returns true once a winner has been decided.
func (g *Game) IsOver() bool {
	return g.winner != noWinner
}

// LastResolution returns the outcome of the most recent call, if any.
func (g *Game) LastResolution() (Resolution, bool) {
	if g.last == nil {
		return Resolution{}, false
	}
	return g.last.clone(), true
}
