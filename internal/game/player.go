package game

import "github.com/lox/liarsdice/internal/dice"

// Player represents a seat at the table. Its index in the roster is its identity.
type Player struct {
	Seat          int
	Name          string
	DiceRemaining int

	hand []dice.Face
}

// Hand returns a copy of the dice still in play for this player.
func (p Player) Hand() []dice.Face {
	n := min(p.DiceRemaining, len(p.hand))
	out := make([]dice.Face, n)
	copy(out, p.hand[:n])
	return out
}

// IsEliminated returns true once the player has lost every die.
func (p Player) IsEliminated() bool {
	return p.DiceRemaining <= 0
}

func (p Player) clone() Player {
	p.hand = append([]dice.Face(nil), p.hand...)
	return p
}
