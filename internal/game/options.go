package game

import (
	"github.com/lox/liarsdice/internal/randutil"
)

const (
	// MaxPlayers is the largest roster a game supports.
	MaxPlayers = 8
	// MinPlayers is the smallest roster a game supports.
	MinPlayers = 2
	// DefaultDicePerPlayer is how many dice each player starts with.
	DefaultDicePerPlayer = 5
)

// Option configures a Game during creation.
type Option func(*gameConfig)

type gameConfig struct {
	names         []string
	dicePerPlayer int
	src           randutil.Source
	starter       int
}

// WithNames sets the display names of the seats. Missing or empty entries fall
// back to "Player N".
func WithNames(names ...string) Option {
	return func(c *gameConfig) {
		c.names = names
	}
}

// WithDicePerPlayer sets the starting number of dice for every seat.
// Default is DefaultDicePerPlayer.
func WithDicePerPlayer(n int) Option {
	return func(c *gameConfig) {
		c.dicePerPlayer = n
	}
}

// WithSource sets the randomness used for every roll in this game and in all
// snapshots derived from it. Default is a time-seeded generator.
func WithSource(src randutil.Source) Option {
	return func(c *gameConfig) {
		c.src = src
	}
}

// WithRoundStarter sets which seat opens the first round. Default is seat 0.
// Out of range values are ignored.
func WithRoundStarter(seat int) Option {
	return func(c *gameConfig) {
		c.starter = seat
	}
}
