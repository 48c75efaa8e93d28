// Package game implements the rules engine for Liar's Dice.
//
// The main type is Game, an immutable snapshot of a table: the players and
// their hidden dice, the chain of bets made this round, whose turn it is, who
// opened the round and, once decided, the winner.
//
// # Basic Usage
//
// Create a game and thread snapshots through Apply:
//
//	g, err := game.NewGame(4, game.WithSource(randutil.New(42)))
//	g, err = g.Apply(game.BetAction(3, 5)) // Player 1: "at least three 5s"
//	g, err = g.Apply(game.CallAction())    // Player 2 calls it a lie
//	if w, ok := g.Winner(); ok {
//	    ...
//	}
//
// A rejected action returns one of the sentinel errors in errors.go and leaves
// the snapshot it was applied to untouched, so callers simply keep what they
// had.
//
// # Deterministic Testing
//
// Dice are rolled through a randutil.Source. Tests script exact faces with
// dice.Fixed:
//
//	g, _ := game.NewGame(2, game.WithSource(dice.Fixed(5, 5, 2, 6, 1, 1, 3, 4, 4, 5)))
//
// # Hidden Information
//
// The engine does not hide anything; Hand returns any player's dice. Agents
// receive a View from ViewFor, which carries only the acting player's own
// hand, and presentation layers decide what to reveal.
package game
