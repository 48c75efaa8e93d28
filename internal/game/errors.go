package game

import "errors"

var (
	// ErrNoActiveBet is returned when a call is made before anyone has bet this round.
	ErrNoActiveBet = errors.New("cannot call when no bets have been made")
	// ErrInvalidFaceValue is returned for a bet on a face outside 1..6.
	ErrInvalidFaceValue = errors.New("face value must be between 1 and 6")
	// ErrZeroDiceBet is returned for a bet on zero (or fewer) dice.
	ErrZeroDiceBet = errors.New("cannot bet on 0 dice")
	// ErrBetTooLow is returned when a bet does not strictly beat the previous one.
	ErrBetTooLow = errors.New("new bet must be higher than the previous bet")
	// ErrMissingBetPayload is returned for a bet action without count and face.
	ErrMissingBetPayload = errors.New("bet action requires dice count and face value")
	// ErrGameOver is returned for any action once a winner has been decided.
	ErrGameOver = errors.New("game is over")
	// ErrUnknownAction is returned for an action kind the engine does not know.
	ErrUnknownAction = errors.New("unknown action")

	// ErrInvalidPlayerCount is returned by NewGame for fewer than 2 or more than MaxPlayers players.
	ErrInvalidPlayerCount = errors.New("invalid player count")
	// ErrInvalidDiceCount is returned by NewGame for a non-positive dice count per player.
	ErrInvalidDiceCount = errors.New("invalid dice per player")
)
