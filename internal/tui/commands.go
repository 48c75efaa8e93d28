package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/liarsdice/internal/dice"
	"github.com/lox/liarsdice/internal/game"
)

// CommandKind identifies what the player typed.
type CommandKind int

const (
	CommandBet CommandKind = iota + 1
	CommandCall
	CommandQuit
	CommandHelp
)

// Command is a parsed line of player input.
type Command struct {
	Kind  CommandKind
	Count int
	Face  dice.Face
}

// Action converts a bet or call command into a game action.
func (c Command) Action() (game.Action, bool) {
	switch c.Kind {
	case CommandBet:
		return game.BetAction(c.Count, c.Face), true
	case CommandCall:
		return game.CallAction(), true
	default:
		return game.Action{}, false
	}
}

const helpText = "bet <count> <face> (or b 3 5), call (or liar), quit"

// ParseCommand parses input such as "bet 3 5", "call" or "quit". Range
// checks on count and face are left to the engine.
func ParseCommand(input string) (Command, error) {
	parts := strings.Fields(strings.ToLower(input))
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("enter a command: %s", helpText)
	}

	switch parts[0] {
	case "bet", "b", "raise", "r":
		if len(parts) != 3 {
			return Command{}, fmt.Errorf("usage: bet <count> <face>")
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			return Command{}, fmt.Errorf("count %q is not a number", parts[1])
		}
		face, err := strconv.Atoi(parts[2])
		if err != nil {
			return Command{}, fmt.Errorf("face %q is not a number", parts[2])
		}
		return Command{Kind: CommandBet, Count: count, Face: dice.Face(face)}, nil
	case "call", "c", "liar":
		return Command{Kind: CommandCall}, nil
	case "quit", "q", "exit":
		return Command{Kind: CommandQuit}, nil
	case "help", "h", "?":
		return Command{Kind: CommandHelp}, nil
	default:
		return Command{}, fmt.Errorf("unknown command %q: %s", parts[0], helpText)
	}
}
