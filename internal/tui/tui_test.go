package tui

import (
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/liarsdice/internal/bot"
	"github.com/lox/liarsdice/internal/dice"
	"github.com/lox/liarsdice/internal/game"
	"github.com/lox/liarsdice/internal/randutil"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// newHumanModel seats the human at 0 with dice [2 2] against a random bot
// holding [3 2]. The bot calls any bet.
func newHumanModel(t *testing.T) *Model {
	t.Helper()
	g, err := game.NewGame(2,
		game.WithNames("Alice", "Bot"),
		game.WithDicePerPlayer(2),
		game.WithSource(dice.Fixed(2, 2, 3, 2)),
		game.WithRoundStarter(0))
	require.NoError(t, err)

	m, err := New(g, []game.Agent{nil, bot.NewRandomBot(randutil.New(1), nil)}, quietLogger(), Config{})
	require.NoError(t, err)
	return m
}

func submit(m *Model, input string) tea.Cmd {
	m.actionInput.SetValue(input)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func lastLog(m *Model) string {
	lines := m.Log()
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

func TestParseCommand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    Command
		wantErr string
	}{
		{"bet 3 5", Command{Kind: CommandBet, Count: 3, Face: 5}, ""},
		{"  B 1 6 ", Command{Kind: CommandBet, Count: 1, Face: 6}, ""},
		{"raise 4 2", Command{Kind: CommandBet, Count: 4, Face: 2}, ""},
		{"bet 0 9", Command{Kind: CommandBet, Count: 0, Face: 9}, ""},
		{"call", Command{Kind: CommandCall}, ""},
		{"LIAR", Command{Kind: CommandCall}, ""},
		{"q", Command{Kind: CommandQuit}, ""},
		{"?", Command{Kind: CommandHelp}, ""},
		{"", Command{}, "enter a command"},
		{"bet 3", Command{}, "usage"},
		{"bet three 5", Command{}, "not a number"},
		{"bet 3 five", Command{}, "not a number"},
		{"fold", Command{}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandAction(t *testing.T) {
	t.Parallel()
	a, ok := Command{Kind: CommandBet, Count: 2, Face: 3}.Action()
	require.True(t, ok)
	assert.Equal(t, game.BetAction(2, 3), a)

	a, ok = Command{Kind: CommandCall}.Action()
	require.True(t, ok)
	assert.Equal(t, game.Call, a.Kind)

	_, ok = Command{Kind: CommandQuit}.Action()
	assert.False(t, ok)
}

func TestNewValidatesAgents(t *testing.T) {
	t.Parallel()
	g, err := game.NewGame(2)
	require.NoError(t, err)

	_, err = New(g, []game.Agent{nil}, nil, Config{})
	assert.Error(t, err)

	_, err = New(g, []game.Agent{nil, nil}, nil, Config{})
	assert.Error(t, err)
}

func TestHumanBetAndBotCall(t *testing.T) {
	t.Parallel()
	m := newHumanModel(t)
	require.True(t, m.isHumanTurn())
	assert.Nil(t, m.scheduleNext())

	cmd := submit(m, "bet 2 2")
	assert.NotNil(t, cmd, "bot turn should be scheduled")
	assert.Empty(t, m.Message())
	require.Len(t, m.Game().Bets(), 1)
	assert.Equal(t, 1, m.Game().CurrentPlayer())
	assert.Equal(t, "Alice (you) bets 2 x 2s", lastLog(m))

	// The random bot calls; three 2s are showing so the bet holds.
	_, cmd = m.Update(botTurnMsg{})
	assert.NotNil(t, cmd, "reveal pause should be scheduled")
	assert.True(t, m.Revealing())
	assert.Equal(t, 1, m.Game().DiceRemaining(1))
	assert.Equal(t, 2, m.Game().DiceRemaining(0))

	joined := strings.Join(m.Log(), "\n")
	assert.Contains(t, joined, "Bot calls Alice (you)'s bet of 2 x 2s")
	assert.Contains(t, joined, "3 showing: the bet was true. Bot loses a die.")

	// Input is ignored while dice are revealed.
	snapshot := m.Game()
	submit(m, "bet 1 1")
	assert.Contains(t, m.Message(), "Not your turn")
	assert.Same(t, snapshot, m.Game())

	m.Update(revealDoneMsg{})
	assert.False(t, m.Revealing())
	assert.Equal(t, 2, m.Game().Round())
	assert.Contains(t, lastLog(m), "Round 2")
}

func TestRejectedInputKeepsState(t *testing.T) {
	t.Parallel()
	m := newHumanModel(t)
	before := m.Game()

	submit(m, "call")
	assert.Contains(t, m.Message(), game.ErrNoActiveBet.Error())
	assert.Same(t, before, m.Game())

	submit(m, "bet 0 3")
	assert.Contains(t, m.Message(), game.ErrZeroDiceBet.Error())
	assert.Same(t, before, m.Game())

	submit(m, "bet 2 7")
	assert.Contains(t, m.Message(), game.ErrInvalidFaceValue.Error())

	submit(m, "shout")
	assert.Contains(t, m.Message(), "unknown command")
	assert.Same(t, before, m.Game())
}

func TestNotYourTurn(t *testing.T) {
	t.Parallel()
	m := newHumanModel(t)
	submit(m, "bet 1 2")
	after := m.Game()

	submit(m, "call")
	assert.Contains(t, m.Message(), "Not your turn")
	assert.Same(t, after, m.Game())
}

func TestQuit(t *testing.T) {
	t.Parallel()
	m := newHumanModel(t)

	cmd := submit(m, "quit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestCtrlCQuits(t *testing.T) {
	t.Parallel()
	m := newHumanModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWatchModePlaysToWinner(t *testing.T) {
	t.Parallel()
	rng := randutil.New(5)
	g, err := game.NewGame(3, game.WithSource(rng))
	require.NoError(t, err)

	agents := []game.Agent{
		bot.NewCautiousBot(nil),
		bot.NewRandomBot(rng, nil),
		bot.NewCautiousBot(nil),
	}
	m, err := New(g, agents, quietLogger(), Config{})
	require.NoError(t, err)
	require.NotNil(t, m.scheduleNext())

	for turns := 0; !m.Game().IsOver(); turns++ {
		require.Less(t, turns, 5000)
		m.Update(botTurnMsg{})
		if m.Revealing() {
			m.Update(revealDoneMsg{})
		}
	}

	winner, ok := m.Game().Winner()
	require.True(t, ok)
	assert.Contains(t, m.Message(), m.Game().Player(winner).Name+" wins the game")
	assert.Contains(t, strings.Join(m.Log(), "\n"), "is out of the game")

	_, cmd := m.Update(botTurnMsg{})
	assert.Nil(t, cmd)
}

func TestViewRendersTable(t *testing.T) {
	t.Parallel()
	m := newHumanModel(t)
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()

	assert.Contains(t, view, "Liar's Dice")
	assert.Contains(t, view, "Alice (you)")
	assert.Contains(t, view, "Bot")
	assert.Contains(t, view, "Your dice:")
	assert.Contains(t, view, "minimum bet: 1 x 1s")
	assert.Contains(t, view, dice.Face(2).Pips())
}

func TestTabSwitchesFocus(t *testing.T) {
	t.Parallel()
	m := newHumanModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focusedPane)

	// Enter does nothing while the log has focus.
	m.actionInput.SetValue("bet 1 2")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.Game().Bets())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focusedPane)
}
