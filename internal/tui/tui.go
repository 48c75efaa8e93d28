// Package tui is the terminal front end: one seat may be played from the
// keyboard while bots take the others.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/liarsdice/internal/dice"
	"github.com/lox/liarsdice/internal/game"
	"github.com/lox/liarsdice/internal/runner"
)

// Config controls pacing of automated play.
type Config struct {
	TurnDelay   time.Duration
	RevealDelay time.Duration
}

// botTurnMsg asks the current bot to act.
type botTurnMsg struct{}

// revealDoneMsg ends the pause after a call.
type revealDoneMsg struct{}

// Model represents the Bubble Tea model for a game of Liar's Dice
type Model struct {
	game   *game.Game
	agents []game.Agent // nil entry marks the human seat
	human  int          // -1 when only bots play
	config Config
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	// State
	gameLog     []string
	message     string
	revealing   bool
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	// Dimensions
	width       int
	height      int
	initialized bool
}

// New creates a model for g. agents[i] plays seat i; at most one entry may be
// nil, and that seat reads its actions from the keyboard.
func New(g *game.Game, agents []game.Agent, logger *log.Logger, config Config) (*Model, error) {
	if len(agents) != g.PlayerCount() {
		return nil, fmt.Errorf("have %d agents for %d seats", len(agents), g.PlayerCount())
	}
	human := -1
	for seat, a := range agents {
		if a != nil {
			continue
		}
		if human >= 0 {
			return nil, fmt.Errorf("seats %d and %d both have no agent", human, seat)
		}
		human = seat
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "bet <count> <face>, call, quit"
	ti.CharLimit = 40
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "
	ti.Focus()

	m := &Model{
		game:        g,
		agents:      agents,
		human:       human,
		config:      config,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		actionInput: ti,
		focusedPane: 1,
	}
	m.addLog(InfoStyle.Render(fmt.Sprintf("Round %d: %s opens", g.Round(), m.name(g.CurrentPlayer()))))
	return m, nil
}

// Game returns the current snapshot.
func (m *Model) Game() *game.Game {
	return m.game
}

// Log returns the game log lines.
func (m *Model) Log() []string {
	return append([]string(nil), m.gameLog...)
}

// Message returns the status line shown above the input.
func (m *Model) Message() string {
	return m.message
}

// Revealing reports whether every hand is currently shown after a call.
func (m *Model) Revealing() bool {
	return m.revealing
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.scheduleNext())
}

// scheduleNext returns the tick for the next bot turn, if one is due.
func (m *Model) scheduleNext() tea.Cmd {
	if m.game.IsOver() || m.revealing || m.isHumanTurn() {
		return nil
	}
	return tea.Tick(m.config.TurnDelay, func(time.Time) tea.Msg { return botTurnMsg{} })
}

func (m *Model) isHumanTurn() bool {
	return m.human >= 0 && m.game.CurrentPlayer() == m.human && !m.game.IsOver()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case botTurnMsg:
		if m.game.IsOver() || m.revealing || m.isHumanTurn() {
			return m, nil
		}
		return m, m.playBot()

	case revealDoneMsg:
		m.revealing = false
		if winner, ok := m.game.Winner(); ok {
			m.message = SuccessStyle.Render(fmt.Sprintf("%s wins the game! Type quit to exit.", m.name(winner)))
			return m, nil
		}
		m.addLog(InfoStyle.Render(fmt.Sprintf("Round %d: %s opens", m.game.Round(), m.name(m.game.CurrentPlayer()))))
		return m, m.scheduleNext()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.actionInput.Focus()
			} else {
				m.focusedPane = 0
				m.actionInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				input := m.actionInput.Value()
				m.actionInput.SetValue("")
				if cmd := m.handleInput(input); cmd != nil {
					return m, cmd
				}
			}
		case "up", "pgup":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "down", "pgdown":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleInput processes a submitted line from the human player.
func (m *Model) handleInput(input string) tea.Cmd {
	cmd, err := ParseCommand(input)
	if err != nil {
		m.message = ErrorStyle.Render(err.Error())
		return nil
	}

	switch cmd.Kind {
	case CommandQuit:
		m.quitting = true
		return tea.Quit
	case CommandHelp:
		m.message = InfoStyle.Render(helpText)
		return nil
	}

	if !m.isHumanTurn() || m.revealing {
		m.message = WarningStyle.Render("Not your turn")
		return nil
	}

	action, _ := cmd.Action()
	next, err := m.game.Apply(action)
	if err != nil {
		m.logger.Debug("Rejected action", "input", input, "error", err)
		m.message = ErrorStyle.Render(err.Error())
		return nil
	}
	m.message = ""
	return m.advance(m.human, action, next)
}

// playBot asks the current bot for a decision and applies it, falling back
// to a legal action if the bot's choice is rejected.
func (m *Model) playBot() tea.Cmd {
	seat := m.game.CurrentPlayer()
	decision := m.agents[seat].Decide(m.game.ViewFor(seat))

	next, err := m.game.Apply(decision.Action)
	if err != nil {
		m.logger.Error("Failed to apply bot decision", "error", err, "player", m.name(seat))
		decision = runner.FallbackDecision(m.game.ViewFor(seat))
		if next, err = m.game.Apply(decision.Action); err != nil {
			m.message = ErrorStyle.Render(err.Error())
			return nil
		}
	}
	m.logger.Debug("Bot decision", "player", m.name(seat), "action", decision.Action, "reasoning", decision.Reasoning)
	return m.advance(seat, decision.Action, next)
}

// advance records an accepted action and moves to next.
func (m *Model) advance(seat int, action game.Action, next *game.Game) tea.Cmd {
	prev := m.game
	m.game = next

	if action.Kind != game.Call {
		m.addLog(fmt.Sprintf("%s bets %s", m.name(seat), BetStyle.Render(action.Claim.String())))
		return m.scheduleNext()
	}

	res, _ := next.LastResolution()
	m.addLog(fmt.Sprintf("%s calls %s's bet of %s", m.name(seat), m.name(res.Bet.Bettor), BetStyle.Render(res.Bet.Claim().String())))
	for s, hand := range res.Hands {
		if prev.DiceRemaining(s) == 0 {
			continue
		}
		m.addLog(fmt.Sprintf("  %-12s %s", m.name(s), formatDice(hand, res.Bet.Face)))
	}

	verdict := ErrorStyle.Render("a lie")
	if res.Valid {
		verdict = SuccessStyle.Render("true")
	}
	m.addLog(fmt.Sprintf("%d showing: the bet was %s. %s loses a die.", res.Actual, verdict, m.name(res.Loser)))
	if res.Eliminated {
		m.addLog(WarningStyle.Render(fmt.Sprintf("%s is out of the game.", m.name(res.Loser))))
	}
	if res.GameOver {
		m.addLog(SuccessStyle.Render(fmt.Sprintf("%s wins!", m.name(res.Winner))))
	}

	m.revealing = true
	return tea.Tick(m.config.RevealDelay, func(time.Time) tea.Msg { return revealDoneMsg{} })
}

func (m *Model) name(seat int) string {
	name := m.game.Player(seat).Name
	if seat == m.human {
		return name + " (you)"
	}
	return name
}

func (m *Model) addLog(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// formatDice renders faces, highlighting those matching face.
func formatDice(faces []dice.Face, face dice.Face) string {
	parts := make([]string, len(faces))
	for i, f := range faces {
		style := DiceStyle
		if f == face {
			style = MatchDiceStyle
		}
		parts[i] = style.Render(f.Pips())
	}
	return strings.Join(parts, " ")
}

func hiddenDice(n int) string {
	return HiddenDiceStyle.Render(strings.TrimSpace(strings.Repeat(dice.Face(0).Pips()+" ", n)))
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent) + 2
	actionPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(max(1, m.width-2)).
		Render(actionContent)

	sidebarContent := m.renderSidebarPane()
	sidebarWidth := max(30, lipgloss.Width(sidebarContent))
	paneHeight := max(1, m.height-actionHeight-3)

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	logWidth := max(1, m.width-sidebarWidth-4)
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(paneHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(lipgloss.Color("#04B575"))
	}

	header := HeaderStyle.Render(fmt.Sprintf("Liar's Dice  Round %d  %d dice in play", m.game.Round(), m.game.TotalDice()))
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logStyle.Render(m.logViewport.View()), sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Left, header, topRow, actionPane)
}

// renderSidebarPane lists players, their dice and the bet chain.
func (m *Model) renderSidebarPane() string {
	var b strings.Builder
	res, hasRes := m.game.LastResolution()

	b.WriteString(InfoStyle.Render("Players"))
	b.WriteString("\n")
	for _, p := range m.game.Players() {
		marker := "  "
		if p.Seat == m.game.CurrentPlayer() && !m.game.IsOver() {
			marker = "> "
		}

		var hand string
		switch {
		case m.revealing && hasRes:
			hand = formatDice(res.Hands[p.Seat], res.Bet.Face)
		case p.Seat == m.human || m.human < 0:
			hand = formatDice(p.Hand(), 0)
		default:
			hand = hiddenDice(p.DiceRemaining)
		}

		line := fmt.Sprintf("%s%s (%d) %s", marker, m.name(p.Seat), p.DiceRemaining, hand)
		switch {
		case p.IsEliminated() && !(m.revealing && hasRes && res.Loser == p.Seat):
			line = EliminatedStyle.Render(fmt.Sprintf("  %s", m.name(p.Seat)))
		case marker == "> ":
			line = CurrentPlayerStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("Bets this round"))
	b.WriteString("\n")
	bets := m.game.Bets()
	if len(bets) == 0 {
		b.WriteString("  none\n")
	}
	for _, bet := range bets {
		fmt.Fprintf(&b, "  %s: %s\n", m.name(bet.Bettor), BetStyle.Render(bet.Claim().String()))
	}
	return b.String()
}

// renderActionPane shows the human's hand, the input and help text.
func (m *Model) renderActionPane() string {
	var b strings.Builder

	switch {
	case m.isHumanTurn() && !m.revealing:
		var last *game.Bet
		if bet, ok := m.game.LastBet(); ok {
			last = &bet
		}
		fmt.Fprintf(&b, "Your dice: %s   minimum bet: %s\n",
			formatDice(m.game.Hand(m.human), 0), BetStyle.Render(game.MinimumRaise(last).String())))
	case m.game.IsOver():
		b.WriteString(SuccessStyle.Render("Game over") + "\n")
	default:
		b.WriteString(InfoStyle.Render("Waiting...") + "\n")
	}

	if m.message != "" {
		b.WriteString(m.message)
		b.WriteString("\n")
	}
	b.WriteString(m.actionInput.View())
	b.WriteString("\n")

	if m.focusedPane == 0 {
		b.WriteString(InfoStyle.Render("Log focused: ↑↓ scroll, Tab to input"))
	} else {
		b.WriteString(InfoStyle.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}
	return b.String()
}
