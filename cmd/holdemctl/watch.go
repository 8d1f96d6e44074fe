package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/Marcennaji/HoldemCore-sub002/internal/cards"
	"github.com/Marcennaji/HoldemCore-sub002/internal/engine"
	"github.com/Marcennaji/HoldemCore-sub002/internal/session"
)

// watchModel is the --watch spectator viewer: a scrolling log of every
// GameEvents callback the engine fires, rendered in a bubbles/viewport the
// same way internal/tui/tui.go renders its game log, minus the action
// textinput since watch mode never drives a human seat itself.
type watchModel struct {
	logger *log.Logger

	vp       viewport.Model
	lines    []string
	width    int
	height   int
	quitting bool

	handsTarget int
	handsDone   int
	done        bool
}

// handLogMsg is one appended log line, sent from the hand-driving goroutine.
type handLogMsg string

// handsCompleteMsg signals the requested number of hands finished running.
type handsCompleteMsg struct{}

// handDoneMsg reports one more hand finished, keeping handsDone mutation on
// the Update goroutine rather than the background hand-driving goroutine.
type handDoneMsg int

func newWatchModel(hands int, logger *log.Logger) *watchModel {
	vp := viewport.New(80, 20)
	return &watchModel{
		logger:      logger.WithPrefix("watch"),
		vp:          vp,
		handsTarget: hands,
	}
}

func (m *watchModel) Init() tea.Cmd { return nil }

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 3

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case handLogMsg:
		m.lines = append(m.lines, string(msg))
		m.vp.SetContent(strings.Join(m.lines, "\n"))
		m.vp.GotoBottom()

	case handDoneMsg:
		m.handsDone = int(msg)

	case handsCompleteMsg:
		m.done = true
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

var watchHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))

func (m *watchModel) View() string {
	if m.quitting {
		return ""
	}
	header := watchHeaderStyle.Render(fmt.Sprintf("hand %d/%d", m.handsDone, m.handsTarget))
	footer := "q to quit"
	if m.done {
		footer = "all hands played — q to quit"
	}
	return header + "\n" + m.vp.View() + "\n" + footer
}

// runWatch plays hands in the background, feeding every GameEvents callback
// into the viewer's scrolling log, and blocks until the viewer quits.
func runWatch(sess *session.Session, hands int, logger *log.Logger) error {
	m := newWatchModel(hands, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())

	send := func(format string, args ...any) {
		p.Send(handLogMsg(fmt.Sprintf(format, args...)))
	}

	sess.SetEvents(&engine.GameEvents{
		OnBettingRoundStarted: func(street engine.Street) {
			send("-- %s --", street)
		},
		OnBoardCardsDealt: func(board cards.Hand) {
			send("board: %s", formatHand(board))
		},
		OnPlayerActed: func(action engine.PlayerAction) {
			if action.Amount > 0 {
				send("player %d: %s %s", action.PlayerID, action.Kind, humanize.Comma(int64(action.Amount)))
			} else {
				send("player %d: %s", action.PlayerID, action.Kind)
			}
		},
		OnHandCompleted: func(winnerIDs []int, totalPot int) {
			send("hand complete: winners=%v pot=%s", winnerIDs, humanize.Comma(int64(totalPot)))
		},
		OnInvalidPlayerAction: func(playerID int, action engine.PlayerAction, reason error) {
			send("player %d: rejected %s (%v)", playerID, action.Kind, reason)
		},
		OnEngineError: func(message string) {
			send("engine error: %s", message)
		},
	})

	go func() {
		for i := 0; i < hands; i++ {
			h, err := sess.PlayHand()
			if err != nil {
				send("hand %d failed: %v", i, err)
				continue
			}
			if !h.IsComplete() {
				send("hand %d stalled awaiting human input; watch mode does not drive a human seat", i)
				break
			}
			p.Send(handDoneMsg(i + 1))
		}
		p.Send(handsCompleteMsg{})
	}()

	_, err := p.Run()
	return err
}

func formatHand(h cards.Hand) string {
	cs := h.Cards()
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
