package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/island/internal/engine"
	"github.com/tatianab/island/internal/models"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateOver
)

type model struct {
	state     sessionState
	newGame   func() *engine.Game
	game      *engine.Game
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF8787"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)
)

func NewModel(newGame func() *engine.Game) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	m := model{
		state:     statePlaying,
		newGame:   newGame,
		textInput: ti,
	}
	m.start()
	return m
}

func (m *model) start() {
	m.game = m.newGame()
	m.state = statePlaying
	m.gameLog = gameStyle.Render(m.game.Welcome()) + "\n"
	m.textInput.Placeholder = "What do you do?"
	m.textInput.Reset()
	m.refresh()
}

func (m *model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m *model) refresh() {
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			action := strings.TrimSpace(m.textInput.Value())
			m.textInput.Reset()

			switch {
			case action == "/quit":
				return m, tea.Quit
			case action == "/restart", m.state == stateOver:
				m.start()
				return m, nil
			case action == "":
				return m, nil
			}

			styledAction := userStyle.Width(m.logWidth()).Render("> " + action)
			m.gameLog += "\n" + styledAction + "\n"
			m.processTurn(action)
			if m.game.Status() == engine.StatusQuit {
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(m.logWidth(), msg.Height-6)
		} else {
			m.viewport.Width = m.logWidth()
			m.viewport.Height = msg.Height - 6
		}
		m.refresh()
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *model) processTurn(action string) {
	res := m.game.Execute(action)
	style := gameStyle
	if res.Err != nil {
		style = failStyle
	}
	m.gameLog += style.Width(m.logWidth()).Render(strings.TrimRight(res.Output, "\n")) + "\n"
	if res.Status.Terminal() {
		m.state = stateOver
		m.gameLog += "\n" + gameStyle.Render(strings.TrimPrefix(engine.Farewell, "\n")) + "\n"
		m.textInput.Placeholder = "Press Enter to play again"
	}
	m.refresh()
}

func (m model) View() string {
	logView := m.viewport.View()
	stateView := m.renderState()

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		logView,
		stateView,
	)

	help := helpStyle.Render("Commands: help, /restart, /quit. Esc leaves the game.")

	s := lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	)
	return "\n" + s + "\n"
}

func (m model) renderState() string {
	if m.game == nil {
		return ""
	}

	snap := m.game.Snapshot()

	location := titleStyle.Render("LOCATION") + "\n" + snap.Room + "\n\n"

	statsTitle := titleStyle.Render("STATS") + "\n"
	stats := level("Water", snap.Water) + level("Food", snap.Food)
	if snap.BottleFilled {
		stats += "Bottle: full\n"
	}
	stats += fmt.Sprintf("Turns: %d\n\n", snap.Turns)

	invTitle := titleStyle.Render("INVENTORY") + "\n"
	inventory := ""
	if len(snap.Inventory) == 0 {
		inventory = "(empty)"
	} else {
		for _, item := range snap.Inventory {
			inventory += "- " + item + "\n"
		}
	}

	content := location + statsTitle + stats + invTitle + inventory

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

func level(name string, value int) string {
	line := fmt.Sprintf("%s: %d%%", name, value)
	if value < models.LowLevel {
		line = warnStyle.Render(line)
	}
	return line + "\n"
}

func (m model) renderLog() string {
	return m.gameLog
}

// Run starts the interactive front end. newGame is called for the first
// session and again on every restart.
func Run(newGame func() *engine.Game, altScreen bool) error {
	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(NewModel(newGame), opts...)
	_, err := p.Run()
	return err
}
