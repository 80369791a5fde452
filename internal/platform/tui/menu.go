package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/zombie-jump/internal/core"
	"github.com/vovakirdan/zombie-jump/internal/registry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)
	tableBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
)

// PickerModel is the Bubble Tea model for the game picker.
type PickerModel struct {
	games    []registry.GameInfo
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	config   core.RuntimeConfig
	selected string // Set when user selects a game
	quitting bool
}

// NewPickerModel creates a picker listing every registered game.
func NewPickerModel(cfg core.RuntimeConfig) PickerModel {
	m := PickerModel{
		games:  registry.List(),
		help:   help.New(),
		keys:   DefaultPickerKeyMap(),
		width:  cfg.ScreenW,
		config: cfg,
	}
	m.table = m.createTable()
	return m
}

func (m PickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 20},
		{Title: "ID", Width: 14},
	}

	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		rows[i] = table.Row{g.Title, g.ID}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if len(m.games) > 0 {
				m.selected = m.games[m.table.Cursor()].ID
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.config.ScreenW = msg.Width
		m.config.ScreenH = core.Max(msg.Height-1, 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Z O M B I E   J U M P"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(tableBorderStyle.Render(m.table.View()), m.width))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the chosen game ID, or "" if none was chosen.
func (m PickerModel) Selected() string {
	return m.selected
}

// centerText centers every line of text within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	pad := strings.Repeat(" ", (width-w)/2)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// MenuResult holds the result of running the picker.
type MenuResult struct {
	GameID string
	Config core.RuntimeConfig // Updated by resizes while the picker ran
	Quit   bool
}

// RunMenu runs the picker and returns the selection.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewPickerModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok || m.Selected() == "" {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return MenuResult{GameID: m.Selected(), Config: m.config}, nil
}
