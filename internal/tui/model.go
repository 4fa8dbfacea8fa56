package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/averycrespi/calc-mcp/internal/keypad"
)

// Model is the terminal keypad. It renders the display above the key grid
// and forwards keyboard and mouse input to the calculator.
type Model struct {
	calculator *keypad.Calculator
	rows       [][]keypad.Key
	keys       keyMap
	help       help.Model

	// Label of the most recent key press, highlighted in the grid
	lastPressed string
}

// NewModel creates a keypad model around c
func NewModel(c *keypad.Calculator) Model {
	return Model{
		calculator: c,
		rows:       keypad.Rows(),
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Evaluate):
			m.press(keypad.LabelEvaluate)
		case key.Matches(msg, m.keys.Delete):
			m.press(keypad.LabelDelete)
		case key.Matches(msg, m.keys.Clear):
			m.press(keypad.LabelClear)
		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
			m.press(string(msg.Runes[0]))
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if k, ok := ButtonAt(msg.X, msg.Y); ok {
				m.press(k.Label)
			}
		}
	}
	return m, nil
}

// press ignores names without a key, like a keyboard handler ignoring unmapped keys
func (m *Model) press(name string) {
	outcome, err := m.calculator.Press(name)
	if err != nil {
		return
	}
	m.lastPressed = outcome.Key.Label
}

// Display returns the calculator display text
func (m Model) Display() string {
	return m.calculator.Display()
}

// View renders the model
func (m Model) View() string {
	var b strings.Builder

	display := m.calculator.Display()
	if display == "" {
		display = PlaceholderStyle.Render("0")
	}
	b.WriteString(DisplayStyle.Render(display))
	b.WriteString("\n")

	for _, row := range m.rows {
		cells := make([]string, 0, len(row))
		for _, k := range row {
			if k.Hidden() {
				cells = append(cells, HiddenButtonStyle.Render(""))
				continue
			}
			cells = append(cells, buttonStyle(k, k.Label == m.lastPressed).Render(k.Label))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// ButtonAt returns the visible key rendered at the terminal cell (x, y)
func ButtonAt(x, y int) (keypad.Key, bool) {
	if x < 0 || y < displayHeight {
		return keypad.Key{}, false
	}
	row := (y - displayHeight) / buttonHeight
	col := x / buttonWidth
	if row >= len(keypad.Layout) || col >= len(keypad.Layout[row]) {
		return keypad.Key{}, false
	}
	k, ok := keypad.Lookup(keypad.Layout[row][col])
	if !ok || k.Hidden() {
		return keypad.Key{}, false
	}
	return k, true
}
