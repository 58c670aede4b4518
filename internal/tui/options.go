package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the user quits the list without confirming.
var ErrAborted = errors.New("aborted")

// Option is one checkbox in the list.
type Option struct {
	Label   string
	Enabled bool
}

type model struct {
	options   []Option
	cursor    int
	confirmed bool
	aborted   bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case " ", "x":
			if len(m.options) > 0 {
				m.options[m.cursor].Enabled = !m.options[m.cursor].Enabled
			}
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("Options (space toggles, enter confirms):\n\n")
	for i, opt := range m.options {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		check := " "
		if opt.Enabled {
			check = "x"
		}
		b.WriteString(cursor + " [" + check + "] " + opt.Label + "\n")
	}
	if m.confirmed {
		b.WriteString("\nCreating script...\n")
	}
	return b.String()
}

// ToggleOptions shows options as a checkbox list and returns the user's choice.
func ToggleOptions(options []Option) ([]Option, error) {
	start := make([]Option, len(options))
	copy(start, options)

	p := tea.NewProgram(model{options: start})
	m, err := p.Run()
	if err != nil {
		return nil, err
	}
	final := m.(model)
	if final.aborted {
		return nil, ErrAborted
	}
	return final.options, nil
}
