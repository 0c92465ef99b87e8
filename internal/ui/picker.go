package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// pickerModel is a bubbletea model for a filterable multi-select list.
// All items start selected; space toggles, enter confirms, esc aborts.
type pickerModel struct {
	filter   textinput.Model
	items    []string
	selected map[string]bool
	visible  []string
	cursor   int
	title    string
	done     bool
	aborted  bool
}

func newPickerModel(title string, items []string) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Focus()

	selected := make(map[string]bool, len(items))
	for _, it := range items {
		selected[it] = true
	}

	return pickerModel{
		filter:   ti,
		items:    items,
		selected: selected,
		visible:  items,
		title:    title,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case " ":
			if m.cursor < len(m.visible) {
				name := m.visible[m.cursor]
				m.selected[name] = !m.selected[name]
			}
			return m, nil
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refilter()
	return m, cmd
}

// refilter recomputes the visible items from the filter text and keeps the
// cursor on a valid row.
func (m *pickerModel) refilter() {
	pattern := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if pattern == "" {
		m.visible = m.items
	} else {
		m.visible = nil
		for _, it := range m.items {
			if strings.Contains(strings.ToLower(it), pattern) {
				m.visible = append(m.visible, it)
			}
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
}

func (m pickerModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.filter.View() + "\n\n")

	for i, it := range m.visible {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ]"
		name := it
		if m.selected[it] {
			box = "[x]"
			name = selectedStyle.Render(it)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, box, name))
	}
	if len(m.visible) == 0 {
		b.WriteString(dimStyle.Render("  no crates match the filter") + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("space: toggle • enter: confirm • esc: abort") + "\n")
	return b.String()
}

// Pick shows an interactive multi-select over items, all pre-selected, and
// returns the kept ones in their original order.
func Pick(title string, items []string) ([]string, error) {
	result, err := tea.NewProgram(newPickerModel(title, items)).Run()
	if err != nil {
		return nil, err
	}
	rm := result.(pickerModel)
	if rm.aborted {
		return nil, fmt.Errorf("user aborted")
	}

	var kept []string
	for _, it := range items {
		if rm.selected[it] {
			kept = append(kept, it)
		}
	}
	return kept, nil
}
