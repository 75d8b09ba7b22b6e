package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Task Manager"))
	b.WriteString("\n")

	formTitle := "Add Task"
	if m.editID != "" {
		formTitle = "Update Task"
	}
	form := lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render(formTitle),
		m.title.View(),
		m.desc.View(),
	)

	toggle := "[ ]"
	if m.view == ViewCompleted {
		toggle = "[x]"
	}
	side := lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render("Search"),
		m.search.View(),
		"Show Completed "+toggle,
	)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxStyle.Render(form), " ", boxStyle.Render(side)))
	b.WriteString("\n")

	switch {
	case m.notice != "":
		b.WriteString(errorStyle.Render(m.notice) + "\n")
	case m.state.Error != "":
		b.WriteString(errorStyle.Render(m.state.Error) + "\n")
	}
	if m.state.Loading {
		b.WriteString("Loading...\n")
	}

	if len(m.displayed()) == 0 {
		b.WriteString(mutedStyle.Render("No tasks") + "\n")
	} else {
		b.WriteString(m.table.View() + "\n")
	}

	if m.view == ViewPage {
		p := m.state.Paginated
		b.WriteString(fmt.Sprintf("Page %d of %d (%d tasks)\n", p.CurrentPage, max(p.TotalPages, 1), p.TotalTasks))
	}

	b.WriteString(mutedStyle.Render(helpLine(m.keys.ShortHelp())))
	return b.String()
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
