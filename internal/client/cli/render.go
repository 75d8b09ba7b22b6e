package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/gophtasks/internal/client/models"
)

const (
	maxTitleWidth       = 32
	maxDescriptionWidth = 48
	timeLayout          = "2006-01-02 15:04"
	msgNoTasks          = "No tasks found."

	// clearValue entered at the description prompt of edit empties it.
	clearValue = "-"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderTasks draws tasks as a table; ids are shown in full so they can be
// passed to edit, done and delete.
func renderTasks(tasks []models.Task) string {
	if len(tasks) == 0 {
		return msgNoTasks
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "DESCRIPTION", "DONE", "CREATED").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, task := range tasks {
		done := ""
		if task.Completed {
			done = "x"
		}
		created := ""
		if !task.CreatedAt.IsZero() {
			created = humanize.Time(task.CreatedAt)
		}
		t.Row(
			task.ID,
			ansi.Truncate(task.Title, maxTitleWidth, "…"),
			ansi.Truncate(oneLine(task.Description), maxDescriptionWidth, "…"),
			done,
			created,
		)
	}
	return t.String()
}

func renderPage(p models.TaskPage) string {
	return fmt.Sprintf("%s\nPage %d of %d (%d tasks)", renderTasks(p.Tasks), p.CurrentPage, max(p.TotalPages, 1), p.TotalTasks)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
