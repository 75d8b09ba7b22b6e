// Package tui implements the full-screen task board: a create/edit form, a
// search box, a show-completed toggle and a paginated task table.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/gophtasks/internal/client/models"
	"github.com/dmitrijs2005/gophtasks/internal/client/services"
	"github.com/dmitrijs2005/gophtasks/internal/client/state"
)

// FocusRegion identifies which widget receives keystrokes.
type FocusRegion int

const (
	FocusTable FocusRegion = iota
	FocusTitle
	FocusDescription
	FocusSearch
)

// View selects which state slice the table shows.
type View int

const (
	ViewPage View = iota
	ViewSearch
	ViewCompleted
)

const msgTitleRequired = "Title is required"

type Model struct {
	ctx    context.Context
	tasks  services.TaskService
	limit  int
	keys   KeyMap
	state  state.State
	focus  FocusRegion
	view   View
	editID string
	query  string
	notice string
	table  table.Model
	title  textinput.Model
	desc   textinput.Model
	search textinput.Model
}

func newInput(prompt, placeholder string) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	in.Cursor.SetMode(cursor.CursorStatic)
	return in
}

func NewModel(ctx context.Context, ts services.TaskService, st state.State, limit int) Model {
	title := newInput("Title: ", "Task title")
	desc := newInput("Description: ", "Description")
	search := newInput("Search: ", "Search tasks")

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Title", Width: 24},
			{Title: "Description", Width: 36},
			{Title: "Done", Width: 6},
		}),
		table.WithFocused(true),
		table.WithHeight(limit+1),
	)

	m := Model{
		ctx:    ctx,
		tasks:  ts,
		limit:  limit,
		keys:   DefaultKeyMap,
		state:  st,
		table:  t,
		title:  title,
		desc:   desc,
		search: search,
	}
	m.syncRows()
	return m
}

// State returns the board's view of the task lists.
func (m Model) State() state.State { return m.state }

func (m Model) Init() tea.Cmd {
	return m.loadPage(1)
}

func (m Model) action(f func(ctx context.Context) state.Msg) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg { return f(ctx) }
}

func (m Model) loadPage(page int) tea.Cmd {
	return m.action(func(ctx context.Context) state.Msg {
		return m.tasks.LoadPage(ctx, page, m.limit)
	})
}

// refresh re-issues the fetch backing the current view.
func (m Model) refresh() tea.Cmd {
	switch m.view {
	case ViewSearch:
		q := m.query
		return m.action(func(ctx context.Context) state.Msg { return m.tasks.Search(ctx, q) })
	case ViewCompleted:
		yes := true
		return m.action(func(ctx context.Context) state.Msg { return m.tasks.Filter(ctx, &yes) })
	default:
		return m.loadPage(m.state.Paginated.CurrentPage)
	}
}

// displayed returns the tasks the table shows.
func (m Model) displayed() []models.Task {
	switch m.view {
	case ViewSearch:
		return m.state.SearchResults
	case ViewCompleted:
		return m.state.Tasks
	default:
		return m.state.Paginated.Tasks
	}
}

func (m Model) selected() (models.Task, bool) {
	tasks := m.displayed()
	i := m.table.Cursor()
	if i < 0 || i >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[i], true
}

func (m *Model) syncRows() {
	tasks := m.displayed()
	rows := make([]table.Row, 0, len(tasks))
	for _, t := range tasks {
		done := "[ ]"
		if t.Completed {
			done = "[x]"
		}
		rows = append(rows, table.Row{t.Title, t.Description, done})
	}
	m.table.SetRows(rows)
	// SetRows on an empty table leaves the cursor at -1.
	if len(rows) == 0 {
		return
	}
	switch c := m.table.Cursor(); {
	case c < 0:
		m.table.SetCursor(0)
	case c >= len(rows):
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case state.Msg:
		return m.reduce(msg)

	case tea.KeyMsg:
		switch m.focus {
		case FocusTitle, FocusDescription:
			return m.handleFormKeys(msg)
		case FocusSearch:
			return m.handleSearchKeys(msg)
		}
		return m.handleTableKeys(msg)
	}
	return m, nil
}

func (m Model) reduce(msg state.Msg) (tea.Model, tea.Cmd) {
	m.state = state.Reduce(m.state, msg)
	m.syncRows()

	switch msg.(type) {
	case state.TaskCreated, state.TaskUpdated, state.TaskDeleted:
		m.state = state.Reduce(m.state, state.TasksPending{})
		return m, m.refresh()
	}
	return m, nil
}

// begin marks a request as in flight and returns cmd.
func (m Model) begin(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.notice = ""
	m.state = state.Reduce(m.state, state.TasksPending{})
	return m, cmd
}

func (m Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Loading && !key.Matches(msg, m.keys.Quit) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.New):
		m.editID = ""
		m.title.Reset()
		m.desc.Reset()
		return m.focusOn(FocusTitle)

	case key.Matches(msg, m.keys.Edit):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.editID = t.ID
		m.title.SetValue(t.Title)
		m.desc.SetValue(t.Description)
		return m.focusOn(FocusTitle)

	case key.Matches(msg, m.keys.Toggle):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		done := !t.Completed
		id := t.ID
		return m.begin(m.action(func(ctx context.Context) state.Msg {
			return m.tasks.Update(ctx, id, models.TaskPatch{Completed: &done})
		}))

	case key.Matches(msg, m.keys.Delete):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		id := t.ID
		return m.begin(m.action(func(ctx context.Context) state.Msg {
			return m.tasks.Delete(ctx, id)
		}))

	case key.Matches(msg, m.keys.Search):
		return m.focusOn(FocusSearch)

	case key.Matches(msg, m.keys.ShowCompleted):
		if m.view == ViewCompleted {
			m.view = ViewPage
			m.syncRows()
			return m.begin(m.loadPage(1))
		}
		m.view = ViewCompleted
		m.syncRows()
		return m.begin(m.refresh())

	case key.Matches(msg, m.keys.PrevPage):
		if m.view != ViewPage || m.state.Paginated.CurrentPage <= 1 {
			return m, nil
		}
		return m.begin(m.loadPage(m.state.Paginated.CurrentPage - 1))

	case key.Matches(msg, m.keys.NextPage):
		if m.view != ViewPage || m.state.Paginated.CurrentPage >= m.state.Paginated.TotalPages {
			return m, nil
		}
		return m.begin(m.loadPage(m.state.Paginated.CurrentPage + 1))

	case key.Matches(msg, m.keys.Refresh):
		return m.begin(m.refresh())
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) focusOn(f FocusRegion) (tea.Model, tea.Cmd) {
	m.focus = f
	m.title.Blur()
	m.desc.Blur()
	m.search.Blur()

	var cmd tea.Cmd
	switch f {
	case FocusTitle:
		cmd = m.title.Focus()
	case FocusDescription:
		cmd = m.desc.Focus()
	case FocusSearch:
		cmd = m.search.Focus()
	}
	if f == FocusTable {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
	return m, cmd
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editID = ""
		m.title.Reset()
		m.desc.Reset()
		return m.focusOn(FocusTable)

	case key.Matches(msg, m.keys.NextField):
		if m.focus == FocusTitle {
			return m.focusOn(FocusDescription)
		}
		return m.focusOn(FocusTitle)

	case key.Matches(msg, m.keys.Submit):
		if m.focus == FocusTitle {
			return m.focusOn(FocusDescription)
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	if m.focus == FocusTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.desc, cmd = m.desc.Update(msg)
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.title.Value())
	desc := m.desc.Value()
	if title == "" {
		m.notice = msgTitleRequired
		return m.focusOn(FocusTitle)
	}

	var cmd tea.Cmd
	if id := m.editID; id != "" {
		cmd = m.action(func(ctx context.Context) state.Msg {
			return m.tasks.Update(ctx, id, models.TaskPatch{Title: &title, Description: &desc})
		})
	} else {
		cmd = m.action(func(ctx context.Context) state.Msg {
			return m.tasks.Create(ctx, title, desc)
		})
	}

	m.editID = ""
	m.title.Reset()
	m.desc.Reset()
	next, _ := m.focusOn(FocusTable)
	return next.(Model).begin(cmd)
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.focusOn(FocusTable)

	case key.Matches(msg, m.keys.Submit):
		next, _ := m.focusOn(FocusTable)
		m = next.(Model)

		m.query = strings.TrimSpace(m.search.Value())
		if m.query == "" {
			m.view = ViewPage
			m.state = state.Reduce(m.state, state.SearchCleared{})
			m.syncRows()
			return m.begin(m.loadPage(1))
		}
		m.view = ViewSearch
		m.syncRows()
		return m.begin(m.refresh())
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// Run shows the board until the user quits and returns the final state.
func Run(ctx context.Context, ts services.TaskService, st state.State, limit int) (state.State, error) {
	p := tea.NewProgram(NewModel(ctx, ts, st, limit), tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return st, fmt.Errorf("run board: %w", err)
	}
	return final.(Model).state, nil
}
