package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophtasks/internal/client/models"
	"github.com/dmitrijs2005/gophtasks/internal/client/state"
)

// fakeTasks records calls and answers from canned data.
type fakeTasks struct {
	calls []string
	page  models.TaskPage
	found []models.Task
	fail  string

	lastPage  int
	lastQuery string
	lastID    string
	lastPatch models.TaskPatch
	lastTitle string
	lastDesc  string
}

func (f *fakeTasks) record(call string) bool {
	f.calls = append(f.calls, call)
	return f.fail == call
}

func (f *fakeTasks) Load(context.Context) state.Msg {
	f.record("load")
	return state.TasksLoaded{Tasks: f.found}
}

func (f *fakeTasks) LoadPage(_ context.Context, page, _ int) state.Msg {
	f.lastPage = page
	if f.record("page") {
		return state.TasksFailed{Err: "boom"}
	}
	p := f.page
	p.CurrentPage = page
	return state.PageLoaded{Page: p}
}

func (f *fakeTasks) Create(_ context.Context, title, description string) state.Msg {
	f.lastTitle, f.lastDesc = title, description
	f.record("create")
	return state.TaskCreated{Task: models.Task{ID: "new", Title: title, Description: description}}
}

func (f *fakeTasks) Update(_ context.Context, id string, patch models.TaskPatch) state.Msg {
	f.lastID, f.lastPatch = id, patch
	f.record("update")
	t := models.Task{ID: id}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	return state.TaskUpdated{Task: t}
}

func (f *fakeTasks) Delete(_ context.Context, id string) state.Msg {
	f.lastID = id
	f.record("delete")
	return state.TaskDeleted{ID: id}
}

func (f *fakeTasks) Search(_ context.Context, query string) state.Msg {
	f.lastQuery = query
	f.record("search")
	return state.SearchLoaded{Tasks: f.found}
}

func (f *fakeTasks) Filter(_ context.Context, _ *bool) state.Msg {
	f.record("filter")
	return state.TasksLoaded{Tasks: f.found}
}

func (f *fakeTasks) Export(context.Context) state.Msg {
	f.record("export")
	return state.TasksExported{}
}

func (f *fakeTasks) SaveExport(context.Context, models.Export, string) error { return nil }

func testTasks() *fakeTasks {
	return &fakeTasks{
		page: models.TaskPage{
			Tasks: []models.Task{
				{ID: "t1", Title: "Write report", Description: "quarterly"},
				{ID: "t2", Title: "Test Task", Completed: true},
			},
			TotalPages: 3,
			TotalTasks: 12,
		},
		found: []models.Task{{ID: "t2", Title: "Test Task", Completed: true}},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msg and runs the resulting command, feeding its message back.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(Model)
	for cmd != nil {
		out := cmd()
		sm, ok := out.(state.Msg)
		if !ok {
			break
		}
		updated, cmd = m.Update(sm)
		m = updated.(Model)
	}
	return m
}

func newLoaded(t *testing.T, f *fakeTasks) Model {
	t.Helper()
	m := NewModel(context.Background(), f, state.New("tok"), 5)
	msg := m.Init()()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestInitLoadsFirstPage(t *testing.T) {
	f := testTasks()
	m := newLoaded(t, f)

	assert.Equal(t, []string{"page"}, f.calls)
	assert.Equal(t, 1, f.lastPage)
	assert.Len(t, m.displayed(), 2)
	assert.Contains(t, m.View(), "Write report")
	assert.Contains(t, m.View(), "Page 1 of 3 (12 tasks)")
}

func TestCursorStartsOnFirstRow(t *testing.T) {
	f := testTasks()
	m := newLoaded(t, f)

	assert.Equal(t, 0, m.table.Cursor())
	got, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "t1", got.ID)
}

func TestCursorRecoversAfterEmptyView(t *testing.T) {
	f := testTasks()
	full := f.page.Tasks
	f.page.Tasks = nil
	m := newLoaded(t, f)

	_, ok := m.selected()
	assert.False(t, ok)

	f.page.Tasks = full
	m = press(t, m, runes("r"))

	got, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "t1", got.ID)

	m = press(t, m, runes("x"))
	assert.Equal(t, "t1", f.lastID)
	assert.Equal(t, []string{"page", "page", "update", "page"}, f.calls)
}

func TestCreateTaskRefreshesPage(t *testing.T) {
	f := testTasks()
	m := newLoaded(t, f)

	m = press(t, m, runes("n"))
	require.Equal(t, FocusTitle, m.focus)

	m = press(t, m, runes("Buy milk"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FocusDescription, m.focus)
	m = press(t, m, runes("2 litres"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, FocusTable, m.focus)
	assert.Equal(t, "Buy milk", f.lastTitle)
	assert.Equal(t, "2 litres", f.lastDesc)
	assert.Equal(t, []string{"page", "create", "page"}, f.calls)
	assert.Empty(t, m.title.Value())
	assert.False(t, m.state.Loading)
}

func TestCreateRequiresTitle(t *testing.T) {
	f := testTasks()
	m := newLoaded(t, f)

	m = press(t, m, runes("n"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, FocusTitle, m.focus)
	assert.Equal(t, msgTitleRequired, m.notice)
	assert.Equal(t, []string{"page"}, f.calls)
}

func TestEditSelectedTask(t *testing.T) {
	f := testTasks()
	m := newLoaded(t, f)

	m = press(t, m, runes("e"))
	require.Equal(t, "t1", m.editID)
	assert.Equal(t, "Write report", m.title.Value())
	assert.Contains(t, m.View(), "Update Task")

	m = press(t, m, runes("!"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "t1", f.lastID)
	require.NotNil(t, f.lastPatch.Title)
	assert.Equal(t, "Write report!", *f.lastPatch.Title)
	assert.Nil(t, f.lastPatch.Completed)
	assert.Empty(t, m.editID)
}

func TestEscCancelsEdit(t *testing.T) {
	m := newLoaded(t, testTasks())

	m = press(t, m, runes("e"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, FocusTable, m.focus)
	assert.Empty(t, m.editID)
	assert.Empty(t, m.title.Value())
}

func TestToggleCompletion(t *testing.T) {
	f := testTasks()
	m := newLoaded(t, f)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, runes(" "))

	assert.Equal(t, "t2", f.lastID)
	require.NotNil(t, f.lastPatch.Completed)
	assert.False(t, *f.lastPatch.Completed, "completed task toggles back")
	assert.Equal(t, []string{"page", "update", "page"}, f.calls)
}

func TestDeleteSelected(t *testing.T) {
	f := testTasks()
	m := newLoaded(t, f)

	_ = press(t, m, runes("d"))

	assert.Equal(t, "t1", f.lastID)
	assert.Equal(t, []string{"page", "delete", "page"}, f.calls)
}

func TestSearchAndClear(t *testing.T) {
	f := testTasks()
	m := newLoaded(t, f)

	m = press(t, m, runes("/"))
	require.Equal(t, FocusSearch, m.focus)
	m = press(t, m, runes("test"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ViewSearch, m.view)
	assert.Equal(t, "test", f.lastQuery)
	assert.Equal(t, f.found, m.displayed())
	assert.NotContains(t, m.View(), "Page 1 of")

	// mutations while searching refresh the search
	_ = press(t, m, runes("x"))
	assert.Equal(t, "search", f.calls[len(f.calls)-1])

	m = press(t, m, runes("/"))
	for range "test" {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ViewPage, m.view)
	assert.Empty(t, m.state.SearchResults)
	assert.Equal(t, 1, f.lastPage)
}

func TestShowCompletedToggle(t *testing.T) {
	f := testTasks()
	m := newLoaded(t, f)

	m = press(t, m, runes("c"))
	assert.Equal(t, ViewCompleted, m.view)
	assert.Equal(t, "filter", f.calls[len(f.calls)-1])
	assert.Contains(t, m.View(), "Show Completed [x]")

	m = press(t, m, runes("c"))
	assert.Equal(t, ViewPage, m.view)
	assert.Equal(t, "page", f.calls[len(f.calls)-1])
}

func TestPaging(t *testing.T) {
	f := testTasks()
	m := newLoaded(t, f)

	m = press(t, m, runes("h"))
	assert.Len(t, f.calls, 1, "no page before the first")

	m = press(t, m, runes("l"))
	assert.Equal(t, 2, f.lastPage)
	assert.Equal(t, 2, m.state.Paginated.CurrentPage)

	m = press(t, m, runes("l"))
	m = press(t, m, runes("l"))
	assert.Equal(t, 3, m.state.Paginated.CurrentPage, "no page past the last")
}

func TestFailureKeepsRows(t *testing.T) {
	f := testTasks()
	m := newLoaded(t, f)
	f.fail = "page"

	m = press(t, m, runes("r"))

	assert.Equal(t, "boom", m.state.Error)
	assert.Len(t, m.displayed(), 2)
	assert.True(t, strings.Contains(m.View(), "boom"))
}

func TestQuit(t *testing.T) {
	m := newLoaded(t, testTasks())

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
