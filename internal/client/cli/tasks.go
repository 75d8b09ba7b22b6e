package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophtasks/internal/client/models"
	"github.com/dmitrijs2005/gophtasks/internal/client/state"
)

// run dispatches pending, performs the action and reduces its result. It
// reports whether the action succeeded; on failure the server message has
// already been printed.
func (a *App) run(ctx context.Context, action func(ctx context.Context) state.Msg) (state.Msg, bool) {
	a.dispatch(state.TasksPending{})
	m := action(ctx)
	a.dispatch(m)

	if _, failed := m.(state.TasksFailed); failed {
		fmt.Fprintln(a.out, "Error:", a.state.Error)
		return m, false
	}
	return m, true
}

// refresh re-fetches whatever the user is looking at: the active search or
// the current page.
func (a *App) refresh(ctx context.Context) {
	if a.query != "" {
		if _, ok := a.run(ctx, func(ctx context.Context) state.Msg { return a.tasks.Search(ctx, a.query) }); ok {
			fmt.Fprintln(a.out, renderTasks(a.state.SearchResults))
		}
		return
	}

	page := a.state.Paginated.CurrentPage
	if _, ok := a.run(ctx, func(ctx context.Context) state.Msg {
		return a.tasks.LoadPage(ctx, page, a.config.PageLimit)
	}); ok {
		fmt.Fprintln(a.out, renderPage(a.state.Paginated))
	}
}

// findTask looks id up in every loaded slice.
func (a *App) findTask(id string) (models.Task, bool) {
	for _, tasks := range [][]models.Task{a.state.Tasks, a.state.Paginated.Tasks, a.state.SearchResults} {
		if i := models.IndexOf(tasks, id); i >= 0 {
			return tasks[i], true
		}
	}
	return models.Task{}, false
}

func (a *App) List(ctx context.Context) error {
	if _, ok := a.run(ctx, a.tasks.Load); ok {
		fmt.Fprintln(a.out, renderTasks(a.state.Tasks))
	}
	return nil
}

// Page shows page n (default: the current one).
func (a *App) Page(ctx context.Context, args []string) error {
	page := a.state.Paginated.CurrentPage
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return usage("page [n]")
		}
		page = n
	}

	a.query = ""
	a.dispatch(state.SearchCleared{})
	if _, ok := a.run(ctx, func(ctx context.Context) state.Msg {
		return a.tasks.LoadPage(ctx, page, a.config.PageLimit)
	}); ok {
		fmt.Fprintln(a.out, renderPage(a.state.Paginated))
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Task title", a.out)
	if err != nil {
		return err
	}
	desc, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	m, ok := a.run(ctx, func(ctx context.Context) state.Msg { return a.tasks.Create(ctx, title, desc) })
	if !ok {
		return nil
	}
	fmt.Fprintln(a.out, "Task created:", m.(state.TaskCreated).Task.ID)
	a.refresh(ctx)
	return nil
}

// Edit prompts for a new title and description. Empty input keeps the
// current value and clearValue empties the description.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("edit <id>")
	}
	id := args[0]

	prompt := func(label, current, hint string, known bool) string {
		if known {
			return fmt.Sprintf("%s [%s] (%s)", label, current, hint)
		}
		return fmt.Sprintf("%s (%s)", label, hint)
	}
	cur, known := a.findTask(id)

	title, err := getSimpleText(a.reader, prompt("Title", cur.Title, "empty keeps current", known), a.out)
	if err != nil {
		return err
	}
	desc, err := getSimpleText(a.reader,
		prompt("Description", cur.Description, "empty keeps current, "+clearValue+" clears", known), a.out)
	if err != nil {
		return err
	}

	var patch models.TaskPatch
	if title != "" {
		patch.Title = &title
	}
	switch desc {
	case "":
	case clearValue:
		empty := ""
		patch.Description = &empty
	default:
		patch.Description = &desc
	}
	if patch == (models.TaskPatch{}) {
		fmt.Fprintln(a.out, "Nothing to change")
		return nil
	}

	if _, ok := a.run(ctx, func(ctx context.Context) state.Msg { return a.tasks.Update(ctx, id, patch) }); !ok {
		return nil
	}
	fmt.Fprintln(a.out, "Task updated")
	a.refresh(ctx)
	return nil
}

// Done toggles completion of a loaded task; an id that is not loaded is
// marked completed.
func (a *App) Done(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("done <id>")
	}
	id := args[0]

	completed := true
	if t, ok := a.findTask(id); ok {
		completed = !t.Completed
	}

	m, ok := a.run(ctx, func(ctx context.Context) state.Msg {
		return a.tasks.Update(ctx, id, models.TaskPatch{Completed: &completed})
	})
	if !ok {
		return nil
	}
	if m.(state.TaskUpdated).Task.Completed {
		fmt.Fprintln(a.out, "Task marked as completed")
	} else {
		fmt.Fprintln(a.out, "Task marked as not completed")
	}
	a.refresh(ctx)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("delete <id>")
	}
	id := args[0]

	if _, ok := a.run(ctx, func(ctx context.Context) state.Msg { return a.tasks.Delete(ctx, id) }); !ok {
		return nil
	}
	fmt.Fprintln(a.out, "Task deleted")
	a.refresh(ctx)
	return nil
}

// Search lists tasks matching the rest of the line; with no query it clears
// the search and shows the first page.
func (a *App) Search(ctx context.Context, args []string) error {
	a.query = strings.TrimSpace(strings.Join(args, " "))
	if a.query == "" {
		a.dispatch(state.SearchCleared{})
		return a.Page(ctx, []string{"1"})
	}
	a.refresh(ctx)
	return nil
}

// Filter lists tasks by completion: "true", "false", or "all" (default).
func (a *App) Filter(ctx context.Context, args []string) error {
	var completed *bool
	if len(args) > 0 {
		switch args[0] {
		case "all":
		case "true", "false":
			v := args[0] == "true"
			completed = &v
		default:
			return usage("filter [true|false|all]")
		}
	}

	if _, ok := a.run(ctx, func(ctx context.Context) state.Msg { return a.tasks.Filter(ctx, completed) }); ok {
		fmt.Fprintln(a.out, renderTasks(a.state.Tasks))
	}
	return nil
}

// Export uploads all tasks and prints the download link; with a file
// argument the export is also downloaded there.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return usage("export [file]")
	}

	m, ok := a.run(ctx, a.tasks.Export)
	if !ok {
		return nil
	}
	exp := m.(state.TasksExported).Export

	fmt.Fprintf(a.out, "Exported %d tasks to %s\n", exp.TaskCount, exp.Key)
	fmt.Fprintf(a.out, "Download (valid until %s):\n%s\n", exp.ExpiresAt.Local().Format(timeLayout), exp.URL)

	if len(args) == 1 {
		if err := a.tasks.SaveExport(ctx, exp, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Saved to", args[0])
	}
	return nil
}

// Board opens the full-screen board and keeps its final state.
func (a *App) Board(ctx context.Context) error {
	st, err := a.board(ctx, a.tasks, a.state, a.config.PageLimit)
	if err != nil {
		return err
	}
	a.state = st
	return nil
}
