package state

import (
	"slices"

	"github.com/dmitrijs2005/gophtasks/internal/client/models"
)

// Reduce returns the state that results from applying m to s. The input
// state and its slices are never modified.
func Reduce(s State, m Msg) State {
	switch m := m.(type) {
	case AuthPending:
		s.Auth.Loading = true
		s.Auth.Error = ""
	case AuthFailed:
		s.Auth.Loading = false
		s.Auth.Error = m.Err
	case LoginSucceeded:
		s.Auth = Auth{Token: m.Token, Authenticated: true}
	case RegisterSucceeded:
		s.Auth.Loading = false
	case LoggedOut:
		return New("")

	case TasksPending:
		s.Loading = true
		s.Error = ""
	case TasksFailed:
		s.Loading = false
		s.Error = m.Err
	case TasksLoaded:
		s.Loading = false
		s.Tasks = m.Tasks
	case PageLoaded:
		s.Loading = false
		s.Paginated = m.Page
	case SearchLoaded:
		s.Loading = false
		s.SearchResults = m.Tasks
	case SearchCleared:
		s.SearchResults = nil
	case TaskCreated:
		s.Loading = false
		s.Tasks = append(slices.Clip(s.Tasks), m.Task)
		s.Paginated.Tasks = append([]models.Task{m.Task}, s.Paginated.Tasks...)
		s.Paginated.TotalTasks++
	case TaskUpdated:
		s.Loading = false
		s.Tasks = replace(s.Tasks, m.Task)
		s.Paginated.Tasks = replace(s.Paginated.Tasks, m.Task)
		s.SearchResults = replace(s.SearchResults, m.Task)
	case TaskDeleted:
		s.Loading = false
		found := models.IndexOf(s.Tasks, m.ID) >= 0 ||
			models.IndexOf(s.Paginated.Tasks, m.ID) >= 0 ||
			models.IndexOf(s.SearchResults, m.ID) >= 0
		s.Tasks = remove(s.Tasks, m.ID)
		s.Paginated.Tasks = remove(s.Paginated.Tasks, m.ID)
		s.SearchResults = remove(s.SearchResults, m.ID)
		if found && s.Paginated.TotalTasks > 0 {
			s.Paginated.TotalTasks--
		}
	case TasksExported:
		s.Loading = false
	}
	return s
}

func replace(tasks []models.Task, t models.Task) []models.Task {
	i := models.IndexOf(tasks, t.ID)
	if i < 0 {
		return tasks
	}
	out := slices.Clone(tasks)
	out[i] = t
	return out
}

func remove(tasks []models.Task, id string) []models.Task {
	if models.IndexOf(tasks, id) < 0 {
		return tasks
	}
	return slices.DeleteFunc(slices.Clone(tasks), func(t models.Task) bool {
		return t.ID == id
	})
}
