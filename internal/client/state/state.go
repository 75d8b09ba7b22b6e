// Package state holds the client's view of the session and the task lists,
// updated only through Reduce.
package state

import "github.com/dmitrijs2005/gophtasks/internal/client/models"

type Auth struct {
	Token         string
	Authenticated bool
	Loading       bool
	Error         string
}

type State struct {
	Auth          Auth
	Tasks         []models.Task
	Paginated     models.TaskPage
	SearchResults []models.Task
	Loading       bool
	Error         string
}

// New returns the initial state, authenticated when a persisted token exists.
func New(token string) State {
	return State{
		Auth: Auth{
			Token:         token,
			Authenticated: token != "",
		},
		Paginated: models.TaskPage{CurrentPage: 1, TotalPages: 1},
	}
}

// Displayed is what a view lists: search results while a search is active,
// the current page otherwise.
func (s State) Displayed(searching bool) []models.Task {
	if searching {
		return s.SearchResults
	}
	return s.Paginated.Tasks
}
