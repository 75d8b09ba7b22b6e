package models

import "time"

// Task is a to-do item owned by exactly one user. UserID never changes
// after creation.
type Task struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	UserID      string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskPatch carries a partial update. Nil fields are left unchanged;
// non-nil fields are applied even when they hold a zero value.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Apply copies the supplied fields onto t.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// TaskFilter selects an owner's tasks. OwnerID is mandatory for every query.
type TaskFilter struct {
	OwnerID string
	// Completed restricts to an exact completion state when non-nil.
	Completed *bool
	// Query is a case-insensitive literal substring matched against title
	// or description when non-empty.
	Query string
}

// Page describes an offset window over a result set.
type Page struct {
	Offset int64
	Limit  int64
}

// TaskPage is one page of an owner's tasks plus the counters needed to
// render a pager.
type TaskPage struct {
	Tasks       []Task `json:"tasks"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	TotalTasks  int64  `json:"totalTasks"`
}
