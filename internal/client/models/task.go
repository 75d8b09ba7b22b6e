// Package models holds the client's view of API payloads.
package models

import "time"

type Task struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	User        string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskPatch is the body of an update; nil fields are not sent.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

type TaskPage struct {
	Tasks       []Task `json:"tasks"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	TotalTasks  int64  `json:"totalTasks"`
}

type Export struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	TaskCount int       `json:"taskCount"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IndexOf returns the position of the task with id in tasks, or -1.
func IndexOf(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
