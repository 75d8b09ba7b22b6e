package models

import "time"

// Export points at a JSON snapshot of an owner's tasks in object storage.
type Export struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	TaskCount int       `json:"taskCount"`
	ExpiresAt time.Time `json:"expiresAt"`
}
