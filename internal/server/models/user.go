// Package models defines server-side data models shared by repositories,
// services and the REST layer.
package models

import "time"

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// UserSummary is the outward view of a User: no secret material.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary strips the password hash.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
