// Package domain contains core concepts of the chat system.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

// User is an identity record. Immutable once created; the credential is
// stored as a one-way hash and never as plain text.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserSummary is the public projection of a User exposed to other users.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username}
}
