package domain

import "time"

// User is an authenticated account. Accounts carry no privileges by
// themselves; admin capability comes from a separate role assignment.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
