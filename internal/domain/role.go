package domain

import "time"

// Role names a capability granted to a user via a role assignment row.
type Role string

const (
	RoleAdmin Role = "admin"
)

// RoleAssignment links a user to a role. Admin access is decided by the
// presence of an {user_id, admin} row, looked up fresh on every check so a
// revocation takes effect immediately.
type RoleAssignment struct {
	ID        string
	UserID    string
	Role      Role
	CreatedAt time.Time
}
