// Package user provides user account storage.
package user

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	// adminUsername is the only username granted the admin role on first login.
	adminUsername = "admin"
)

// User is an account identified by its unique username.
type User struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RoleFor returns the role a newly created user receives.
func RoleFor(username string) string {
	if username == adminUsername {
		return RoleAdmin
	}
	return RoleUser
}
