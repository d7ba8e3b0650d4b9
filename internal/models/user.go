package models

import "time"

// User is a credential record keyed by employee number. A record is
// provisioned alongside the employee with empty email and password hash; it
// becomes registered once self-registration fills both in. SessionToken and
// TokenExpiry hold at most one live session per user: issuing a new token
// overwrites the old one.
type User struct {
	EmployeeNumber string
	Email          string
	PasswordHash   string
	SessionToken   *string
	TokenExpiry    *time.Time
}

// Registered reports whether the record has completed self-registration.
func (u User) Registered() bool {
	return u.Email != "" || u.PasswordHash != ""
}
