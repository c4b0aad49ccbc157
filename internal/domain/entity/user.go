// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"time"
)

// emailPattern is the address format accepted at registration.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// User is an account that can log in and own todos.
type User struct {
	ID        int64     // Database-assigned identifier, used as the token subject.
	Email     string    // Unique login identifier.
	Password  string    // bcrypt hash of the password, never the plaintext.
	CreatedAt time.Time // Timestamp of when the account was created.
	UpdatedAt time.Time // Timestamp of the last modification to the account.
}

// IsValidEmail reports whether email has the accepted address format.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
