// Package user defines the account record at the root of every other
// aggregate in the system.
package user

import "time"

// User is a registered account. PasswordHash holds a hex-encoded digest
// and is never serialized.
type User struct {
	ID              string     `json:"userId"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	IsActive        bool       `json:"isActive"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
