package models

import (
	"time"
)

// User represents a registered account. The password hash never leaves the
// server: it is excluded from JSON and callers expose PublicUser instead.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// PublicUser is the client-facing view of a user.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Public returns the client-facing view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
	}
}

// NewUser creates a new User instance with the given credentials.
// The ID is assigned by the database on insert.
func NewUser(username, passwordHash string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
}
