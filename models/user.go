package models

import "time"

// User represents a shop customer account used for authentication and
// order ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the internal unique identifier of the user,
	// assigned by the database on registration.
	ID int64 `json:"id"`

	// Username is the unique login identifier chosen at registration.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized to JSON and never holds plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
