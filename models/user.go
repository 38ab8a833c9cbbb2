package models

import "time"

// User represents an account entity used for authentication.
// PasswordHash is never serialized; every JSON rendering of a User is safe to
// return to clients.
type User struct {
	// UserID is the store-assigned unique identifier of the user. Immutable.
	UserID int64 `json:"id"`

	// Email is the unique user login identifier, case-sensitive as stored.
	Email string `json:"email"`

	// PasswordHash is the bcrypt output for the user's password.
	// It never leaves the service layer.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created. Immutable.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate is a partial update of a stored user.
// Only non-nil fields are written. PasswordHash must already be hashed.
type UserUpdate struct {
	UserID       int64
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the update carries no fields to change.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.PasswordHash == nil
}
