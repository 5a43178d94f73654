package models

import "time"

// User represents an account entity used for authentication and post
// ownership. Credential fields must never leave trusted boundaries:
// PasswordHash is excluded from JSON and Password is accepted on input only.
type User struct {
	// UserID is the unique identifier of the user, assigned by the database.
	UserID int64 `json:"id"`

	// Username is the unique public handle of the user.
	Username string `json:"username"`

	// Email is the unique e-mail address used for login.
	Email string `json:"email"`

	// Password carries the plaintext credential on register/login requests.
	// It is never persisted and never serialized in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	// Excluded from JSON in both directions.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the authenticated actor derived from a verified bearer token.
// It is attached to the request context by the authentication middleware and
// consumed by handlers and the authorization policy.
type Identity struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
