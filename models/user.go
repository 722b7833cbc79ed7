package models

import "time"

// User represents a registered account in the users collection.
type User struct {
	// ID is the unique identifier of the user within the users collection.
	// Assigned by the store at creation time and never reused.
	ID int64 `json:"id"`

	// Username is the unique user handle, 3 to 50 characters.
	// Uniqueness is enforced case-insensitively: "Alice" and "alice"
	// are considered the same username.
	Username string `json:"username"`

	// Email is the user's e-mail address.
	// Validated against a simple pattern and unique case-insensitively.
	Email string `json:"email"`

	// FullName is the optional display name of the user.
	FullName string `json:"full_name,omitempty"`

	// IsActive reports whether the account is active.
	// Defaults to true at creation; there is no deactivation operation.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}
