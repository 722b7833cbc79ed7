package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when a lookup, update, or delete targets
	// an item identifier that is not present in the items collection.
	ErrItemNotFound = errors.New("item not found")

	// ErrUserNotFound is returned when a lookup by identifier or username
	// matches no record in the users collection.
	ErrUserNotFound = errors.New("user not found")
)
