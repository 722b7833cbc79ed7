package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName        = errors.New("name must be between 1 and 100 characters")
	ErrDescriptionTooLong = errors.New("description must not exceed 500 characters")
	ErrInvalidPrice       = errors.New("price must be greater than zero")
	ErrInvalidQuantity    = errors.New("quantity must not be negative")

	ErrInvalidUsername = errors.New("username must be between 3 and 50 characters")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPassword = errors.New("password must be at least 8 characters")

	// ErrDuplicateUsername and ErrDuplicateEmail report a case-insensitive
	// collision on a unique user field at creation time. Username is always
	// checked before email, so when both fields collide the username error
	// wins.
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)
