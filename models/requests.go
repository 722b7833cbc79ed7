package models

// ItemPayload carries the caller-supplied fields for creating or fully
// replacing an item. Identifier and timestamps are always assigned by the
// service and never accepted from the caller.
type ItemPayload struct {
	// Name is the item name, 1 to 100 characters.
	Name string `json:"name"`

	// Description is optional, up to 500 characters.
	Description string `json:"description,omitempty"`

	// Price must be strictly greater than zero.
	Price float64 `json:"price"`

	// Quantity must be greater than or equal to zero.
	Quantity int64 `json:"quantity"`
}

// UserPayload carries the caller-supplied fields for creating a user.
type UserPayload struct {
	// Username is the desired handle, 3 to 50 characters,
	// unique case-insensitively.
	Username string `json:"username"`

	// Email must match a simple e-mail pattern and be unique
	// case-insensitively.
	Email string `json:"email"`

	// FullName is optional.
	FullName string `json:"full_name,omitempty"`

	// Password must be at least 8 characters long. It is validated and
	// then discarded: the service stores no credentials and never echoes
	// this field back.
	Password string `json:"password"`
}

// AuditPayload carries the caller-supplied fields for recording an
// audit-trail entry.
type AuditPayload struct {
	// Action is the free-text action name.
	Action string `json:"action"`

	// Entity is the free-text entity name.
	Entity string `json:"entity"`
}
