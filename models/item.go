package models

import "time"

// Item represents a single inventory position.
// It is the primary model for the items collection.
type Item struct {
	// ID is the unique identifier of the item within the items collection.
	// Assigned by the store at creation time and never reused.
	ID int64 `json:"id"`

	// Name is the human-readable item name.
	// Required, 1 to 100 characters.
	Name string `json:"name"`

	// Description is an optional free-text description, up to 500 characters.
	Description string `json:"description,omitempty"`

	// Price is the unit price of the item.
	// Must be strictly greater than zero.
	Price float64 `json:"price"`

	// Quantity is the number of units on hand.
	// Must be greater than or equal to zero.
	Quantity int64 `json:"quantity"`

	// CreatedAt is the timestamp when the item was created.
	// Set once and never modified afterwards.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last successful update.
	// Equal to CreatedAt for a freshly created item and refreshed on
	// every update, so UpdatedAt >= CreatedAt always holds.
	UpdatedAt time.Time `json:"updated_at"`
}
