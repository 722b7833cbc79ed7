package models

import "time"

// Stats is the aggregate computed by the statistics service.
// It is derived from a fresh scan of the stores on every request and
// never cached.
type Stats struct {
	// TotalItems is the number of items currently in the items collection.
	TotalItems int64 `json:"total_items"`

	// TotalUsers is the number of users currently in the users collection.
	TotalUsers int64 `json:"total_users"`

	// TotalInventoryValue is the sum of price*quantity over all items,
	// rounded to two decimal places using round-half-to-even.
	TotalInventoryValue float64 `json:"total_inventory_value"`

	// ActiveUsers is the number of users with IsActive set to true.
	ActiveUsers int64 `json:"active_users"`
}

// Welcome is the payload returned by the root endpoint.
type Welcome struct {
	// Message is a human-readable greeting.
	Message string `json:"message"`

	// Version is the running application version.
	Version string `json:"version"`

	// Docs is the path to the API documentation, if any.
	Docs string `json:"docs"`
}

// Health is the payload returned by the health-check endpoint.
type Health struct {
	// Status is "healthy" while the process is able to serve requests.
	Status string `json:"status"`

	// Timestamp is the server time at which the check was answered.
	Timestamp time.Time `json:"timestamp"`
}
