package models

import "time"

// AuditLog is a single append-only entry in the audit trail.
// Entries are never updated or deleted individually; the whole trail
// can only be cleared in bulk.
type AuditLog struct {
	// ID is the unique identifier of the entry within the audit collection.
	// Unlike the items and users collections, the audit identifier
	// sequence restarts at 1 after a bulk clear.
	ID int64 `json:"id"`

	// Action is the free-text name of the performed action
	// (e.g. "create", "delete").
	Action string `json:"action"`

	// Entity is the free-text name of the affected entity
	// (e.g. "item", "user").
	Entity string `json:"entity"`

	// Timestamp is the moment the entry was recorded.
	Timestamp time.Time `json:"timestamp"`
}
