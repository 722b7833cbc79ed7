// Package http implements the HTTP transport layer of go-sample-api.
//
// It exposes the CRUD endpoints for items and users, the audit-trail
// endpoints, the statistics endpoint, and the welcome/health endpoints over
// a chi router. Handlers decode request payloads, delegate all business
// logic to the service layer, and translate well-known service and store
// errors into stable HTTP statuses via the central error map.
package http
