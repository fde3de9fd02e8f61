// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// my-movies HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

const (
	// MsgMissingAuthorization is returned by the session gate when the
	// "Authorization" header is absent or does not carry a bearer token.
	MsgMissingAuthorization = "Missing or invalid Authorization header"

	// MsgMissingWSToken is returned when the websocket upgrade request has
	// no "token" query parameter.
	MsgMissingWSToken = "Missing token query parameter"

	// MsgAdminRequired is returned when a non-admin calls an admin route.
	MsgAdminRequired = "Admin access required"

	// MsgInternalServerError replaces the message of unexpected server-side
	// failures that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgDatabaseUnavailable is returned when the database is busy or no
	// pooled connection became free in time.
	MsgDatabaseUnavailable = "Database temporarily unavailable"

	// MsgPasswordUpdated confirms an admin password change.
	MsgPasswordUpdated = "Password updated"

	// MsgUserDeleted confirms an account deletion.
	MsgUserDeleted = "User deleted"

	// MsgEnrichCancelRequested confirms that a running enrichment will stop
	// before its next item.
	MsgEnrichCancelRequested = "TMDB enrichment cancellation requested"

	// MsgEnrichNotRunning is returned by the cancel endpoint when no
	// enrichment is running.
	MsgEnrichNotRunning = "No TMDB enrichment is running"

	// MsgHealthy is the plain-text body of GET /health.
	MsgHealthy = "OK"
)
