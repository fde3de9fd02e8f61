// Package http implements the HTTP transport layer of the application.
//
// It exposes the /api/v1 REST surface over the service layer, the /ws event
// stream and the static file routes. Cross-cutting concerns such as session
// checks, request tracing, access logging, metrics, rate limiting and
// response compression are handled here before requests reach the services.
package http
