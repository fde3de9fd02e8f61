// Package server runs the HTTP transport of the application.
//
// It binds the listen address eagerly so that a taken port fails at startup,
// serves until a stop signal arrives and then drains in-flight requests.
package server
