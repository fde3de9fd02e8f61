// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/my-movies/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the SessionGate stores the verified
// [models.Claims] of the caller.
var ClaimsCtxKey = contextKey("claims")

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the caller's claims from the context.
//
// Returns the claims and an ok flag:
//   - ok == true: claims are present and carry a non-empty subject
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	claims, ok := utils.GetClaimsFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	if !ok || claims.Subject == "" {
		return models.Claims{}, false
	}
	return claims, true
}

// GetUserIDFromContext retrieves the caller's user ID from the claims stored
// in the context.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	claims, ok := GetClaimsFromContext(ctx)
	if !ok {
		return "", false
	}
	return claims.UserID(), true
}
