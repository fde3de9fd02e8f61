package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token.
//
// The subject ("sub") carries the user ID; username and role are copied at
// issue time so that the SessionGate can authorize requests without a
// database round trip.
type Claims struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`

	jwt.RegisteredClaims
}

// UserID returns the subject claim.
func (c Claims) UserID() string {
	return c.Subject
}

// IsAdmin reports whether the token was issued to an admin.
func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// Token wraps a signed session token together with its decoded claims.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Claims are the verified claims of the token.
	Claims Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
