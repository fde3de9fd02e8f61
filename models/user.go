package models

import "time"

// Role is the authorization level of a [User].
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Default preference values applied to every new account.
const (
	DefaultLanguage = "de-DE"
	DefaultTheme    = "dark"
	DefaultCardSize = "medium"
)

// Preferences holds the per-user UI and metadata lookup settings.
type Preferences struct {
	Language     string `json:"language"`
	IncludeAdult bool   `json:"include_adult"`
	Theme        string `json:"theme"`
	CardSize     string `json:"card_size"`
}

// DefaultPreferences returns the preferences assigned at registration.
func DefaultPreferences() Preferences {
	return Preferences{
		Language: DefaultLanguage,
		Theme:    DefaultTheme,
		CardSize: DefaultCardSize,
	}
}

// User represents an account.
//
// Credential material (password hash, reset token hash and expiry) is never
// serialized, so a User value is safe to return from the API as-is.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`

	Preferences

	// PasswordHash is an argon2id PHC string. Never exposed via JSON.
	PasswordHash string `json:"-"`

	// ResetTokenHash is the hash of a one-time password reset secret.
	ResetTokenHash *string `json:"-"`

	// ResetTokenExpires is the instant after which ResetTokenHash is no longer accepted.
	ResetTokenExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
