package models

// RegisterRequest is the payload of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest is the payload of POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the payload of POST /auth/reset-password.
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// UpdatePreferencesRequest changes only the provided preference fields.
type UpdatePreferencesRequest struct {
	Language     *string `json:"language" validate:"omitempty,min=2,max=10"`
	IncludeAdult *bool   `json:"include_adult"`
	Theme        *string `json:"theme" validate:"omitempty,oneof=dark light system"`
	CardSize     *string `json:"card_size" validate:"omitempty,oneof=small medium large"`
}

// AdminCreateUserRequest is the payload of POST /users.
// When Password is empty a one-time reset secret is minted instead.
type AdminCreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"omitempty,min=6,max=128"`
	Role     Role   `json:"role" validate:"omitempty,oneof=admin user"`
}

// UpdateRoleRequest is the payload of PUT /users/{id}/role.
type UpdateRoleRequest struct {
	Role Role `json:"role" validate:"required,oneof=admin user"`
}

// SetPasswordRequest is the payload of PUT /users/{id}/password.
type SetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AdminCreateUserResponse carries the created user and, when no password was
// supplied, the plaintext reset secret the admin has to hand over.
type AdminCreateUserResponse struct {
	User       User    `json:"user"`
	ResetToken *string `json:"reset_token,omitempty"`
}

// MessageResponse is the generic {"message": "..."} acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
