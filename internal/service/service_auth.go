package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/my-movies/internal/config"
	"github.com/MKhiriev/my-movies/internal/crypto"
	"github.com/MKhiriev/my-movies/internal/events"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/metrics"
	"github.com/MKhiriev/my-movies/internal/store"
	"github.com/MKhiriev/my-movies/internal/utils"
	"github.com/MKhiriev/my-movies/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// ResetTokenTTL is the lifetime of a self-service password reset secret.
	ResetTokenTTL = time.Hour

	// AdminResetTokenTTL is the lifetime of the secret minted when an admin
	// creates an account without a password.
	AdminResetTokenTTL = 24 * time.Hour

	resetRequestedMessage = "If an account with this email exists, a password reset link has been sent."
)

// authService is the concrete implementation of AuthService.
// Passwords and reset secrets are hashed with hasher; session tokens are
// HS256 JWTs signed with tokenSignKey.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	publisher      events.Publisher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// baseURL prefixes the reset link written to the log.
	baseURL string

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	publisher events.Publisher,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		publisher:      publisher,
		tokenSignKey:   cfg.JWTSecret,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

// Register creates an account and signs the caller in. The first account
// ever created becomes admin; the role is decided by the store in the same
// statement that inserts the row.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("%w: hash password: %w", ErrInternal, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: passwordHash,
		Preferences:  models.DefaultPreferences(),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", req.Username).Msg("user creation ended with error")
		return models.AuthResponse{}, mapError(err, ErrUserNotFound)
	}

	log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	a.publish(ctx, user.ID, events.UserCreated, user)

	return a.authResponse(user)
}

// Login authenticates by username and password. Unknown usernames and wrong
// passwords yield the same [ErrInvalidCredentials].
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, strings.TrimSpace(req.Username))
	if errors.Is(err, store.ErrNotFound) {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return models.AuthResponse{}, mapError(err, ErrInvalidCredentials)
	}

	ok, err := a.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("stored password hash is unreadable")
	}
	if !ok {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	return a.authResponse(user)
}

// VerifyToken implements [AuthService].
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.Claims, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Claims{}, ErrTokenExpired
	}
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %s", ErrInvalidToken, tokenErrorDetail(err))
	}

	return token.Claims, nil
}

func tokenErrorDetail(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed token"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "invalid signature"
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return "invalid issuer"
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return "token not valid yet"
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return "missing required claim"
	default:
		return "token rejected"
	}
}

// Me implements [AuthService].
func (a *authService) Me(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapError(err, ErrUserNotFound)
	}
	return user, nil
}

// UpdatePreferences implements [AuthService].
func (a *authService) UpdatePreferences(ctx context.Context, userID string, req models.UpdatePreferencesRequest) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapError(err, ErrUserNotFound)
	}

	prefs := user.Preferences
	if req.Language != nil {
		prefs.Language = *req.Language
	}
	if req.IncludeAdult != nil {
		prefs.IncludeAdult = *req.IncludeAdult
	}
	if req.Theme != nil {
		prefs.Theme = *req.Theme
	}
	if req.CardSize != nil {
		prefs.CardSize = *req.CardSize
	}

	updated, err := a.userRepository.UpdatePreferences(ctx, userID, prefs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.UpdatePreferences").Msg("preferences update failed")
		return models.User{}, mapError(err, ErrUserNotFound)
	}

	a.publish(ctx, updated.ID, events.UserUpdated, updated)
	return updated, nil
}

// RequestPasswordReset stores the hash of a fresh reset secret and logs the
// reset link for manual delivery. An unknown email is reported to the caller.
func (a *authService) RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) (models.MessageResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, strings.TrimSpace(req.Email))
	if errors.Is(err, store.ErrNotFound) {
		return models.MessageResponse{}, validationError("no account with this email")
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.RequestPasswordReset").Msg("user search by email failed")
		return models.MessageResponse{}, mapError(err, ErrUserNotFound)
	}

	secret, err := a.issueResetSecret(ctx, user.ID, ResetTokenTTL)
	if err != nil {
		return models.MessageResponse{}, err
	}

	log.Warn().
		Str("user_id", user.ID).
		Str("reset_link", a.baseURL+"/reset-password?token="+url.QueryEscape(secret)).
		Msg("password reset requested, deliver the link to the user")

	return models.MessageResponse{Message: resetRequestedMessage}, nil
}

// ResetPassword checks the presented secret against every unexpired reset
// hash and sets the new password on the first match.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.MessageResponse, error) {
	log := logger.FromContext(ctx)

	candidates, err := a.userRepository.ListUsersWithActiveResetToken(ctx, a.now())
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("listing reset candidates failed")
		return models.MessageResponse{}, mapError(err, ErrInvalidResetToken)
	}

	for _, user := range candidates {
		if user.ResetTokenHash == nil {
			continue
		}
		ok, err := a.hasher.Verify(req.Token, *user.ResetTokenHash)
		if err != nil {
			log.Err(err).Str("func", "*authService.ResetPassword").Str("user_id", user.ID).Msg("stored reset hash is unreadable")
			continue
		}
		if !ok {
			continue
		}

		if err = a.setPassword(ctx, user.ID, req.Password); err != nil {
			return models.MessageResponse{}, err
		}
		log.Info().Str("user_id", user.ID).Msg("password reset completed")
		return models.MessageResponse{Message: "Password has been reset successfully"}, nil
	}

	return models.MessageResponse{}, ErrInvalidResetToken
}

// ListUsers implements [AuthService].
func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.ListUsers").Msg("listing users failed")
		return nil, mapError(err, ErrUserNotFound)
	}
	return users, nil
}

// UpdateUserRole implements [AuthService].
func (a *authService) UpdateUserRole(ctx context.Context, actorID, userID string, req models.UpdateRoleRequest) (models.User, error) {
	if !req.Role.Valid() {
		return models.User{}, validationError("role must be one of: admin, user")
	}
	if actorID == userID {
		return models.User{}, validationError("you cannot change your own role")
	}

	user, err := a.userRepository.UpdateRole(ctx, userID, req.Role)
	if err != nil {
		return models.User{}, mapError(err, ErrUserNotFound)
	}

	logger.FromContext(ctx).Info().Str("actor_id", actorID).Str("user_id", userID).Str("role", string(req.Role)).Msg("user role changed")
	a.publish(ctx, user.ID, events.UserUpdated, user)
	return user, nil
}

// DeleteUser implements [AuthService].
func (a *authService) DeleteUser(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return validationError("you cannot delete your own account")
	}

	if err := a.userRepository.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*authService.DeleteUser").Str("user_id", userID).Msg("user deletion failed")
		}
		return mapError(err, ErrUserNotFound)
	}

	logger.FromContext(ctx).Info().Str("actor_id", actorID).Str("user_id", userID).Msg("user deleted")
	return nil
}

// AdminSetPassword implements [AuthService].
func (a *authService) AdminSetPassword(ctx context.Context, userID string, req models.SetPasswordRequest) error {
	return a.setPassword(ctx, userID, req.Password)
}

// AdminCreateUser creates an account on behalf of an admin. Without a
// password the account gets an unusable random one and a 24 hour reset
// secret that is returned once.
func (a *authService) AdminCreateUser(ctx context.Context, req models.AdminCreateUserRequest) (models.AdminCreateUserResponse, error) {
	log := logger.FromContext(ctx)

	password := req.Password
	if password == "" {
		placeholder, err := a.hasher.GenerateSecret()
		if err != nil {
			return models.AdminCreateUserResponse{}, fmt.Errorf("%w: generate password: %w", ErrInternal, err)
		}
		password = placeholder
	}

	passwordHash, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("func", "*authService.AdminCreateUser").Msg("password hashing failed")
		return models.AdminCreateUserResponse{}, fmt.Errorf("%w: hash password: %w", ErrInternal, err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		Role:         role,
		PasswordHash: passwordHash,
		Preferences:  models.DefaultPreferences(),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.AdminCreateUser").Str("username", req.Username).Msg("user creation ended with error")
		return models.AdminCreateUserResponse{}, mapError(err, ErrUserNotFound)
	}

	resp := models.AdminCreateUserResponse{User: user}
	if req.Password == "" {
		secret, err := a.issueResetSecret(ctx, user.ID, AdminResetTokenTTL)
		if err != nil {
			return models.AdminCreateUserResponse{}, err
		}
		resp.ResetToken = &secret
	}

	log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user created by admin")
	a.publish(ctx, user.ID, events.UserCreated, user)
	return resp, nil
}

func (a *authService) setPassword(ctx context.Context, userID, password string) error {
	passwordHash, err := a.hasher.Hash(password)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.setPassword").Msg("password hashing failed")
		return fmt.Errorf("%w: hash password: %w", ErrInternal, err)
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return mapError(err, ErrUserNotFound)
	}
	return nil
}

// issueResetSecret stores the hash of a new secret and returns the plaintext.
func (a *authService) issueResetSecret(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	secret, err := a.hasher.GenerateSecret()
	if err != nil {
		return "", fmt.Errorf("%w: generate reset secret: %w", ErrInternal, err)
	}

	secretHash, err := a.hasher.Hash(secret)
	if err != nil {
		return "", fmt.Errorf("%w: hash reset secret: %w", ErrInternal, err)
	}

	if err = a.userRepository.SetResetToken(ctx, userID, secretHash, a.now().Add(ttl)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.issueResetSecret").Str("user_id", userID).Msg("storing reset token failed")
		return "", mapError(err, ErrUserNotFound)
	}
	return secret, nil
}

func (a *authService) authResponse(user models.User) (models.AuthResponse, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: token creation failed: %w", ErrInternal, err)
	}
	return models.AuthResponse{Token: token.SignedString, User: user}, nil
}

func (a *authService) publish(ctx context.Context, userID string, t events.Type, payload any) {
	if a.publisher == nil {
		return
	}
	if err := a.publisher.Publish(ctx, userID, t, payload); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.publish").Str("type", string(t)).Msg("event not published")
	}
}
