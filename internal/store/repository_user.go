package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles account creation, lookup and the admin lifecycle against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    idGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, ids idGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// userFields lays out the users columns in [userColumns] order.
func userFields(u *models.User) []field {
	return []field{
		{"id", &u.ID},
		{"username", &u.Username},
		{"email", &u.Email},
		{"password_hash", &u.PasswordHash},
		{"role", (*string)(&u.Role)},
		{"language", &u.Language},
		{"include_adult", &u.IncludeAdult},
		{"theme", &u.Theme},
		{"card_size", &u.CardSize},
		{"reset_token", &u.ResetTokenHash},
		{"reset_token_expires", &u.ResetTokenExpires},
		{"created_at", &u.CreatedAt},
		{"updated_at", &u.UpdatedAt},
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, Role, timestamps).
//
// The INSERT decides the role of an account created without one: the first
// row of the table becomes admin, every later one user. Doing it in the
// statement keeps concurrent first registrations from both becoming admin.
//
// Error handling:
//   - UNIQUE violation → [*DuplicateError] naming "username" or "email".
//   - Any other driver-level error → classified by [classifyError].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	now := time.Now().UTC()
	user.ID = r.ids.Generate()

	args := []any{
		user.ID, user.Username, user.Email, user.PasswordHash, string(user.Role),
		user.Language, user.IncludeAdult, user.Theme, user.CardSize,
		now, now,
	}

	if err := r.exec(ctx, "*userRepository.CreateUser", createUser, args...); err != nil {
		return models.User{}, err
	}

	return r.FindUserByID(ctx, user.ID)
}

// FindUserByID returns the user with id or [ErrNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.queryUser(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

// FindUserByUsername returns the user with username or [ErrNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.queryUser(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByEmail returns the user with email or [ErrNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.queryUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return r.queryUsers(ctx, "*userRepository.ListUsers", listUsers)
}

func (r *userRepository) ListUsersWithActiveResetToken(ctx context.Context, now time.Time) ([]models.User, error) {
	return r.queryUsers(ctx, "*userRepository.ListUsersWithActiveResetToken", listUsersWithActiveResetToken, now.UTC())
}

func (r *userRepository) SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error {
	return r.exec(ctx, "*userRepository.SetResetToken", setResetToken, tokenHash, expires.UTC(), time.Now().UTC(), id)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.exec(ctx, "*userRepository.UpdatePassword", updatePassword, passwordHash, time.Now().UTC(), id)
}

func (r *userRepository) UpdateRole(ctx context.Context, id string, role models.Role) (models.User, error) {
	if err := r.exec(ctx, "*userRepository.UpdateRole", updateRole, string(role), time.Now().UTC(), id); err != nil {
		return models.User{}, err
	}

	return r.FindUserByID(ctx, id)
}

func (r *userRepository) UpdatePreferences(ctx context.Context, id string, prefs models.Preferences) (models.User, error) {
	err := r.exec(ctx, "*userRepository.UpdatePreferences", updatePreferences,
		prefs.Language, prefs.IncludeAdult, prefs.Theme, prefs.CardSize, time.Now().UTC(), id)
	if err != nil {
		return models.User{}, err
	}

	return r.FindUserByID(ctx, id)
}

// DeleteUser removes movies, series, collection items and collections of the
// user and then the account itself, all in one transaction. A missing user
// rolls everything back and yields [ErrNotFound].
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		for _, step := range deleteUserSteps {
			if _, err := tx.ExecContext(ctx, step, id); err != nil {
				return classifyError(err)
			}
		}

		res, err := tx.ExecContext(ctx, deleteUser, id)
		if err != nil {
			return classifyError(err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return classifyError(err)
		}
		if affected == 0 {
			return ErrNotFound
		}

		return nil
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
	}

	return err
}

func (r *userRepository) ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	c, err := r.db.conn(ctx)
	if err != nil {
		return 0, err
	}
	defer c.Close()

	res, err := c.ExecContext(ctx, clearExpiredResetTokens, now.UTC())
	if err != nil {
		err = classifyError(err)
		log.Err(err).Str("func", "*userRepository.ClearExpiredResetTokens").Msg("error clearing reset tokens")
		return 0, err
	}

	return res.RowsAffected()
}

func (r *userRepository) queryUser(ctx context.Context, fn, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	c, err := r.db.conn(ctx)
	if err != nil {
		return models.User{}, err
	}
	defer c.Close()

	var user models.User
	if err = c.QueryRowContext(ctx, query, args...).Scan(pointers(userFields(&user))...); err != nil {
		err = classifyError(err)
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", fn).Msg("error querying user")
		}
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) queryUsers(ctx context.Context, fn, query string, args ...any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	c, err := r.db.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		err = classifyError(err)
		log.Err(err).Str("func", fn).Msg("error querying users")
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(pointers(userFields(&user))...); err != nil {
			log.Err(err).Str("func", fn).Msg("error scanning user")
			return nil, errors.Join(ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return users, nil
}

// exec runs a single-row UPDATE and reports [ErrNotFound] when no row matched.
func (r *userRepository) exec(ctx context.Context, fn, query string, args ...any) error {
	log := logger.FromContext(ctx)

	c, err := r.db.conn(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	res, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		err = classifyError(err)
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return classifyError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
