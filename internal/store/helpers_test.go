package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/my-movies/internal/config"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/models"
)

// newTestDB opens a migrated in-memory database private to the test.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := NewConnectSQLite(context.Background(), config.DB{
		DSN:            "file:" + name + "?mode=memory&cache=shared",
		MaxConnections: 1,
		AcquireTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func newTestRepositories(t *testing.T) (*Repositories, *DB) {
	t.Helper()

	db := newTestDB(t)
	return NewRepositories(db, logger.Nop()), db
}

// newMockDB wraps sqlmock into a *DB without acquire timeout.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{DB: conn, logger: logger.Nop()}, mock
}

func createTestUser(t *testing.T, repos *Repositories, username string) models.User {
	t.Helper()

	user, err := repos.UserRepository.CreateUser(context.Background(), models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$argon2id$test",
		Preferences:  models.DefaultPreferences(),
	})
	require.NoError(t, err)

	return user
}

func ptr[T any](v T) *T {
	return &v
}
