package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/my-movies/internal/config"
	"github.com/MKhiriev/my-movies/internal/crypto"
	"github.com/MKhiriev/my-movies/internal/events"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/store"
	"github.com/MKhiriev/my-movies/models"
)

// newTestRepositories opens a migrated in-memory database private to the test.
func newTestRepositories(t *testing.T) *store.Repositories {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := store.NewConnectSQLite(context.Background(), config.DB{
		DSN:            "file:svc_" + name + "?mode=memory&cache=shared",
		MaxConnections: 1,
		AcquireTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return store.NewRepositories(db, logger.Nop())
}

// fastHasher keeps argon2 cheap enough for unit tests.
func fastHasher() crypto.PasswordHasher {
	return crypto.NewPasswordHasherWithParams(crypto.Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32})
}

func testAppConfig() config.App {
	return config.App{
		JWTSecret:     "test-secret",
		TokenIssuer:   "my-movies-test",
		TokenDuration: time.Hour,
		BaseURL:       "http://localhost:3000",
	}
}

type publishedEvent struct {
	UserID  string
	Type    events.Type
	Payload any
}

// recordingPublisher is an events.Publisher that keeps every event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, userID string, t events.Type, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{UserID: userID, Type: t, Payload: payload})
	return nil
}

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func createUser(t *testing.T, repos *store.Repositories, username string) models.User {
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
