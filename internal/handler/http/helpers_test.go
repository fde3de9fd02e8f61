package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/my-movies/internal/config"
	"github.com/MKhiriev/my-movies/internal/events"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/mock"
	"github.com/MKhiriev/my-movies/internal/service"
	"github.com/MKhiriev/my-movies/internal/store"
	"github.com/MKhiriev/my-movies/internal/workers"
	"github.com/MKhiriev/my-movies/models"
)

// fakeEnricher is a workers.Enricher whose answers are set by the test.
type fakeEnricher struct {
	mu       sync.Mutex
	start    models.EnrichStart
	startErr error
	status   models.EnrichStatus
	running  bool

	gotUserID string
	gotForce  bool
}

func (f *fakeEnricher) Start(_ context.Context, userID string, force bool) (models.EnrichStart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotUserID, f.gotForce = userID, force
	return f.start, f.startErr
}

func (f *fakeEnricher) Cancel() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

func (f *fakeEnricher) Status() models.EnrichStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

var _ workers.Enricher = (*fakeEnricher)(nil)

// testEnv is a router over real services backed by a private in-memory
// database. Provider clients are gomock mocks.
type testEnv struct {
	t *testing.T

	router   http.Handler
	handler  *Handler
	services *service.Services
	repos    *store.Repositories
	bus      *events.Bus
	tmdb     *mock.MockTMDBClient
	barcode  *mock.MockBarcodeClient
	enricher *fakeEnricher
	cfg      config.StructuredConfig
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := store.NewConnectSQLite(context.Background(), config.DB{
		DSN:            "file:http_" + name + "?mode=memory&cache=shared",
		MaxConnections: 1,
		AcquireTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctrl := gomock.NewController(t)
	env := &testEnv{
		t:        t,
		repos:    store.NewRepositories(db, logger.Nop()),
		bus:      events.NewBus(16, logger.Nop()),
		tmdb:     mock.NewMockTMDBClient(ctrl),
		barcode:  mock.NewMockBarcodeClient(ctrl),
		enricher: &fakeEnricher{},
		cfg: config.StructuredConfig{
			App: config.App{
				JWTSecret:     "http-test-secret",
				TokenIssuer:   "my-movies-test",
				TokenDuration: time.Hour,
				BaseURL:       "http://localhost:3000",
				UploadsDir:    t.TempDir(),
			},
			Server: config.Server{RequestTimeout: 5 * time.Second},
		},
	}
	t.Cleanup(env.bus.Close)

	env.services, err = service.NewServices(
		env.repos,
		service.Clients{TMDB: env.tmdb, Barcode: env.barcode},
		env.bus,
		env.cfg,
		models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"),
		logger.Nop(),
	)
	require.NoError(t, err)

	env.handler = NewHandler(env.services, env.enricher, env.bus, env.cfg, logger.Nop())
	env.router = env.handler.Init()
	return env
}

// do sends body (JSON encoded unless it is a *bytes.Buffer or nil) and
// returns the recorded response.
func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(e.t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// register signs up username and returns the session token and the user.
// The first account of an env is the admin.
func (e *testEnv) register(username string) (string, models.User) {
	e.t.Helper()

	rec := e.do(http.MethodPost, "/api/v1/auth/register", "", models.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret123",
	})
	require.Equal(e.t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp models.AuthResponse
	decode(e.t, rec, &resp)
	return resp.Token, resp.User
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decode(t, rec, &body)
	return body.Error
}

func ptr[T any](v T) *T {
	return &v
}
