package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// because the token secret has no default.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

// TestBuild_AppliesDefaults verifies that every optional field receives its default.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{JWTSecret: "secret"}})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.JWTSecret)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultMaxConnections, cfg.Storage.DB.MaxConnections)
	assert.Equal(t, 3*time.Second, cfg.Storage.DB.AcquireTimeout)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Address())
	assert.Equal(t, 7*24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 250*time.Millisecond, cfg.Workers.EnrichInterval)
	assert.Equal(t, DefaultLanguage, cfg.Adapter.DefaultLanguage)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result and later sources win.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{JWTSecret: "env-secret", TokenIssuer: "issuer"}, Server: Server{Port: 4000}},
		&StructuredConfig{Server: Server{Port: 5000}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.JWTSecret)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 5000, cfg.Server.Port)
}

// TestBuild_ValidationErrors verifies the invariants checked after merging.
func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *StructuredConfig
		want error
	}{
		{
			name: "port out of range",
			cfg:  &StructuredConfig{App: App{JWTSecret: "s"}, Server: Server{Port: 70000}},
			want: ErrInvalidServerConfigs,
		},
		{
			name: "negative token duration",
			cfg:  &StructuredConfig{App: App{JWTSecret: "s", TokenDuration: -time.Hour}},
			want: ErrInvalidAppConfigs,
		},
		{
			name: "negative pool size",
			cfg:  &StructuredConfig{App: App{JWTSecret: "s"}, Storage: Storage{DB: DB{MaxConnections: -1}}},
			want: ErrInvalidStorageConfigs,
		},
		{
			name: "negative enrich interval",
			cfg:  &StructuredConfig{App: App{JWTSecret: "s"}, Workers: Workers{EnrichInterval: -time.Second}},
			want: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"JWT_SECRET":   "env-secret",
		"TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].App.JWTSecret)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	clearEnvVars(t)

	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_SetsErrorOnBadFlag verifies that parse failures are collected.
func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.JWTSecret = "json-secret"
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-secret", b.configs[1].App.JWTSecret)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.TokenIssuer)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_FlagsOverrideEnv verifies the full pipeline.
func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"JWT_SECRET": "env-secret",
		"PORT":       "4000",
	})

	cfg, err := GetStructuredConfig([]string{"-a", "127.0.0.1:5000"})
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.App.JWTSecret)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
}

// TestGetStructuredConfig_MissingSecret verifies the startup failure path.
func TestGetStructuredConfig_MissingSecret(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}
