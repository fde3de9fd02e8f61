// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container of the
// my-movies server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Environment variable names are unprefixed (DATABASE_URL, JWT_SECRET, HOST,
// PORT, ...) because they are shared with the desktop shell that launches
// the server.
type StructuredConfig struct {
	// App holds application-level settings such as the token secret,
	// token lifetime and public URLs.
	App App

	// Storage holds the database settings.
	Storage Storage

	// Server holds the listen address and HTTP transport settings.
	Server Server

	// Adapter holds the settings of the external metadata and barcode providers.
	Adapter Adapter

	// Workers holds the settings of background jobs.
	Workers Workers

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// JWTSecret signs and verifies session tokens. Required.
	// Env: JWT_SECRET
	JWTSecret string `env:"JWT_SECRET"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a session token.
	// Env: TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BaseURL prefixes the password reset link written to the log.
	// Env: BASE_URL
	BaseURL string `env:"BASE_URL"`

	// StaticDir, when set, is served at "/" (the web UI bundle).
	// Env: STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// UploadsDir is where uploaded posters are stored.
	// Env: UPLOADS_DIR
	UploadsDir string `env:"UPLOADS_DIR"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration of the persistence layer.
type Storage struct {
	// DB holds the database connection settings.
	DB DB
}

// DB holds the settings of the embedded SQLite database.
type DB struct {
	// DSN is the database file path or a go-sqlite3 DSN
	// (e.g. "data/my-movies.db", "file:test?mode=memory&cache=shared").
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL"`

	// MaxConnections bounds the connection pool.
	// Env: DB_MAX_CONNECTIONS
	MaxConnections int `env:"DB_MAX_CONNECTIONS"`

	// AcquireTimeout bounds how long a statement may wait for the pool.
	// Env: DB_ACQUIRE_TIMEOUT
	AcquireTimeout time.Duration `env:"DB_ACQUIRE_TIMEOUT"`
}

// Server holds network and timeout settings for the HTTP transport.
type Server struct {
	// Host is the interface to bind. Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port to bind. Env: PORT
	Port int `env:"PORT"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSAllowedOrigins is a comma separated list of origins allowed to
	// call the API from a browser. Empty allows any origin.
	// Env: CORS_ALLOWED_ORIGINS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// AuthRateLimit is the number of requests per minute a single IP may
	// send to the public auth endpoints.
	// Env: AUTH_RATE_LIMIT
	AuthRateLimit int `env:"AUTH_RATE_LIMIT"`
}

// Address returns the host:port listen address.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Adapter holds configuration for the external provider clients.
type Adapter struct {
	// TMDBBaseURL is the TMDB v3 API root. Env: TMDB_BASE_URL
	TMDBBaseURL string `env:"TMDB_BASE_URL"`

	// BarcodeBaseURL is the barcode registry endpoint. Env: BARCODE_BASE_URL
	BarcodeBaseURL string `env:"BARCODE_BASE_URL"`

	// BarcodeQueryID is the registry's client identifier. Env: BARCODE_QUERY_ID
	BarcodeQueryID string `env:"BARCODE_QUERY_ID"`

	// RequestTimeout bounds every outbound provider request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"ADAPTER_REQUEST_TIMEOUT"`

	// DefaultLanguage is used for TMDB lookups when the caller has none.
	// Env: TMDB_LANGUAGE
	DefaultLanguage string `env:"TMDB_LANGUAGE"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// EnrichInterval is the minimum spacing between two enrichment items.
	// Env: ENRICH_INTERVAL
	EnrichInterval time.Duration `env:"ENRICH_INTERVAL"`

	// ResetTokenCleanupSchedule is the cron spec of the expired reset token
	// janitor. Env: RESET_TOKEN_CLEANUP_SCHEDULE
	ResetTokenCleanupSchedule string `env:"RESET_TOKEN_CLEANUP_SCHEDULE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (args, usually os.Args[1:])
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left empty by every source receive the defaults of [Defaults].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
