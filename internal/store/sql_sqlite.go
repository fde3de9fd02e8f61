package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/my-movies/internal/config"
	"github.com/MKhiriev/my-movies/internal/logger"
)

// connection parameters appended to every DSN unless already present
var sqliteParams = []string{
	"_foreign_keys=on",
	"_busy_timeout=5000",
}

// NewConnectSQLite opens the single-file database described by cfg, sizes the
// pool and applies pending migrations.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := normalizeDSN(cfg.DSN)

	// db will be in file
	if err := createDBDirIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// setup connections
	if cfg.MaxConnections > 0 {
		conn.SetMaxOpenConns(cfg.MaxConnections)
		conn.SetMaxIdleConns(cfg.MaxConnections)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:             conn,
		acquireTimeout: cfg.AcquireTimeout,
		logger:         log,
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error applying migrations")
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

// normalizeDSN strips a "sqlite:" URL scheme and appends the connection
// parameters the repositories rely on.
func normalizeDSN(dsn string) string {
	dsn = strings.TrimPrefix(dsn, "sqlite://")
	dsn = strings.TrimPrefix(dsn, "sqlite:")

	for _, param := range sqliteParams {
		key, _, _ := strings.Cut(param, "=")
		if strings.Contains(dsn, key+"=") {
			continue
		}
		if strings.Contains(dsn, "?") {
			dsn += "&" + param
		} else {
			dsn += "?" + param
		}
	}

	return dsn
}

func createDBDirIfNotExists(dsn string) error {
	path, query, _ := strings.Cut(dsn, "?")
	path = strings.TrimPrefix(path, "file:")

	if path == "" || path == ":memory:" || strings.Contains(query, "mode=memory") {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}

	// if not found - create
	return os.MkdirAll(dir, 0o755)
}
