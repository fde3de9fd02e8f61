// Package migrations embeds the SQL schema of the application and applies
// it with goose on startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate applies every pending migration to db.
func Migrate(db *sql.DB) error {
	return MigrateWithLogger(db, logger.Nop())
}

// MigrateWithLogger applies every pending migration to db and reports
// goose's progress through log.
func MigrateWithLogger(db *sql.DB, log *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output into the application logger.
type gooseLogger struct {
	log *logger.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Str("component", "goose").Msgf(format, v...)
}

// Fatalf does not exit: goose only calls it from its CLI helpers.
func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error().Str("component", "goose").Msgf(format, v...)
}
