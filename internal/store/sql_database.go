package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/migrations"
)

// DB is the shared connection pool. Repositories check out a connection per
// operation through [DB.conn] so that pool exhaustion surfaces as
// [ErrTransient] after the acquire timeout instead of blocking forever.
type DB struct {
	*sql.DB
	acquireTimeout time.Duration
	logger         *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.MigrateWithLogger(db.DB, db.logger)
}

// conn checks out a pooled connection. The returned connection must be closed
// by the caller to hand it back to the pool.
func (db *DB) conn(ctx context.Context) (*sql.Conn, error) {
	if db.acquireTimeout <= 0 {
		c, err := db.DB.Conn(ctx)
		if err != nil {
			return nil, acquireError(ctx, err)
		}
		return c, nil
	}

	acquireCtx, cancel := context.WithTimeout(ctx, db.acquireTimeout)
	defer cancel()

	c, err := db.DB.Conn(acquireCtx)
	if err != nil {
		return nil, acquireError(ctx, err)
	}

	return c, nil
}

// withTx runs fn inside a transaction on a freshly acquired connection.
// The transaction is rolled back when fn returns an error.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	c, err := db.conn(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	tx, err := c.BeginTx(ctx, nil)
	if err != nil {
		return ErrBeginningTransaction
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return ErrCommitingTransaction
	}

	return nil
}
