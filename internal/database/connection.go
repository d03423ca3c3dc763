package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quickbite/internal/config"
	"quickbite/internal/logger"
)

const (
	maxConnectAttempts = 5
	pingTimeout        = 5 * time.Second
)

// DB wraps the PostgreSQL connection pool.
type DB struct {
	Pool   *pgxpool.Pool
	logger *logger.Logger
}

// New connects to PostgreSQL with bounded retries and returns the wrapped
// pool.
func New(cfg *config.Config, log *logger.Logger) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}

	poolCfg.MaxConns = 25
	poolCfg.MinConns = 5
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	var lastErr error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		pool, err := connectOnce(poolCfg)
		if err == nil {
			return &DB{Pool: pool, logger: log}, nil
		}
		lastErr = err

		if attempt < maxConnectAttempts {
			wait := time.Duration(attempt) * 2 * time.Second
			log.Error("db_connection_failed",
				fmt.Sprintf("Failed to connect to database, retrying in %v", wait),
				"startup", err, map[string]interface{}{"attempt": attempt})
			time.Sleep(wait)
		}
	}

	return nil, fmt.Errorf("connect to database after %d attempts: %w", maxConnectAttempts, lastErr)
}

// connectOnce builds a pool and verifies it with a bounded ping, closing
// the pool again if the ping fails.
func connectOnce(poolCfg *pgxpool.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Close releases the connection pool.
func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// Ping verifies the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// Begin starts a transaction.
func (db *DB) Begin(ctx context.Context) (pgx.Tx, error) {
	return db.Pool.Begin(ctx)
}

// Exec runs a statement without returning rows.
func (db *DB) Exec(ctx context.Context, sql string, args ...interface{}) error {
	_, err := db.Pool.Exec(ctx, sql, args...)
	return err
}

// Query runs a statement that returns rows.
func (db *DB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return db.Pool.Query(ctx, sql, args...)
}

// QueryRow runs a statement expected to return at most one row.
func (db *DB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return db.Pool.QueryRow(ctx, sql, args...)
}
