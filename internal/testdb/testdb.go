//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/bankmesh/bank-services/internal/ciutil"
	"github.com/bankmesh/bank-services/internal/platform/postgres/migrations"
	"github.com/bankmesh/bank-services/internal/redact"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds connection checks and migration runs.
const TestTimeout = 30 * time.Second

// GetTestDBWithT returns a database connection for testing.
// It skips the test if no database URL is set, except in CI where the
// database is mandatory and the test fails instead.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := ciutil.GetTestDatabaseURL()
	if dbURL == "" {
		if ciutil.DatabaseRequired() {
			t.Fatal("BANK_TEST_DB_URL or DATABASE_URL must be set in CI")
		}
		t.Skip("BANK_TEST_DB_URL or DATABASE_URL not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "Failed to open database connection")

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "Database ping failed for %s", redact.String(dbURL))

	t.Cleanup(func() {
		CleanupDB(t, db)
	})

	return db
}

// ApplyMigrations brings the schema of service up to date.
func ApplyMigrations(t *testing.T, db *sql.DB, service string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	quiet := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	require.NoError(t, migrations.Run(ctx, db, service, migrations.CommandUp, quiet),
		"Failed to apply %s migrations", service)
}

// WithTx runs fn inside a transaction that is always rolled back.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// CleanupDB properly closes a database connection, logging any errors.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}

	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close database connection: %v", err)
	}
}
