//go:build integration

// Package testdb provides utilities for integration tests that need a real
// PostgreSQL database. Tests are skipped when no database URL is configured.
//
// Typical usage:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.ApplyMigrations(t, db, "loans")
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//		s := postgres.NewPostgresLoanStore(tx, nil)
//		// ...
//	})
//
// Every test runs inside a transaction that is rolled back afterwards, so
// tests can share one database without cleaning up after themselves.
package testdb
