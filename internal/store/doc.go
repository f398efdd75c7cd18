// Package store defines the persistence interfaces for customers, accounts,
// cards and loans, together with the errors every implementation returns and
// a helper for running several store calls in one database transaction.
// Services depend on these interfaces, never on a specific database.
package store
