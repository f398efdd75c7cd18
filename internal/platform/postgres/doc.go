// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package. It handles query
// execution, mapping of pgx error codes onto store errors, and conversion
// between rows and domain entities. Schema migrations live in the migrations
// subpackage.
package postgres
