package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/bankmesh/bank-services/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"

	// numericOutOfRangeCode is the PostgreSQL error code for values that do
	// not fit the column type
	numericOutOfRangeCode = "22003"

	// stringTooLongCode is the PostgreSQL error code for values longer than
	// the column allows
	stringTooLongCode = "22001"
)

// Constraint names declared in the migrations. A violation of one of these
// means the natural key is already taken.
const (
	customersMobileNumberKey = "customers_mobile_number_key"
	cardsMobileNumberKey     = "cards_mobile_number_key"
	loansMobileNumberKey     = "loans_mobile_number_key"
)

// MapError maps a database error to an appropriate store error.
// It wraps the original error to preserve context for debugging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case foreignKeyViolationCode:
			return fmt.Errorf(
				"%w: foreign key violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case checkViolationCode:
			return fmt.Errorf(
				"%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case numericOutOfRangeCode, stringTooLongCode:
			return fmt.Errorf(
				"%w: value out of range for column: %v",
				store.ErrInvalidEntity,
				err,
			)
		case notNullViolationCode:
			return fmt.Errorf(
				"%w: not null violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ColumnName,
				err,
			)
		}
	}

	// Return the original error for errors that don't have specific mappings
	return err
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// MapUniqueViolation maps a unique violation on constraintName to
// specificError. Unique violations on any other constraint become
// store.ErrDuplicate, and everything else goes through MapError.
func MapUniqueViolation(err error, constraintName string, specificError error) error {
	if !IsUniqueViolation(err) {
		return MapError(err)
	}

	var pgErr *pgconn.PgError
	errors.As(err, &pgErr)
	if specificError != nil && pgErr.ConstraintName == constraintName {
		return fmt.Errorf("%w: %v", specificError, err)
	}

	return fmt.Errorf("%w: duplicate value for constraint %s: %v", store.ErrDuplicate, pgErr.ConstraintName, err)
}

// CheckRowsAffected examines the number of rows affected by an UPDATE or
// DELETE. If no rows were affected, it returns notFound.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if notFound == nil {
			return store.ErrNotFound
		}
		return notFound
	}

	return nil
}
