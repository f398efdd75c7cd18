package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/bankmesh/bank-services/internal/platform/logger"
	"github.com/bankmesh/bank-services/internal/redact"
	"github.com/bankmesh/bank-services/internal/store"
	"github.com/google/uuid"
)

const customerColumns = "customer_id, name, email, mobile_number, " + auditColumns

// PostgresCustomerStore implements the store.CustomerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCustomerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCustomerStore creates a new PostgreSQL implementation of the CustomerStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCustomerStore(db store.DBTX, logger *slog.Logger) *PostgresCustomerStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCustomerStore{
		db:     db,
		logger: logger.With(slog.String("component", "customer_store")),
	}
}

// Ensure PostgresCustomerStore implements store.CustomerStore interface
var _ store.CustomerStore = (*PostgresCustomerStore)(nil)

// WithTx implements store.CustomerStore.WithTx
func (s *PostgresCustomerStore) WithTx(tx *sql.Tx) store.CustomerStore {
	return &PostgresCustomerStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.CustomerStore.Create
func (s *PostgresCustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := customer.Validate(); err != nil {
		log.Warn("customer validation failed during create",
			slog.String("error", err.Error()),
			slog.String("mobile_number", redact.MobileNumber(customer.MobileNumber)))
		return err
	}

	query := `
		INSERT INTO customers (customer_id, name, email, mobile_number, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.MobileNumber,
		customer.CreatedAt,
		customer.CreatedBy,
	)
	if err != nil {
		err = MapUniqueViolation(err, customersMobileNumberKey, store.ErrMobileNumberExists)
		if store.IsDuplicateError(err) {
			log.Warn("customer already exists",
				slog.String("mobile_number", redact.MobileNumber(customer.MobileNumber)))
			return err
		}
		log.Error("failed to create customer",
			slog.String("error", err.Error()),
			slog.String("mobile_number", redact.MobileNumber(customer.MobileNumber)))
		return store.NewStoreError("customer", "create", "failed to insert customer", err)
	}

	log.Info("customer created successfully", slog.String("customer_id", customer.ID.String()))
	return nil
}

// GetByID implements store.CustomerStore.GetByID
func (s *PostgresCustomerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	query := "SELECT " + customerColumns + " FROM customers WHERE customer_id = $1"
	return s.getOne(ctx, query, id)
}

// GetByMobileNumber implements store.CustomerStore.GetByMobileNumber
func (s *PostgresCustomerStore) GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Customer, error) {
	query := "SELECT " + customerColumns + " FROM customers WHERE mobile_number = $1"
	return s.getOne(ctx, query, mobileNumber)
}

func (s *PostgresCustomerStore) getOne(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var customer domain.Customer
	var audit auditScan
	dest := append([]any{
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.MobileNumber,
	}, audit.dest(&customer.Audit)...)

	if err := s.db.QueryRowContext(ctx, query, arg).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("customer not found")
			return nil, store.ErrCustomerNotFound
		}
		log.Error("failed to get customer", slog.String("error", err.Error()))
		return nil, store.NewStoreError("customer", "get", "failed to query customer", err)
	}
	audit.apply(&customer.Audit)

	return &customer, nil
}

// Update implements store.CustomerStore.Update
func (s *PostgresCustomerStore) Update(ctx context.Context, customer *domain.Customer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := customer.Validate(); err != nil {
		log.Warn("customer validation failed during update",
			slog.String("error", err.Error()),
			slog.String("customer_id", customer.ID.String()))
		return err
	}

	query := `
		UPDATE customers
		SET name = $1, email = $2, mobile_number = $3, updated_at = $4, updated_by = $5
		WHERE customer_id = $6
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		customer.Name,
		customer.Email,
		customer.MobileNumber,
		nullableTime(customer.UpdatedAt),
		nullableString(customer.UpdatedBy),
		customer.ID,
	)
	if err != nil {
		err = MapUniqueViolation(err, customersMobileNumberKey, store.ErrMobileNumberExists)
		if store.IsDuplicateError(err) {
			log.Warn("customer mobile number already taken", slog.String("customer_id", customer.ID.String()))
			return err
		}
		log.Error("failed to update customer",
			slog.String("error", err.Error()),
			slog.String("customer_id", customer.ID.String()))
		return store.NewStoreError("customer", "update", "failed to update customer", err)
	}

	if err := CheckRowsAffected(result, store.ErrCustomerNotFound); err != nil {
		return err
	}

	log.Info("customer updated successfully", slog.String("customer_id", customer.ID.String()))
	return nil
}

// Delete implements store.CustomerStore.Delete
func (s *PostgresCustomerStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM customers WHERE customer_id = $1", id)
	if err != nil {
		log.Error("failed to delete customer",
			slog.String("error", err.Error()),
			slog.String("customer_id", id.String()))
		return store.NewStoreError("customer", "delete", "failed to delete customer", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCustomerNotFound); err != nil {
		return err
	}

	log.Info("customer deleted successfully", slog.String("customer_id", id.String()))
	return nil
}
