package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/bankmesh/bank-services/internal/platform/logger"
	"github.com/bankmesh/bank-services/internal/store"
	"github.com/google/uuid"
)

const accountColumns = "account_number, customer_id, account_type, branch_address, " + auditColumns

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the AccountStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// WithTx implements store.AccountStore.WithTx
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.AccountStore.Create
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("customer_id", account.CustomerID.String()))
		return err
	}

	query := `
		INSERT INTO accounts (account_number, customer_id, account_type, branch_address, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		account.AccountNumber,
		account.CustomerID,
		account.AccountType,
		account.BranchAddress,
		account.CreatedAt,
		account.CreatedBy,
	)
	if err != nil {
		err = MapError(err)
		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("customer_id", account.CustomerID.String()))
		if store.IsDuplicateError(err) {
			return err
		}
		return store.NewStoreError("account", "create", "failed to insert account", err)
	}

	log.Info("account created successfully", slog.String("customer_id", account.CustomerID.String()))
	return nil
}

// GetByAccountNumber implements store.AccountStore.GetByAccountNumber
func (s *PostgresAccountStore) GetByAccountNumber(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	query := "SELECT " + accountColumns + " FROM accounts WHERE account_number = $1"
	return s.getOne(ctx, query, accountNumber)
}

// GetByCustomerID implements store.AccountStore.GetByCustomerID
func (s *PostgresAccountStore) GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*domain.Account, error) {
	query := "SELECT " + accountColumns + " FROM accounts WHERE customer_id = $1"
	return s.getOne(ctx, query, customerID)
}

func (s *PostgresAccountStore) getOne(ctx context.Context, query string, arg any) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var account domain.Account
	var audit auditScan
	dest := append([]any{
		&account.AccountNumber,
		&account.CustomerID,
		&account.AccountType,
		&account.BranchAddress,
	}, audit.dest(&account.Audit)...)

	if err := s.db.QueryRowContext(ctx, query, arg).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found")
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account", slog.String("error", err.Error()))
		return nil, store.NewStoreError("account", "get", "failed to query account", err)
	}
	audit.apply(&account.Audit)

	return &account, nil
}

// Update implements store.AccountStore.Update
func (s *PostgresAccountStore) Update(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during update", slog.String("error", err.Error()))
		return err
	}

	query := `
		UPDATE accounts
		SET account_type = $1, branch_address = $2, updated_at = $3, updated_by = $4
		WHERE account_number = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		account.AccountType,
		account.BranchAddress,
		nullableTime(account.UpdatedAt),
		nullableString(account.UpdatedBy),
		account.AccountNumber,
	)
	if err != nil {
		log.Error("failed to update account", slog.String("error", err.Error()))
		return store.NewStoreError("account", "update", "failed to update account", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrAccountNotFound); err != nil {
		return err
	}

	log.Info("account updated successfully", slog.String("customer_id", account.CustomerID.String()))
	return nil
}

// DeleteByCustomerID implements store.AccountStore.DeleteByCustomerID
func (s *PostgresAccountStore) DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM accounts WHERE customer_id = $1", customerID)
	if err != nil {
		log.Error("failed to delete accounts",
			slog.String("error", err.Error()),
			slog.String("customer_id", customerID.String()))
		return store.NewStoreError("account", "delete", "failed to delete accounts", MapError(err))
	}

	rows, _ := result.RowsAffected()
	log.Info("accounts deleted",
		slog.String("customer_id", customerID.String()),
		slog.Int64("rows", rows))
	return nil
}
