package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/bankmesh/bank-services/internal/platform/logger"
	"github.com/bankmesh/bank-services/internal/redact"
	"github.com/bankmesh/bank-services/internal/store"
	"github.com/google/uuid"
)

const loanColumns = "loan_id, mobile_number, loan_number, loan_type, total_loan, amount_paid, outstanding_amount, " + auditColumns

// PostgresLoanStore implements the store.LoanStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLoanStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLoanStore creates a new PostgreSQL implementation of the LoanStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresLoanStore(db store.DBTX, logger *slog.Logger) *PostgresLoanStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLoanStore{
		db:     db,
		logger: logger.With(slog.String("component", "loan_store")),
	}
}

// Ensure PostgresLoanStore implements store.LoanStore interface
var _ store.LoanStore = (*PostgresLoanStore)(nil)

// Create implements store.LoanStore.Create
func (s *PostgresLoanStore) Create(ctx context.Context, loan *domain.Loan) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := loan.Validate(); err != nil {
		log.Warn("loan validation failed during create",
			slog.String("error", err.Error()),
			slog.String("mobile_number", redact.MobileNumber(loan.MobileNumber)))
		return err
	}

	query := `
		INSERT INTO loans (loan_id, mobile_number, loan_number, loan_type, total_loan, amount_paid, outstanding_amount,
			created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		loan.ID,
		loan.MobileNumber,
		loan.LoanNumber,
		loan.LoanType,
		loan.TotalLoan,
		loan.AmountPaid,
		loan.OutstandingAmount,
		loan.CreatedAt,
		loan.CreatedBy,
	)
	if err != nil {
		err = MapUniqueViolation(err, loansMobileNumberKey, store.ErrMobileNumberExists)
		if store.IsDuplicateError(err) {
			log.Warn("loan already exists",
				slog.String("mobile_number", redact.MobileNumber(loan.MobileNumber)),
				slog.String("error", err.Error()))
			return err
		}
		log.Error("failed to create loan",
			slog.String("error", err.Error()),
			slog.String("mobile_number", redact.MobileNumber(loan.MobileNumber)))
		return store.NewStoreError("loan", "create", "failed to insert loan", err)
	}

	log.Info("loan created successfully",
		slog.String("loan_id", loan.ID.String()),
		slog.String("mobile_number", redact.MobileNumber(loan.MobileNumber)))
	return nil
}

// GetByMobileNumber implements store.LoanStore.GetByMobileNumber
func (s *PostgresLoanStore) GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Loan, error) {
	return s.getOne(ctx, "mobile_number", mobileNumber)
}

// GetByLoanNumber implements store.LoanStore.GetByLoanNumber
func (s *PostgresLoanStore) GetByLoanNumber(ctx context.Context, loanNumber string) (*domain.Loan, error) {
	return s.getOne(ctx, "loan_number", loanNumber)
}

// getOne fetches a single loan by a unique column. column is never user input.
func (s *PostgresLoanStore) getOne(ctx context.Context, column, value string) (*domain.Loan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving loan", slog.String("by", column))

	query := "SELECT " + loanColumns + " FROM loans WHERE " + column + " = $1"

	var loan domain.Loan
	var audit auditScan
	dest := append([]any{
		&loan.ID,
		&loan.MobileNumber,
		&loan.LoanNumber,
		&loan.LoanType,
		&loan.TotalLoan,
		&loan.AmountPaid,
		&loan.OutstandingAmount,
	}, audit.dest(&loan.Audit)...)

	if err := s.db.QueryRowContext(ctx, query, value).Scan(dest...); err != nil {
		if errors.Is(MapError(err), store.ErrNotFound) {
			log.Debug("loan not found", slog.String("by", column))
			return nil, store.ErrLoanNotFound
		}
		log.Error("failed to get loan",
			slog.String("error", err.Error()),
			slog.String("by", column))
		return nil, store.NewStoreError("loan", "get", "failed to query loan", err)
	}
	audit.apply(&loan.Audit)

	return &loan, nil
}

// Update implements store.LoanStore.Update
// Only the mutable fields and the update audit columns are written.
func (s *PostgresLoanStore) Update(ctx context.Context, loan *domain.Loan) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := loan.Validate(); err != nil {
		log.Warn("loan validation failed during update",
			slog.String("error", err.Error()),
			slog.String("loan_id", loan.ID.String()))
		return err
	}

	query := `
		UPDATE loans
		SET loan_type = $1, total_loan = $2, amount_paid = $3, outstanding_amount = $4,
			updated_at = $5, updated_by = $6
		WHERE loan_id = $7
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		loan.LoanType,
		loan.TotalLoan,
		loan.AmountPaid,
		loan.OutstandingAmount,
		nullableTime(loan.UpdatedAt),
		nullableString(loan.UpdatedBy),
		loan.ID,
	)
	if err != nil {
		log.Error("failed to update loan",
			slog.String("error", err.Error()),
			slog.String("loan_id", loan.ID.String()))
		return store.NewStoreError("loan", "update", "failed to update loan", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrLoanNotFound); err != nil {
		log.Debug("loan update affected no rows", slog.String("loan_id", loan.ID.String()))
		return err
	}

	log.Info("loan updated successfully", slog.String("loan_id", loan.ID.String()))
	return nil
}

// Delete implements store.LoanStore.Delete
func (s *PostgresLoanStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM loans WHERE loan_id = $1", id)
	if err != nil {
		log.Error("failed to delete loan",
			slog.String("error", err.Error()),
			slog.String("loan_id", id.String()))
		return store.NewStoreError("loan", "delete", "failed to delete loan", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrLoanNotFound); err != nil {
		log.Debug("loan delete affected no rows", slog.String("loan_id", id.String()))
		return err
	}

	log.Info("loan deleted successfully", slog.String("loan_id", id.String()))
	return nil
}
