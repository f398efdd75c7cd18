package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/bankmesh/bank-services/internal/dto"
	"github.com/bankmesh/bank-services/internal/platform/logger"
	"github.com/bankmesh/bank-services/internal/redact"
	"github.com/bankmesh/bank-services/internal/store"
)

// LoansService manages the lifecycle of the one loan issued per mobile number.
type LoansService interface {
	// CreateLoan issues a home loan with the default amounts for the mobile number.
	CreateLoan(ctx context.Context, mobileNumber string) error

	// FetchLoan returns the loan issued for the mobile number.
	FetchLoan(ctx context.Context, mobileNumber string) (dto.Loans, error)

	// UpdateLoan overwrites the mutable fields of the loan identified by its loan number.
	UpdateLoan(ctx context.Context, in dto.Loans) (bool, error)

	// DeleteLoan removes the loan issued for the mobile number.
	DeleteLoan(ctx context.Context, mobileNumber string) (bool, error)
}

type loansServiceImpl struct {
	loans  store.LoanStore
	gen    domain.NumberGenerator
	opts   options
	logger *slog.Logger
}

// NewLoansService creates a new LoansService.
// It returns an error if any of the required dependencies are nil.
func NewLoansService(
	loans store.LoanStore,
	gen domain.NumberGenerator,
	logger *slog.Logger,
	opts ...Option,
) (LoansService, error) {
	if loans == nil {
		return nil, domain.NewValidationError("loans", "cannot be nil", domain.ErrValidation)
	}
	if gen == nil {
		return nil, domain.NewValidationError("gen", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &loansServiceImpl{
		loans:  loans,
		gen:    gen,
		opts:   buildOptions(domain.AuditorLoans, opts),
		logger: logger.With(slog.String("component", "loans_service")),
	}, nil
}

// CreateLoan implements LoansService.CreateLoan
func (s *loansServiceImpl) CreateLoan(ctx context.Context, mobileNumber string) error {
	log := logger.FromContextOrDefault(ctx, s.logger).
		With(slog.String("mobile_number", redact.MobileNumber(mobileNumber)))

	_, err := s.loans.GetByMobileNumber(ctx, mobileNumber)
	switch {
	case err == nil:
		log.Warn("loan already issued for mobile number")
		return NewAlreadyExistsError("Loan", mobileNumber, nil)
	case !store.IsNotFoundError(err):
		log.Error("failed to check for existing loan", slog.String("error", err.Error()))
		return NewServiceError("loans", "create_loan", "failed to check for existing loan", err)
	}

	loan, err := domain.NewLoan(mobileNumber, s.gen)
	if err != nil {
		log.Warn("invalid loan", slog.String("error", err.Error()))
		return err
	}
	loan.MarkCreated(s.opts.auditor, s.opts.now())

	if err := s.loans.Create(ctx, loan); err != nil {
		switch {
		case errors.Is(err, store.ErrMobileNumberExists):
			return NewAlreadyExistsError("Loan", mobileNumber, err)
		case store.IsDuplicateError(err):
			log.Warn("generated loan number already taken", slog.String("loan_number", loan.LoanNumber))
			return NewDuplicateKeyError("Loan", "loanNumber", loan.LoanNumber, err)
		case passThrough(err):
			return err
		}
		return NewServiceError("loans", "create_loan", "failed to save loan", err)
	}

	log.Info("loan created", slog.String("loan_id", loan.ID.String()))
	return nil
}

// FetchLoan implements LoansService.FetchLoan
func (s *loansServiceImpl) FetchLoan(ctx context.Context, mobileNumber string) (dto.Loans, error) {
	loan, err := s.loans.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return dto.Loans{}, s.lookupError("fetch_loan", "mobileNumber", mobileNumber, err)
	}
	return dto.ToLoans(loan), nil
}

// UpdateLoan implements LoansService.UpdateLoan
func (s *loansServiceImpl) UpdateLoan(ctx context.Context, in dto.Loans) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	loan, err := s.loans.GetByLoanNumber(ctx, in.LoanNumber)
	if err != nil {
		return false, s.lookupError("update_loan", "LoanNumber", in.LoanNumber, err)
	}

	dto.ApplyLoans(in, loan)
	loan.MarkUpdated(s.opts.auditor, s.opts.now())

	if err := s.loans.Update(ctx, loan); err != nil {
		return false, s.lookupError("update_loan", "LoanNumber", in.LoanNumber, err)
	}

	log.Info("loan updated", slog.String("loan_id", loan.ID.String()))
	return true, nil
}

// DeleteLoan implements LoansService.DeleteLoan
func (s *loansServiceImpl) DeleteLoan(ctx context.Context, mobileNumber string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	loan, err := s.loans.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return false, s.lookupError("delete_loan", "mobileNumber", mobileNumber, err)
	}

	if err := s.loans.Delete(ctx, loan.ID); err != nil {
		return false, s.lookupError("delete_loan", "mobileNumber", mobileNumber, err)
	}

	log.Info("loan deleted", slog.String("loan_id", loan.ID.String()))
	return true, nil
}

// lookupError maps a missing loan to NotFound
// and anything else to a ServiceError.
func (s *loansServiceImpl) lookupError(operation, field, value string, err error) error {
	if store.IsNotFoundError(err) {
		return NewNotFoundError("Loan", field, value, err)
	}
	if passThrough(err) {
		return err
	}
	s.logger.Error("loan store failure",
		slog.String("operation", operation),
		slog.String("error", err.Error()))
	return NewServiceError("loans", operation, "loan store failure", err)
}
