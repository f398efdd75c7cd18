package store

import (
	"context"

	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/google/uuid"
)

// LoanStore defines the interface for loan data persistence.
type LoanStore interface {
	// Create inserts a new loan under the ID assigned by domain.NewLoan.
	// Returns ErrMobileNumberExists if a loan is already issued for the
	// mobile number, or ErrDuplicate if the loan number collides.
	Create(ctx context.Context, loan *domain.Loan) error

	// GetByMobileNumber retrieves the loan issued for a mobile number.
	// Returns ErrLoanNotFound if no loan exists.
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Loan, error)

	// GetByLoanNumber retrieves a loan by its loan number.
	// Returns ErrLoanNotFound if no loan exists.
	GetByLoanNumber(ctx context.Context, loanNumber string) (*domain.Loan, error)

	// Update overwrites the mutable fields of an existing loan.
	// Returns ErrLoanNotFound if the loan does not exist.
	Update(ctx context.Context, loan *domain.Loan) error

	// Delete removes a loan by ID.
	// Returns ErrLoanNotFound if the loan does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
