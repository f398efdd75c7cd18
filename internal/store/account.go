package store

import (
	"context"
	"database/sql"

	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/google/uuid"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create inserts a new account.
	// Returns ErrDuplicate if the account number is already taken.
	Create(ctx context.Context, account *domain.Account) error

	// GetByAccountNumber retrieves an account by its account number.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByAccountNumber(ctx context.Context, accountNumber int64) (*domain.Account, error)

	// GetByCustomerID retrieves the account owned by a customer.
	// Returns ErrAccountNotFound if the customer has no account.
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*domain.Account, error)

	// Update overwrites the mutable fields of an existing account.
	// Returns ErrAccountNotFound if the account does not exist.
	Update(ctx context.Context, account *domain.Account) error

	// DeleteByCustomerID removes every account owned by the customer.
	// Deleting zero rows is not an error.
	DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error

	// WithTx returns an AccountStore that runs its queries inside tx.
	WithTx(tx *sql.Tx) AccountStore
}
