package store

import (
	"context"
	"database/sql"

	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/google/uuid"
)

// CustomerStore defines the interface for customer data persistence.
type CustomerStore interface {
	// Create inserts a new customer under the ID assigned by domain.NewCustomer.
	// Returns ErrMobileNumberExists if the mobile number is already registered.
	Create(ctx context.Context, customer *domain.Customer) error

	// GetByID retrieves a customer by surrogate ID.
	// Returns ErrCustomerNotFound if the customer does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)

	// GetByMobileNumber retrieves a customer by mobile number.
	// Returns ErrCustomerNotFound if the customer does not exist.
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Customer, error)

	// Update overwrites name, email and mobile number of an existing customer.
	// Returns ErrCustomerNotFound if the customer does not exist.
	Update(ctx context.Context, customer *domain.Customer) error

	// Delete removes a customer by ID.
	// Returns ErrCustomerNotFound if the customer does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a CustomerStore that runs its queries inside tx.
	WithTx(tx *sql.Tx) CustomerStore
}
