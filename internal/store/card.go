package store

import (
	"context"

	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/google/uuid"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create inserts a new card under the ID assigned by domain.NewCard.
	// Returns ErrMobileNumberExists if a card is already issued for the
	// mobile number, or ErrDuplicate if the card number collides.
	Create(ctx context.Context, card *domain.Card) error

	// GetByMobileNumber retrieves the card issued for a mobile number.
	// Returns ErrCardNotFound if no card exists.
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Card, error)

	// GetByCardNumber retrieves a card by its card number.
	// Returns ErrCardNotFound if no card exists.
	GetByCardNumber(ctx context.Context, cardNumber string) (*domain.Card, error)

	// Update overwrites the mutable fields of an existing card.
	// Returns ErrCardNotFound if the card does not exist.
	Update(ctx context.Context, card *domain.Card) error

	// Delete removes a card by ID.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
