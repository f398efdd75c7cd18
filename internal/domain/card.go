package domain

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
)

// Defaults applied to newly issued cards.
const (
	CardTypeCredit   = "Credit Card"
	NewCardLimit     = 100_000
	CardNumberLength = 12
	CardNumberBase   = int64(100_000_000_000)
	CardNumberSpan   = int64(900_000_000)
)

// Card-specific validation errors
var (
	ErrCardIDEmpty       = errors.New("card ID cannot be empty")
	ErrInvalidCardNumber = errors.New("card number must be 12 digits")
	ErrEmptyCardType     = errors.New("card type cannot be empty")
	ErrInvalidCardLimit  = errors.New("total card limit must be greater than zero")
)

// Card is a credit card issued against a customer's mobile number.
// Only one card may exist per mobile number. ID is internal and never
// leaves the service.
type Card struct {
	ID              uuid.UUID
	MobileNumber    string
	CardNumber      string
	CardType        string
	TotalLimit      int
	AmountUsed      int
	AvailableAmount int
	Audit
}

// NewCard issues a credit card with the default limit for the given mobile number.
func NewCard(mobileNumber string, gen NumberGenerator) (*Card, error) {
	card := &Card{
		ID:              uuid.New(),
		MobileNumber:    mobileNumber,
		CardNumber:      strconv.FormatInt(gen.Next(CardNumberBase, CardNumberSpan), 10),
		CardType:        CardTypeCredit,
		TotalLimit:      NewCardLimit,
		AmountUsed:      0,
		AvailableAmount: NewCardLimit,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks field formats only. The relation between limit, used and
// available amounts is deliberately not enforced.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return invalidField("id", ErrCardIDEmpty)
	}
	if err := ValidateMobileNumber(c.MobileNumber); err != nil {
		return err
	}
	if !isDigits(c.CardNumber, CardNumberLength) {
		return invalidField("cardNumber", ErrInvalidCardNumber)
	}
	if c.CardType == "" {
		return invalidField("cardType", ErrEmptyCardType)
	}
	return validateAmounts(
		amountField{"totalLimit", c.TotalLimit}, ErrInvalidCardLimit,
		amountField{"amountUsed", c.AmountUsed},
		amountField{"availableAmount", c.AvailableAmount},
	)
}
