package domain

import (
	"errors"
	"net/mail"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MobileNumberLength is the number of digits in a customer mobile number.
const MobileNumberLength = 10

// Customer name bounds, in characters.
const (
	CustomerNameMinLength = 5
	CustomerNameMaxLength = 30
)

// Customer-specific validation errors
var (
	ErrCustomerIDEmpty    = errors.New("customer ID cannot be empty")
	ErrEmptyCustomerName  = errors.New("customer name cannot be empty")
	ErrCustomerNameLength = errors.New("customer name must be between 5 and 30 characters")
	ErrEmptyCustomerEmail = errors.New("customer email cannot be empty")
)

// Customer is the owner of an account. Customers are looked up by mobile
// number, which is unique.
type Customer struct {
	ID           uuid.UUID
	Name         string
	Email        string
	MobileNumber string
	Audit
}

// NewCustomer creates a Customer with a new ID from the given details.
// Returns an error if validation fails.
func NewCustomer(name, email, mobileNumber string) (*Customer, error) {
	customer := &Customer{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		MobileNumber: mobileNumber,
	}

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate checks if the Customer has valid data.
func (c *Customer) Validate() error {
	if c.ID == uuid.Nil {
		return invalidField("id", ErrCustomerIDEmpty)
	}
	if c.Name == "" {
		return invalidField("name", ErrEmptyCustomerName)
	}
	if n := utf8.RuneCountInString(c.Name); n < CustomerNameMinLength || n > CustomerNameMaxLength {
		return invalidField("name", ErrCustomerNameLength)
	}
	if c.Email == "" {
		return invalidField("email", ErrEmptyCustomerEmail)
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return invalidField("email", ErrInvalidEmail)
	}
	return ValidateMobileNumber(c.MobileNumber)
}
