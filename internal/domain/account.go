package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Defaults applied to newly opened accounts.
const (
	AccountTypeSavings   = "Savings"
	DefaultBranchAddress = "123 Main Street, New York"

	// Account numbers are 10 digits: 1000000000 + [0, 900000000).
	AccountNumberBase int64 = 1_000_000_000
	AccountNumberSpan int64 = 900_000_000
)

// Account-specific validation errors
var (
	ErrInvalidAccountNumber   = errors.New("account number must be 10 digits")
	ErrEmptyAccountCustomerID = errors.New("account customer ID cannot be empty")
	ErrEmptyAccountType       = errors.New("account type cannot be empty")
	ErrEmptyBranchAddress     = errors.New("branch address cannot be empty")
)

// Account is a bank account owned by exactly one Customer.
// The account number is the primary key and is visible to clients.
type Account struct {
	AccountNumber int64
	CustomerID    uuid.UUID
	AccountType   string
	BranchAddress string
	Audit
}

// NewAccount opens a savings account for the given customer with a freshly
// generated account number.
func NewAccount(customerID uuid.UUID, gen NumberGenerator) (*Account, error) {
	account := &Account{
		AccountNumber: gen.Next(AccountNumberBase, AccountNumberSpan),
		CustomerID:    customerID,
		AccountType:   AccountTypeSavings,
		BranchAddress: DefaultBranchAddress,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
func (a *Account) Validate() error {
	if a.AccountNumber < 1_000_000_000 || a.AccountNumber > 9_999_999_999 {
		return invalidField("accountNumber", ErrInvalidAccountNumber)
	}
	if a.CustomerID == uuid.Nil {
		return invalidField("customerId", ErrEmptyAccountCustomerID)
	}
	if a.AccountType == "" {
		return invalidField("accountType", ErrEmptyAccountType)
	}
	if a.BranchAddress == "" {
		return invalidField("branchAddress", ErrEmptyBranchAddress)
	}
	return nil
}
