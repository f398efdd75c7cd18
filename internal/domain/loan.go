package domain

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
)

// Defaults applied to newly issued loans.
const (
	LoanTypeHome     = "Home Loan"
	NewLoanLimit     = 100_000
	LoanNumberLength = 12
	LoanNumberBase   = int64(100_000_000_000)
	LoanNumberSpan   = int64(900_000_000)
)

// Loan-specific validation errors
var (
	ErrLoanIDEmpty       = errors.New("loan ID cannot be empty")
	ErrInvalidLoanNumber = errors.New("loan number must be 12 digits")
	ErrEmptyLoanType     = errors.New("loan type cannot be empty")
	ErrInvalidTotalLoan  = errors.New("total loan amount must be greater than zero")
)

// Loan is a loan issued against a customer's mobile number.
// Only one loan may exist per mobile number.
type Loan struct {
	ID                uuid.UUID
	MobileNumber      string
	LoanNumber        string
	LoanType          string
	TotalLoan         int
	AmountPaid        int
	OutstandingAmount int
	Audit
}

// NewLoan issues a home loan with the default amount for the given mobile number.
func NewLoan(mobileNumber string, gen NumberGenerator) (*Loan, error) {
	loan := &Loan{
		ID:                uuid.New(),
		MobileNumber:      mobileNumber,
		LoanNumber:        strconv.FormatInt(gen.Next(LoanNumberBase, LoanNumberSpan), 10),
		LoanType:          LoanTypeHome,
		TotalLoan:         NewLoanLimit,
		AmountPaid:        0,
		OutstandingAmount: NewLoanLimit,
	}

	if err := loan.Validate(); err != nil {
		return nil, err
	}

	return loan, nil
}

// Validate checks field formats only; outstanding amount is never recomputed.
func (l *Loan) Validate() error {
	if l.ID == uuid.Nil {
		return invalidField("id", ErrLoanIDEmpty)
	}
	if err := ValidateMobileNumber(l.MobileNumber); err != nil {
		return err
	}
	if !isDigits(l.LoanNumber, LoanNumberLength) {
		return invalidField("loanNumber", ErrInvalidLoanNumber)
	}
	if l.LoanType == "" {
		return invalidField("loanType", ErrEmptyLoanType)
	}
	return validateAmounts(
		amountField{"totalLoan", l.TotalLoan}, ErrInvalidTotalLoan,
		amountField{"amountPaid", l.AmountPaid},
		amountField{"outstandingAmount", l.OutstandingAmount},
	)
}
