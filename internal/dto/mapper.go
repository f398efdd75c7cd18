package dto

import "github.com/bankmesh/bank-services/internal/domain"

// ToCards projects a card onto its wire representation.
func ToCards(card *domain.Card) Cards {
	return Cards{
		MobileNumber:    card.MobileNumber,
		CardNumber:      card.CardNumber,
		CardType:        card.CardType,
		TotalLimit:      card.TotalLimit,
		AmountUsed:      card.AmountUsed,
		AvailableAmount: card.AvailableAmount,
	}
}

// ApplyCards overwrites the mutable fields of card with the payload.
// Mobile number and card number identify the card and are left untouched.
func ApplyCards(in Cards, card *domain.Card) {
	card.CardType = in.CardType
	card.TotalLimit = in.TotalLimit
	card.AmountUsed = in.AmountUsed
	card.AvailableAmount = in.AvailableAmount
}

// ToLoans projects a loan onto its wire representation.
func ToLoans(loan *domain.Loan) Loans {
	return Loans{
		MobileNumber:      loan.MobileNumber,
		LoanNumber:        loan.LoanNumber,
		LoanType:          loan.LoanType,
		TotalLoan:         loan.TotalLoan,
		AmountPaid:        loan.AmountPaid,
		OutstandingAmount: loan.OutstandingAmount,
	}
}

// ApplyLoans overwrites the mutable fields of loan with the payload.
func ApplyLoans(in Loans, loan *domain.Loan) {
	loan.LoanType = in.LoanType
	loan.TotalLoan = in.TotalLoan
	loan.AmountPaid = in.AmountPaid
	loan.OutstandingAmount = in.OutstandingAmount
}

// ToCustomer projects a customer and, when non-nil, its account.
func ToCustomer(customer *domain.Customer, account *domain.Account) Customer {
	out := Customer{
		Name:         customer.Name,
		Email:        customer.Email,
		MobileNumber: customer.MobileNumber,
	}
	if account != nil {
		accounts := ToAccounts(account)
		out.Accounts = &accounts
	}
	return out
}

// ApplyCustomer overwrites name, email and mobile number of customer.
func ApplyCustomer(in Customer, customer *domain.Customer) {
	customer.Name = in.Name
	customer.Email = in.Email
	customer.MobileNumber = in.MobileNumber
}

// ToAccounts projects an account onto its wire representation.
func ToAccounts(account *domain.Account) Accounts {
	return Accounts{
		AccountNumber: account.AccountNumber,
		AccountType:   account.AccountType,
		BranchAddress: account.BranchAddress,
	}
}

// ApplyAccounts overwrites account type and branch address. The account
// number is the lookup key and is not reassigned.
func ApplyAccounts(in Accounts, account *domain.Account) {
	account.AccountType = in.AccountType
	account.BranchAddress = in.BranchAddress
}
