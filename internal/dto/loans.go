package dto

// Loans is the Loans service payload.
type Loans struct {
	MobileNumber      string `json:"mobileNumber"      validate:"required,len=10,number"`
	LoanNumber        string `json:"loanNumber"        validate:"required,len=12,number"`
	LoanType          string `json:"loanType"          validate:"required"`
	TotalLoan         int    `json:"totalLoan"         validate:"gt=0,lte=2147483647"`
	AmountPaid        int    `json:"amountPaid"        validate:"gte=0,lte=2147483647"`
	OutstandingAmount int    `json:"outstandingAmount" validate:"gte=0,lte=2147483647"`
}

// ValidationMessages implements MessageProvider.
func (Loans) ValidationMessages() map[string]string {
	return map[string]string{
		"mobileNumber.required": "Mobile number can not be a null or empty",
		"mobileNumber.len":      "Mobile number must be 10 digits",
		"mobileNumber.number":   "Mobile number must be 10 digits",
		"loanNumber.required":   "Loan number can not be a null or empty",
		"loanNumber.len":        "Loan number must be 12 digits",
		"loanNumber.number":     "Loan number must be 12 digits",
		"loanType.required":     "Loan Type can not be a null or empty",
		"totalLoan.gt":          "Total loan amount should be greater than zero",
		"totalLoan.lte":         "Total loan amount should not exceed 2147483647",
		"amountPaid.gte":        "Total loan amount paid should be equal or greater than zero",
		"amountPaid.lte":        "Total loan amount paid should not exceed 2147483647",
		"outstandingAmount.gte": "Total outstanding amount should be equal or greater than zero",
		"outstandingAmount.lte": "Total outstanding amount should not exceed 2147483647",
	}
}
