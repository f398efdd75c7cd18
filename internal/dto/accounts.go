package dto

// Customer is the Accounts service payload: customer details plus, on fetch
// and update, the account owned by the customer.
type Customer struct {
	Name         string    `json:"name"         validate:"required,min=5,max=30"`
	Email        string    `json:"email"        validate:"required,email"`
	MobileNumber string    `json:"mobileNumber" validate:"required,len=10,number"`
	Accounts     *Accounts `json:"accountsDto,omitempty"`
}

// Accounts carries the account part of a Customer payload.
type Accounts struct {
	AccountNumber int64  `json:"accountNumber" validate:"required,gte=1000000000,lte=9999999999"`
	AccountType   string `json:"accountType"   validate:"required"`
	BranchAddress string `json:"branchAddress" validate:"required"`
}

// ValidationMessages implements MessageProvider.
func (Customer) ValidationMessages() map[string]string {
	return map[string]string{
		"name.required":          "Name can not be a null or empty",
		"name.min":               "The length of the customer name should be between 5 and 30",
		"name.max":               "The length of the customer name should be between 5 and 30",
		"email.required":         "Email address can not be a null or empty",
		"email.email":            "Email address should be a valid value",
		"mobileNumber.required":  "Mobile number can not be a null or empty",
		"mobileNumber.len":       "Mobile number must be 10 digits",
		"mobileNumber.number":    "Mobile number must be 10 digits",
		"accountNumber.required": "Account number can not be null or empty",
		"accountNumber.gte":      "Account number must be 10 digits",
		"accountNumber.lte":      "Account number must be 10 digits",
		"accountType.required":   "Account type can not be null or empty",
		"branchAddress.required": "BranchAddress can not be null or empty",
	}
}
