package dto

// Cards is the Cards service payload.
type Cards struct {
	MobileNumber    string `json:"mobileNumber"    validate:"required,len=10,number"`
	CardNumber      string `json:"cardNumber"      validate:"required,len=12,number"`
	CardType        string `json:"cardType"        validate:"required"`
	TotalLimit      int    `json:"totalLimit"      validate:"gt=0,lte=2147483647"`
	AmountUsed      int    `json:"amountUsed"      validate:"gte=0,lte=2147483647"`
	AvailableAmount int    `json:"availableAmount" validate:"gte=0,lte=2147483647"`
}

// ValidationMessages implements MessageProvider.
func (Cards) ValidationMessages() map[string]string {
	return map[string]string{
		"mobileNumber.required": "Mobile number can not be null or empty",
		"mobileNumber.len":      "Mobile Number must be 10 digits",
		"mobileNumber.number":   "Mobile Number must be 10 digits",
		"cardNumber.required":   "Card Number can not be null or empty",
		"cardNumber.len":        "Card Number must be 12 digits",
		"cardNumber.number":     "Card Number must be 12 digits",
		"cardType.required":     "Card Type can not be a null or empty",
		"totalLimit.gt":         "Total card limit should be greater than zero",
		"totalLimit.lte":        "Total card limit should not exceed 2147483647",
		"amountUsed.gte":        "Total amount used should be equal or greater than zero",
		"amountUsed.lte":        "Total amount used should not exceed 2147483647",
		"availableAmount.gte":   "Total available amount should be equal or greater than zero",
		"availableAmount.lte":   "Total available amount should not exceed 2147483647",
	}
}
