package dto

import "time"

// Status codes and messages carried by Response.
const (
	Status200 = "200"
	Status201 = "201"
	Status417 = "417"

	MessageAccountCreated = "Account created successfully"
	MessageCardCreated    = "Card Created Successfully"
	MessageLoanCreated    = "Loan Created Successfully"
	Message200            = "Request Processed Successfully"
	Message417Update      = "Update Operation failed. Please try again or contact Dev Team"
	Message417Delete      = "Delete Operation failed. Please try again or contact Dev Team"
)

// Response is the success envelope returned by create, update and delete.
type Response struct {
	StatusCode string `json:"statusCode"`
	StatusMsg  string `json:"statusMsg"`
}

// ErrorResponse is the envelope returned for domain and unhandled failures.
type ErrorResponse struct {
	APIPath      string    `json:"apiPath"`
	ErrorCode    string    `json:"errorCode"`
	ErrorMessage string    `json:"errorMessage"`
	ErrorTime    time.Time `json:"errorTime"`
}

// ContactInfo is served by the contact-info endpoint.
type ContactInfo struct {
	Message        string            `json:"message"`
	ContactDetails map[string]string `json:"contactDetails"`
	OnCallSupport  []string          `json:"onCallSupport"`
}
