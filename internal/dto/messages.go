package dto

// MessageProvider is implemented by payloads that carry their own
// client-facing validation messages.
type MessageProvider interface {
	ValidationMessages() map[string]string
}

// MobileNumberMessages holds the messages for a bare mobileNumber query
// parameter, which every service validates the same way.
var MobileNumberMessages = map[string]string{
	"mobileNumber.required": "Mobile number can not be a null or empty",
	"mobileNumber.len":      "Mobile number must be 10 digits",
	"mobileNumber.number":   "Mobile number must be 10 digits",
}
