package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAddress struct {
	Street string `json:"street" validate:"required"`
}

type testPayload struct {
	MobileNumber string       `json:"mobileNumber" validate:"required,len=10,number"`
	Limit        int          `json:"limit"        validate:"gt=0"`
	Address      *testAddress `json:"address,omitempty"`
}

var testMessages = map[string]string{
	"mobileNumber.len": "Mobile number must be 10 digits",
	"street.required":  "Street can not be empty",
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"mobileNumber":"9876543210","limit":5}`))
		var p testPayload
		require.NoError(t, DecodeJSON(req, &p))
		assert.Equal(t, "9876543210", p.MobileNumber)
		assert.Equal(t, 5, p.Limit)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"mobileNumber":`))
		var p testPayload
		assert.Error(t, DecodeJSON(req, &p))
	})

	t.Run("wrong type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"limit":"ten"}`))
		var p testPayload
		assert.Error(t, DecodeJSON(req, &p))
	})
}

func TestFieldErrors(t *testing.T) {
	t.Run("uses json names and messages", func(t *testing.T) {
		err := ValidateRequest(testPayload{MobileNumber: "123", Limit: 0})
		require.Error(t, err)

		got := FieldErrors(err, "", testMessages)
		assert.Equal(t, map[string]string{
			"mobileNumber": "Mobile number must be 10 digits",
			"limit":        "limit failed on the 'gt' validation",
		}, got)
	})

	t.Run("nested struct keyed by path", func(t *testing.T) {
		err := ValidateRequest(testPayload{MobileNumber: "9876543210", Limit: 1, Address: &testAddress{}})
		require.Error(t, err)

		got := FieldErrors(err, "", testMessages)
		assert.Equal(t, map[string]string{"address.street": "Street can not be empty"}, got)
	})

	t.Run("nil nested struct is skipped", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(testPayload{MobileNumber: "9876543210", Limit: 1}))
	})

	t.Run("single value", func(t *testing.T) {
		err := ValidateValue("98765abcde", "required,len=10,number")
		require.Error(t, err)

		got := FieldErrors(err, "mobileNumber", map[string]string{"mobileNumber.number": "digits only"})
		assert.Equal(t, map[string]string{"mobileNumber": "digits only"}, got)
	})

	t.Run("non validation error", func(t *testing.T) {
		got := FieldErrors(assert.AnError, "body", nil)
		assert.Equal(t, map[string]string{"body": assert.AnError.Error()}, got)
	})
}
