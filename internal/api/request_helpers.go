package api

import (
	"net/http"

	"github.com/bankmesh/bank-services/internal/api/shared"
	"github.com/bankmesh/bank-services/internal/dto"
)

const (
	mobileNumberParam = "mobileNumber"
	mobileNumberRule  = "required,len=10,number"
)

// mobileNumberFromQuery reads and validates the mobileNumber query parameter.
// It writes a 400 response and returns false when the value is invalid.
func mobileNumberFromQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	mobileNumber := r.URL.Query().Get(mobileNumberParam)

	if err := shared.ValidateValue(mobileNumber, mobileNumberRule); err != nil {
		shared.RespondWithValidationErrors(w, r,
			shared.FieldErrors(err, mobileNumberParam, dto.MobileNumberMessages))
		return "", false
	}
	return mobileNumber, true
}

// decodeAndValidate decodes the JSON body into payload and validates it.
// It writes a 400 response and returns false on a malformed or invalid body.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, payload dto.MessageProvider) bool {
	if err := shared.DecodeJSON(r, payload); err != nil {
		shared.RespondWithValidationErrors(w, r, map[string]string{
			"body": "Malformed JSON request: " + err.Error(),
		})
		return false
	}

	if err := shared.ValidateRequest(payload); err != nil {
		shared.RespondWithValidationErrors(w, r,
			shared.FieldErrors(err, "body", payload.ValidationMessages()))
		return false
	}
	return true
}

// respondUpdated writes 200 when the update happened and 417 otherwise.
func respondUpdated(w http.ResponseWriter, r *http.Request, updated bool) {
	if !updated {
		shared.RespondWithStatus(w, r, http.StatusExpectationFailed, dto.Message417Update)
		return
	}
	shared.RespondWithStatus(w, r, http.StatusOK, dto.Message200)
}

// respondDeleted writes 200 when the delete happened and 417 otherwise.
func respondDeleted(w http.ResponseWriter, r *http.Request, deleted bool) {
	if !deleted {
		shared.RespondWithStatus(w, r, http.StatusExpectationFailed, dto.Message417Delete)
		return
	}
	shared.RespondWithStatus(w, r, http.StatusOK, dto.Message200)
}
