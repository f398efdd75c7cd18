package api

import (
	"errors"
	"net/http"

	"github.com/bankmesh/bank-services/internal/api/shared"
	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/bankmesh/bank-services/internal/service"
	"github.com/bankmesh/bank-services/internal/store"
)

// MapErrorToStatusCode maps service and domain errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, service.ErrResourceNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrAlreadyExists):
		return http.StatusBadRequest

	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage returns the message reported to the client. Resource and
// validation errors carry a client-facing message; anything else is reported
// as is.
func ErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var resourceErr *service.ResourceError
	if errors.As(err, &resourceErr) {
		return resourceErr.Message
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}
	return err.Error()
}

// HandleAPIError writes the error envelope for err and logs the redacted cause.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
}
