package service

import (
	"errors"
	"fmt"

	"github.com/bankmesh/bank-services/internal/domain"
)

// Sentinel errors returned (wrapped in *ResourceError) by every lifecycle service.
// The API layer maps ErrAlreadyExists to 400 Bad Request and
// ErrResourceNotFound to 404 Not Found.
var (
	// ErrAlreadyExists indicates that an entity already exists for the natural key.
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrResourceNotFound indicates that a lookup by key found nothing.
	ErrResourceNotFound = errors.New("resource not found")
)

// ResourceError is an expected, client-facing failure. Message is returned to
// the client verbatim.
type ResourceError struct {
	Kind    error
	Message string
	Err     error
}

// Error implements the error interface for ResourceError.
func (e *ResourceError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/errors.As.
func (e *ResourceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewAlreadyExistsError reports that an entity is already registered for
// the given mobile number.
func NewAlreadyExistsError(resource, mobileNumber string, err error) *ResourceError {
	return &ResourceError{
		Kind:    ErrAlreadyExists,
		Message: fmt.Sprintf("%s already registered with given mobileNumber %s", resource, mobileNumber),
		Err:     err,
	}
}

// NewDuplicateKeyError reports that a generated business key such as a card
// number is already taken by another entity.
func NewDuplicateKeyError(resource, field, value string, err error) *ResourceError {
	return &ResourceError{
		Kind:    ErrAlreadyExists,
		Message: fmt.Sprintf("%s already registered with given %s %s", resource, field, value),
		Err:     err,
	}
}

// NewNotFoundError reports that no resource matched field = value.
func NewNotFoundError(resource, field, value string, err error) *ResourceError {
	return &ResourceError{
		Kind:    ErrResourceNotFound,
		Message: fmt.Sprintf("%s not found with the given input data %s : '%s'", resource, field, value),
		Err:     err,
	}
}

// ServiceError wraps unexpected failures with the service and operation
// that produced them.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// passThrough reports whether err already carries a client-facing kind and
// must be returned unwrapped. Entity validation failures are client errors too.
func passThrough(err error) bool {
	var resourceErr *ResourceError
	return errors.As(err, &resourceErr) || errors.Is(err, domain.ErrValidation)
}
