package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some error"), false},
		{"ErrNotFound", ErrNotFound, true},
		{"wrapped ErrNotFound", fmt.Errorf("lookup: %w", ErrNotFound), true},
		{"ErrCustomerNotFound", ErrCustomerNotFound, true},
		{"ErrAccountNotFound", ErrAccountNotFound, true},
		{"ErrCardNotFound", ErrCardNotFound, true},
		{"wrapped ErrLoanNotFound", fmt.Errorf("fetch loan: %w", ErrLoanNotFound), true},
		{"ErrDuplicate", ErrDuplicate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"ErrDuplicate", ErrDuplicate, true},
		{"ErrMobileNumberExists", ErrMobileNumberExists, true},
		{"wrapped ErrMobileNumberExists", fmt.Errorf("create: %w", ErrMobileNumberExists), true},
		{"ErrNotFound", ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDuplicateError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("loan", "create", "failed to insert loan", cause)

	assert.Equal(t, "create operation on loan failed: failed to insert loan: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	var storeErr *StoreError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &storeErr))
	assert.Equal(t, "loan", storeErr.Entity)

	noCause := NewStoreError("card", "delete", "nothing deleted", nil)
	assert.Equal(t, "delete operation on card failed: nothing deleted", noCause.Error())
}
