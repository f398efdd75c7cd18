package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/bankmesh/bank-services/internal/dto"
	"github.com/bankmesh/bank-services/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLoansService(t *testing.T, loans *MockLoanStore) LoansService {
	t.Helper()
	svc, err := NewLoansService(loans, fixedGenerator(899_999_999), nil,
		WithClock(fixedClock), WithAuditor("LOANS_TEST"))
	require.NoError(t, err)
	return svc
}

var testLoanID = uuid.MustParse("c4a1f3e2-6b5d-4e7f-9a8b-0d1c2e3f4a5b")

func TestLoansService_CreateThenFetch(t *testing.T) {
	ctx := context.Background()
	loans := &MockLoanStore{}

	var saved *domain.Loan
	loans.On("GetByMobileNumber", ctx, testMobile).Return(nil, store.ErrLoanNotFound).Once()
	loans.On("Create", ctx, mock.AnythingOfType("*domain.Loan")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.Loan)
		}).
		Return(nil)

	svc := newTestLoansService(t, loans)
	require.NoError(t, svc.CreateLoan(ctx, testMobile))
	require.NotNil(t, saved)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, "LOANS_TEST", saved.CreatedBy)
	assert.True(t, saved.UpdatedAt.IsZero())

	loans.On("GetByMobileNumber", ctx, testMobile).Return(saved, nil)

	got, err := svc.FetchLoan(ctx, testMobile)
	require.NoError(t, err)
	assert.Equal(t, dto.Loans{
		MobileNumber:      testMobile,
		LoanNumber:        "100899999999",
		LoanType:          "Home Loan",
		TotalLoan:         100000,
		AmountPaid:        0,
		OutstandingAmount: 100000,
	}, got)
	assert.Len(t, got.LoanNumber, 12)
}

func TestLoansService_Errors(t *testing.T) {
	ctx := context.Background()
	update := dto.Loans{
		MobileNumber:      testMobile,
		LoanNumber:        "999999999999",
		LoanType:          "Home Loan",
		TotalLoan:         50000,
		AmountPaid:        10000,
		OutstandingAmount: 40000,
	}

	tests := []struct {
		name    string
		setup   func(*MockLoanStore)
		call    func(LoansService) error
		wantErr error
		wantMsg string
	}{
		{
			name: "create duplicate",
			setup: func(m *MockLoanStore) {
				m.On("GetByMobileNumber", ctx, testMobile).Return(&domain.Loan{ID: uuid.New()}, nil)
			},
			call:    func(s LoansService) error { return s.CreateLoan(ctx, testMobile) },
			wantErr: ErrAlreadyExists,
			wantMsg: "Loan already registered with given mobileNumber 9876543210",
		},
		{
			name: "loan number collision",
			setup: func(m *MockLoanStore) {
				m.On("GetByMobileNumber", ctx, testMobile).Return(nil, store.ErrLoanNotFound)
				m.On("Create", ctx, mock.Anything).Return(store.ErrDuplicate)
			},
			call:    func(s LoansService) error { return s.CreateLoan(ctx, testMobile) },
			wantErr: ErrAlreadyExists,
			wantMsg: "Loan already registered with given loanNumber 100899999999",
		},
		{
			name: "fetch unknown",
			setup: func(m *MockLoanStore) {
				m.On("GetByMobileNumber", ctx, testMobile).Return(nil, store.ErrLoanNotFound)
			},
			call: func(s LoansService) error {
				_, err := s.FetchLoan(ctx, testMobile)
				return err
			},
			wantErr: ErrResourceNotFound,
			wantMsg: "Loan not found with the given input data mobileNumber : '9876543210'",
		},
		{
			name: "update unknown",
			setup: func(m *MockLoanStore) {
				m.On("GetByLoanNumber", ctx, "999999999999").Return(nil, store.ErrLoanNotFound)
			},
			call: func(s LoansService) error {
				_, err := s.UpdateLoan(ctx, update)
				return err
			},
			wantErr: ErrResourceNotFound,
			wantMsg: "Loan not found with the given input data LoanNumber : '999999999999'",
		},
		{
			name: "delete unknown",
			setup: func(m *MockLoanStore) {
				m.On("GetByMobileNumber", ctx, testMobile).Return(nil, store.ErrLoanNotFound)
			},
			call: func(s LoansService) error {
				_, err := s.DeleteLoan(ctx, testMobile)
				return err
			},
			wantErr: ErrResourceNotFound,
			wantMsg: "Loan not found with the given input data mobileNumber : '9876543210'",
		},
		{
			name: "delete removed concurrently",
			setup: func(m *MockLoanStore) {
				m.On("GetByMobileNumber", ctx, testMobile).Return(&domain.Loan{ID: testLoanID}, nil)
				m.On("Delete", ctx, testLoanID).Return(store.ErrLoanNotFound)
			},
			call: func(s LoansService) error {
				_, err := s.DeleteLoan(ctx, testMobile)
				return err
			},
			wantErr: ErrResourceNotFound,
		},
		{
			name: "fetch store failure",
			setup: func(m *MockLoanStore) {
				m.On("GetByMobileNumber", ctx, testMobile).Return(nil, errors.New("timeout"))
			},
			call: func(s LoansService) error {
				_, err := s.FetchLoan(ctx, testMobile)
				return err
			},
			wantMsg: "loans service fetch_loan failed: loan store failure: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loans := &MockLoanStore{}
			tt.setup(loans)

			err := tt.call(newTestLoansService(t, loans))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestLoansService_UpdateLoan(t *testing.T) {
	ctx := context.Background()
	loans := &MockLoanStore{}
	existing := &domain.Loan{
		ID:                testLoanID,
		MobileNumber:      testMobile,
		LoanNumber:        "100899999999",
		LoanType:          "Home Loan",
		TotalLoan:         100000,
		OutstandingAmount: 100000,
	}
	loans.On("GetByLoanNumber", ctx, "100899999999").Return(existing, nil)
	loans.On("Update", ctx, existing).Return(nil)

	ok, err := newTestLoansService(t, loans).UpdateLoan(ctx, dto.Loans{
		MobileNumber:      "1234567890",
		LoanNumber:        "100899999999",
		LoanType:          "Home Loan",
		TotalLoan:         50000,
		AmountPaid:        10000,
		OutstandingAmount: 40000,
	})
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, 50000, existing.TotalLoan)
	assert.Equal(t, 10000, existing.AmountPaid)
	assert.Equal(t, 40000, existing.OutstandingAmount)
	assert.Equal(t, testMobile, existing.MobileNumber)
	assert.Equal(t, "LOANS_TEST", existing.UpdatedBy)
	loans.AssertExpectations(t)
}
