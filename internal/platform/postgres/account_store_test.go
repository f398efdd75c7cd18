package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/bankmesh/bank-services/internal/platform/postgres"
	"github.com/bankmesh/bank-services/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountRowColumns = []string{
	"account_number", "customer_id", "account_type", "branch_address",
	"created_at", "created_by", "updated_at", "updated_by",
}

func testAccount() *domain.Account {
	return &domain.Account{
		AccountNumber: 1234567890,
		CustomerID:    testCustomerID,
		AccountType:   domain.AccountTypeSavings,
		BranchAddress: domain.DefaultBranchAddress,
		Audit: domain.Audit{
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			CreatedBy: domain.AuditorAccounts,
		},
	}
}

func TestPostgresAccountStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresAccountStore(db, nil)

		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(int64(1234567890), testCustomerID, "Savings", "123 Main Street, New York", sqlmock.AnyArg(), "ACCOUNTS_MS").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Create(ctx, testAccount()))
	})

	t.Run("account number collision", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresAccountStore(db, nil)

		mock.ExpectExec("INSERT INTO accounts").WillReturnError(newPgError("23505", "accounts_pkey"))

		assert.ErrorIs(t, s.Create(ctx, testAccount()), store.ErrDuplicate)
	})
}

func TestPostgresAccountStore_Get(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	db, mock := newMockDB(t)
	s := postgres.NewPostgresAccountStore(db, nil)

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE customer_id = \\$1").
		WithArgs(testCustomerID).
		WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow(int64(1234567890), testCustomerID.String(), "Savings", "123 Main Street, New York", created, "ACCOUNTS_MS", nil, nil))
	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE account_number = \\$1").
		WithArgs(int64(1999999999)).
		WillReturnError(sql.ErrNoRows)

	account, err := s.GetByCustomerID(ctx, testCustomerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890), account.AccountNumber)
	assert.Equal(t, testCustomerID, account.CustomerID)
	assert.Equal(t, "Savings", account.AccountType)

	_, err = s.GetByAccountNumber(ctx, 1999999999)
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestPostgresAccountStore_Update(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	s := postgres.NewPostgresAccountStore(db, nil)
	account := testAccount()
	account.AccountType = "Current"
	account.BranchAddress = "42 Wall Street, New York"
	account.MarkUpdated(domain.AuditorAccounts, time.Now())

	mock.ExpectExec("UPDATE accounts").
		WithArgs("Current", "42 Wall Street, New York", sqlmock.AnyArg(), "ACCOUNTS_MS", int64(1234567890)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE accounts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Update(ctx, account))
	assert.ErrorIs(t, s.Update(ctx, account), store.ErrAccountNotFound)
}

func TestPostgresAccountStore_DeleteByCustomerID(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	s := postgres.NewPostgresAccountStore(db, nil)

	mock.ExpectExec("DELETE FROM accounts WHERE customer_id = \\$1").
		WithArgs(testCustomerID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Zero rows is not an error: the customer row is still removed afterwards.
	assert.NoError(t, s.DeleteByCustomerID(ctx, testCustomerID))
}
