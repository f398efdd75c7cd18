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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customerRowColumns = []string{
	"customer_id", "name", "email", "mobile_number", "created_at", "created_by", "updated_at", "updated_by",
}

var testCustomerID = uuid.MustParse("3d2c1b0a-5f4e-4d3c-9b2a-1f0e9d8c7b6a")

func testCustomer() *domain.Customer {
	return &domain.Customer{
		ID:           testCustomerID,
		Name:         "Jane Doe",
		Email:        "jane.doe@example.com",
		MobileNumber: "9876543210",
		Audit: domain.Audit{
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			CreatedBy: domain.AuditorAccounts,
		},
	}
}

func TestPostgresCustomerStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCustomerStore(db, nil)
		customer := testCustomer()

		mock.ExpectExec("INSERT INTO customers").
			WithArgs(testCustomerID, "Jane Doe", "jane.doe@example.com", "9876543210", sqlmock.AnyArg(), "ACCOUNTS_MS").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Create(ctx, customer))
		assert.Equal(t, testCustomerID, customer.ID)
	})

	t.Run("mobile number taken", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCustomerStore(db, nil)

		mock.ExpectExec("INSERT INTO customers").
			WillReturnError(newPgError("23505", "customers_mobile_number_key"))

		assert.ErrorIs(t, s.Create(ctx, testCustomer()), store.ErrMobileNumberExists)
	})

	t.Run("invalid email", func(t *testing.T) {
		db, _ := newMockDB(t)
		s := postgres.NewPostgresCustomerStore(db, nil)
		customer := testCustomer()
		customer.Email = "not-an-email"

		err := s.Create(ctx, customer)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("multibyte name within bounds", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCustomerStore(db, nil)
		customer := testCustomer()
		customer.Name = "Zoë Renée Müller-Søndergaard"

		mock.ExpectExec("INSERT INTO customers").
			WithArgs(testCustomerID, "Zoë Renée Müller-Søndergaard", sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Create(ctx, customer))
	})
}

func TestPostgresCustomerStore_Get(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	db, mock := newMockDB(t)
	s := postgres.NewPostgresCustomerStore(db, nil)

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE mobile_number = \\$1").
		WithArgs("9876543210").
		WillReturnRows(sqlmock.NewRows(customerRowColumns).
			AddRow(testCustomerID.String(), "Jane Doe", "jane.doe@example.com", "9876543210", created, "ACCOUNTS_MS", nil, nil))
	missing := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM customers WHERE customer_id = \\$1").
		WithArgs(missing).
		WillReturnError(sql.ErrNoRows)

	customer, err := s.GetByMobileNumber(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, testCustomerID, customer.ID)
	assert.Equal(t, "Jane Doe", customer.Name)

	_, err = s.GetByID(ctx, missing)
	assert.ErrorIs(t, err, store.ErrCustomerNotFound)
}

func TestPostgresCustomerStore_UpdateDelete(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	s := postgres.NewPostgresCustomerStore(db, nil)
	customer := testCustomer()
	customer.MarkUpdated(domain.AuditorAccounts, time.Now())

	mock.ExpectExec("UPDATE customers").
		WithArgs("Jane Doe", "jane.doe@example.com", "9876543210", sqlmock.AnyArg(), "ACCOUNTS_MS", testCustomerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM customers WHERE customer_id = \\$1").
		WithArgs(testCustomerID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Update(ctx, customer))
	assert.ErrorIs(t, s.Delete(ctx, testCustomerID), store.ErrCustomerNotFound)
}

func TestPostgresCustomerStore_WithTx(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	s := postgres.NewPostgresCustomerStore(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM customers").WithArgs(testCustomerID).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		return s.WithTx(tx).Delete(ctx, testCustomerID)
	})
	assert.NoError(t, err)
}
