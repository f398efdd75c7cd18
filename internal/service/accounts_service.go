package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strconv"

	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/bankmesh/bank-services/internal/dto"
	"github.com/bankmesh/bank-services/internal/platform/logger"
	"github.com/bankmesh/bank-services/internal/redact"
	"github.com/bankmesh/bank-services/internal/store"
)

// AccountsService manages customers and the single account each of them owns.
type AccountsService interface {
	// CreateAccount registers the customer and opens a savings account for it
	// in a single transaction.
	CreateAccount(ctx context.Context, in dto.Customer) error

	// FetchAccount returns the customer registered for the mobile number
	// together with its account.
	FetchAccount(ctx context.Context, mobileNumber string) (dto.Customer, error)

	// UpdateAccount overwrites the account identified by its account number and
	// the customer owning it. It reports false when the payload carries no
	// account details.
	UpdateAccount(ctx context.Context, in dto.Customer) (bool, error)

	// DeleteAccount removes the customer registered for the mobile number
	// along with its accounts.
	DeleteAccount(ctx context.Context, mobileNumber string) (bool, error)
}

type accountsServiceImpl struct {
	db        *sql.DB
	customers store.CustomerStore
	accounts  store.AccountStore
	gen       domain.NumberGenerator
	opts      options
	logger    *slog.Logger
}

// NewAccountsService creates a new AccountsService.
// db is used to open the transactions spanning both stores.
func NewAccountsService(
	db *sql.DB,
	customers store.CustomerStore,
	accounts store.AccountStore,
	gen domain.NumberGenerator,
	logger *slog.Logger,
	opts ...Option,
) (AccountsService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if customers == nil {
		return nil, domain.NewValidationError("customers", "cannot be nil", domain.ErrValidation)
	}
	if accounts == nil {
		return nil, domain.NewValidationError("accounts", "cannot be nil", domain.ErrValidation)
	}
	if gen == nil {
		return nil, domain.NewValidationError("gen", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &accountsServiceImpl{
		db:        db,
		customers: customers,
		accounts:  accounts,
		gen:       gen,
		opts:      buildOptions(domain.AuditorAccounts, opts),
		logger:    logger.With(slog.String("component", "accounts_service")),
	}, nil
}

// CreateAccount implements AccountsService.CreateAccount
func (s *accountsServiceImpl) CreateAccount(ctx context.Context, in dto.Customer) error {
	log := logger.FromContextOrDefault(ctx, s.logger).
		With(slog.String("mobile_number", redact.MobileNumber(in.MobileNumber)))

	_, err := s.customers.GetByMobileNumber(ctx, in.MobileNumber)
	switch {
	case err == nil:
		log.Warn("customer already registered")
		return NewAlreadyExistsError("Customer", in.MobileNumber, nil)
	case !store.IsNotFoundError(err):
		log.Error("failed to check for existing customer", slog.String("error", err.Error()))
		return NewServiceError("accounts", "create_account", "failed to check for existing customer", err)
	}

	customer, err := domain.NewCustomer(in.Name, in.Email, in.MobileNumber)
	if err != nil {
		log.Warn("invalid customer", slog.String("error", err.Error()))
		return err
	}
	now := s.opts.now()
	customer.MarkCreated(s.opts.auditor, now)

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.customers.WithTx(tx).Create(ctx, customer); err != nil {
			switch {
			case store.IsDuplicateError(err):
				return NewAlreadyExistsError("Customer", in.MobileNumber, err)
			case passThrough(err):
				return err
			}
			return NewServiceError("accounts", "create_account", "failed to save customer", err)
		}

		account, err := domain.NewAccount(customer.ID, s.gen)
		if err != nil {
			return NewServiceError("accounts", "create_account", "failed to build account", err)
		}
		account.MarkCreated(s.opts.auditor, now)

		if err := s.accounts.WithTx(tx).Create(ctx, account); err != nil {
			if store.IsDuplicateError(err) {
				log.Warn("generated account number already taken",
					slog.Int64("account_number", account.AccountNumber))
				return NewDuplicateKeyError("Account", "accountNumber",
					strconv.FormatInt(account.AccountNumber, 10), err)
			}
			return NewServiceError("accounts", "create_account", "failed to save account", err)
		}

		log.Info("account created",
			slog.String("customer_id", customer.ID.String()),
			slog.Int64("account_number", account.AccountNumber))
		return nil
	})
	return s.txError("create_account", err)
}

// FetchAccount implements AccountsService.FetchAccount
func (s *accountsServiceImpl) FetchAccount(ctx context.Context, mobileNumber string) (dto.Customer, error) {
	customer, err := s.customers.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return dto.Customer{}, s.lookupError("fetch_account", "Customer", "mobileNumber", mobileNumber, err)
	}

	account, err := s.accounts.GetByCustomerID(ctx, customer.ID)
	if err != nil {
		return dto.Customer{}, s.lookupError(
			"fetch_account", "Account", "customerId", customer.ID.String(), err)
	}

	return dto.ToCustomer(customer, account), nil
}

// UpdateAccount implements AccountsService.UpdateAccount
func (s *accountsServiceImpl) UpdateAccount(ctx context.Context, in dto.Customer) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if in.Accounts == nil {
		log.Debug("update without account details, nothing to do")
		return false, nil
	}

	now := s.opts.now()
	accountNumber := strconv.FormatInt(in.Accounts.AccountNumber, 10)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		accounts := s.accounts.WithTx(tx)
		customers := s.customers.WithTx(tx)

		account, err := accounts.GetByAccountNumber(ctx, in.Accounts.AccountNumber)
		if err != nil {
			return s.lookupError("update_account", "Account", "AccountNumber", accountNumber, err)
		}
		dto.ApplyAccounts(*in.Accounts, account)
		account.MarkUpdated(s.opts.auditor, now)
		if err := accounts.Update(ctx, account); err != nil {
			return s.lookupError("update_account", "Account", "AccountNumber", accountNumber, err)
		}

		customerID := account.CustomerID.String()
		customer, err := customers.GetByID(ctx, account.CustomerID)
		if err != nil {
			return s.lookupError("update_account", "Customer", "CustomerID", customerID, err)
		}
		dto.ApplyCustomer(in, customer)
		customer.MarkUpdated(s.opts.auditor, now)
		if err := customers.Update(ctx, customer); err != nil {
			if store.IsDuplicateError(err) {
				return NewAlreadyExistsError("Customer", in.MobileNumber, err)
			}
			return s.lookupError("update_account", "Customer", "CustomerID", customerID, err)
		}

		log.Info("account updated",
			slog.String("customer_id", customer.ID.String()),
			slog.Int64("account_number", account.AccountNumber))
		return nil
	})
	if err != nil {
		return false, s.txError("update_account", err)
	}
	return true, nil
}

// DeleteAccount implements AccountsService.DeleteAccount
func (s *accountsServiceImpl) DeleteAccount(ctx context.Context, mobileNumber string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	customer, err := s.customers.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return false, s.lookupError("delete_account", "Customer", "mobileNumber", mobileNumber, err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.accounts.WithTx(tx).DeleteByCustomerID(ctx, customer.ID); err != nil {
			return NewServiceError("accounts", "delete_account", "failed to delete accounts", err)
		}
		if err := s.customers.WithTx(tx).Delete(ctx, customer.ID); err != nil {
			return s.lookupError("delete_account", "Customer", "mobileNumber", mobileNumber, err)
		}
		return nil
	})
	if err != nil {
		return false, s.txError("delete_account", err)
	}

	log.Info("account deleted", slog.String("customer_id", customer.ID.String()))
	return true, nil
}

func (s *accountsServiceImpl) lookupError(operation, resource, field, value string, err error) error {
	if store.IsNotFoundError(err) {
		return NewNotFoundError(resource, field, value, err)
	}
	if passThrough(err) {
		return err
	}
	s.logger.Error("accounts store failure",
		slog.String("operation", operation),
		slog.String("resource", resource),
		slog.String("error", err.Error()))
	return NewServiceError("accounts", operation, "failed to access "+resource, err)
}

// txError keeps errors raised inside the transaction as they are and wraps
// failures of the transaction itself.
func (s *accountsServiceImpl) txError(operation string, err error) error {
	if err == nil || passThrough(err) {
		return err
	}
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return err
	}
	return NewServiceError("accounts", operation, "transaction failed", err)
}
