package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/bankmesh/bank-services/internal/dto"
	"github.com/go-chi/chi/v5"
)

// mockCardsService is a mock implementation of the CardsService interface
type mockCardsService struct {
	createFn func(ctx context.Context, mobileNumber string) error
	fetchFn  func(ctx context.Context, mobileNumber string) (dto.Cards, error)
	updateFn func(ctx context.Context, in dto.Cards) (bool, error)
	deleteFn func(ctx context.Context, mobileNumber string) (bool, error)
}

func (m *mockCardsService) CreateCard(ctx context.Context, mobileNumber string) error {
	return m.createFn(ctx, mobileNumber)
}

func (m *mockCardsService) FetchCard(ctx context.Context, mobileNumber string) (dto.Cards, error) {
	return m.fetchFn(ctx, mobileNumber)
}

func (m *mockCardsService) UpdateCard(ctx context.Context, in dto.Cards) (bool, error) {
	return m.updateFn(ctx, in)
}

func (m *mockCardsService) DeleteCard(ctx context.Context, mobileNumber string) (bool, error) {
	return m.deleteFn(ctx, mobileNumber)
}

// mockLoansService is a mock implementation of the LoansService interface
type mockLoansService struct {
	createFn func(ctx context.Context, mobileNumber string) error
	fetchFn  func(ctx context.Context, mobileNumber string) (dto.Loans, error)
	updateFn func(ctx context.Context, in dto.Loans) (bool, error)
	deleteFn func(ctx context.Context, mobileNumber string) (bool, error)
}

func (m *mockLoansService) CreateLoan(ctx context.Context, mobileNumber string) error {
	return m.createFn(ctx, mobileNumber)
}

func (m *mockLoansService) FetchLoan(ctx context.Context, mobileNumber string) (dto.Loans, error) {
	return m.fetchFn(ctx, mobileNumber)
}

func (m *mockLoansService) UpdateLoan(ctx context.Context, in dto.Loans) (bool, error) {
	return m.updateFn(ctx, in)
}

func (m *mockLoansService) DeleteLoan(ctx context.Context, mobileNumber string) (bool, error) {
	return m.deleteFn(ctx, mobileNumber)
}

// mockAccountsService is a mock implementation of the AccountsService interface
type mockAccountsService struct {
	createFn func(ctx context.Context, in dto.Customer) error
	fetchFn  func(ctx context.Context, mobileNumber string) (dto.Customer, error)
	updateFn func(ctx context.Context, in dto.Customer) (bool, error)
	deleteFn func(ctx context.Context, mobileNumber string) (bool, error)
}

func (m *mockAccountsService) CreateAccount(ctx context.Context, in dto.Customer) error {
	return m.createFn(ctx, in)
}

func (m *mockAccountsService) FetchAccount(ctx context.Context, mobileNumber string) (dto.Customer, error) {
	return m.fetchFn(ctx, mobileNumber)
}

func (m *mockAccountsService) UpdateAccount(ctx context.Context, in dto.Customer) (bool, error) {
	return m.updateFn(ctx, in)
}

func (m *mockAccountsService) DeleteAccount(ctx context.Context, mobileNumber string) (bool, error) {
	return m.deleteFn(ctx, mobileNumber)
}

// routesFor mounts the routes registered by register under /api.
func routesFor(register func(chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Route("/api", register)
	return r
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
