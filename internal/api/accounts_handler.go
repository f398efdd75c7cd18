package api

import (
	"log/slog"
	"net/http"

	"github.com/bankmesh/bank-services/internal/api/shared"
	"github.com/bankmesh/bank-services/internal/dto"
	"github.com/bankmesh/bank-services/internal/platform/logger"
	"github.com/bankmesh/bank-services/internal/redact"
	"github.com/bankmesh/bank-services/internal/service"
	"github.com/go-chi/chi/v5"
)

// AccountsHandler handles the Accounts API. Create and update take a
// Customer payload; fetch and delete are keyed by mobile number.
type AccountsHandler struct {
	accountsService service.AccountsService
	logger          *slog.Logger
}

// NewAccountsHandler creates a new AccountsHandler
func NewAccountsHandler(accountsService service.AccountsService, logger *slog.Logger) *AccountsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AccountsHandler")
	}

	return &AccountsHandler{
		accountsService: accountsService,
		logger:          logger.With(slog.String("component", "accounts_handler")),
	}
}

// Routes registers the account endpoints on r.
func (h *AccountsHandler) Routes(r chi.Router) {
	r.Post("/create", h.CreateAccount)
	r.Get("/fetch", h.FetchAccount)
	r.Put("/update", h.UpdateAccount)
	r.Delete("/delete", h.DeleteAccount)
}

// CreateAccount handles POST /api/create
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var payload dto.Customer
	if !decodeAndValidate(w, r, &payload) {
		return
	}

	if err := h.accountsService.CreateAccount(r.Context(), payload); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("account created", slog.String("mobile_number", redact.MobileNumber(payload.MobileNumber)))
	shared.RespondWithStatus(w, r, http.StatusCreated, dto.MessageAccountCreated)
}

// FetchAccount handles GET /api/fetch?mobileNumber=
func (h *AccountsHandler) FetchAccount(w http.ResponseWriter, r *http.Request) {
	mobileNumber, ok := mobileNumberFromQuery(w, r)
	if !ok {
		return
	}

	customer, err := h.accountsService.FetchAccount(r.Context(), mobileNumber)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, customer)
}

// UpdateAccount handles PUT /api/update
func (h *AccountsHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var payload dto.Customer
	if !decodeAndValidate(w, r, &payload) {
		return
	}

	updated, err := h.accountsService.UpdateAccount(r.Context(), payload)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respondUpdated(w, r, updated)
}

// DeleteAccount handles DELETE /api/delete?mobileNumber=
func (h *AccountsHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	mobileNumber, ok := mobileNumberFromQuery(w, r)
	if !ok {
		return
	}

	deleted, err := h.accountsService.DeleteAccount(r.Context(), mobileNumber)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respondDeleted(w, r, deleted)
}
