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

// LoansHandler handles the Loans API.
type LoansHandler struct {
	loansService service.LoansService
	logger       *slog.Logger
}

// NewLoansHandler creates a new LoansHandler
func NewLoansHandler(loansService service.LoansService, logger *slog.Logger) *LoansHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LoansHandler")
	}

	return &LoansHandler{
		loansService: loansService,
		logger:       logger.With(slog.String("component", "loans_handler")),
	}
}

// Routes registers the loan endpoints on r.
func (h *LoansHandler) Routes(r chi.Router) {
	r.Post("/create", h.CreateLoan)
	r.Get("/fetch", h.FetchLoan)
	r.Put("/update", h.UpdateLoan)
	r.Delete("/delete", h.DeleteLoan)
}

// CreateLoan handles POST /api/create?mobileNumber=
func (h *LoansHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := mobileNumberFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.loansService.CreateLoan(r.Context(), mobileNumber); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("loan created", slog.String("mobile_number", redact.MobileNumber(mobileNumber)))
	shared.RespondWithStatus(w, r, http.StatusCreated, dto.MessageLoanCreated)
}

// FetchLoan handles GET /api/fetch?mobileNumber=
func (h *LoansHandler) FetchLoan(w http.ResponseWriter, r *http.Request) {
	mobileNumber, ok := mobileNumberFromQuery(w, r)
	if !ok {
		return
	}

	loan, err := h.loansService.FetchLoan(r.Context(), mobileNumber)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, loan)
}

// UpdateLoan handles PUT /api/update
func (h *LoansHandler) UpdateLoan(w http.ResponseWriter, r *http.Request) {
	var payload dto.Loans
	if !decodeAndValidate(w, r, &payload) {
		return
	}

	updated, err := h.loansService.UpdateLoan(r.Context(), payload)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respondUpdated(w, r, updated)
}

// DeleteLoan handles DELETE /api/delete?mobileNumber=
func (h *LoansHandler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	mobileNumber, ok := mobileNumberFromQuery(w, r)
	if !ok {
		return
	}

	deleted, err := h.loansService.DeleteLoan(r.Context(), mobileNumber)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respondDeleted(w, r, deleted)
}
