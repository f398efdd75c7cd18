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

// CardsHandler handles the Cards API.
type CardsHandler struct {
	cardsService service.CardsService
	logger       *slog.Logger
}

// NewCardsHandler creates a new CardsHandler
func NewCardsHandler(cardsService service.CardsService, logger *slog.Logger) *CardsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardsHandler")
	}

	return &CardsHandler{
		cardsService: cardsService,
		logger:       logger.With(slog.String("component", "cards_handler")),
	}
}

// Routes registers the card endpoints on r.
func (h *CardsHandler) Routes(r chi.Router) {
	r.Post("/create", h.CreateCard)
	r.Get("/fetch", h.FetchCard)
	r.Put("/update", h.UpdateCard)
	r.Delete("/delete", h.DeleteCard)
}

// CreateCard handles POST /api/create?mobileNumber=
func (h *CardsHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := mobileNumberFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.cardsService.CreateCard(r.Context(), mobileNumber); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("card created", slog.String("mobile_number", redact.MobileNumber(mobileNumber)))
	shared.RespondWithStatus(w, r, http.StatusCreated, dto.MessageCardCreated)
}

// FetchCard handles GET /api/fetch?mobileNumber=
func (h *CardsHandler) FetchCard(w http.ResponseWriter, r *http.Request) {
	mobileNumber, ok := mobileNumberFromQuery(w, r)
	if !ok {
		return
	}

	card, err := h.cardsService.FetchCard(r.Context(), mobileNumber)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// UpdateCard handles PUT /api/update
func (h *CardsHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	var payload dto.Cards
	if !decodeAndValidate(w, r, &payload) {
		return
	}

	updated, err := h.cardsService.UpdateCard(r.Context(), payload)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respondUpdated(w, r, updated)
}

// DeleteCard handles DELETE /api/delete?mobileNumber=
func (h *CardsHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	mobileNumber, ok := mobileNumberFromQuery(w, r)
	if !ok {
		return
	}

	deleted, err := h.cardsService.DeleteCard(r.Context(), mobileNumber)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	respondDeleted(w, r, deleted)
}
