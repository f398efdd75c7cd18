package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/bankmesh/bank-services/internal/dto"
	"github.com/bankmesh/bank-services/internal/platform/logger"
	"github.com/bankmesh/bank-services/internal/redact"
	"github.com/bankmesh/bank-services/internal/store"
)

// CardsService manages the lifecycle of the one card issued per mobile number.
type CardsService interface {
	// CreateCard issues a credit card with default limits for the mobile number.
	CreateCard(ctx context.Context, mobileNumber string) error

	// FetchCard returns the card issued for the mobile number.
	FetchCard(ctx context.Context, mobileNumber string) (dto.Cards, error)

	// UpdateCard overwrites the mutable fields of the card identified by its card number.
	UpdateCard(ctx context.Context, in dto.Cards) (bool, error)

	// DeleteCard removes the card issued for the mobile number.
	DeleteCard(ctx context.Context, mobileNumber string) (bool, error)
}

type cardsServiceImpl struct {
	cards  store.CardStore
	gen    domain.NumberGenerator
	opts   options
	logger *slog.Logger
}

// NewCardsService creates a new CardsService.
// It returns an error if any of the required dependencies are nil.
func NewCardsService(
	cards store.CardStore,
	gen domain.NumberGenerator,
	logger *slog.Logger,
	opts ...Option,
) (CardsService, error) {
	if cards == nil {
		return nil, domain.NewValidationError("cards", "cannot be nil", domain.ErrValidation)
	}
	if gen == nil {
		return nil, domain.NewValidationError("gen", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &cardsServiceImpl{
		cards:  cards,
		gen:    gen,
		opts:   buildOptions(domain.AuditorCards, opts),
		logger: logger.With(slog.String("component", "cards_service")),
	}, nil
}

// CreateCard implements CardsService.CreateCard
func (s *cardsServiceImpl) CreateCard(ctx context.Context, mobileNumber string) error {
	log := logger.FromContextOrDefault(ctx, s.logger).
		With(slog.String("mobile_number", redact.MobileNumber(mobileNumber)))

	_, err := s.cards.GetByMobileNumber(ctx, mobileNumber)
	switch {
	case err == nil:
		log.Warn("card already issued for mobile number")
		return NewAlreadyExistsError("Card", mobileNumber, nil)
	case !store.IsNotFoundError(err):
		log.Error("failed to check for existing card", slog.String("error", err.Error()))
		return NewServiceError("cards", "create_card", "failed to check for existing card", err)
	}

	card, err := domain.NewCard(mobileNumber, s.gen)
	if err != nil {
		log.Warn("invalid card", slog.String("error", err.Error()))
		return err
	}
	card.MarkCreated(s.opts.auditor, s.opts.now())

	if err := s.cards.Create(ctx, card); err != nil {
		switch {
		case errors.Is(err, store.ErrMobileNumberExists):
			return NewAlreadyExistsError("Card", mobileNumber, err)
		case store.IsDuplicateError(err):
			log.Warn("generated card number already taken", slog.String("card_number", card.CardNumber))
			return NewDuplicateKeyError("Card", "cardNumber", card.CardNumber, err)
		case passThrough(err):
			return err
		}
		return NewServiceError("cards", "create_card", "failed to save card", err)
	}

	log.Info("card created", slog.String("card_id", card.ID.String()))
	return nil
}

// FetchCard implements CardsService.FetchCard
func (s *cardsServiceImpl) FetchCard(ctx context.Context, mobileNumber string) (dto.Cards, error) {
	card, err := s.cards.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return dto.Cards{}, s.lookupError("fetch_card", "mobileNumber", mobileNumber, err)
	}
	return dto.ToCards(card), nil
}

// UpdateCard implements CardsService.UpdateCard
func (s *cardsServiceImpl) UpdateCard(ctx context.Context, in dto.Cards) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := s.cards.GetByCardNumber(ctx, in.CardNumber)
	if err != nil {
		return false, s.lookupError("update_card", "CardNumber", in.CardNumber, err)
	}

	dto.ApplyCards(in, card)
	card.MarkUpdated(s.opts.auditor, s.opts.now())

	if err := s.cards.Update(ctx, card); err != nil {
		return false, s.lookupError("update_card", "CardNumber", in.CardNumber, err)
	}

	log.Info("card updated", slog.String("card_id", card.ID.String()))
	return true, nil
}

// DeleteCard implements CardsService.DeleteCard
func (s *cardsServiceImpl) DeleteCard(ctx context.Context, mobileNumber string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := s.cards.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return false, s.lookupError("delete_card", "mobileNumber", mobileNumber, err)
	}

	if err := s.cards.Delete(ctx, card.ID); err != nil {
		return false, s.lookupError("delete_card", "mobileNumber", mobileNumber, err)
	}

	log.Info("card deleted", slog.String("card_id", card.ID.String()))
	return true, nil
}

// lookupError turns a store failure into NotFound when the card is missing
// and into a ServiceError otherwise.
func (s *cardsServiceImpl) lookupError(operation, field, value string, err error) error {
	if store.IsNotFoundError(err) {
		return NewNotFoundError("Card", field, value, err)
	}
	if passThrough(err) {
		return err
	}
	s.logger.Error("card store failure",
		slog.String("operation", operation),
		slog.String("error", err.Error()))
	return NewServiceError("cards", operation, "card store failure", err)
}
