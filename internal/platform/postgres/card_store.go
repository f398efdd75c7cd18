package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/bankmesh/bank-services/internal/platform/logger"
	"github.com/bankmesh/bank-services/internal/redact"
	"github.com/bankmesh/bank-services/internal/store"
	"github.com/google/uuid"
)

const cardColumns = "card_id, mobile_number, card_number, card_type, total_limit, amount_used, available_amount, " + auditColumns

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// Create implements store.CardStore.Create
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during create",
			slog.String("error", err.Error()),
			slog.String("mobile_number", redact.MobileNumber(card.MobileNumber)))
		return err
	}

	query := `
		INSERT INTO cards (card_id, mobile_number, card_number, card_type, total_limit, amount_used, available_amount,
			created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		card.ID,
		card.MobileNumber,
		card.CardNumber,
		card.CardType,
		card.TotalLimit,
		card.AmountUsed,
		card.AvailableAmount,
		card.CreatedAt,
		card.CreatedBy,
	)
	if err != nil {
		err = MapUniqueViolation(err, cardsMobileNumberKey, store.ErrMobileNumberExists)
		if store.IsDuplicateError(err) {
			log.Warn("card already exists",
				slog.String("mobile_number", redact.MobileNumber(card.MobileNumber)),
				slog.String("error", err.Error()))
			return err
		}
		log.Error("failed to create card",
			slog.String("error", err.Error()),
			slog.String("mobile_number", redact.MobileNumber(card.MobileNumber)))
		return store.NewStoreError("card", "create", "failed to insert card", err)
	}

	log.Info("card created successfully",
		slog.String("card_id", card.ID.String()),
		slog.String("mobile_number", redact.MobileNumber(card.MobileNumber)))
	return nil
}

// GetByMobileNumber implements store.CardStore.GetByMobileNumber
func (s *PostgresCardStore) GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Card, error) {
	return s.getOne(ctx, "mobile_number", mobileNumber)
}

// GetByCardNumber implements store.CardStore.GetByCardNumber
func (s *PostgresCardStore) GetByCardNumber(ctx context.Context, cardNumber string) (*domain.Card, error) {
	return s.getOne(ctx, "card_number", cardNumber)
}

// getOne fetches a single card by a unique column. column is never user input.
func (s *PostgresCardStore) getOne(ctx context.Context, column, value string) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving card", slog.String("by", column))

	query := "SELECT " + cardColumns + " FROM cards WHERE " + column + " = $1"

	var card domain.Card
	var audit auditScan
	dest := append([]any{
		&card.ID,
		&card.MobileNumber,
		&card.CardNumber,
		&card.CardType,
		&card.TotalLimit,
		&card.AmountUsed,
		&card.AvailableAmount,
	}, audit.dest(&card.Audit)...)

	if err := s.db.QueryRowContext(ctx, query, value).Scan(dest...); err != nil {
		if errors.Is(MapError(err), store.ErrNotFound) {
			log.Debug("card not found", slog.String("by", column))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get card",
			slog.String("error", err.Error()),
			slog.String("by", column))
		return nil, store.NewStoreError("card", "get", "failed to query card", err)
	}
	audit.apply(&card.Audit)

	return &card, nil
}

// Update implements store.CardStore.Update
// Only the mutable fields and the update audit columns are written.
func (s *PostgresCardStore) Update(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during update",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return err
	}

	query := `
		UPDATE cards
		SET card_type = $1, total_limit = $2, amount_used = $3, available_amount = $4,
			updated_at = $5, updated_by = $6
		WHERE card_id = $7
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		card.CardType,
		card.TotalLimit,
		card.AmountUsed,
		card.AvailableAmount,
		nullableTime(card.UpdatedAt),
		nullableString(card.UpdatedBy),
		card.ID,
	)
	if err != nil {
		log.Error("failed to update card",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return store.NewStoreError("card", "update", "failed to update card", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCardNotFound); err != nil {
		log.Debug("card update affected no rows", slog.String("card_id", card.ID.String()))
		return err
	}

	log.Info("card updated successfully", slog.String("card_id", card.ID.String()))
	return nil
}

// Delete implements store.CardStore.Delete
func (s *PostgresCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM cards WHERE card_id = $1", id)
	if err != nil {
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return store.NewStoreError("card", "delete", "failed to delete card", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCardNotFound); err != nil {
		log.Debug("card delete affected no rows", slog.String("card_id", id.String()))
		return err
	}

	log.Info("card deleted successfully", slog.String("card_id", id.String()))
	return nil
}
