package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/bankmesh/bank-services/internal/api"
	"github.com/bankmesh/bank-services/internal/config"
	"github.com/bankmesh/bank-services/internal/domain"
	"github.com/bankmesh/bank-services/internal/platform/postgres"
	"github.com/bankmesh/bank-services/internal/service"
	"github.com/go-chi/chi/v5"
)

// application holds the shared dependencies of the running service.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// serviceRoutes registers the CRUD endpoints of the configured service.
	serviceRoutes func(chi.Router)
	infoHandler   *api.InfoHandler
}

// newApplication wires the stores, lifecycle service and handler of the
// service named in cfg.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		infoHandler: api.NewInfoHandler(cfg.Service.BuildVersion, cfg.Contact),
	}

	gen := domain.RandomNumberGenerator{}
	auditor := service.WithAuditor(cfg.Service.Auditor)

	switch cfg.Service.Name {
	case "accounts":
		svc, err := service.NewAccountsService(
			db,
			postgres.NewPostgresCustomerStore(db, logger),
			postgres.NewPostgresAccountStore(db, logger),
			gen,
			logger,
			auditor,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create accounts service: %w", err)
		}
		app.serviceRoutes = api.NewAccountsHandler(svc, logger).Routes

	case "cards":
		svc, err := service.NewCardsService(postgres.NewPostgresCardStore(db, logger), gen, logger, auditor)
		if err != nil {
			return nil, fmt.Errorf("failed to create cards service: %w", err)
		}
		app.serviceRoutes = api.NewCardsHandler(svc, logger).Routes

	case "loans":
		svc, err := service.NewLoansService(postgres.NewPostgresLoanStore(db, logger), gen, logger, auditor)
		if err != nil {
			return nil, fmt.Errorf("failed to create loans service: %w", err)
		}
		app.serviceRoutes = api.NewLoansHandler(svc, logger).Routes

	default:
		return nil, fmt.Errorf("unknown service %q", cfg.Service.Name)
	}

	logger.Info("application initialized")
	return app, nil
}

// Run serves the API until ctx is canceled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
