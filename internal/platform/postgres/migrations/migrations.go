// Package migrations embeds the SQL schema of each service and applies it
// with goose. Every service keeps its own version table, so the three
// services may share one database without seeing each other's history.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

//go:embed accounts/*.sql cards/*.sql loans/*.sql
var embedded embed.FS

// Supported commands.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandStatus  = "status"
	CommandVersion = "version"
)

// Services lists the services that carry a migration set.
var Services = []string{"accounts", "cards", "loans"}

// VersionTable returns the goose version table used by service.
func VersionTable(service string) string {
	return "goose_db_version_" + service
}

// NewProvider returns a goose provider bound to the migration set of service.
func NewProvider(db *sql.DB, service string) (*goose.Provider, error) {
	fsys, err := fs.Sub(embedded, service)
	if err != nil {
		return nil, fmt.Errorf("no migrations for service %q: %w", service, err)
	}

	versionStore, err := database.NewStore(database.DialectPostgres, VersionTable(service))
	if err != nil {
		return nil, fmt.Errorf("failed to create version store: %w", err)
	}

	provider, err := goose.NewProvider("", db, fsys, goose.WithStore(versionStore))
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider for %s: %w", service, err)
	}
	return provider, nil
}

// Run executes command against the migration set of service.
func Run(ctx context.Context, db *sql.DB, service, command string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	// Use a correlation ID for all migration logs to allow tracing the entire operation
	log := logger.With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
		"service", service,
		"command", command,
	)

	provider, err := NewProvider(db, service)
	if err != nil {
		return err
	}

	startTime := time.Now()
	log.Info("Starting migration operation")

	switch command {
	case CommandUp:
		results, err := provider.Up(ctx)
		for _, r := range results {
			logResult(log, r)
		}
		if err != nil {
			return fmt.Errorf("migrate up failed: %w", err)
		}
		log.Info("Migrations applied",
			"count", len(results),
			"duration_ms", time.Since(startTime).Milliseconds())

	case CommandDown:
		result, err := provider.Down(ctx)
		if result != nil {
			logResult(log, result)
		}
		if err != nil {
			return fmt.Errorf("migrate down failed: %w", err)
		}

	case CommandStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("migration status failed: %w", err)
		}
		for _, s := range statuses {
			log.Info("Migration status",
				"version", s.Source.Version,
				"path", s.Source.Path,
				"state", string(s.State),
				"applied_at", s.AppliedAt)
		}

	case CommandVersion:
		version, err := provider.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("failed to read database version: %w", err)
		}
		log.Info("Current database version", "version", version)

	default:
		return fmt.Errorf("unknown migration command %q", command)
	}

	return nil
}

func logResult(log *slog.Logger, r *goose.MigrationResult) {
	if r.Error != nil {
		log.Error("Migration failed",
			"version", r.Source.Version,
			"direction", r.Direction,
			"error", r.Error)
		return
	}
	log.Info("Migration completed",
		"version", r.Source.Version,
		"direction", r.Direction,
		"duration_ms", r.Duration.Milliseconds())
}
