// Package main implements the entry point for the bank services. One binary
// serves the Accounts, Cards or Loans API, selected by -service or by the
// service.name configuration key.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/bankmesh/bank-services/internal/config"
	"github.com/bankmesh/bank-services/internal/platform/logger"
	"github.com/bankmesh/bank-services/internal/platform/postgres/migrations"
)

// cliOptions holds the parsed command line flags.
type cliOptions struct {
	service string
	migrate string
}

var migrateCommands = []string{
	migrations.CommandUp,
	migrations.CommandDown,
	migrations.CommandStatus,
	migrations.CommandVersion,
}

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// parseFlags parses the command line. Usage output goes to out.
func parseFlags(args []string, out io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.service, "service", "",
		"Service to run: accounts, cards or loans (overrides service.name)")
	fs.StringVar(&opts.migrate, "migrate", "",
		"Run a migration command (up, down, status, version) and exit")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}
	if fs.NArg() > 0 {
		return cliOptions{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.migrate != "" && !slices.Contains(migrateCommands, opts.migrate) {
		return cliOptions{}, fmt.Errorf("invalid migrate command %q, expected one of %v", opts.migrate, migrateCommands)
	}
	return opts, nil
}

// run loads configuration, connects to the database and either runs the
// requested migration command or serves the API until ctx is canceled or a
// shutdown signal arrives.
func run(ctx context.Context, args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := config.LoadForService(opts.service)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log = log.With(slog.String("service", cfg.Service.Name))

	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("build_version", cfg.Service.BuildVersion))

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	if opts.migrate != "" {
		return migrations.Run(ctx, db, cfg.Service.Name, opts.migrate, log)
	}

	if cfg.Database.AutoMigrate {
		if err := migrations.Run(ctx, db, cfg.Service.Name, migrations.CommandUp, log); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
