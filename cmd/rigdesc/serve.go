package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nerrad567/rigdesc/internal/api"
	"github.com/nerrad567/rigdesc/internal/archive"
	"github.com/nerrad567/rigdesc/internal/audit"
	"github.com/nerrad567/rigdesc/internal/infrastructure/database"
	"github.com/nerrad567/rigdesc/internal/infrastructure/influxdb"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the document archive over HTTP",
		Long: `Runs the HTTP API until interrupted. Reads and validation are public;
archiving a document needs a Bearer token granting archive:write
(see "rigdesc token").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), root)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions) error {
	cfg, log, err := loadConfig(opts.configPath, false)
	if err != nil {
		return err
	}
	if err := cfg.ValidateServe(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	log.Info("starting rigdesc API",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	db, err := openArchiveDB(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()

	influx, err := connectInflux(cfg, log)
	if err != nil {
		return err
	}
	defer closeInflux(influx, log)

	deps := api.Deps{
		Config:   cfg.API,
		Security: cfg.Security,
		Logger:   log,
		Archive:  archive.NewSQLiteRepository(db.DB),
		Audit:    audit.NewSQLiteRepository(db.DB),
		Version:  version,
	}
	if influx != nil {
		deps.Recorder = influx
	}

	server, err := api.New(deps)
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	if err := healthCheck(ctx, db, influx, server); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	return nil
}

func healthCheck(ctx context.Context, db *database.DB, influx *influxdb.Client, server *api.Server) error {
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if influx != nil {
		if err := influx.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}

	if err := server.HealthCheck(ctx); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	return nil
}
