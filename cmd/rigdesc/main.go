// rigdesc - instrument description writer and archive
//
// This is the main entry point for the rigdesc command line tool. It builds
// the canonical JSON description of a microscope rig, validates documents
// written by other tools, and serves the document archive over HTTP.
//
//	rigdesc write --rig Nikon2P.1
//	rigdesc validate instrument.json
//	rigdesc serve --config configs/rigdesc.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	_ "github.com/nerrad567/rigdesc/migrations"

	"github.com/nerrad567/rigdesc/internal/infrastructure/config"
	"github.com/nerrad567/rigdesc/internal/infrastructure/database"
	"github.com/nerrad567/rigdesc/internal/infrastructure/influxdb"
	"github.com/nerrad567/rigdesc/internal/infrastructure/logging"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// configEnv names the environment variable holding the config file path.
const configEnv = "RIGDESC_CONFIG"

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "rigdesc",
		Short:         "Write, validate and archive instrument descriptions",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", os.Getenv(configEnv),
		"path to YAML config file (env "+configEnv+"); defaults apply when empty")

	root.AddCommand(
		newWriteCmd(opts),
		newValidateCmd(opts),
		newServeCmd(opts),
		newRigsCmd(),
		newTokenCmd(opts),
	)
	return root
}

// loadConfig loads configuration and builds a logger from it.
//
// Commands whose result goes to stdout pass logToStderr so that log lines
// never mix with the result.
func loadConfig(path string, logToStderr bool) (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if logToStderr {
		cfg.Logging.Output = "stderr"
	}
	log := logging.New(cfg.Logging, version)
	log.Debug("configuration loaded", "path", path)
	return cfg, log, nil
}

// openArchiveDB opens the document database and applies migrations.
// The caller must close the returned DB.
func openArchiveDB(ctx context.Context, cfg *config.Config, log *logging.Logger) (*database.DB, error) {
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close() //nolint:errcheck // already failing
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	log.Debug("database ready", "path", cfg.Database.Path)
	return db, nil
}

// connectInflux connects to InfluxDB when enabled. It returns nil without
// error when disabled.
func connectInflux(cfg *config.Config, log *logging.Logger) (*influxdb.Client, error) {
	if !cfg.InfluxDB.Enabled {
		log.Debug("InfluxDB disabled")
		return nil, nil
	}
	client, err := influxdb.Connect(cfg.InfluxDB)
	if err != nil {
		return nil, fmt.Errorf("connecting to InfluxDB: %w", err)
	}
	client.SetOnError(func(err error) {
		log.Error("InfluxDB write error", "error", err)
	})
	log.Info("InfluxDB connected",
		"url", cfg.InfluxDB.URL,
		"org", cfg.InfluxDB.Org,
		"bucket", cfg.InfluxDB.Bucket,
	)
	return client, nil
}

// closeInflux flushes and closes an InfluxDB client, if any.
func closeInflux(client *influxdb.Client, log *logging.Logger) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		log.Error("error closing InfluxDB", "error", err)
	}
}
