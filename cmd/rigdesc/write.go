package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nerrad567/rigdesc/internal/archive"
	"github.com/nerrad567/rigdesc/internal/audit"
	"github.com/nerrad567/rigdesc/internal/infrastructure/mqtt"
	"github.com/nerrad567/rigdesc/internal/publish"
	"github.com/nerrad567/rigdesc/internal/rigs"
)

type writeOptions struct {
	*rootOptions
	rig       string
	prefix    string
	outputDir string
}

func newWriteCmd(root *rootOptions) *cobra.Command {
	opts := &writeOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Build a rig description, self-check it and publish it",
		Long: `Builds the named rig, checks that its canonical document reads back
unchanged, then writes <output_dir>/<prefix>instrument.json, archives the
document and announces it on the configured sinks.

The path of the written file is printed on success.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWrite(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.rig, "rig", rigs.Nikon2P1ID, "rig to write")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "prepended to the standard file name")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory (overrides output.dir)")
	return cmd
}

func runWrite(ctx context.Context, opts *writeOptions, out io.Writer) error {
	cfg, log, err := loadConfig(opts.configPath, true)
	if err != nil {
		return err
	}
	if opts.outputDir != "" {
		cfg.Output.Dir = opts.outputDir
	}

	x, err := rigs.Build(opts.rig)
	if err != nil {
		return err
	}

	db, err := openArchiveDB(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()

	deps := publish.Deps{
		Files:   &publish.FileWriter{Dir: cfg.Output.Dir, Mode: fs.FileMode(cfg.Output.FileMode)},
		Archive: archive.NewSQLiteRepository(db.DB),
		Auditor: audit.NewSQLiteRepository(db.DB),
		Actor:   os.Getenv("USER"),
		Logger:  log.Component("publish"),
		Prefix:  opts.prefix,
	}

	// Optional sinks are only assigned when connected, so the interfaces
	// stay nil rather than holding nil pointers.
	if cfg.MQTT.Enabled {
		client, err := mqtt.Connect(cfg.MQTT, mqtt.Topics{Prefix: mqtt.DefaultTopicPrefix})
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		client.SetLogger(log.Component("mqtt"))
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)
		deps.Announcer = client
	}

	influx, err := connectInflux(cfg, log)
	if err != nil {
		return err
	}
	defer closeInflux(influx, log)
	if influx != nil {
		deps.Recorder = influx
	}

	pub, err := publish.New(deps)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}

	res, err := pub.Publish(ctx, x)
	if err != nil {
		return fmt.Errorf("publishing %s: %w", opts.rig, err)
	}

	_, err = fmt.Fprintln(out, res.Path)
	return err
}
