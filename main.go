package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"seo-pages-go/internal/config"
	"seo-pages-go/internal/service"
	"seo-pages-go/pkg/enrich"
	"seo-pages-go/pkg/generator"
	"seo-pages-go/pkg/logger"
	"seo-pages-go/pkg/pipeline"
)

func main() {
	// Global panic recovery to prevent application crash
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "CRITICAL ERROR: application panic recovered: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seo-pages",
		Short: "Generate the poubelles landing-page catalog",
		Long: `Generates every landing page the taxonomy describes, enriches the most
important ones with Haloscan keyword metrics and exports the catalog.

Examples:
   seo-pages                          # generate, enrich 300 pages, export
   seo-pages --phase systematic       # generation only
   seo-pages --phase haloscan --limit 50
   seo-pages --phase stats            # print the summary`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.String("phase", string(pipeline.PhaseAll), "Phase to run (all|systematic|haloscan|export|stats)")
	flags.Int("limit", 300, "Maximum number of Haloscan lookups (env: SEOPAGES_HALOSCAN_LIMIT)")
	flags.String("config", "", "Configuration file path")
	flags.String("data-dir", "", "Output directory (env: SEOPAGES_OUTPUT_DATA_DIR)")
	flags.Bool("debug", false, "Enable debug logging")
	return cmd
}

var flagBindings = map[string]string{
	"haloscan.limit":  "limit",
	"output.data_dir": "data-dir",
}

func run(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	phaseName, _ := cmd.Flags().GetString("phase")
	phase, err := pipeline.ParsePhase(phaseName)
	if err != nil {
		return err
	}

	manager := config.NewManager()
	if err := manager.BindFlags(cmd.Flags(), flagBindings); err != nil {
		return err
	}
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := manager.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		return err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Logger.Level = "debug"
	}

	if err := os.MkdirAll(cfg.Output.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	base := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		File:       cfg.Output.Path(cfg.Output.LogFile),
		TimeFormat: cfg.Logger.TimeFormat,
	})
	defer base.Close()
	logger.SetLogger(base.WithField("run", uuid.NewString()))
	log := logger.GetLogger().WithField("component", "main")

	service.LogConfig(cfg, log)

	services, err := service.New(cfg)
	if err != nil {
		log.WithError(err).Error("Failed to initialise services")
		return err
	}
	defer services.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := pipeline.Deps{
		Store:     services.Store,
		Generator: generator.New(services.Slugs),
		Exporter:  services.Exporter,
	}
	if phase == pipeline.PhaseAll || phase == pipeline.PhaseHaloscan {
		client, err := services.KeywordClient(cfg.Haloscan)
		if err != nil {
			log.WithError(err).Error("Failed to create Haloscan client")
			return err
		}
		deps.Enricher = enrich.New(client, services.Store, enrich.Config{
			Delay:           cfg.Haloscan.Delay,
			CheckpointEvery: cfg.Haloscan.CheckpointEvery,
		}, enrich.WithRecorder(services.Recorder))
	}

	runner := pipeline.New(deps,
		pipeline.WithRecorder(services.Recorder),
		pipeline.WithMetricsTextfile(cfg.Output.Path(cfg.Output.MetricsFile)),
	)

	start := time.Now()
	log.WithField("phase", phase).Info("Starting run")

	// Protected run execution
	var runErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("run panic recovered: %v", r)
				log.WithField("panic", r).Error("Panic during run")
			}
		}()
		_, runErr = runner.Run(ctx, phase, cfg.Haloscan.Limit)
	}()

	if runErr != nil {
		log.WithError(runErr).Error("Run failed")
		return runErr
	}
	log.WithField("duration", time.Since(start).Round(time.Millisecond).String()).Info("Run completed")
	return nil
}
