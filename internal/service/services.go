// Package service assembles the components both binaries share from a
// loaded configuration.
package service

import (
	"fmt"
	"os"

	"seo-pages-go/internal/config"
	"seo-pages-go/pkg/api"
	"seo-pages-go/pkg/logger"
	"seo-pages-go/pkg/metrics"
	"seo-pages-go/pkg/slug"
	"seo-pages-go/pkg/storage"
)

// Services are the configured building blocks of a run.
type Services struct {
	Store    *storage.FileStore
	Slugs    slug.Builder
	Recorder *metrics.PrometheusRecorder
	// Sitemap is nil when no site base URL is configured.
	Sitemap  *storage.SitemapExporter
	Exporter *storage.DataExporter

	closers []func()
}

// New prepares the data directory and builds storage, exporters and metrics.
func New(cfg *config.Config) (*Services, error) {
	if err := os.MkdirAll(cfg.Output.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	mode, err := slug.ParseMode(cfg.Slug.Transliteration)
	if err != nil {
		return nil, err
	}

	s := &Services{
		Store:    storage.NewFileStore(cfg.Output.Path(cfg.Output.PagesFile)),
		Slugs:    slug.New(mode),
		Recorder: metrics.NewPrometheusRecorder(nil),
	}

	exporters := []storage.Exporter{storage.NewCSVExporter(cfg.Output.Path(cfg.Output.CSVFile))}
	if cfg.Site.BaseURL != "" {
		s.Sitemap = storage.NewSitemapExporter(
			cfg.Output.Path(cfg.Output.SitemapFile), cfg.Site.BaseURL, cfg.Site.MaxURLsPerSitemap)
		exporters = append(exporters, s.Sitemap)
	}
	s.Exporter = storage.NewDataExporter(exporters...)
	return s, nil
}

// KeywordClient builds the Haloscan client selected by haloscan.mode.
func (s *Services) KeywordClient(cfg config.HaloscanConfig) (api.KeywordClient, error) {
	switch cfg.Mode {
	case config.ModeCommand:
		return api.NewCommandClient(cfg.Command, cfg.Timeout)
	case config.ModeHTTP:
		c := api.NewHTTPClient(cfg.Endpoint, cfg.APIKey, cfg.Timeout)
		s.closers = append(s.closers, func() {
			total, failed := c.Stats()
			logger.GetLogger().WithFields(map[string]interface{}{
				"requests": total,
				"failed":   failed,
			}).Debug("Haloscan HTTP client closed")
			c.Close()
		})
		return c, nil
	default:
		return nil, fmt.Errorf("unknown haloscan mode %q", cfg.Mode)
	}
}

// Close releases clients created by KeywordClient.
func (s *Services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// LogConfig logs the effective configuration. SafeInfo masks the endpoint
// and the API key.
func LogConfig(cfg *config.Config, log *logger.Logger) {
	sl := logger.NewSecurityLogger(log)
	sl.SafeInfo("Configuration loaded", map[string]interface{}{
		"data_dir":         cfg.Output.DataDir,
		"haloscan_mode":    cfg.Haloscan.Mode,
		"haloscan_command": cfg.Haloscan.Command,
		"endpoint":         cfg.Haloscan.Endpoint,
		"api_key":          cfg.Haloscan.APIKey,
		"delay":            cfg.Haloscan.Delay.String(),
		"limit":            cfg.Haloscan.Limit,
		"transliteration":  cfg.Slug.Transliteration,
		"sitemap":          cfg.Site.BaseURL != "",
	})
}
