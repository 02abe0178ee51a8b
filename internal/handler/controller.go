package handler

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"seo-pages-go/internal/config"
	"seo-pages-go/internal/service"
	"seo-pages-go/pkg/logger"
	"seo-pages-go/pkg/server"
	"seo-pages-go/pkg/storage"
)

// Controller runs the catalog server: the HTTP listener plus the reloader
// watching the registry file.
type Controller struct {
	cfg     *config.Config
	catalog *server.Catalog
	app     *fiber.App
	watcher *server.Watcher
	log     *logger.Logger
}

type ControllerInterface interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

var _ ControllerInterface = (*Controller)(nil)

func NewController(cfg *config.Config, services *service.Services) (*Controller, error) {
	log := logger.GetLogger().WithField("component", "controller")

	cat := server.NewCatalog(services.Store, services.Recorder)
	if err := cat.Reload(context.Background()); err != nil {
		return nil, err
	}

	// Served names are fixed to the /sitemap.xml routes whatever the
	// exported file is called.
	var sitemap *storage.SitemapExporter
	if cfg.Site.BaseURL != "" {
		sitemap = storage.NewSitemapExporter("sitemap.xml", cfg.Site.BaseURL, cfg.Site.MaxURLsPerSitemap)
	}
	app := server.NewApp(cat, server.Options{
		DeploySlugs: cfg.Site.DeploySlugs,
		Sitemap:     sitemap,
		Metrics:     services.Recorder.HTTPHandler(),
		Logger:      log,
	})

	watcher, err := server.NewWatcher(services.Store.Path(), cat, cfg.Server.ReloadDebounce, log)
	if err != nil {
		return nil, err
	}

	return &Controller{
		cfg:     cfg,
		catalog: cat,
		app:     app,
		watcher: watcher,
		log:     log,
	}, nil
}

// App exposes the fiber application, mainly for tests.
func (c *Controller) App() *fiber.App {
	return c.app
}

// Start begins watching and blocks serving HTTP until the listener stops.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.watcher.Start(ctx); err != nil {
		return err
	}
	addr := net.JoinHostPort(c.cfg.Server.Host, strconv.Itoa(c.cfg.Server.Port))
	c.log.WithFields(map[string]interface{}{
		"addr":  addr,
		"pages": c.catalog.Snapshot().Len(),
	}).Info("Catalog server listening")

	if err := c.app.Listen(addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Stop shuts the listener down, waiting at most until ctx expires.
func (c *Controller) Stop(ctx context.Context) error {
	if err := c.watcher.Stop(); err != nil {
		c.log.WithError(err).Warn("Failed to stop watcher cleanly")
	}
	timeout := 5 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	return c.app.ShutdownWithTimeout(timeout)
}
