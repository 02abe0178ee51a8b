// Package server exposes the persisted registry as a read-only JSON API.
package server

import (
	"context"
	"fmt"
	"sync"

	"seo-pages-go/pkg/catalog"
	"seo-pages-go/pkg/metrics"
	"seo-pages-go/pkg/report"
)

// Loader reads the registry from its backing store.
type Loader interface {
	Load(ctx context.Context) (*catalog.Registry, error)
}

// Catalog holds the registry snapshot being served. Handlers read the
// current snapshot; Reload swaps in a fresh one. A snapshot is never
// mutated once published.
type Catalog struct {
	mu       sync.RWMutex
	reg      *catalog.Registry
	loader   Loader
	recorder metrics.Recorder
}

func NewCatalog(loader Loader, recorder metrics.Recorder) *Catalog {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Catalog{
		reg:      catalog.NewRegistry(),
		loader:   loader,
		recorder: recorder,
	}
}

// Snapshot returns the registry currently served.
func (c *Catalog) Snapshot() *catalog.Registry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reg
}

// Reload loads the registry and publishes it. On error the previous
// snapshot stays in place.
func (c *Catalog) Reload(ctx context.Context) error {
	reg, err := c.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload pages: %w", err)
	}
	c.mu.Lock()
	c.reg = reg
	c.mu.Unlock()
	c.recorder.SetCatalog(report.Snapshot(reg))
	return nil
}
