package storage

import (
	"context"

	"seo-pages-go/pkg/catalog"
)

// PageStore persists the whole registry.
type PageStore interface {
	// Load returns the stored registry, or an empty one when nothing was
	// saved yet.
	Load(ctx context.Context) (*catalog.Registry, error)
	// Save replaces the stored registry.
	Save(ctx context.Context, reg *catalog.Registry) error
}

// Exporter renders a derived view of the registry to files.
type Exporter interface {
	Name() string
	// Export returns the paths it wrote.
	Export(ctx context.Context, reg *catalog.Registry) ([]string, error)
}
