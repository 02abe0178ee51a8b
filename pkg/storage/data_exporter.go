package storage

import (
	"context"
	"fmt"

	"seo-pages-go/pkg/catalog"
	"seo-pages-go/pkg/logger"
)

// DataExporter runs a fixed list of exporters over the registry.
type DataExporter struct {
	exporters []Exporter
	log       *logger.Logger
}

func NewDataExporter(exporters ...Exporter) *DataExporter {
	return &DataExporter{
		exporters: exporters,
		log:       logger.GetLogger().WithField("component", "exporter"),
	}
}

// ExportAll stops at the first failure; export errors abort the run.
func (de *DataExporter) ExportAll(ctx context.Context, reg *catalog.Registry) error {
	for _, e := range de.exporters {
		paths, err := e.Export(ctx, reg)
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", e.Name(), err)
		}
		de.log.WithFields(map[string]interface{}{
			"exporter": e.Name(),
			"files":    paths,
			"pages":    reg.Len(),
		}).Info("Export written")
	}
	return nil
}
