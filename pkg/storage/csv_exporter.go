package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"seo-pages-go/pkg/catalog"
)

// CSVHeader is the fixed column order of the flattened export.
var CSVHeader = []string{"Catégorie", "Slug", "Titre", "Priorité", "Volume", "KD", "CPC"}

// CSVExporter writes one row per page, grouped by category (sorted) and
// ordered by title within a category.
type CSVExporter struct {
	path string
}

func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{path: path}
}

func (e *CSVExporter) Name() string { return "csv" }

func (e *CSVExporter) Export(ctx context.Context, reg *catalog.Registry) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, reg); err != nil {
		return nil, err
	}
	if err := writeFileAtomic(e.path, buf.Bytes(), 0644); err != nil {
		return nil, err
	}
	return []string{e.path}, nil
}

// WriteCSV writes the header and the sorted rows to w.
func WriteCSV(w io.Writer, reg *catalog.Registry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, p := range sortedForExport(reg.Pages()) {
		row := []string{
			string(p.Category),
			p.Slug,
			p.Title,
			string(p.Priority),
			formatMetric(p.HaloscanVolume),
			formatMetric(p.HaloscanKD),
			formatMetric(p.HaloscanCPC),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// sortedForExport orders by category then title. The sort is stable, so
// equal titles keep registry order.
func sortedForExport(pages []catalog.Page) []catalog.Page {
	sort.SliceStable(pages, func(i, j int) bool {
		if pages[i].Category != pages[j].Category {
			return pages[i].Category < pages[j].Category
		}
		return pages[i].Title < pages[j].Title
	})
	return pages
}

// formatMetric renders the shortest exact decimal; absent values are empty.
func formatMetric(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
