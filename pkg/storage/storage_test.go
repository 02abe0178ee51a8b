package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo-pages-go/pkg/catalog"
)

func f64(v float64) *float64 { return &v }

func sampleRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg := catalog.NewRegistry()
	reg.Add(catalog.CategoryVolume, "poubelle-30l", "Poubelle 30L", catalog.WithPriority(catalog.PriorityHigh))
	reg.Add(catalog.CategoryTypeUsage, "poubelle-salle-de-bain", "Poubelle salle de bain", catalog.WithPriority(catalog.PriorityHigh))
	reg.Add(catalog.CategoryTypeUsage, "poubelle-cuisine", "Poubelle cuisine", catalog.WithPriority(catalog.PriorityHigh))
	reg.Add(catalog.CategoryEnclosure, "cache-poubelle-exterieur", "Cache-poubelle extérieur", catalog.WithPriority(catalog.PriorityTop))
	reg.Add(catalog.CategoryLocal, "bac-roulant-lyon", "Commander un bac roulant à Lyon", catalog.WithPriority(catalog.PriorityLow))
	require.NoError(t, reg.SetMetrics("poubelle-cuisine", catalog.Metrics{Volume: f64(1200), Difficulty: f64(45), CPC: f64(0.8)}))
	require.NoError(t, reg.SetMetrics("poubelle-30l", catalog.Metrics{Volume: f64(0), CPC: nil}))
	return reg
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "pages.json"))
	reg, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, reg.Len())
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "pages.json")
	store := NewFileStore(path)
	reg := sampleRegistry(t)

	require.NoError(t, store.Save(context.Background(), reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `"title": "Cache-poubelle extérieur"`, "non-ASCII kept literal, indented")
	assert.Contains(t, content, `"haloscan_volume": null`)
	assert.True(t, strings.HasPrefix(content, "{\n  \"poubelle-30l\": {"))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, reg.Slugs(), loaded.Slugs())
	assert.Equal(t, reg.Pages(), loaded.Pages())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileStore_LoadStringMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.json")
	doc := `{"poubelle-bambou": {"slug": "poubelle-bambou", "category": "materiau", "title": "Poubelle bambou",
  "description": "", "priority": "high", "haloscan_volume": "1200", "haloscan_kd": null, "haloscan_cpc": "0.8"}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	store := NewFileStore(path)
	reg, err := store.Load(context.Background())
	require.NoError(t, err)

	page, ok := reg.Get("poubelle-bambou")
	require.True(t, ok)
	assert.Equal(t, f64(1200), page.HaloscanVolume)
	assert.Nil(t, page.HaloscanKD)
	assert.Equal(t, f64(0.8), page.HaloscanCPC)

	require.NoError(t, store.Save(context.Background(), reg))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"haloscan_volume": 1200`)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"x": {"priority": "urgent"}}`), 0644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestMemoryStorage(t *testing.T) {
	ms := NewMemoryStorage()
	reg := sampleRegistry(t)
	require.NoError(t, ms.Save(context.Background(), reg))
	reg.Add(catalog.CategoryGuide, "not-saved", "Not saved")

	loaded, err := ms.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.Len())
	assert.Equal(t, 1, ms.Saves())
}

func TestWriteCSV(t *testing.T) {
	reg := sampleRegistry(t)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, reg))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, reg.Len()+1)

	assert.Equal(t, CSVHeader, rows[0])
	assert.Equal(t, [][]string{
		{"cache-poubelle", "cache-poubelle-exterieur", "Cache-poubelle extérieur", "top", "", "", ""},
		{"local", "bac-roulant-lyon", "Commander un bac roulant à Lyon", "low", "", "", ""},
		{"type-usage", "poubelle-cuisine", "Poubelle cuisine", "high", "1200", "45", "0.8"},
		{"type-usage", "poubelle-salle-de-bain", "Poubelle salle de bain", "high", "", "", ""},
		{"volume", "poubelle-30l", "Poubelle 30L", "high", "0", "", ""},
	}, rows[1:])
}

func TestCSVExporter_RowCountMatchesRegistry(t *testing.T) {
	reg := sampleRegistry(t)
	path := filepath.Join(t.TempDir(), "pages.csv")

	written, err := NewCSVExporter(path).Export(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, written)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, reg.Len()+1)

	categories := map[string]bool{}
	for _, p := range reg.Pages() {
		categories[string(p.Category)] = true
	}
	for _, row := range rows[1:] {
		assert.True(t, categories[row[0]], row[0])
	}
}

func TestSitemapExporter_Single(t *testing.T) {
	reg := sampleRegistry(t)
	e := NewSitemapExporter(filepath.Join(t.TempDir(), "sitemap.xml"), "https://www.example.fr/", 100)

	files, err := e.Build(reg)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "sitemap.xml", files[0].Name)

	doc := string(files[0].Data)
	assert.Contains(t, doc, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, doc, "<loc>https://www.example.fr/cache-poubelle-exterieur</loc>\n    <priority>1.0</priority>")
	assert.Contains(t, doc, "<loc>https://www.example.fr/bac-roulant-lyon</loc>\n    <priority>0.3</priority>")
	assert.Equal(t, reg.Len(), strings.Count(doc, "<url>"))
}

func TestSitemapExporter_Split(t *testing.T) {
	reg := sampleRegistry(t)
	dir := t.TempDir()
	e := NewSitemapExporter(filepath.Join(dir, "sitemap.xml"), "https://www.example.fr", 2)
	e.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	written, err := e.Export(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "sitemap.xml"),
		filepath.Join(dir, "sitemap-1.xml"),
		filepath.Join(dir, "sitemap-2.xml"),
		filepath.Join(dir, "sitemap-3.xml"),
	}, written)

	index, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Contains(t, string(index), "<sitemapindex")
	assert.Contains(t, string(index), "<loc>https://www.example.fr/sitemap-3.xml</loc>")
	assert.Contains(t, string(index), "<lastmod>2026-03-01</lastmod>")

	last, err := os.ReadFile(written[3])
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(last), "<url>"))
}

func TestDataExporter_StopsOnFailure(t *testing.T) {
	reg := sampleRegistry(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	de := NewDataExporter(NewCSVExporter(filepath.Join(blocker, "pages.csv")))
	assert.Error(t, de.ExportAll(context.Background(), reg))
}
