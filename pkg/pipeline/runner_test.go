package pipeline

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo-pages-go/pkg/api"
	"seo-pages-go/pkg/catalog"
	"seo-pages-go/pkg/enrich"
	"seo-pages-go/pkg/generator"
	"seo-pages-go/pkg/logger"
	"seo-pages-go/pkg/metrics"
	"seo-pages-go/pkg/slug"
	"seo-pages-go/pkg/storage"
	"seo-pages-go/pkg/taxonomy"
)

func f64(v float64) *float64 { return &v }

type fixture struct {
	store   *storage.MemoryStorage
	csvPath string
	stats   *bytes.Buffer
	calls   []string
	deps    Deps
	log     *logger.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.NewWithWriter(io.Discard, "error")
	fx := &fixture{
		store:   storage.NewMemoryStorage(),
		csvPath: filepath.Join(t.TempDir(), "pages.csv"),
		stats:   &bytes.Buffer{},
		log:     log,
	}

	rules := []generator.Rule{{
		Name: "type × usage",
		Axes: []generator.Axis{generator.On("usage", taxonomy.Usages.Subset("cuisine", "bureau"))},
		Pages: []generator.PageTemplate{
			generator.Page(catalog.CategoryTypeUsage, catalog.PriorityHigh, "Poubelle {{{usage}}}", "poubelle", "$usage"),
		},
	}}
	client := api.KeywordClientFunc(func(ctx context.Context, keyword string) (*api.KeywordMetrics, error) {
		fx.calls = append(fx.calls, keyword)
		return &api.KeywordMetrics{Volume: f64(1200), AllInTitle: f64(45), CPC: f64(0.8)}, nil
	})

	fx.deps = Deps{
		Store:     fx.store,
		Generator: generator.New(slug.New(slug.ModeLegacy), generator.WithRules(rules), generator.WithLogger(log)),
		Enricher:  enrich.New(client, fx.store, enrich.Config{}, enrich.WithLogger(log)),
		Exporter:  storage.NewDataExporter(storage.NewCSVExporter(fx.csvPath)),
	}
	return fx
}

func (fx *fixture) runner(opts ...Option) *Runner {
	opts = append([]Option{WithLogger(fx.log), WithStatsWriter(fx.stats)}, opts...)
	return New(fx.deps, opts...)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestParsePhase(t *testing.T) {
	for _, p := range Phases() {
		got, err := ParsePhase(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePhase("deploy")
	assert.Error(t, err)
}

func TestRun_All(t *testing.T) {
	fx := newFixture(t)

	summary, err := fx.runner().Run(context.Background(), PhaseAll, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Enriched)
	assert.Equal(t, []string{"Poubelle cuisine"}, fx.calls)

	rows := readCSV(t, fx.csvPath)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"type-usage", "poubelle-cuisine", "Poubelle cuisine", "high", "1200", "45", "0.8"}, rows[2])

	saved, err := fx.store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, saved.EnrichedCount())

	assert.Contains(t, fx.stats.String(), "TOTAL PAGES : 2\n")
	assert.Contains(t, fx.stats.String(), "Enrichies Haloscan : 1\n")
}

func TestRun_SystematicOnly(t *testing.T) {
	fx := newFixture(t)
	fx.deps.Enricher = nil

	summary, err := fx.runner().Run(context.Background(), PhaseSystematic, 300)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Zero(t, summary.Enriched)
	assert.Empty(t, fx.calls)
	assert.Len(t, readCSV(t, fx.csvPath), 3)
}

func TestRun_Stats(t *testing.T) {
	fx := newFixture(t)
	reg := catalog.NewRegistry()
	reg.Add(catalog.CategoryGuide, "guide-tri", "Guide du tri")
	require.NoError(t, fx.store.Save(context.Background(), reg))

	summary, err := fx.runner().Run(context.Background(), PhaseStats, 300)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, fx.store.Saves(), "stats does not rewrite the registry")
	assert.NoFileExists(t, fx.csvPath)
	assert.Contains(t, fx.stats.String(), "TOTAL PAGES : 1\n")
}

func TestRun_HaloscanWithoutEnricher(t *testing.T) {
	fx := newFixture(t)
	fx.deps.Enricher = nil

	_, err := fx.runner().Run(context.Background(), PhaseHaloscan, 300)
	assert.ErrorIs(t, err, ErrNoEnricher)
}

func TestRun_UnknownPhase(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.runner().Run(context.Background(), Phase("deploy"), 300)
	assert.Error(t, err)
	assert.Zero(t, fx.store.Saves())
}

func TestRun_CanceledStillSavesAndReports(t *testing.T) {
	fx := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fx.runner().Run(ctx, PhaseAll, 300)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, fx.store.Saves())
	assert.Empty(t, fx.calls)
	assert.Contains(t, fx.stats.String(), "TOTAL PAGES : 0\n")
}

func TestRun_WritesMetricsTextfile(t *testing.T) {
	fx := newFixture(t)
	rec := metrics.NewPrometheusRecorder(nil)
	path := filepath.Join(t.TempDir(), "metrics.prom")

	_, err := fx.runner(WithRecorder(rec), WithMetricsTextfile(path)).Run(context.Background(), PhaseSystematic, 300)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "seopages_pages 2")
	assert.Contains(t, string(data), `seopages_pages_by_category{category="type-usage"} 2`)
	assert.Contains(t, string(data), `seopages_phase_duration_seconds_count{phase="systematic"} 1`)
}
