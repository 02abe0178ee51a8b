// Package pipeline sequences a batch run: load the registry, run the
// requested phases, save, and print the summary.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"seo-pages-go/pkg/catalog"
	"seo-pages-go/pkg/enrich"
	"seo-pages-go/pkg/generator"
	"seo-pages-go/pkg/logger"
	"seo-pages-go/pkg/metrics"
	"seo-pages-go/pkg/report"
	"seo-pages-go/pkg/storage"
)

type Phase string

const (
	PhaseAll        Phase = "all"
	PhaseSystematic Phase = "systematic"
	PhaseHaloscan   Phase = "haloscan"
	PhaseExport     Phase = "export"
	PhaseStats      Phase = "stats"
)

// Phases lists the accepted --phase values.
func Phases() []Phase {
	return []Phase{PhaseAll, PhaseSystematic, PhaseHaloscan, PhaseExport, PhaseStats}
}

func ParsePhase(s string) (Phase, error) {
	for _, p := range Phases() {
		if string(p) == s {
			return p, nil
		}
	}
	names := make([]string, 0, len(Phases()))
	for _, p := range Phases() {
		names = append(names, string(p))
	}
	return "", fmt.Errorf("unknown phase %q (expected one of %s)", s, strings.Join(names, ", "))
}

func (p Phase) includes(step Phase) bool {
	return p == PhaseAll || p == step
}

// ErrNoEnricher is returned when a haloscan phase runs without a keyword client.
var ErrNoEnricher = errors.New("haloscan phase requested but no enricher configured")

// Deps are the components a run drives.
type Deps struct {
	Store     storage.PageStore
	Generator *generator.Generator
	// Enricher may be nil when the haloscan phase is never requested.
	Enricher *enrich.Enricher
	Exporter *storage.DataExporter
}

type textfileWriter interface {
	WriteTextfile(path string) error
}

type Runner struct {
	deps        Deps
	recorder    metrics.Recorder
	stats       io.Writer
	metricsFile string
	log         *logger.Logger
}

type Option func(*Runner)

func WithRecorder(r metrics.Recorder) Option {
	return func(rn *Runner) { rn.recorder = r }
}

func WithLogger(l *logger.Logger) Option {
	return func(rn *Runner) { rn.log = l }
}

// WithStatsWriter redirects the summary block, stdout by default.
func WithStatsWriter(w io.Writer) Option {
	return func(rn *Runner) { rn.stats = w }
}

// WithMetricsTextfile writes the recorder's metrics to path at the end of
// the run. The recorder must support textfile output.
func WithMetricsTextfile(path string) Option {
	return func(rn *Runner) { rn.metricsFile = path }
}

func New(deps Deps, opts ...Option) *Runner {
	if deps.Exporter == nil {
		deps.Exporter = storage.NewDataExporter()
	}
	r := &Runner{
		deps:     deps,
		recorder: metrics.NoopRecorder{},
		stats:    os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.GetLogger()
	}
	return r
}

type step struct {
	phase Phase
	run   func(ctx context.Context, reg *catalog.Registry, limit int) error
}

// Run executes phase. Storage and export failures abort the run. When ctx is
// canceled the remaining steps are skipped, the registry is still saved and
// the summary printed, and the cancellation is returned.
func (r *Runner) Run(ctx context.Context, phase Phase, limit int) (report.Summary, error) {
	if _, err := ParsePhase(string(phase)); err != nil {
		return report.Summary{}, err
	}

	reg, err := r.deps.Store.Load(ctx)
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to load pages: %w", err)
	}
	r.log.WithField("pages", reg.Len()).Info("Pages loaded at startup")

	steps := []step{
		{PhaseSystematic, r.systematic},
		{PhaseHaloscan, r.haloscan},
		{PhaseExport, r.export},
	}

	var interrupted error
	for _, s := range steps {
		if !phase.includes(s.phase) {
			continue
		}
		if err := ctx.Err(); err != nil {
			interrupted = err
			break
		}
		start := time.Now()
		err := s.run(ctx, reg, limit)
		r.recorder.ObservePhaseDuration(string(s.phase), time.Since(start))
		if err != nil {
			return report.Build(reg), err
		}
	}
	if interrupted == nil {
		interrupted = ctx.Err()
	}

	if phase != PhaseStats {
		if err := r.deps.Store.Save(context.WithoutCancel(ctx), reg); err != nil {
			return report.Build(reg), fmt.Errorf("failed to save pages: %w", err)
		}
	}

	summary := report.Build(reg)
	if err := summary.Write(r.stats); err != nil {
		r.log.WithError(err).Warn("Failed to print summary")
	}

	r.recorder.SetCatalog(report.Snapshot(reg))
	r.writeMetrics()

	if interrupted != nil {
		r.log.WithError(interrupted).Warn("Run interrupted")
		return summary, fmt.Errorf("run interrupted: %w", interrupted)
	}
	r.log.WithFields(map[string]interface{}{
		"phase": phase,
		"pages": summary.Total,
	}).Info("Job finished")
	return summary, nil
}

func (r *Runner) systematic(ctx context.Context, reg *catalog.Registry, _ int) error {
	r.deps.Generator.Generate(reg)
	if err := r.deps.Store.Save(ctx, reg); err != nil {
		return fmt.Errorf("failed to save pages: %w", err)
	}
	return r.deps.Exporter.ExportAll(ctx, reg)
}

func (r *Runner) haloscan(ctx context.Context, reg *catalog.Registry, limit int) error {
	if r.deps.Enricher == nil {
		return ErrNoEnricher
	}
	res, err := r.deps.Enricher.Run(ctx, reg, limit)
	if err != nil {
		return err
	}
	if res.Canceled {
		return nil
	}
	return r.deps.Exporter.ExportAll(ctx, reg)
}

func (r *Runner) export(ctx context.Context, reg *catalog.Registry, _ int) error {
	return r.deps.Exporter.ExportAll(ctx, reg)
}

func (r *Runner) writeMetrics() {
	if r.metricsFile == "" {
		return
	}
	tw, ok := r.recorder.(textfileWriter)
	if !ok {
		r.log.WithField("path", r.metricsFile).Warn("Recorder cannot write a metrics textfile")
		return
	}
	if err := tw.WriteTextfile(r.metricsFile); err != nil {
		r.log.WithError(err).WithField("path", r.metricsFile).Warn("Failed to write metrics textfile")
		return
	}
	r.log.WithField("path", r.metricsFile).Debug("Metrics textfile written")
}
