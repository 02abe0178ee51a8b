// Package enrich merges Haloscan keyword metrics into registry pages.
package enrich

import (
	"context"
	"fmt"
	"time"

	"seo-pages-go/pkg/api"
	"seo-pages-go/pkg/catalog"
	"seo-pages-go/pkg/logger"
	"seo-pages-go/pkg/metrics"
)

// Saver persists the registry at checkpoints.
type Saver interface {
	Save(ctx context.Context, reg *catalog.Registry) error
}

// Config bounds one enrichment pass.
type Config struct {
	// Delay is waited after every lookup, successful or not.
	Delay time.Duration
	// CheckpointEvery saves the registry after this many enriched pages.
	CheckpointEvery int
}

// Result counts what happened to the selected pages.
type Result struct {
	Selected int
	Enriched int
	NoData   int
	Failed   int
	// Canceled is set when the context ended before every page was tried.
	Canceled bool
}

type Enricher struct {
	client          api.KeywordClient
	saver           Saver
	executor        *api.SequentialExecutor
	checkpointEvery int
	recorder        metrics.Recorder
	log             *logger.Logger
}

type Option func(*Enricher)

func WithRecorder(r metrics.Recorder) Option {
	return func(e *Enricher) { e.recorder = r }
}

func WithLogger(l *logger.Logger) Option {
	return func(e *Enricher) { e.log = l }
}

func New(client api.KeywordClient, saver Saver, cfg Config, opts ...Option) *Enricher {
	every := cfg.CheckpointEvery
	if every <= 0 {
		every = 20
	}
	e := &Enricher{
		client:          client,
		saver:           saver,
		executor:        api.NewSequentialExecutor(cfg.Delay),
		checkpointEvery: every,
		recorder:        metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.GetLogger().WithField("component", "enricher")
	}
	return e
}

// Run looks up at most limit unenriched top/high pages, top tier first, and
// writes the first result's figures into each. Lookup failures skip the page.
// The registry is saved every CheckpointEvery enrichments and once at the
// end, even when ctx was canceled. Only a failed save returns an error.
func (e *Enricher) Run(ctx context.Context, reg *catalog.Registry, limit int) (Result, error) {
	candidates := reg.EnrichmentCandidates(limit)
	res := Result{Selected: len(candidates)}
	e.log.WithFields(map[string]interface{}{
		"selected": res.Selected,
		"limit":    limit,
	}).Info("Starting keyword enrichment")

	progress := logger.NewProgressReporter(len(candidates), "Keyword enrichment", e.log)

	for _, page := range candidates {
		if ctx.Err() != nil {
			res.Canceled = true
			break
		}
		m, outcome, err := e.lookup(ctx, page.Title)
		e.recorder.IncLookup(string(outcome))

		if api.ShouldStopProcessing(err) {
			res.Canceled = true
			break
		}

		switch {
		case err != nil:
			res.Failed++
			e.log.WithError(err).WithFields(map[string]interface{}{
				"slug":    page.Slug,
				"keyword": page.Title,
				"outcome": outcome,
			}).Warn("Haloscan lookup failed")
		case m == nil:
			res.NoData++
			e.log.WithField("keyword", page.Title).Debug("No Haloscan data")
		default:
			if err := reg.SetMetrics(page.Slug, toCatalog(m)); err != nil {
				e.log.WithError(err).WithField("slug", page.Slug).Warn("Metrics not recorded")
				break
			}
			res.Enriched++
			if res.Enriched%e.checkpointEvery == 0 {
				if err := e.checkpoint(ctx, reg, res.Enriched); err != nil {
					return res, err
				}
			}
		}
		progress.Update(1)
	}

	progress.Complete()

	if err := e.checkpoint(context.WithoutCancel(ctx), reg, res.Enriched); err != nil {
		return res, err
	}

	e.log.WithFields(map[string]interface{}{
		"selected": res.Selected,
		"enriched": res.Enriched,
		"no_data":  res.NoData,
		"failed":   res.Failed,
		"canceled": res.Canceled,
	}).Info("Keyword enrichment completed")
	return res, nil
}

func (e *Enricher) lookup(ctx context.Context, keyword string) (*api.KeywordMetrics, api.Outcome, error) {
	var m *api.KeywordMetrics
	err := e.executor.Execute(ctx, func() error {
		start := time.Now()
		var err error
		m, err = e.client.Lookup(ctx, keyword)
		e.recorder.ObserveLookupDuration(time.Since(start))
		return err
	})
	outcome := api.ClassifyError(err)
	if err == nil && m == nil {
		outcome = api.OutcomeNoData
	}
	return m, outcome, err
}

func (e *Enricher) checkpoint(ctx context.Context, reg *catalog.Registry, enriched int) error {
	if err := e.saver.Save(ctx, reg); err != nil {
		return fmt.Errorf("checkpoint failed: %w", err)
	}
	e.recorder.IncCheckpoint()
	e.log.WithField("enriched", enriched).Info("Checkpoint saved")
	return nil
}

func toCatalog(m *api.KeywordMetrics) catalog.Metrics {
	return catalog.Metrics{
		Volume:     m.Volume,
		Difficulty: m.AllInTitle,
		CPC:        m.CPC,
	}
}
