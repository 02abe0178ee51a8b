package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "seopages"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg            *prom.Registry
	lookups        *prom.CounterVec
	lookupDuration prom.Histogram
	checkpoints    prom.Counter
	phaseDuration  *prom.HistogramVec
	pagesTotal     prom.Gauge
	pagesEnriched  prom.Gauge
	pagesPriority  *prom.GaugeVec
	pagesCategory  *prom.GaugeVec
}

// NewPrometheusRecorder constructs and registers the metrics on reg, or on a
// fresh registry when reg is nil.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		lookups: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "haloscan_lookups_total",
			Help:      "Keyword lookups by outcome",
		}, []string{"outcome"}),
		lookupDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "haloscan_lookup_duration_seconds",
			Help:      "Duration of individual keyword lookups",
			Buckets:   prom.DefBuckets,
		}),
		checkpoints: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "checkpoints_total",
			Help:      "Registry saves performed during enrichment",
		}),
		phaseDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Duration of run phases",
			Buckets:   prom.DefBuckets,
		}, []string{"phase"}),
		pagesTotal: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "pages",
			Help:      "Pages in the registry",
		}),
		pagesEnriched: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "pages_enriched",
			Help:      "Pages carrying keyword metrics",
		}),
		pagesPriority: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "pages_by_priority",
			Help:      "Pages per priority tier",
		}, []string{"priority"}),
		pagesCategory: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "pages_by_category",
			Help:      "Pages per category",
		}, []string{"category"}),
	}
	reg.MustRegister(pr.lookups, pr.lookupDuration, pr.checkpoints, pr.phaseDuration,
		pr.pagesTotal, pr.pagesEnriched, pr.pagesPriority, pr.pagesCategory)
	return pr
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.reg
}

func (p *PrometheusRecorder) IncLookup(outcome string) {
	if p == nil {
		return
	}
	p.lookups.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) ObserveLookupDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.lookupDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncCheckpoint() {
	if p == nil {
		return
	}
	p.checkpoints.Inc()
}

func (p *PrometheusRecorder) ObservePhaseDuration(phase string, d time.Duration) {
	if p == nil {
		return
	}
	p.phaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetCatalog(s CatalogSnapshot) {
	if p == nil {
		return
	}
	p.pagesTotal.Set(float64(s.Total))
	p.pagesEnriched.Set(float64(s.Enriched))
	p.pagesPriority.Reset()
	for prio, n := range s.ByPriority {
		p.pagesPriority.WithLabelValues(prio).Set(float64(n))
	}
	p.pagesCategory.Reset()
	for cat, n := range s.ByCategory {
		p.pagesCategory.WithLabelValues(cat).Set(float64(n))
	}
}

// WriteTextfile writes the current metrics in the node-exporter textfile
// format. The file is replaced atomically.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}

// HTTPHandler serves the metrics of the recorder's registry.
func (p *PrometheusRecorder) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
