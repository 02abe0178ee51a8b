// Package metrics records catalog and enrichment metrics. Components take a
// Recorder and default to NoopRecorder; the Prometheus implementation is
// swapped in by the command line and the server.
package metrics

import "time"

// Recorder defines observability hooks for a generation run.
type Recorder interface {
	// IncLookup counts one keyword lookup by outcome (ok, no_data, timeout...).
	IncLookup(outcome string)
	ObserveLookupDuration(d time.Duration)
	IncCheckpoint()
	ObservePhaseDuration(phase string, d time.Duration)
	SetCatalog(snapshot CatalogSnapshot)
}

// CatalogSnapshot is the registry state exported as gauges.
type CatalogSnapshot struct {
	Total      int
	Enriched   int
	ByPriority map[string]int
	ByCategory map[string]int
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) IncLookup(string)                           {}
func (NoopRecorder) ObserveLookupDuration(time.Duration)        {}
func (NoopRecorder) IncCheckpoint()                             {}
func (NoopRecorder) ObservePhaseDuration(string, time.Duration) {}
func (NoopRecorder) SetCatalog(CatalogSnapshot)                 {}
