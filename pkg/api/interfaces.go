// Package api talks to the Haloscan keyword-research tool, either through
// its command-line wrapper or over HTTP.
package api

import "context"

// KeywordMetrics holds the figures of the first Haloscan result for a
// keyword. Any field may be absent.
type KeywordMetrics struct {
	Volume     *float64 `json:"volume"`
	AllInTitle *float64 `json:"allintitle"`
	CPC        *float64 `json:"cpc"`
}

// KeywordClient looks up search metrics for a keyword. A nil result with a
// nil error means the tool answered but had no data.
type KeywordClient interface {
	Lookup(ctx context.Context, keyword string) (*KeywordMetrics, error)
}

// KeywordClientFunc adapts a function to KeywordClient.
type KeywordClientFunc func(ctx context.Context, keyword string) (*KeywordMetrics, error)

func (f KeywordClientFunc) Lookup(ctx context.Context, keyword string) (*KeywordMetrics, error) {
	return f(ctx, keyword)
}

// RequestedData is the Haloscan data section requested for every keyword.
const RequestedData = "highlights"
