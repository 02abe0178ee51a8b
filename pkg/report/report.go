// Package report prints the end-of-run catalog summary.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"seo-pages-go/pkg/catalog"
	"seo-pages-go/pkg/metrics"
)

// TopN is how many categories the summary lists.
const TopN = 10

const (
	bannerWidth   = 50
	priorityWidth = 8
	categoryWidth = 40
)

// PriorityCount is the number of pages in one tier.
type PriorityCount struct {
	Priority catalog.Priority
	Count    int
}

// Summary is a point-in-time view of the registry.
type Summary struct {
	Total    int
	Enriched int
	// ByPriority lists every tier in rank order, including empty ones.
	ByPriority    []PriorityCount
	TopCategories []catalog.CategoryCount
}

func Build(reg *catalog.Registry) Summary {
	counts := reg.PriorityCounts()
	s := Summary{
		Total:      reg.Len(),
		Enriched:   reg.EnrichedCount(),
		ByPriority: make([]PriorityCount, 0, len(catalog.Priorities)),
	}
	for _, p := range catalog.Priorities {
		s.ByPriority = append(s.ByPriority, PriorityCount{Priority: p, Count: counts[p]})
	}
	cats := reg.CategoryCounts()
	if len(cats) > TopN {
		cats = cats[:TopN]
	}
	s.TopCategories = cats
	return s
}

// Write prints the summary block. Labels are padded by display width so
// accented category names stay aligned.
func (s Summary) Write(w io.Writer) error {
	banner := strings.Repeat("=", bannerWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", banner)
	fmt.Fprintf(&b, "TOTAL PAGES : %d\n", s.Total)
	fmt.Fprintf(&b, "Enrichies Haloscan : %d\n", s.Enriched)
	b.WriteString("\nPar priorité :\n")
	for _, pc := range s.ByPriority {
		fmt.Fprintf(&b, "  %s : %d\n", runewidth.FillRight(string(pc.Priority), priorityWidth), pc.Count)
	}
	fmt.Fprintf(&b, "\nTop %d catégories :\n", TopN)
	for _, cc := range s.TopCategories {
		fmt.Fprintf(&b, "  %s : %d\n", runewidth.FillRight(string(cc.Category), categoryWidth), cc.Count)
	}
	fmt.Fprintf(&b, "%s\n\n", banner)

	_, err := io.WriteString(w, b.String())
	return err
}

// Snapshot converts the summary into catalog gauges. Category counts cover
// the whole registry, not only the top entries.
func Snapshot(reg *catalog.Registry) metrics.CatalogSnapshot {
	snap := metrics.CatalogSnapshot{
		Total:      reg.Len(),
		Enriched:   reg.EnrichedCount(),
		ByPriority: make(map[string]int, len(catalog.Priorities)),
		ByCategory: make(map[string]int),
	}
	counts := reg.PriorityCounts()
	for _, p := range catalog.Priorities {
		snap.ByPriority[string(p)] = counts[p]
	}
	for _, cc := range reg.CategoryCounts() {
		snap.ByCategory[string(cc.Category)] = cc.Count
	}
	return snap
}
