package catalog

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNotFound is returned for an unknown slug.
	ErrNotFound = errors.New("page not found")
	// ErrAlreadyEnriched is returned when metrics would overwrite existing ones.
	ErrAlreadyEnriched = errors.New("page already enriched")
)

// Registry maps slugs to pages, keeping insertion order. Adding a slug that
// already exists is a no-op, so the first writer wins.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	order []string
	pages map[string]*Page
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{pages: make(map[string]*Page)}
}

// Add creates a page unless slug is already present. It reports whether a
// page was created.
func (r *Registry) Add(category Category, slug, title string, opts ...PageOption) bool {
	if _, exists := r.pages[slug]; exists {
		return false
	}
	p := &Page{
		Slug:     slug,
		Category: category,
		Title:    title,
		Priority: PriorityMedium,
	}
	for _, opt := range opts {
		opt(p)
	}
	r.put(p)
	return true
}

func (r *Registry) put(p *Page) {
	r.order = append(r.order, p.Slug)
	r.pages[p.Slug] = p
}

// Len returns the number of pages.
func (r *Registry) Len() int { return len(r.order) }

// Get returns a copy of the page stored under slug.
func (r *Registry) Get(slug string) (Page, bool) {
	p, ok := r.pages[slug]
	if !ok {
		return Page{}, false
	}
	return *p, true
}

// Slugs returns every slug in insertion order.
func (r *Registry) Slugs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Pages returns copies of every page in insertion order.
func (r *Registry) Pages() []Page {
	return r.filter(func(Page) bool { return true })
}

// ByCategory returns the pages of category c in insertion order.
func (r *Registry) ByCategory(c Category) []Page {
	return r.filter(func(p Page) bool { return p.Category == c })
}

// ByPriority returns the pages of tier pr in insertion order.
func (r *Registry) ByPriority(pr Priority) []Page {
	return r.filter(func(p Page) bool { return p.Priority == pr })
}

func (r *Registry) filter(keep func(Page) bool) []Page {
	out := make([]Page, 0)
	for _, slug := range r.order {
		if p := *r.pages[slug]; keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to n other pages sharing the category of slug.
func (r *Registry) Related(slug string, n int) []Page {
	p, ok := r.pages[slug]
	if !ok || n <= 0 {
		return nil
	}
	out := make([]Page, 0, n)
	for _, s := range r.order {
		if len(out) == n {
			break
		}
		other := r.pages[s]
		if s != slug && other.Category == p.Category {
			out = append(out, *other)
		}
	}
	return out
}

// CategoryCount is the number of pages in a category.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// CategoryCounts returns per-category totals, largest first; ties are
// ordered by category name.
func (r *Registry) CategoryCounts() []CategoryCount {
	counts := make(map[Category]int)
	for _, slug := range r.order {
		counts[r.pages[slug].Category]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// PriorityCounts returns the number of pages per tier.
func (r *Registry) PriorityCounts() map[Priority]int {
	out := make(map[Priority]int, len(Priorities))
	for _, slug := range r.order {
		out[r.pages[slug].Priority]++
	}
	return out
}

// EnrichedCount returns how many pages carry keyword metrics.
func (r *Registry) EnrichedCount() int {
	n := 0
	for _, slug := range r.order {
		if r.pages[slug].Enriched() {
			n++
		}
	}
	return n
}

// EnrichmentCandidates selects up to limit pages that have no metrics yet and
// whose tier is top or high. Pages are ordered by tier (top first), then by
// insertion order. A negative limit means no bound.
func (r *Registry) EnrichmentCandidates(limit int) []Page {
	out := r.filter(func(p Page) bool {
		return !p.Enriched() && p.Priority.Enrichable()
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SetMetrics records keyword metrics on the page stored under slug. Pages that
// already carry a volume are left untouched.
func (r *Registry) SetMetrics(slug string, m Metrics) error {
	p, ok := r.pages[slug]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	if p.Enriched() {
		return fmt.Errorf("%w: %s", ErrAlreadyEnriched, slug)
	}
	p.HaloscanVolume = m.Volume
	p.HaloscanKD = m.Difficulty
	p.HaloscanCPC = m.CPC
	return nil
}
