// Package catalog models landing-page records and the slug-keyed registry
// that deduplicates them.
package catalog

// Page is a landing-page descriptor.
type Page struct {
	Slug        string   `json:"slug"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`

	HaloscanVolume *float64 `json:"haloscan_volume"`
	HaloscanKD     *float64 `json:"haloscan_kd"`
	HaloscanCPC    *float64 `json:"haloscan_cpc"`
}

// Enriched reports whether keyword metrics were recorded for the page.
// The volume field alone decides, as it is the selection filter.
func (p Page) Enriched() bool {
	return p.HaloscanVolume != nil
}

// Metrics are keyword-research figures merged into a page.
type Metrics struct {
	Volume     *float64
	Difficulty *float64
	CPC        *float64
}

// PageOption customizes a page created by Registry.Add.
type PageOption func(*Page)

// WithDescription sets the free-text description.
func WithDescription(d string) PageOption {
	return func(p *Page) { p.Description = d }
}

// WithPriority sets the tier. The default is PriorityMedium.
func WithPriority(pr Priority) PageOption {
	return func(p *Page) { p.Priority = pr }
}
