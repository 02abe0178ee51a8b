package generator

import (
	"seo-pages-go/pkg/catalog"
	"seo-pages-go/pkg/logger"
	"seo-pages-go/pkg/slug"
)

// Generator runs a rule tree against a registry.
type Generator struct {
	rules []Rule
	slugs slug.Builder
	log   *logger.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRules replaces DefaultRules.
func WithRules(rules []Rule) Option {
	return func(g *Generator) { g.rules = rules }
}

// WithLogger sets the logger. The global logger is used otherwise.
func WithLogger(l *logger.Logger) Option {
	return func(g *Generator) { g.log = l }
}

func New(slugs slug.Builder, opts ...Option) *Generator {
	g := &Generator{
		rules: DefaultRules(),
		slugs: slugs,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = logger.GetLogger()
	}
	return g
}

// Generate inserts every page the rules describe and returns how many were
// new. Existing slugs are left untouched, so a second run adds nothing.
func (g *Generator) Generate(reg *catalog.Registry) int {
	g.log.WithField("rules", len(g.rules)).Info("Starting systematic generation")
	start := reg.Len()

	for _, rule := range g.rules {
		before := reg.Len()
		g.Apply(reg, rule)
		g.log.WithFields(map[string]interface{}{
			"rule":  rule.Name,
			"added": reg.Len() - before,
		}).Info("Rule applied")
	}

	added := reg.Len() - start
	g.log.WithFields(map[string]interface{}{
		"added": added,
		"total": reg.Len(),
	}).Info("Systematic generation completed")
	return added
}

// Apply runs a single rule tree.
func (g *Generator) Apply(reg *catalog.Registry, rule Rule) {
	rule.walk(binding{}, func(p PageTemplate, b binding) {
		reg.Add(p.Category, g.slugs.Make(p.fragments(b)...), p.render(b), catalog.WithPriority(p.Priority))
	})
}

// Count returns how many pages the rules emit before deduplication.
func (g *Generator) Count() int {
	n := 0
	for _, rule := range g.rules {
		rule.walk(binding{}, func(PageTemplate, binding) { n++ })
	}
	return n
}
