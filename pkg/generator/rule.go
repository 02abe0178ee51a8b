// Package generator enumerates the landing pages the taxonomy calls for and
// inserts them into a catalog.Registry.
package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aymerick/raymond"

	"seo-pages-go/pkg/catalog"
	"seo-pages-go/pkg/taxonomy"
)

func init() {
	raymond.RegisterHelper("capitalize", capitalize)
	raymond.RegisterHelper("upper", strings.ToUpper)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// Axis binds a taxonomy table to a name usable in slug fragments ("$name")
// and title templates ({{{name}}} for the label, {{{name_code}}} for the code).
type Axis struct {
	Name  string
	Table *taxonomy.Table
}

// On is shorthand for Axis{name, table}.
func On(name string, table *taxonomy.Table) Axis {
	return Axis{Name: name, Table: table}
}

// PageTemplate describes one page emitted per combination of the enclosing
// rule's axes.
type PageTemplate struct {
	Category catalog.Category
	Priority catalog.Priority
	Slug     []string
	title    *raymond.Template
}

// Page builds a template. Slug fragments starting with '$' are replaced by
// the code bound to that axis; anything else is literal.
func Page(category catalog.Category, priority catalog.Priority, title string, slug ...string) PageTemplate {
	return PageTemplate{
		Category: category,
		Priority: priority,
		Slug:     slug,
		title:    raymond.MustParse(title),
	}
}

// Literal is a curated (slug, title) pair.
type Literal struct {
	Slug  string
	Title string
}

// Literals turns curated pairs into templates sharing category and priority.
func Literals(category catalog.Category, priority catalog.Priority, pairs ...Literal) []PageTemplate {
	out := make([]PageTemplate, len(pairs))
	for i, l := range pairs {
		out[i] = Page(category, priority, l.Title, l.Slug)
	}
	return out
}

// Rule emits Pages for every combination of Axes (first axis outermost),
// then runs Nested rules with the current bindings in scope. A rule without
// axes runs exactly once.
type Rule struct {
	Name   string
	Axes   []Axis
	Pages  []PageTemplate
	Nested []Rule
}

type binding map[string]taxonomy.Term

func (b binding) with(name string, t taxonomy.Term) binding {
	out := make(binding, len(b)+1)
	for k, v := range b {
		out[k] = v
	}
	out[name] = t
	return out
}

func (b binding) context() map[string]string {
	ctx := make(map[string]string, 2*len(b))
	for name, t := range b {
		ctx[name] = t.Label
		ctx[name+"_code"] = t.Code
	}
	return ctx
}

// walk calls emit for each page of the rule tree in insertion order.
func (r Rule) walk(outer binding, emit func(PageTemplate, binding)) {
	r.combine(0, outer, func(b binding) {
		for _, p := range r.Pages {
			emit(p, b)
		}
		for _, n := range r.Nested {
			n.walk(b, emit)
		}
	})
}

func (r Rule) combine(depth int, b binding, fn func(binding)) {
	if depth == len(r.Axes) {
		fn(b)
		return
	}
	axis := r.Axes[depth]
	for _, term := range axis.Table.Terms() {
		r.combine(depth+1, b.with(axis.Name, term), fn)
	}
}

func (p PageTemplate) fragments(b binding) []string {
	out := make([]string, len(p.Slug))
	for i, f := range p.Slug {
		if name, ok := strings.CutPrefix(f, "$"); ok {
			out[i] = b[name].Code
			continue
		}
		out[i] = f
	}
	return out
}

func (p PageTemplate) render(b binding) string {
	return p.title.MustExec(b.context())
}
