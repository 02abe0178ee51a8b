// Package taxonomy holds the static term tables the page catalog is built from.
//
// Every table is ordered: iteration follows declaration order, which in turn
// fixes the order in which the generator inserts pages.
package taxonomy

// Term pairs a machine code (already slug-safe) with its display label.
type Term struct {
	Code  string
	Label string
}

// Table is an ordered code -> label mapping.
type Table struct {
	name  string
	terms []Term
	index map[string]int
}

// NewTable builds a table from terms in declaration order. Duplicate codes
// panic since tables are compile-time data.
func NewTable(name string, terms ...Term) *Table {
	t := &Table{
		name:  name,
		terms: make([]Term, 0, len(terms)),
		index: make(map[string]int, len(terms)),
	}
	for _, term := range terms {
		if _, dup := t.index[term.Code]; dup {
			panic("taxonomy: duplicate code " + term.Code + " in table " + name)
		}
		t.index[term.Code] = len(t.terms)
		t.terms = append(t.terms, term)
	}
	return t
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Len returns the number of terms.
func (t *Table) Len() int { return len(t.terms) }

// Terms returns a copy of the terms in order.
func (t *Table) Terms() []Term {
	out := make([]Term, len(t.terms))
	copy(out, t.terms)
	return out
}

// Codes returns the codes in order.
func (t *Table) Codes() []string {
	out := make([]string, len(t.terms))
	for i, term := range t.terms {
		out[i] = term.Code
	}
	return out
}

// Label returns the display label for code.
func (t *Table) Label(code string) (string, bool) {
	i, ok := t.index[code]
	if !ok {
		return "", false
	}
	return t.terms[i].Label, true
}

// Has reports whether code belongs to the table.
func (t *Table) Has(code string) bool {
	_, ok := t.index[code]
	return ok
}

// Subset returns a filtered view holding only the given codes, in the
// table's own order. Unknown codes panic.
func (t *Table) Subset(codes ...string) *Table {
	keep := make(map[string]bool, len(codes))
	for _, c := range codes {
		if !t.Has(c) {
			panic("taxonomy: unknown code " + c + " in table " + t.name)
		}
		keep[c] = true
	}
	terms := make([]Term, 0, len(codes))
	for _, term := range t.terms {
		if keep[term.Code] {
			terms = append(terms, term)
		}
	}
	return NewTable(t.name, terms...)
}
