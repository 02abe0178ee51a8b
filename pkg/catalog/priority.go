package catalog

import (
	"encoding/json"
	"fmt"
)

// Priority is the coarse ranking tier of a page.
type Priority string

const (
	PriorityTop    Priority = "top"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists every tier from most to least important.
var Priorities = []Priority{PriorityTop, PriorityHigh, PriorityMedium, PriorityLow}

// Rank orders tiers: top=0 ... low=3. Unknown tiers sort last.
func (p Priority) Rank() int {
	for i, q := range Priorities {
		if p == q {
			return i
		}
	}
	return len(Priorities)
}

// Valid reports whether p is a known tier.
func (p Priority) Valid() bool {
	return p.Rank() < len(Priorities)
}

// Enrichable reports whether pages of this tier are sent to keyword lookup.
func (p Priority) Enrichable() bool {
	return p == PriorityTop || p == PriorityHigh
}

// ParsePriority validates a tier name.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

// UnmarshalJSON rejects unknown tiers.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
