package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the registry as an object keyed by slug, in insertion
// order.
func (r *Registry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, slug := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(slug); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(r.pages[slug]); err != nil {
			return nil, fmt.Errorf("encode page %s: %w", slug, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by slug, keeping document order.
// A repeated key keeps its first value.
func (r *Registry) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read registry: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("registry must be a JSON object, got %v", tok)
	}

	fresh := NewRegistry()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read slug: %w", err)
		}
		key, _ := tok.(string)

		var p Page
		if err := dec.Decode(&p); err != nil {
			return fmt.Errorf("decode page %s: %w", key, err)
		}
		if p.Slug == "" {
			p.Slug = key
		}
		if p.Slug != key {
			return fmt.Errorf("page keyed %q carries slug %q", key, p.Slug)
		}
		if !p.Category.Valid() {
			return fmt.Errorf("page %s: unknown category %q", key, p.Category)
		}
		if !p.Priority.Valid() {
			return fmt.Errorf("page %s: unknown priority %q", key, p.Priority)
		}
		if _, dup := fresh.pages[key]; dup {
			continue
		}
		fresh.put(&p)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read registry end: %w", err)
	}

	*r = *fresh
	return nil
}
