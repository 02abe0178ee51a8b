// Package slug turns display phrases into URL-safe page identifiers.
package slug

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Mode selects the transliteration table.
type Mode string

const (
	// ModeLegacy only folds é è à ê â î ô û. Other accented letters pass
	// through unchanged, which keeps slugs identical to already published URLs.
	ModeLegacy Mode = "legacy"
	// ModeFull strips every combining mark and folds ligatures.
	ModeFull Mode = "full"
)

// ParseMode validates a mode name. The empty string selects ModeLegacy.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeLegacy:
		return ModeLegacy, nil
	case ModeFull:
		return ModeFull, nil
	default:
		return "", fmt.Errorf("unknown transliteration mode %q", s)
	}
}

var legacyReplacer = strings.NewReplacer(
	"'", "",
	"é", "e",
	"è", "e",
	"à", "a",
	"ê", "e",
	"â", "a",
	"î", "i",
	"ô", "o",
	"û", "u",
)

var fullReplacer = strings.NewReplacer(
	"'", "",
	"’", "",
	"œ", "oe",
	"æ", "ae",
	"ß", "ss",
)

// Builder normalizes fragments into a single slug. The zero value uses
// ModeLegacy. A Builder holds no state between calls.
type Builder struct {
	Mode Mode
}

// New returns a builder for mode.
func New(mode Mode) Builder {
	return Builder{Mode: mode}
}

// Make lowercases each fragment, turns whitespace into hyphens, drops
// apostrophes, folds accents and joins the non-empty results with hyphens.
func (b Builder) Make(fragments ...string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if p := b.fragment(f); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}

func (b Builder) fragment(f string) string {
	s := strings.ToLower(strings.TrimSpace(f))
	if s == "" {
		return ""
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, s)

	if b.Mode == ModeFull {
		return stripMarks(fullReplacer.Replace(s))
	}
	return legacyReplacer.Replace(s)
}

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Make builds a slug with the legacy table.
func Make(fragments ...string) string {
	return Builder{}.Make(fragments...)
}
