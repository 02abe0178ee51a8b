package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake_Legacy(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"single word", []string{"Poubelle"}, "poubelle"},
		{"codes", []string{"poubelle", "50l", "cuisine"}, "poubelle-50l-cuisine"},
		{"spaces", []string{"Salle de bain"}, "salle-de-bain"},
		{"apostrophe", []string{"l'hôpital"}, "lhopital"},
		{"accents", []string{"Extérieur", "rétro", "à pédale"}, "exterieur-retro-a-pedale"},
		{"circumflex", []string{"fenêtre", "âge", "île", "hôtel", "sûr"}, "fenetre-age-ile-hotel-sur"},
		{"empty fragments skipped", []string{"", "bac", "", "1-bac"}, "bac-1-bac"},
		{"blank fragment skipped", []string{"bac", "   "}, "bac"},
		{"nothing", nil, ""},
		{"trim", []string{"  Poubelle  "}, "poubelle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.parts...))
		})
	}
}

func TestMake_LegacyKeepsUnmappedLetters(t *testing.T) {
	// ç, ù, ï are outside the legacy table and survive.
	assert.Equal(t, "garçon-où-naïf", Make("garçon", "où", "naïf"))
}

func TestMake_Full(t *testing.T) {
	b := New(ModeFull)
	assert.Equal(t, "garcon-ou-naif", b.Make("garçon", "où", "naïf"))
	assert.Equal(t, "oeuvre-lhopital", b.Make("Œuvre", "l’hôpital"))
	assert.Equal(t, "poubelle-50l-cuisine", b.Make("poubelle", "50l", "cuisine"))
}

func TestMake_Deterministic(t *testing.T) {
	for _, b := range []Builder{New(ModeLegacy), New(ModeFull)} {
		first := b.Make("Poubelle", "tri sélectif", "3 bacs")
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, b.Make("Poubelle", "tri sélectif", "3 bacs"))
		}
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeLegacy, m)

	m, err = ParseMode(" FULL ")
	require.NoError(t, err)
	assert.Equal(t, ModeFull, m)

	_, err = ParseMode("ascii")
	assert.Error(t, err)
}
