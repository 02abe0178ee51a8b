package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_OrderAndLookup(t *testing.T) {
	tbl := NewTable("t", Term{"b", "B"}, Term{"a", "A"}, Term{"c", "C"})

	assert.Equal(t, []string{"b", "a", "c"}, tbl.Codes())
	assert.Equal(t, 3, tbl.Len())

	label, ok := tbl.Label("a")
	require.True(t, ok)
	assert.Equal(t, "A", label)

	_, ok = tbl.Label("z")
	assert.False(t, ok)
}

func TestTable_DuplicateCodePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewTable("dup", Term{"a", "A"}, Term{"a", "A2"})
	})
}

func TestTable_SubsetKeepsTableOrder(t *testing.T) {
	sub := Usages.Subset("exterieur", "cuisine", "garage")
	assert.Equal(t, []string{"cuisine", "garage", "exterieur"}, sub.Codes())

	assert.Panics(t, func() { Usages.Subset("nowhere") })
}

func TestTables_Labels(t *testing.T) {
	cases := []struct {
		table *Table
		code  string
		want  string
	}{
		{Volumes, "50l", "50L"},
		{Volumes, "1100l", "1100L"},
		{BagVolumes, "35l", "35L"},
		{Cities, "saint-etienne", "Saint Etienne"},
		{Cities, "aix-en-provence", "Aix En Provence"},
		{Cities, "paris", "Paris"},
		{Usages, "hotel", "hôtel"},
		{Functions, "electronique", "DEEE"},
	}
	for _, tc := range cases {
		t.Run(tc.table.Name()+"/"+tc.code, func(t *testing.T) {
			got, ok := tc.table.Label(tc.code)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTables_Sizes(t *testing.T) {
	assert.Equal(t, 21, Usages.Len())
	assert.Equal(t, 27, Volumes.Len())
	assert.Equal(t, 6, ComparisonVolumes.Len())
	assert.Equal(t, 5, SortingUsages.Len())
	assert.Equal(t, 4, BrandUsages.Len())
	assert.Equal(t, 36, Cities.Len())
	assert.Equal(t, 17, BagVolumes.Len())
}
