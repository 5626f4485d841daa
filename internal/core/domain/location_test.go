package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationValues(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{
			name: "no season selection",
			loc:  Location{Query: "dragon", Kind: QueryKindPhrase},
			want: "/?kind=phrase&q=dragon",
		},
		{
			name: "single season",
			loc:  Location{Query: "dragon", Kind: QueryKindPhrase, Seasons: []Season{SeasonPalisade}},
			want: "/?kind=phrase&q=dragon&seasons=palisade",
		},
		{
			name: "advanced kind",
			loc:  Location{Query: `"any sound"`, Kind: QueryKindAdvanced},
			want: "/?kind=advanced&q=%22any+sound%22",
		},
		{
			name: "kind defaults to phrase",
			loc:  Location{Query: "dragon"},
			want: "/?kind=phrase&q=dragon",
		},
		{
			name: "full catalogue collapses to no parameter",
			loc:  Location{Query: "dragon", Kind: QueryKindPhrase, Seasons: SeasonCatalogue()},
			want: "/?kind=phrase&q=dragon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.String())
		})
	}
}

func TestLocationValuesOrderIndependence(t *testing.T) {
	// A reshuffled, duplicate-laden catalogue still counts as "everything".
	selection := append([]Season{SeasonPalisade, SeasonPalisade}, SeasonCatalogue()...)
	loc := Location{Query: "dragon", Kind: QueryKindPhrase, Seasons: selection}

	assert.False(t, loc.Values().Has("seasons"))
}

func TestLocationMerge(t *testing.T) {
	base := Location{
		Query:   "dragon",
		Kind:    QueryKindAdvanced,
		Seasons: []Season{SeasonMarielda},
	}

	t.Run("absent parameters keep in-memory values", func(t *testing.T) {
		merged := base.Merge(url.Values{"q": {"wizard"}})
		assert.Equal(t, "wizard", merged.Query)
		assert.Equal(t, QueryKindAdvanced, merged.Kind)
		assert.Equal(t, []Season{SeasonMarielda}, merged.Seasons)
	})

	t.Run("present parameters overwrite", func(t *testing.T) {
		merged := base.Merge(url.Values{
			"kind":    {"phrase"},
			"seasons": {"palisade,sangfielle"},
		})
		assert.Equal(t, "dragon", merged.Query)
		assert.Equal(t, QueryKindPhrase, merged.Kind)
		assert.Equal(t, []Season{SeasonPalisade, SeasonSangfielle}, merged.Seasons)
	})

	t.Run("empty seasons parameter clears the selection", func(t *testing.T) {
		merged := base.Merge(url.Values{"seasons": {""}})
		assert.Empty(t, merged.Seasons)
	})
}

func TestLocationFromValues(t *testing.T) {
	loc := LocationFromValues(url.Values{"q": {"dragon"}})
	assert.Equal(t, "dragon", loc.Query)
	assert.Equal(t, QueryKindPhrase, loc.Kind)
	assert.Empty(t, loc.Seasons)
}

func TestLocationSearchQuery(t *testing.T) {
	loc := Location{Query: "dragon", Seasons: []Season{SeasonPartizan}}
	q := loc.SearchQuery()

	require.Equal(t, "dragon", q.Text)
	assert.Equal(t, QueryKindPhrase, q.Kind)
	assert.Equal(t, []Season{SeasonPartizan}, q.Seasons)
	assert.True(t, q.Highlight, "highlight is always requested")
	assert.Empty(t, q.Page)
}
