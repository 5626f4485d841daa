package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryKind(t *testing.T) {
	tests := []struct {
		input   string
		want    QueryKind
		wantErr bool
	}{
		{input: "", want: QueryKindPhrase},
		{input: "phrase", want: QueryKindPhrase},
		{input: "advanced", want: QueryKindAdvanced},
		{input: "Phrase", wantErr: true},
		{input: "regex", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := ParseQueryKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestSearchQueryValues(t *testing.T) {
	t.Run("base request", func(t *testing.T) {
		q := SearchQuery{Text: "dragon", Kind: QueryKindPhrase, Highlight: true}
		v := q.Values()

		assert.Equal(t, "dragon", v.Get("query"))
		assert.Equal(t, "phrase", v.Get("kind"))
		assert.Equal(t, "true", v.Get("highlight"))
		assert.True(t, v.Has("seasons"))
		assert.Equal(t, "", v.Get("seasons"), "no selection serialises as an empty string")
		assert.False(t, v.Has("page"))
		assert.False(t, v.Has("page_size"))
	})

	t.Run("seasons are comma-joined", func(t *testing.T) {
		q := SearchQuery{Text: "dragon", Seasons: []Season{SeasonMarielda, SeasonPalisade}}
		assert.Equal(t, "marielda,palisade", q.Values().Get("seasons"))
	})

	t.Run("continuation includes the page token", func(t *testing.T) {
		q := SearchQuery{Text: "dragon"}.Continuation("p2")
		assert.Equal(t, "p2", q.Values().Get("page"))
	})

	t.Run("page size when set", func(t *testing.T) {
		q := SearchQuery{Text: "dragon", PageSize: 25}
		assert.Equal(t, "25", q.Values().Get("page_size"))
	})
}

func TestSearchQueryLocation(t *testing.T) {
	q := SearchQuery{
		Text:    "dragon",
		Kind:    QueryKindAdvanced,
		Seasons: []Season{SeasonSangfielle},
		Page:    "p3",
	}
	loc := q.Location()

	assert.Equal(t, "dragon", loc.Query)
	assert.Equal(t, QueryKindAdvanced, loc.Kind)
	assert.Equal(t, []Season{SeasonSangfielle}, loc.Seasons)
	// Page state never leaks into the address.
	assert.NotContains(t, loc.String(), "p3")
}
