package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeason(t *testing.T) {
	t.Run("known slug", func(t *testing.T) {
		s, err := ParseSeason("palisade")
		require.NoError(t, err)
		assert.Equal(t, SeasonPalisade, s)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := ParseSeason("hieron-but-wrong")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestParseSeasons(t *testing.T) {
	t.Run("empty means all seasons", func(t *testing.T) {
		seasons, err := ParseSeasons(nil)
		require.NoError(t, err)
		assert.Empty(t, seasons)
	})

	t.Run("valid slugs", func(t *testing.T) {
		seasons, err := ParseSeasons([]string{"marielda", "sangfielle"})
		require.NoError(t, err)
		assert.Equal(t, []Season{SeasonMarielda, SeasonSangfielle}, seasons)
	})

	t.Run("one bad slug fails the lot", func(t *testing.T) {
		_, err := ParseSeasons([]string{"marielda", "season-of-typos"})
		require.Error(t, err)
	})
}

func TestSeasonsEqualCatalogue(t *testing.T) {
	catalogue := SeasonCatalogue()

	tests := []struct {
		name      string
		selection []Season
		want      bool
	}{
		{
			name:      "empty selection",
			selection: nil,
			want:      false,
		},
		{
			name:      "partial selection",
			selection: []Season{SeasonPalisade, SeasonMarielda},
			want:      false,
		},
		{
			name:      "full catalogue in order",
			selection: catalogue,
			want:      true,
		},
		{
			name: "full catalogue reversed",
			selection: func() []Season {
				reversed := make([]Season, len(catalogue))
				for i, s := range catalogue {
					reversed[len(catalogue)-1-i] = s
				}
				return reversed
			}(),
			want: true,
		},
		{
			name:      "full catalogue with duplicates",
			selection: append(append([]Season(nil), catalogue...), SeasonPalisade, SeasonPalisade),
			want:      true,
		},
		{
			name:      "duplicates hiding a missing season",
			selection: append(append([]Season(nil), catalogue[:len(catalogue)-1]...), SeasonPalisade),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeasonsEqualCatalogue(tt.selection))
		})
	}
}

func TestSeasonTitle(t *testing.T) {
	assert.Equal(t, "Twilight Mirage", SeasonTwilightMirage.Title())
	assert.Equal(t, "not-a-season", Season("not-a-season").Title())
}
