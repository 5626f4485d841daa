package domain

import "fmt"

// Season identifies a story arc by its kebab-case slug, as used by the
// search service in the `seasons` filter and in episode results.
type Season string

// The full season catalogue, in broadcast order. The service knows
// exactly these slugs; anything else is rejected client-side.
const (
	SeasonAutumnInHieron Season = "autumn-in-hieron"
	SeasonMarielda       Season = "marielda"
	SeasonWinterInHieron Season = "winter-in-hieron"
	SeasonSpringInHieron Season = "spring-in-hieron"
	SeasonCounterweight  Season = "counterweight"
	SeasonTwilightMirage Season = "twilight-mirage"
	SeasonRoadToPartizan Season = "road-to-partizan"
	SeasonPartizan       Season = "partizan"
	SeasonRoadToPalisade Season = "road-to-palisade"
	SeasonPalisade       Season = "palisade"
	SeasonSangfielle     Season = "sangfielle"
	SeasonExtras         Season = "extras"
	SeasonPatreon        Season = "patreon"
	SeasonOther          Season = "unknown-string"
)

// seasonTitles maps slugs to display titles.
var seasonTitles = map[Season]string{
	SeasonAutumnInHieron: "Autumn in Hieron",
	SeasonMarielda:       "Marielda",
	SeasonWinterInHieron: "Winter in Hieron",
	SeasonSpringInHieron: "Spring in Hieron",
	SeasonCounterweight:  "COUNTER/Weight",
	SeasonTwilightMirage: "Twilight Mirage",
	SeasonRoadToPartizan: "Road to PARTIZAN",
	SeasonPartizan:       "PARTIZAN",
	SeasonRoadToPalisade: "Road to Palisade",
	SeasonPalisade:       "PALISADE",
	SeasonSangfielle:     "Sangfielle",
	SeasonExtras:         "Extras",
	SeasonPatreon:        "Patreon",
	SeasonOther:          "Other",
}

// SeasonCatalogue returns the full season catalogue in broadcast order.
// The returned slice is a copy and safe to modify.
func SeasonCatalogue() []Season {
	return []Season{
		SeasonAutumnInHieron,
		SeasonMarielda,
		SeasonWinterInHieron,
		SeasonSpringInHieron,
		SeasonCounterweight,
		SeasonTwilightMirage,
		SeasonRoadToPartizan,
		SeasonPartizan,
		SeasonRoadToPalisade,
		SeasonPalisade,
		SeasonSangfielle,
		SeasonExtras,
		SeasonPatreon,
		SeasonOther,
	}
}

// Title returns the display title for a season, or the slug itself for
// a season outside the catalogue.
func (s Season) Title() string {
	if title, ok := seasonTitles[s]; ok {
		return title
	}
	return string(s)
}

// Valid reports whether the season is part of the catalogue.
func (s Season) Valid() bool {
	_, ok := seasonTitles[s]
	return ok
}

// ParseSeason validates a slug against the catalogue.
func ParseSeason(slug string) (Season, error) {
	s := Season(slug)
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown season %q", ErrInvalidInput, slug)
	}
	return s, nil
}

// ParseSeasons validates a list of slugs against the catalogue.
// An empty input yields an empty selection, meaning "all seasons".
func ParseSeasons(slugs []string) ([]Season, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	seasons := make([]Season, 0, len(slugs))
	for _, slug := range slugs {
		s, err := ParseSeason(slug)
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, s)
	}
	return seasons, nil
}

// SeasonsEqualCatalogue reports whether the selection covers the entire
// catalogue when compared as an unordered set. Ordering and duplicate
// entries do not affect the outcome.
func SeasonsEqualCatalogue(selection []Season) bool {
	distinct := make(map[Season]struct{}, len(selection))
	for _, s := range selection {
		distinct[s] = struct{}{}
	}
	if len(distinct) != len(seasonTitles) {
		return false
	}
	for s := range seasonTitles {
		if _, ok := distinct[s]; !ok {
			return false
		}
	}
	return true
}
