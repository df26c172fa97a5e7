package catalog

import (
	"encoding/json"
	"strings"
)

// MediaType identifies which catalog bucket an item came from.
type MediaType string

const (
	TypeAnime     MediaType = "Anime"
	TypeMovie     MediaType = "Movie"
	TypeWebSeries MediaType = "Web Series"
)

// MoodList holds an item's mood labels. It decodes from either a JSON array
// of strings or a single comma-separated string; labels are trimmed either way.
type MoodList []string

func (m *MoodList) UnmarshalJSON(data []byte) error {
	var labels []string
	if err := json.Unmarshal(data, &labels); err == nil {
		*m = trimLabels(labels)
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*m = trimLabels(strings.Split(joined, ","))
		return nil
	}
	// Any other shape contributes no moods.
	*m = nil
	return nil
}

func trimLabels(labels []string) MoodList {
	out := make(MoodList, 0, len(labels))
	for _, label := range labels {
		out = append(out, strings.TrimSpace(label))
	}
	return out
}

// Item is a single catalog entry. All fields are best-effort: absent values
// stay zero and are defaulted at display time. Type is assigned during
// normalization from the bucket the item came from, overriding anything in
// the raw document.
type Item struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	Moods       MoodList  `json:"moods"`
	Type        MediaType `json:"type"`
}

// Catalog is the normalized three-bucket collection. Each item belongs to
// exactly one bucket and carries that bucket's media type. Immutable after
// Normalize.
type Catalog struct {
	Anime     []Item
	Movies    []Item
	WebSeries []Item
}

// Raw is a parsed catalog document of unknown shape.
type Raw map[string]json.RawMessage

// Bucket key aliases in precedence order; the first present key wins.
var (
	animeAliases     = []string{"animes", "anime", "Anime"}
	movieAliases     = []string{"movies", "movie", "Movies", "Movie"}
	webSeriesAliases = []string{"webseries", "series", "Series", "Webseries", "WebSeries"}
)

// Normalize produces a Catalog from a raw document. Absent buckets become
// empty slices and malformed buckets are treated as absent; item shape is not
// validated.
func Normalize(raw Raw) Catalog {
	return Catalog{
		Anime:     normalizeBucket(raw, animeAliases, TypeAnime),
		Movies:    normalizeBucket(raw, movieAliases, TypeMovie),
		WebSeries: normalizeBucket(raw, webSeriesAliases, TypeWebSeries),
	}
}

func normalizeBucket(raw Raw, aliases []string, mediaType MediaType) []Item {
	for _, alias := range aliases {
		value, ok := raw[alias]
		if !ok || isJSONNull(value) {
			continue
		}
		var items []Item
		if err := json.Unmarshal(value, &items); err != nil {
			return []Item{}
		}
		for i := range items {
			items[i].Type = mediaType
		}
		return items
	}
	return []Item{}
}

func isJSONNull(value json.RawMessage) bool {
	return strings.TrimSpace(string(value)) == "null"
}

// Items returns the flattened item list: anime, then movies, then web series,
// preserving per-bucket order.
func (c Catalog) Items() []Item {
	out := make([]Item, 0, len(c.Anime)+len(c.Movies)+len(c.WebSeries))
	out = append(out, c.Anime...)
	out = append(out, c.Movies...)
	out = append(out, c.WebSeries...)
	return out
}

// Len returns the total number of items across all buckets.
func (c Catalog) Len() int {
	return len(c.Anime) + len(c.Movies) + len(c.WebSeries)
}
