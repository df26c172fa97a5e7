package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"rechub/internal/catalog"
)

// TypeFilter restricts results to one media type, or TypeAll for no restriction.
type TypeFilter string

const TypeAll TypeFilter = "all"

// SortMode orders the result list.
type SortMode string

const (
	// SortTitle orders ascending by title with locale-aware comparison;
	// missing titles sort first. The default.
	SortTitle SortMode = "title"
	// SortRating orders descending by rating; missing ratings count as 0.
	SortRating SortMode = "rating"
)

// Params are the inputs to a search. Query is expected to be non-blank;
// callers validate before invoking. Zero values for Type and Sort mean
// TypeAll and SortTitle.
type Params struct {
	Query string
	Type  TypeFilter
	Sort  SortMode
}

// ParseType maps a user-supplied type selector onto a TypeFilter. Unknown
// values fall back to TypeAll.
func ParseType(value string) TypeFilter {
	switch strings.TrimSpace(value) {
	case string(catalog.TypeAnime):
		return TypeFilter(catalog.TypeAnime)
	case string(catalog.TypeMovie):
		return TypeFilter(catalog.TypeMovie)
	case string(catalog.TypeWebSeries):
		return TypeFilter(catalog.TypeWebSeries)
	default:
		return TypeAll
	}
}

// ParseSort maps a user-supplied sort selector onto a SortMode.
func ParseSort(value string) SortMode {
	if strings.TrimSpace(value) == string(SortRating) {
		return SortRating
	}
	return SortTitle
}

// Search filters and orders the catalog. It is a pure function of its
// inputs: identical inputs yield identical output lists. Zero matches return
// an empty, non-nil slice.
func Search(cat catalog.Catalog, params Params) []catalog.Item {
	if params.Type == "" {
		params.Type = TypeAll
	}
	if params.Sort == "" {
		params.Sort = SortTitle
	}
	needle := strings.ToLower(params.Query)

	results := make([]catalog.Item, 0)
	for _, item := range cat.Items() {
		if params.Type != TypeAll && string(item.Type) != string(params.Type) {
			continue
		}
		if strings.Contains(searchText(item), needle) {
			results = append(results, item)
		}
	}

	switch params.Sort {
	case SortRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	default:
		collator := collate.New(language.Und)
		sort.SliceStable(results, func(i, j int) bool {
			return collator.CompareString(results[i].Title, results[j].Title) < 0
		})
	}
	return results
}

// searchText is the haystack a query is matched against: title, description,
// and moods joined by single spaces, lower-cased. Absent fields contribute
// empty strings.
func searchText(item catalog.Item) string {
	parts := []string{item.Title, item.Description, strings.Join(item.Moods, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}
