package catalog

import "strconv"

// DescriptionLimit is the rune count at which card descriptions are cut.
const DescriptionLimit = 200

// View is a fully defaulted, render-ready projection of an Item. All field
// defaulting lives here so rendering and CLI output never re-implement it.
type View struct {
	Title       string
	Type        string
	Rating      string
	Description string
	Moods       []string
}

// Display materializes the view record for an item: missing titles become
// "Untitled", a zero rating renders as "N/A", and the description is
// truncated to DescriptionLimit runes with a trailing ellipsis.
func Display(item Item) View {
	title := item.Title
	if title == "" {
		title = "Untitled"
	}
	rating := "N/A"
	if item.Rating != 0 {
		rating = strconv.FormatFloat(item.Rating, 'f', -1, 64)
	}
	return View{
		Title:       title,
		Type:        string(item.Type),
		Rating:      rating,
		Description: truncate(item.Description, DescriptionLimit),
		Moods:       append([]string(nil), item.Moods...),
	}
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) > limit {
		runes = runes[:limit]
	}
	return string(runes) + "..."
}
