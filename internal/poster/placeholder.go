package poster

import (
	"fmt"
	"html"
	"net/url"

	"rechub/internal/catalog"
)

// DataURLPrefix marks a generated placeholder rather than an external image.
const DataURLPrefix = "data:image/svg+xml;utf8,"

// placeholderPalette holds the background fills a placeholder cycles through.
var placeholderPalette = [...]string{"#7c3aed", "#06b6d4", "#f59e0b", "#ef4444"}

// Placeholder synthesizes a deterministic inline SVG poster for a title. The
// background color is picked from a fixed palette by the title's rune count,
// with the title and media type rendered as text overlays. The same inputs
// always produce the same output.
func Placeholder(title string, mediaType catalog.MediaType) string {
	color := placeholderPalette[len([]rune(title))%len(placeholderPalette)]
	svg := fmt.Sprintf(
		`<svg xmlns='http://www.w3.org/2000/svg' width='300' height='450'>`+
			`<rect width='100%%' height='100%%' rx='16' fill='%s'/>`+
			`<text x='20' y='230' fill='white' font-size='22' font-family='Arial'>%s</text>`+
			`<text x='20' y='260' fill='white' font-size='14'>%s</text>`+
			`</svg>`,
		color, html.EscapeString(title), html.EscapeString(string(mediaType)))
	return DataURLPrefix + url.PathEscape(svg)
}
