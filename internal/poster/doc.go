// Package poster resolves display images for catalog items.
//
// Resolution checks the persistent cache first, then performs at most one
// external lookup per title (AniList for anime, TMDB for everything else),
// and falls back to a deterministic generated SVG placeholder. Results are
// written through to the cache, which never expires entries.
package poster
