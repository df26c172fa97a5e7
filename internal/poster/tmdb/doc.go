// Package tmdb is a client for The Movie Database multi-search API, used to
// look up movie and web-series poster images by title.
package tmdb
