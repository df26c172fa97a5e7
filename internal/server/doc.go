// Package server exposes the recommendation hub over HTTP: the search form
// with mood quick-filters, the rendered results grid, the upload fallback
// when no catalog is available, and JSON equivalents under /api.
package server
