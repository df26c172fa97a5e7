// Package catalog normalizes raw media catalog documents into typed
// anime/movie/web-series collections and derives the mood filter labels.
//
// Raw documents are shape-tolerant: each bucket accepts several case-variant
// key aliases (first present wins), item fields are all optional, and moods
// may be an array or a comma-separated string. Normalization assigns each
// item's media type from its bucket; catalogs are immutable afterwards.
package catalog
