// Package query filters and orders a normalized catalog by free-text query,
// media type, and sort mode.
package query
