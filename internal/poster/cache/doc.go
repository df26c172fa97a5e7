// Package cache persists resolved poster URLs in a SQLite-backed key-value
// store. Entries have no expiry and are only removed by an explicit Clear.
package cache
