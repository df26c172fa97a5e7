package server

import (
	"sync"

	"rechub/internal/catalog"
)

// Library holds the currently loaded catalog. The catalog value itself is
// immutable; the holder exists only because an upload can replace it while
// the server runs.
type Library struct {
	mu     sync.RWMutex
	cat    catalog.Catalog
	loaded bool
}

// NewLibrary returns an empty, unloaded library.
func NewLibrary() *Library {
	return &Library{}
}

// Replace swaps in a new catalog and marks the library loaded.
func (l *Library) Replace(cat catalog.Catalog) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cat = cat
	l.loaded = true
}

// Snapshot returns the current catalog and whether one has been loaded.
func (l *Library) Snapshot() (catalog.Catalog, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cat, l.loaded
}
