package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"rechub/internal/catalog"
	"rechub/internal/config"
)

// SampleDocument is a small catalog document covering all three buckets and
// both mood shapes.
const SampleDocument = `{
	"animes": [
		{"title": "Naruto", "description": "A young ninja seeks recognition", "rating": 8.5, "moods": ["action", "adventure"]},
		{"title": "Mushishi", "description": "Quiet wandering", "rating": 8.7, "moods": "calm, mystery"}
	],
	"movies": [
		{"title": "Heat", "Description": "Crime action epic", "rating": 8.3, "moods": "action, crime"}
	],
	"webseries": [
		{"title": "Dark", "description": "Time travel knots", "rating": 8.7, "moods": ["mystery"]}
	]
}`

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataFile = filepath.Join(base, "data.json")
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.Bind = "127.0.0.1:0"
	return &cfg
}

// WriteCatalogFile writes the sample document (or the supplied body) to the
// config's data file path and returns that path.
func WriteCatalogFile(t testing.TB, cfg *config.Config, body string) string {
	t.Helper()

	if body == "" {
		body = SampleDocument
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Paths.DataFile), 0o755); err != nil {
		t.Fatalf("mkdir data dir: %v", err)
	}
	if err := os.WriteFile(cfg.Paths.DataFile, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}
	return cfg.Paths.DataFile
}

// SampleCatalog loads the sample document into a normalized catalog.
func SampleCatalog(t testing.TB) catalog.Catalog {
	t.Helper()

	cfg := NewConfig(t)
	path := WriteCatalogFile(t, cfg, "")
	cat, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("load sample catalog: %v", err)
	}
	return cat
}
