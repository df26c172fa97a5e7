package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"rechub/internal/config"
)

func TestLoadDefaultsWhenNoFilePresent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("TMDB_API_KEY", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "rechub", "data.json")
	if cfg.Paths.DataFile != wantData {
		t.Fatalf("unexpected data file: got %q want %q", cfg.Paths.DataFile, wantData)
	}
	if cfg.Paths.CacheDir != filepath.Join(tempHome, ".cache", "rechub") {
		t.Fatalf("unexpected cache dir: %q", cfg.Paths.CacheDir)
	}
	if cfg.Paths.Bind != "127.0.0.1:7680" {
		t.Fatalf("unexpected bind: %q", cfg.Paths.Bind)
	}
	if cfg.AniList.URL != "https://graphql.anilist.co" {
		t.Fatalf("unexpected anilist url: %q", cfg.AniList.URL)
	}
	if cfg.TMDB.ImageBaseURL != "https://image.tmdb.org/t/p/w500" {
		t.Fatalf("unexpected image base url: %q", cfg.TMDB.ImageBaseURL)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadReadsFileAndEnvKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "env-key")
	dir := t.TempDir()
	path := filepath.Join(dir, "rechub.toml")
	body := `
[paths]
data_file = "` + filepath.Join(dir, "catalog.json") + `"
cache_dir = "` + filepath.Join(dir, "cache") + `"
bind = "127.0.0.1:0"

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %s, got %s (exists=%v)", path, resolved, exists)
	}
	if cfg.TMDB.APIKey != "env-key" {
		t.Fatalf("expected TMDB key from env, got %q", cfg.TMDB.APIKey)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}
	if cfg.CacheDBPath() != filepath.Join(dir, "cache", "posters.db") {
		t.Fatalf("unexpected cache db path: %q", cfg.CacheDBPath())
	}
}

func TestValidateRejectsBadBind(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.Bind = "not-a-bind"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid bind address")
	}
}

func TestValidateRejectsRelativeURL(t *testing.T) {
	cfg := config.Default()
	cfg.AniList.URL = "graphql.anilist.co"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for URL without scheme")
	}
}

func TestCreateSampleWritesParseableConfig(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	if _, _, exists, err := config.Load(target); err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	} else if !exists {
		t.Fatal("expected sample config to exist")
	}
}
