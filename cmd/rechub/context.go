package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"rechub/internal/catalog"
	"rechub/internal/config"
	"rechub/internal/poster"
	"rechub/internal/poster/anilist"
	"rechub/internal/poster/cache"
	"rechub/internal/poster/tmdb"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) loadCatalog() (catalog.Catalog, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return catalog.Catalog{}, err
	}
	cat, err := catalog.Load(cfg.Paths.DataFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return catalog.Catalog{}, fmt.Errorf("no catalog at %s; set data_file in the config or upload one via `rechub serve`", cfg.Paths.DataFile)
		}
		return catalog.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func (c *commandContext) withStore(fn func(*cache.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := cache.Open(cfg.CacheDBPath())
	if err != nil {
		return fmt.Errorf("open poster cache: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func (c *commandContext) withResolver(logger *slog.Logger, fn func(*poster.Resolver) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	return c.withStore(func(store *cache.Store) error {
		resolver, err := newResolver(cfg, store, logger)
		if err != nil {
			return err
		}
		return fn(resolver)
	})
}

// newResolver assembles poster lookups from config. A blank TMDB API key
// disables the movie and web-series lookup; those titles resolve to
// placeholders.
func newResolver(cfg *config.Config, store *cache.Store, logger *slog.Logger) (*poster.Resolver, error) {
	animeClient, err := anilist.New(cfg.AniList.URL, anilist.WithHTTPClient(&http.Client{
		Timeout: time.Duration(cfg.AniList.TimeoutSeconds) * time.Second,
	}))
	if err != nil {
		return nil, fmt.Errorf("build anilist client: %w", err)
	}

	var media poster.MediaLookup
	if cfg.TMDB.APIKey != "" {
		mediaClient, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.ImageBaseURL, cfg.TMDB.Language, tmdb.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.TMDB.TimeoutSeconds) * time.Second,
		}))
		if err != nil {
			return nil, fmt.Errorf("build tmdb client: %w", err)
		}
		media = mediaClient
	}

	return poster.NewResolver(store, animeClient, media, logger), nil
}

func mediaTypeFromFlag(value string) (catalog.MediaType, error) {
	switch strings.TrimSpace(value) {
	case "", "movie", "Movie":
		return catalog.TypeMovie, nil
	case "anime", "Anime":
		return catalog.TypeAnime, nil
	case "webseries", "series", "Web Series":
		return catalog.TypeWebSeries, nil
	default:
		return "", fmt.Errorf("unknown media type %q (anime, movie, webseries)", value)
	}
}
