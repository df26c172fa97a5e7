package poster

import (
	"context"
	"log/slog"

	"rechub/internal/catalog"
	"rechub/internal/logging"
	"rechub/internal/poster/cache"
)

// CacheKeyPrefix is prepended to the literal title to form a cache key.
const CacheKeyPrefix = "poster::"

// CacheKey derives the cache key for a title. The title is used verbatim, so
// keys collide only on exact title equality; case variants stay distinct.
func CacheKey(title string) string {
	return CacheKeyPrefix + title
}

// AnimeLookup finds a cover image URL for an anime title.
type AnimeLookup interface {
	CoverImage(ctx context.Context, title string) (string, error)
}

// MediaLookup finds a poster image URL for a movie or web-series title.
type MediaLookup interface {
	PosterURL(ctx context.Context, title string) (string, error)
}

// Resolver materializes a display image URL per title: cache, then a single
// external lookup keyed by media type, then a generated placeholder. Every
// resolution is written through to the cache, so a title triggers at most one
// external lookup over the cache's lifetime.
type Resolver struct {
	store  *cache.Store
	anime  AnimeLookup
	media  MediaLookup
	logger *slog.Logger
}

// NewResolver creates a Resolver. Either lookup may be nil, in which case
// titles of that kind resolve straight to placeholders.
func NewResolver(store *cache.Store, anime AnimeLookup, media MediaLookup, logger *slog.Logger) *Resolver {
	return &Resolver{
		store:  store,
		anime:  anime,
		media:  media,
		logger: logging.NewComponentLogger(logger, "poster"),
	}
}

// Resolve returns the display image URL for a title. Lookup failures of any
// kind degrade silently to the placeholder; only cache I/O failures surface
// as errors.
func (r *Resolver) Resolve(ctx context.Context, title string, mediaType catalog.MediaType) (string, error) {
	key := CacheKey(title)

	if url, found, err := r.store.Get(ctx, key); err != nil {
		return "", err
	} else if found {
		return url, nil
	}

	url := r.lookup(ctx, title, mediaType)
	if url == "" {
		url = Placeholder(title, mediaType)
	}

	if err := r.store.Put(ctx, key, url); err != nil {
		return "", err
	}
	return url, nil
}

// lookup performs the single external attempt for an uncached title. A
// transport error, non-success response, or absent image field all come back
// as "", uniformly treated as not found.
func (r *Resolver) lookup(ctx context.Context, title string, mediaType catalog.MediaType) string {
	var (
		url string
		err error
	)
	switch {
	case mediaType == catalog.TypeAnime && r.anime != nil:
		url, err = r.anime.CoverImage(ctx, title)
	case mediaType != catalog.TypeAnime && r.media != nil:
		url, err = r.media.PosterURL(ctx, title)
	default:
		return ""
	}
	if err != nil {
		r.logger.Debug("poster lookup failed",
			logging.String("title", title),
			logging.String("media_type", string(mediaType)),
			logging.Error(err))
		return ""
	}
	return url
}

// Resolved pairs an item with its display image URL.
type Resolved struct {
	Item catalog.Item
	URL  string
}

// ResolveAll resolves posters for a result list strictly sequentially: the
// next item's lookup does not begin until the previous one finished. A cache
// failure downgrades that item to an uncached placeholder rather than
// aborting the page.
func (r *Resolver) ResolveAll(ctx context.Context, items []catalog.Item) []Resolved {
	out := make([]Resolved, 0, len(items))
	for _, item := range items {
		view := catalog.Display(item)
		url, err := r.Resolve(ctx, view.Title, item.Type)
		if err != nil {
			r.logger.Warn("poster cache unavailable",
				logging.String("title", view.Title),
				logging.Error(err))
			url = Placeholder(view.Title, item.Type)
		}
		out = append(out, Resolved{Item: item, URL: url})
	}
	return out
}
