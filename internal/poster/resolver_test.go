package poster_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"rechub/internal/catalog"
	"rechub/internal/poster"
	"rechub/internal/poster/cache"
)

type stubAnime struct {
	url   string
	err   error
	calls int
}

func (s *stubAnime) CoverImage(ctx context.Context, title string) (string, error) {
	s.calls++
	return s.url, s.err
}

type stubMedia struct {
	url   string
	err   error
	calls int
}

func (s *stubMedia) PosterURL(ctx context.Context, title string) (string, error) {
	s.calls++
	return s.url, s.err
}

func newStore(t *testing.T) *cache.Store {
	t.Helper()
	store, err := cache.Open(filepath.Join(t.TempDir(), "posters.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestResolveUsesAnimeLookupForAnime(t *testing.T) {
	anime := &stubAnime{url: "https://img.example/a.jpg"}
	media := &stubMedia{url: "https://img.example/m.jpg"}
	resolver := poster.NewResolver(newStore(t), anime, media, nil)

	url, err := resolver.Resolve(context.Background(), "Naruto", catalog.TypeAnime)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if url != "https://img.example/a.jpg" {
		t.Fatalf("unexpected url %q", url)
	}
	if anime.calls != 1 || media.calls != 0 {
		t.Fatalf("wrong lookup used: anime=%d media=%d", anime.calls, media.calls)
	}
}

func TestResolveUsesMediaLookupForOtherTypes(t *testing.T) {
	anime := &stubAnime{url: "https://img.example/a.jpg"}
	media := &stubMedia{url: "https://img.example/m.jpg"}
	resolver := poster.NewResolver(newStore(t), anime, media, nil)

	for _, mediaType := range []catalog.MediaType{catalog.TypeMovie, catalog.TypeWebSeries} {
		if _, err := resolver.Resolve(context.Background(), "T-"+string(mediaType), mediaType); err != nil {
			t.Fatalf("Resolve returned error: %v", err)
		}
	}
	if anime.calls != 0 || media.calls != 2 {
		t.Fatalf("wrong lookups: anime=%d media=%d", anime.calls, media.calls)
	}
}

func TestResolveCacheIdempotent(t *testing.T) {
	anime := &stubAnime{url: "https://img.example/a.jpg"}
	resolver := poster.NewResolver(newStore(t), anime, &stubMedia{}, nil)
	ctx := context.Background()

	first, err := resolver.Resolve(ctx, "Naruto", catalog.TypeAnime)
	if err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	second, err := resolver.Resolve(ctx, "Naruto", catalog.TypeAnime)
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical cached value, got %q then %q", first, second)
	}
	if anime.calls != 1 {
		t.Fatalf("expected exactly one external lookup, got %d", anime.calls)
	}
}

func TestResolveLookupFailureFallsBackToPlaceholder(t *testing.T) {
	media := &stubMedia{err: errors.New("boom")}
	resolver := poster.NewResolver(newStore(t), &stubAnime{}, media, nil)
	ctx := context.Background()

	url, err := resolver.Resolve(ctx, "X", catalog.TypeMovie)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !strings.HasPrefix(url, poster.DataURLPrefix) {
		t.Fatalf("expected placeholder, got %q", url)
	}

	// The placeholder is cached too; no second lookup happens.
	again, err := resolver.Resolve(ctx, "X", catalog.TypeMovie)
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if again != url {
		t.Fatalf("expected identical cached placeholder, got %q vs %q", again, url)
	}
	if media.calls != 1 {
		t.Fatalf("expected one lookup despite failure, got %d", media.calls)
	}
}

func TestResolveEmptyLookupResultFallsBack(t *testing.T) {
	resolver := poster.NewResolver(newStore(t), &stubAnime{url: ""}, &stubMedia{}, nil)
	url, err := resolver.Resolve(context.Background(), "Obscure", catalog.TypeAnime)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !strings.HasPrefix(url, poster.DataURLPrefix) {
		t.Fatalf("expected placeholder for empty lookup, got %q", url)
	}
}

func TestResolveNilLookupsResolveToPlaceholder(t *testing.T) {
	resolver := poster.NewResolver(newStore(t), nil, nil, nil)
	url, err := resolver.Resolve(context.Background(), "Anything", catalog.TypeMovie)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !strings.HasPrefix(url, poster.DataURLPrefix) {
		t.Fatalf("expected placeholder, got %q", url)
	}
}

func TestPlaceholderDeterministic(t *testing.T) {
	a := poster.Placeholder("Naruto", catalog.TypeAnime)
	b := poster.Placeholder("Naruto", catalog.TypeAnime)
	if a != b {
		t.Fatal("placeholder must be deterministic")
	}
	if !strings.HasPrefix(a, poster.DataURLPrefix) {
		t.Fatalf("missing data URL prefix: %q", a)
	}
	if !strings.Contains(a, "Naruto") || !strings.Contains(a, "Anime") {
		t.Fatalf("placeholder should embed title and type: %q", a)
	}
}

func TestPlaceholderColorCyclesWithTitleLength(t *testing.T) {
	// Lengths 1 and 5 map to the same palette slot; length 2 differs.
	same := []string{"a", "abcde"}
	if colorOf(t, same[0]) != colorOf(t, same[1]) {
		t.Fatal("titles with lengths equal mod palette size should share a color")
	}
	if colorOf(t, "a") == colorOf(t, "ab") {
		t.Fatal("adjacent title lengths should pick different palette colors")
	}
}

func colorOf(t *testing.T, title string) string {
	t.Helper()
	data := poster.Placeholder(title, catalog.TypeMovie)
	idx := strings.Index(data, "fill='%23")
	if idx < 0 {
		t.Fatalf("no fill color in placeholder %q", data)
	}
	return data[idx : idx+15]
}

func TestCacheKeyLiteral(t *testing.T) {
	if poster.CacheKey("Naruto") != "poster::Naruto" {
		t.Fatalf("unexpected key %q", poster.CacheKey("Naruto"))
	}
	if poster.CacheKey("Naruto") == poster.CacheKey("naruto") {
		t.Fatal("case-variant titles must produce distinct keys")
	}
}
