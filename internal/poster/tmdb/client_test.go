package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"rechub/internal/poster/tmdb"
)

const imageBase = "https://image.tmdb.org/t/p/w500"

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := tmdb.New("", "https://example.com", imageBase, "en-US"); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestPosterURLComposesImagePath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/multi" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "key" {
			t.Fatalf("expected api_key query parameter, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("query") != "Heat" {
			t.Fatalf("unexpected query %q", r.URL.Query().Get("query"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":1,"title":"Heat","poster_path":"/abc.jpg"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, imageBase, "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	url, err := client.PosterURL(context.Background(), "Heat")
	if err != nil {
		t.Fatalf("PosterURL returned error: %v", err)
	}
	if url != imageBase+"/abc.jpg" {
		t.Fatalf("unexpected poster url %q", url)
	}
}

func TestPosterURLNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, imageBase, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	url, err := client.PosterURL(context.Background(), "Unknown")
	if err != nil {
		t.Fatalf("PosterURL returned error: %v", err)
	}
	if url != "" {
		t.Fatalf("expected empty url, got %q", url)
	}
}

func TestPosterURLMissingPosterPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":2,"name":"Dark"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, imageBase, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	url, err := client.PosterURL(context.Background(), "Dark")
	if err != nil {
		t.Fatalf("PosterURL returned error: %v", err)
	}
	if url != "" {
		t.Fatalf("expected empty url when poster_path absent, got %q", url)
	}
}

func TestSearchMultiHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, imageBase, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := client.SearchMulti(context.Background(), "fail"); err == nil {
		t.Fatal("expected error when TMDB returns non-200")
	}
}

func TestSearchMultiEmptyQuery(t *testing.T) {
	client, err := tmdb.New("key", "https://example.com", imageBase, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMulti(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank query")
	}
}
