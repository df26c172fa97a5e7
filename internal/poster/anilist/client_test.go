package anilist_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rechub/internal/poster/anilist"
)

func TestNewRequiresURL(t *testing.T) {
	if _, err := anilist.New("  "); err == nil {
		t.Fatal("expected error when url missing")
	}
}

func TestCoverImageSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		var payload struct {
			Query     string            `json:"query"`
			Variables map[string]string `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload.Variables["search"] != "Naruto" {
			t.Fatalf("unexpected search variable %q", payload.Variables["search"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"Media":{"coverImage":{"large":"https://img.example/naruto.jpg"}}}}`))
	}))
	t.Cleanup(server.Close)

	client, err := anilist.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	url, err := client.CoverImage(context.Background(), "Naruto")
	if err != nil {
		t.Fatalf("CoverImage returned error: %v", err)
	}
	if url != "https://img.example/naruto.jpg" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestCoverImageNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"Media":null}}`))
	}))
	t.Cleanup(server.Close)

	client, err := anilist.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	url, err := client.CoverImage(context.Background(), "Unknown")
	if err != nil {
		t.Fatalf("CoverImage returned error: %v", err)
	}
	if url != "" {
		t.Fatalf("expected empty url for no match, got %q", url)
	}
}

func TestCoverImageHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	client, err := anilist.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := client.CoverImage(context.Background(), "Naruto"); err == nil {
		t.Fatal("expected error when AniList returns non-200")
	}
}

func TestCoverImageEmptyTitle(t *testing.T) {
	client, err := anilist.New("https://example.com")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.CoverImage(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank title")
	}
}
