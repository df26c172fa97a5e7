package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const coverImageQuery = `query ($search: String) { Media(search: $search, type: ANIME) { coverImage { large } } }`

// Client provides access to the AniList GraphQL API for cover image lookups.
type Client struct {
	url        string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates an AniList client.
func New(url string, opts ...Option) (*Client, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("anilist url required")
	}
	client := &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

type request struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type response struct {
	Data struct {
		Media *struct {
			CoverImage struct {
				Large string `json:"large"`
			} `json:"coverImage"`
		} `json:"Media"`
	} `json:"data"`
}

// CoverImage searches AniList for the given title and returns the large cover
// image URL of the best match, or an empty string when AniList has no image.
func (c *Client) CoverImage(ctx context.Context, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", errors.New("title must not be empty")
	}

	body, err := json.Marshal(request{
		Query:     coverImageQuery,
		Variables: map[string]string{"search": title},
	})
	if err != nil {
		return "", fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anilist search returned %d", resp.StatusCode)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode anilist response: %w", err)
	}
	if payload.Data.Media == nil {
		return "", nil
	}
	return payload.Data.Media.CoverImage.Large, nil
}
