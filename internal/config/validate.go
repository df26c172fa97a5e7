package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable. A missing TMDB API key is
// allowed: poster lookups degrade to generated placeholders without one.
func (c *Config) Validate() error {
	if err := c.validateBind(); err != nil {
		return err
	}
	if err := validateURL("anilist.url", c.AniList.URL); err != nil {
		return err
	}
	if err := validateURL("tmdb.base_url", c.TMDB.BaseURL); err != nil {
		return err
	}
	if err := validateURL("tmdb.image_base_url", c.TMDB.ImageBaseURL); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateBind() error {
	if _, _, err := net.SplitHostPort(c.Paths.Bind); err != nil {
		return fmt.Errorf("paths.bind must be host:port: %w", err)
	}
	return nil
}

func validateURL(field, value string) error {
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if !strings.HasPrefix(parsed.Scheme, "http") || parsed.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL", field)
	}
	return nil
}
