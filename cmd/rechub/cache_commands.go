package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rechub/internal/poster"
	"rechub/internal/poster/cache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the poster cache",
	}

	cacheCmd.AddCommand(newCacheShowCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCacheShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List cached poster entries, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ctx.withStore(func(store *cache.Store) error {
				entries, err := store.Entries(cmd.Context())
				if err != nil {
					return fmt.Errorf("read cache: %w", err)
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "Poster cache is empty")
					return nil
				}

				headers := []string{"Title", "Cached", "URL"}
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{
						strings.TrimPrefix(entry.Key, poster.CacheKeyPrefix),
						entry.CachedAt.Format("2006-01-02 15:04"),
						summarizeURL(entry.URL),
					})
				}
				if isTerminal(out) {
					fmt.Fprintln(out, renderTable(headers, rows, nil))
				} else {
					fmt.Fprintln(out, renderPlainTable(headers, rows))
				}
				fmt.Fprintf(out, "%d entries in %s\n", len(entries), store.Path())
				return nil
			})
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached poster entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ctx.withStore(func(store *cache.Store) error {
				before, err := store.Len(cmd.Context())
				if err != nil {
					return fmt.Errorf("read cache: %w", err)
				}
				if err := store.Clear(cmd.Context()); err != nil {
					return fmt.Errorf("clear cache: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", before)
				return nil
			})
		},
	}
}

// summarizeURL keeps table rows readable: inline SVG data URLs collapse to a
// marker, remote URLs print as-is.
func summarizeURL(url string) string {
	if strings.HasPrefix(url, poster.DataURLPrefix) {
		return "(generated placeholder)"
	}
	return url
}
