package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rechub/internal/catalog"
	"rechub/internal/logging"
	"rechub/internal/poster"
	"rechub/internal/query"
)

type searchRow struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Rating      string   `json:"rating"`
	Description string   `json:"description"`
	Moods       []string `json:"moods"`
	Poster      string   `json:"poster,omitempty"`
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string
	var sortFlag string
	var jsonOut bool
	var withPosters bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog by title, description, or mood",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := strings.TrimSpace(args[0])
			if q == "" {
				return fmt.Errorf("query must not be blank")
			}

			cat, err := ctx.loadCatalog()
			if err != nil {
				return err
			}

			typeFilter, err := typeFilterFromFlag(typeFlag)
			if err != nil {
				return err
			}
			results := query.Search(cat, query.Params{
				Query: q,
				Type:  typeFilter,
				Sort:  query.ParseSort(sortFlag),
			})

			rows := make([]searchRow, 0, len(results))
			for _, item := range results {
				view := catalog.Display(item)
				rows = append(rows, searchRow{
					Title:       view.Title,
					Type:        view.Type,
					Rating:      view.Rating,
					Description: view.Description,
					Moods:       view.Moods,
				})
			}

			if withPosters {
				err := ctx.withResolver(logging.NewNop(), func(resolver *poster.Resolver) error {
					resolved := resolver.ResolveAll(cmd.Context(), results)
					for i := range rows {
						if i < len(resolved) {
							rows[i].Poster = resolved[i].URL
						}
					}
					return nil
				})
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(struct {
					Query   string      `json:"query"`
					Count   int         `json:"count"`
					Results []searchRow `json:"results"`
				}{Query: q, Count: len(rows), Results: rows})
			}

			fmt.Fprintf(out, "%s Recommendations (%d)\n", q, len(rows))
			if len(rows) == 0 {
				return nil
			}

			headers := []string{"Title", "Type", "Rating", "Moods", "Description"}
			cells := make([][]string, 0, len(rows))
			for _, row := range rows {
				cells = append(cells, []string{
					row.Title,
					row.Type,
					row.Rating,
					strings.Join(row.Moods, ", "),
					row.Description,
				})
			}
			aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft}
			if isTerminal(out) {
				fmt.Fprintln(out, renderTable(headers, cells, aligns))
			} else {
				fmt.Fprintln(out, renderPlainTable(headers, cells))
			}

			if withPosters {
				for _, row := range rows {
					fmt.Fprintf(out, "%s\t%s\n", row.Title, row.Poster)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "Restrict results to one media type (anime, movie, webseries)")
	cmd.Flags().StringVarP(&sortFlag, "sort", "s", "title", "Result order: title or rating")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit results as JSON")
	cmd.Flags().BoolVar(&withPosters, "posters", false, "Resolve poster URLs for each result")
	return cmd
}

func typeFilterFromFlag(value string) (query.TypeFilter, error) {
	if strings.TrimSpace(value) == "" {
		return query.TypeAll, nil
	}
	mediaType, err := mediaTypeFromFlag(value)
	if err != nil {
		return "", err
	}
	return query.TypeFilter(mediaType), nil
}
