package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rechub/internal/logging"
	"rechub/internal/poster"
)

func newPosterCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "poster <title>",
		Short: "Resolve the poster URL for a title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[0])
			if title == "" {
				return fmt.Errorf("title must not be blank")
			}

			mediaType, err := mediaTypeFromFlag(typeFlag)
			if err != nil {
				return err
			}

			return ctx.withResolver(logging.NewNop(), func(resolver *poster.Resolver) error {
				url, err := resolver.Resolve(cmd.Context(), title, mediaType)
				if err != nil {
					return fmt.Errorf("resolve poster: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), url)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "movie", "Media type for the lookup (anime, movie, webseries)")
	return cmd
}
