package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newMoodsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "moods",
		Short: "List the distinct mood labels in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := ctx.loadCatalog()
			if err != nil {
				return err
			}

			moods := cat.Moods()
			out := cmd.OutOrStdout()
			if jsonOut {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(struct {
					Moods []string `json:"moods"`
				}{Moods: moods})
			}
			for _, mood := range moods {
				fmt.Fprintln(out, mood)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit moods as JSON")
	return cmd
}
