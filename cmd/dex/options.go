package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newOptionsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the values each filter can take",
		Long:  "Lists the types, generations, areas, methods and level caps present in the loaded tables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withDeps(func(deps *Deps) error {
				opts, err := deps.BrowseHandler.HandleOptions(ctx)
				if err != nil {
					return err
				}

				if asJSON {
					encoder := json.NewEncoder(cmd.OutOrStdout())
					encoder.SetIndent("", "  ")
					return encoder.Encode(opts)
				}

				renderOptions(cmd.OutOrStdout(), opts)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}
