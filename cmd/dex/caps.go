package main

import (
	"github.com/spf13/cobra"
)

func newCapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "caps",
		Short: "List level caps",
		Long:  "Lists the level cap labels accepted by --cap, lowest ceiling first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(deps *Deps) error {
				renderCaps(cmd.OutOrStdout(), deps.BrowseHandler.HandleCaps())
				return nil
			})
		},
	}
}
