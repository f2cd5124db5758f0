package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/dexbrowse/internal/domain/services"
)

func newBrowseCmd() *cobra.Command {
	var (
		filters filterFlags
		group   bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Filter both tables and show the cross-referenced result",
		Long: `Filters the Pokémon table and the location table, then keeps only the
Pokémon found in some remaining location and the locations of some
remaining Pokémon.

Example:
  dex browse --type1 Water --method "Surfing,Old Rod" --cap "Pre Roxanne (Cap 15)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := viewBoth
			if group {
				view = viewGroups
			}
			return runBrowse(cmd, &filters, view)
		},
	}

	filters.register(cmd)
	cmd.Flags().BoolVar(&group, "group", false, "Group locations under each Pokémon")

	return cmd
}

func newPokemonCmd() *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "pokemon",
		Short: "List Pokémon matching the filters",
		Long:  "Lists the Pokémon side of a browse. Location filters still apply through the cross-reference.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, &filters, viewPokemon)
		},
	}

	filters.register(cmd)
	return cmd
}

func newLocationsCmd() *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List encounter locations matching the filters",
		Long:  "Lists the location side of a browse. Pokémon filters still apply through the cross-reference.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, &filters, viewLocations)
		},
	}

	filters.register(cmd)
	return cmd
}

func runBrowse(cmd *cobra.Command, filters *filterFlags, view resultView) error {
	criteria, err := filters.criteria()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	return withDeps(func(deps *Deps) error {
		result, err := deps.BrowseHandler.Handle(ctx, criteria)
		if err != nil {
			return err
		}

		renderResult(cmd.OutOrStdout(), result, view)
		return nil
	})
}

// browseOnce runs a single pass, used by commands that post-process the result.
func browseOnce(cmd *cobra.Command, criteria services.BrowseCriteria) (*services.BrowseResult, error) {
	var result *services.BrowseResult
	err := withDeps(func(deps *Deps) error {
		var err error
		result, err = deps.BrowseHandler.Handle(cmd.Context(), criteria)
		return err
	})
	return result, err
}
