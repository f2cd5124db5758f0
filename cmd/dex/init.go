package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/dexbrowse/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration",
		Long:  "Creates a .dex directory with a default config.yaml pointing at data/pokemon.csv and data/locations.csv.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	result, err := handlers.NewInitHandler().Handle(basePath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", result.ConfigPath)
	fmt.Fprintf(out, "Pokémon table:  %s\n", result.Pokemon)
	fmt.Fprintf(out, "Location table: %s\n", result.Locations)

	return nil
}
