package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/dexbrowse/internal/application/handlers"
	"github.com/ersonp/dexbrowse/internal/infrastructure/config"
)

type importFlags struct {
	pokemon   string
	locations string
	db        string
	dryRun    bool
}

func newImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Compile the table files into a SQLite database",
		Long: `Reads the Pokémon and location tables (CSV or JSON) and replaces the
contents of a SQLite database with them. Set data.sqlite.path in the config
to browse from the database instead of the files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.pokemon, "pokemon", "", "Pokémon table file (default: data.pokemon)")
	cmd.Flags().StringVar(&flags.locations, "locations", "", "Location table file (default: data.locations)")
	cmd.Flags().StringVar(&flags.db, "db", "", "Database file (default: data.sqlite.path or .dex/"+DefaultDBFile+")")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate without saving")

	return cmd
}

func runImport(cmd *cobra.Command, flags importFlags) error {
	data := importSources(appConfig.Data, flags)
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withImportHandler(data, flags.db, flags.dryRun, func(handler *handlers.ImportHandler, dbPath string) error {
		fmt.Fprintf(out, "Importing %s and %s...\n", data.Pokemon, data.Locations)

		result, err := handler.Handle(ctx, handlers.ImportOptions{DryRun: flags.dryRun})
		if err != nil {
			return fmt.Errorf("importing tables: %w", err)
		}

		if result.DryRun {
			fmt.Fprintf(out, "Dry run: %d Pokémon and %d locations would be written to %s\n",
				result.Pokemon, result.Locations, dbPath)
			return nil
		}

		fmt.Fprintf(out, "Imported: %d Pokémon, %d locations into %s\n", result.Pokemon, result.Locations, dbPath)
		if result.Record != nil {
			fmt.Fprintf(out, "Import ID: %s\n", result.Record.ID)
		}
		return nil
	})
}

// importSources applies the file flags over the configured table paths.
func importSources(data config.DataConfig, flags importFlags) config.DataConfig {
	if flags.pokemon != "" {
		data.Pokemon = flags.pokemon
	}
	if flags.locations != "" {
		data.Locations = flags.locations
	}
	return data
}
