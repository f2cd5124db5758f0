// Package main provides the entry point for the dex CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/dexbrowse/internal/infrastructure/config"
)

var (
	version         = "0.1.0-dev"
	globalConfigDir string
	globalVerbose   bool

	// Set in PersistentPreRunE
	basePath  string
	appConfig *config.Config
	logger    = zap.NewNop()
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dex",
		Short:         "Browse Pokémon and where to find them",
		Long:          "Filters a Pokémon table and an encounter location table, cross-referenced by name.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			basePath, err = resolveBasePath(globalConfigDir)
			if err != nil {
				return err
			}

			appConfig, err = config.Load(basePath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			// The TUI owns the terminal, so it only logs to a file
			logger, err = newLogger(appConfig.Log, globalVerbose, cmd.Name() == tuiCommand)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&globalConfigDir, "config-dir", "", "Directory holding .dex (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newBrowseCmd(),
		newPokemonCmd(),
		newLocationsCmd(),
		newCapsCmd(),
		newOptionsCmd(),
		newExportCmd(),
		newImportCmd(),
		newInitCmd(),
		newTUICmd(),
	)

	return rootCmd
}

func resolveBasePath(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}
