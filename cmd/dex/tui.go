package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ersonp/dexbrowse/cmd/dex/ui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   tuiCommand,
		Short: "Browse interactively",
		Long:  "Opens a full-screen browser. Filters apply on enter; logs go to log.file when set.",
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(func(deps *Deps) error {
		model, err := ui.New(ctx, deps.BrowseHandler, logger)
		if err != nil {
			return err
		}

		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running browser: %w", err)
		}
		return nil
	})
}
