package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/dexbrowse/cmd/dex/ui"
	"github.com/ersonp/dexbrowse/internal/domain/services"
)

type exportFlags struct {
	format string
	output string
	table  string
}

type exporter struct {
	format string
	table  string
	output string
	stdout io.Writer
}

func newExportCmd() *cobra.Command {
	var (
		flags   exportFlags
		filters filterFlags
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a browse result to file",
		Long:  "Exports the cross-referenced result to JSON, CSV, or markdown format.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, &filters)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&flags.table, "table", "t", "locations", "Table written by csv (pokemon, locations)")
	filters.register(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags, filters *filterFlags) error {
	if !contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}
	if !contains(validTables, flags.table) {
		return fmt.Errorf("invalid table %q, valid tables: %v", flags.table, validTables)
	}

	criteria, err := filters.criteria()
	if err != nil {
		return err
	}

	result, err := browseOnce(cmd, criteria)
	if err != nil {
		return err
	}

	e := &exporter{
		format: flags.format,
		table:  flags.table,
		output: flags.output,
		stdout: cmd.OutOrStdout(),
	}
	return e.export(result)
}

func (e *exporter) export(result *services.BrowseResult) (err error) {
	var w io.Writer
	var f *os.File

	if e.output != "" {
		f, err = os.OpenFile(e.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	} else {
		w = e.stdout
	}

	if err := e.formatResult(w, result); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if e.output != "" {
		fmt.Fprintf(e.stdout, "Exported %d Pokémon and %d locations to %s\n",
			len(result.Pokemon), len(result.Locations), e.output)
	}

	return nil
}

func (e *exporter) formatResult(w io.Writer, result *services.BrowseResult) error {
	switch e.format {
	case "json":
		return formatJSON(w, result)
	case "csv":
		return formatCSV(w, result, e.table)
	case "markdown":
		return formatMarkdown(w, result)
	default:
		return fmt.Errorf("unknown format: %s", e.format)
	}
}

func formatJSON(w io.Writer, result *services.BrowseResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func formatCSV(w io.Writer, result *services.BrowseResult, table string) error {
	writer := csv.NewWriter(w)

	header, rows := tableRows(result, table)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, result *services.BrowseResult) error {
	if _, err := fmt.Fprintf(w, "# Browse Result\n\nSnapshot: %s\n", result.Snapshot); err != nil {
		return err
	}

	for _, section := range []struct {
		title string
		table string
	}{
		{"Pokémon", "pokemon"},
		{"Locations", "locations"},
	} {
		header, rows := tableRows(result, section.table)
		if _, err := fmt.Fprintf(w, "\n## %s\n\nTotal: %d\n\n", section.title, len(rows)); err != nil {
			return err
		}
		if err := writeMarkdownTable(w, header, rows); err != nil {
			return err
		}
	}

	return nil
}

func writeMarkdownTable(w io.Writer, header []string, rows [][]string) error {
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(header, " | ")); err != nil {
		return err
	}
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "|%s|\n", strings.Join(sep, "|")); err != nil {
		return err
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = escapeMarkdown(c)
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
			return err
		}
	}
	return nil
}

func tableRows(result *services.BrowseResult, table string) ([]string, [][]string) {
	if table == "pokemon" {
		rows := make([][]string, 0, len(result.Pokemon))
		for _, p := range result.Pokemon {
			rows = append(rows, ui.PokemonRow(p))
		}
		return ui.PokemonHeaders, rows
	}

	rows := make([][]string, 0, len(result.Locations))
	for _, l := range result.Locations {
		rows = append(rows, ui.LocationRow(l))
	}
	return ui.LocationHeaders, rows
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
