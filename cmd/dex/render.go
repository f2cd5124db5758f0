package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ersonp/dexbrowse/cmd/dex/ui"
	"github.com/ersonp/dexbrowse/internal/application/handlers"
	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/domain/services"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
)

// resultView selects which parts of a browse result are printed.
type resultView int

const (
	viewBoth resultView = iota
	viewPokemon
	viewLocations
	viewGroups
)

func newTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func pokemonTable(pokemon []entities.Pokemon) *table.Table {
	rows := make([][]string, 0, len(pokemon))
	for _, p := range pokemon {
		rows = append(rows, ui.PokemonRow(p))
	}
	return newTable(ui.PokemonHeaders, rows)
}

func locationTable(locations []entities.Location) *table.Table {
	rows := make([][]string, 0, len(locations))
	for _, l := range locations {
		rows = append(rows, ui.LocationRow(l))
	}
	return newTable(ui.LocationHeaders, rows)
}

func renderResult(w io.Writer, result *services.BrowseResult, view resultView) {
	if result.Empty() {
		fmt.Fprintln(w, "No matches.")
		renderSuggestions(w, result.Suggestions)
		return
	}

	switch view {
	case viewPokemon:
		renderSection(w, "Pokémon", pokemonTable(result.Pokemon))
	case viewLocations:
		renderSection(w, "Locations", locationTable(result.Locations))
	case viewGroups:
		for _, g := range result.Groups {
			title := fmt.Sprintf("#%03d %s", g.Pokemon.Number, g.Pokemon.Name)
			if g.Pokemon.Form != "" {
				title += " (" + g.Pokemon.Form + ")"
			}
			title += "  " + ui.Typing(g.Pokemon)
			renderSection(w, title, locationTable(g.Locations))
		}
	default:
		renderSection(w, "Pokémon", pokemonTable(result.Pokemon))
		renderSection(w, "Locations", locationTable(result.Locations))
	}

	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d Pokémon, %d locations (snapshot %s)",
		len(result.Pokemon), len(result.Locations), result.Snapshot)))
}

func renderSection(w io.Writer, title string, t *table.Table) {
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w)
}

func renderSuggestions(w io.Writer, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintln(w, warnStyle.Render("Did you mean: "+strings.Join(suggestions, ", ")+"?"))
}

func renderCaps(w io.Writer, caps entities.LevelCaps) {
	rows := make([][]string, 0, len(caps))
	for _, c := range caps {
		ceiling := fmt.Sprintf("%d", c.Ceiling)
		if c.Ceiling > entities.MaxLevel {
			ceiling = "-"
		}
		rows = append(rows, []string{c.Label, ceiling})
	}
	renderSection(w, "Level caps", newTable([]string{"Label", "Max level"}, rows))
}

func renderOptions(w io.Writer, opts *handlers.OptionsResult) {
	gens := make([]string, len(opts.Facets.Generations))
	for i, g := range opts.Facets.Generations {
		gens[i] = fmt.Sprintf("%d", g)
	}
	stats := make([]string, len(opts.Stats))
	for i, s := range opts.Stats {
		stats[i] = fmt.Sprintf("%s 0-%d", s.Label, s.Max)
	}

	rows := [][]string{
		{"Type 1", strings.Join(opts.Facets.Type1, ", ")},
		{"Type 2", strings.Join(opts.Facets.Type2, ", ")},
		{"Generations", strings.Join(gens, ", ")},
		{"Stats", strings.Join(stats, ", ")},
		{"Areas", strings.Join(opts.Facets.Areas, ", ")},
		{"Methods", strings.Join(opts.Facets.Methods, ", ")},
		{"Level caps", strings.Join(opts.Caps, ", ")},
	}
	renderSection(w, "Filter options", newTable([]string{"Filter", "Values"}, rows))

	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d Pokémon (%d excluded), %d locations, %d names (snapshot %s)",
		opts.Pokemon, opts.Excluded, opts.Locations, len(opts.Facets.Names), opts.Snapshot)))
}
