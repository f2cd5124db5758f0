package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ersonp/dexbrowse/internal/application/handlers"
	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/domain/services"
)

// Browser is the application layer the model drives.
type Browser interface {
	Handle(ctx context.Context, criteria services.BrowseCriteria) (*services.BrowseResult, error)
	HandleOptions(ctx context.Context) (*handlers.OptionsResult, error)
}

// focusArea is the part of the screen receiving keys.
type focusArea int

const (
	focusFilters focusArea = iota
	focusPokemon
	focusLocations
)

// Lines taken by everything but the table.
const chromeHeight = 14

type field struct {
	label string
	input textinput.Model
	set   func(in *handlers.FilterInput, v string)
}

// Model is the interactive browser. Every applied filter change runs one
// full browse pass against the loaded snapshot.
type Model struct {
	ctx     context.Context
	browser Browser
	logger  *zap.Logger

	fields  []field
	focused int
	focus   focusArea

	pokemon   table.Model
	locations table.Model

	options *handlers.OptionsResult
	result  *services.BrowseResult
	err     error

	width  int
	height int
	styles Styles
}

// New loads the dataset through browser and runs an unfiltered pass.
func New(ctx context.Context, browser Browser, logger *zap.Logger) (Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	options, err := browser.HandleOptions(ctx)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		ctx:       ctx,
		browser:   browser,
		logger:    logger,
		fields:    newFields(options),
		focus:     focusFilters,
		pokemon:   newTable(PokemonHeaders, []int{5, 14, 12, 9, 9, 4, 4, 4, 4, 4, 4, 4, 3}),
		locations: newTable(LocationHeaders, []int{14, 22, 14, 4, 4}),
		options:   options,
		styles:    DefaultStyles(),
	}
	m.fields[0].input.Focus()
	m.apply()

	return m, nil
}

func newTable(headers []string, widths []int) table.Model {
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: widths[i]}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles())
	return t
}

func newFields(options *handlers.OptionsResult) []field {
	hint := func(values []string) string {
		if len(values) > 3 {
			values = values[:3]
		}
		return strings.Join(values, ", ")
	}

	placeholders := map[string]string{
		"Name":       hint(options.Facets.Names),
		"Type 1":     hint(options.Facets.Type1),
		"Type 2":     hint(options.Facets.Type2),
		"Generation": "1,3",
		"Area":       hint(options.Facets.Areas),
		"Method":     hint(options.Facets.Methods),
		"Levels":     "5-20",
		"Cap":        hint(options.Caps),
	}

	fields := []field{
		{label: "Name", set: func(in *handlers.FilterInput, v string) { in.Name = v }},
		{label: "Type 1", set: func(in *handlers.FilterInput, v string) { in.Type1 = v }},
		{label: "Type 2", set: func(in *handlers.FilterInput, v string) { in.Type2 = v }},
		{label: "Generation", set: func(in *handlers.FilterInput, v string) { in.Generations = v }},
	}
	for _, d := range options.Stats {
		stat := d.Stat
		placeholders[d.Label] = fmt.Sprintf("0-%d", d.Max)
		fields = append(fields, field{
			label: d.Label,
			set: func(in *handlers.FilterInput, v string) {
				if in.Stats == nil {
					in.Stats = make(map[entities.Stat]string)
				}
				in.Stats[stat] = v
			},
		})
	}
	fields = append(fields,
		field{label: "Area", set: func(in *handlers.FilterInput, v string) { in.Area = v }},
		field{label: "Method", set: func(in *handlers.FilterInput, v string) { in.Methods = v }},
		field{label: "Levels", set: func(in *handlers.FilterInput, v string) { in.Levels = v }},
		field{label: "Cap", set: func(in *handlers.FilterInput, v string) { in.Cap = v }},
	)

	for i := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 24
		ti.Placeholder = placeholders[fields[i].label]
		fields[i].input = ti
	}
	return fields
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := msg.Height - chromeHeight
		if h < 3 {
			h = 3
		}
		m.pokemon.SetHeight(h)
		m.locations.SetHeight(h)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+r":
			m.reset()
			return m, nil
		}

		if m.focus == focusFilters {
			return m.updateFilters(msg)
		}
		return m.updateTables(msg)
	}

	return m, nil
}

func (m Model) updateFilters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focusField((m.focused + 1) % len(m.fields))
		return m, nil
	case "shift+tab", "up":
		m.focusField((m.focused + len(m.fields) - 1) % len(m.fields))
		return m, nil
	case "enter":
		m.apply()
		return m, nil
	case "esc":
		m.fields[m.focused].input.Blur()
		m.setFocus(focusPokemon)
		return m, nil
	}

	var cmd tea.Cmd
	m.fields[m.focused].input, cmd = m.fields[m.focused].input.Update(msg)
	return m, cmd
}

func (m Model) updateTables(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		if m.focus == focusPokemon {
			m.setFocus(focusLocations)
		} else {
			m.setFocus(focusPokemon)
		}
		return m, nil
	case "/", "f":
		m.setFocus(focusFilters)
		m.focusField(m.focused)
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusPokemon {
		m.pokemon, cmd = m.pokemon.Update(msg)
	} else {
		m.locations, cmd = m.locations.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusField(i int) {
	m.fields[m.focused].input.Blur()
	m.focused = i
	m.fields[i].input.Focus()
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.pokemon.Blur()
	m.locations.Blur()
	switch f {
	case focusPokemon:
		m.pokemon.Focus()
	case focusLocations:
		m.locations.Focus()
	}
}

// apply runs a browse pass with the current field values. On error the
// previous result stays on screen.
func (m *Model) apply() {
	var in handlers.FilterInput
	for _, f := range m.fields {
		f.set(&in, f.input.Value())
	}

	criteria, err := in.Criteria()
	if err != nil {
		m.err = err
		return
	}

	result, err := m.browser.Handle(m.ctx, criteria)
	if err != nil {
		m.logger.Debug("Browse pass rejected", zap.Error(err))
		m.err = err
		return
	}

	m.err = nil
	m.result = result

	pokemonRows := make([]table.Row, 0, len(result.Pokemon))
	for _, p := range result.Pokemon {
		pokemonRows = append(pokemonRows, PokemonRow(p))
	}
	locationRows := make([]table.Row, 0, len(result.Locations))
	for _, l := range result.Locations {
		locationRows = append(locationRows, LocationRow(l))
	}
	m.pokemon.SetRows(pokemonRows)
	m.locations.SetRows(locationRows)
	m.pokemon.GotoTop()
	m.locations.GotoTop()
}

func (m *Model) reset() {
	for i := range m.fields {
		m.fields[i].input.Reset()
	}
	m.apply()
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("dex"))
	sb.WriteString(m.styles.Status.Render(fmt.Sprintf("  %d Pokémon, %d locations loaded",
		m.options.Pokemon, m.options.Locations)))
	sb.WriteString("\n\n")

	sb.WriteString(m.viewFields())
	sb.WriteString("\n")
	sb.WriteString(m.viewStatus())
	sb.WriteString("\n")
	sb.WriteString(m.viewTabs())
	sb.WriteString("\n")

	if m.focus == focusLocations {
		sb.WriteString(m.locations.View())
	} else {
		sb.WriteString(m.pokemon.View())
	}
	sb.WriteString("\n")
	sb.WriteString(m.viewHelp())

	return sb.String()
}

func (m Model) viewFields() string {
	const perRow = 3

	var rows []string
	for start := 0; start < len(m.fields); start += perRow {
		var cells []string
		for i := start; i < start+perRow && i < len(m.fields); i++ {
			label := m.styles.Label
			if m.focus == focusFilters && i == m.focused {
				label = m.styles.FocusedLabel
			}
			cell := label.Render(m.fields[i].label) + lipgloss.NewStyle().Width(26).Render(m.fields[i].input.View())
			cells = append(cells, cell)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return m.styles.Error.Render(m.err.Error())
	}
	if m.result == nil {
		return ""
	}
	if m.result.Empty() {
		line := "No matches."
		if len(m.result.Suggestions) > 0 {
			line += " Did you mean: " + strings.Join(m.result.Suggestions, ", ") + "?"
		}
		return m.styles.Warning.Render(line)
	}
	return m.styles.Status.Render(fmt.Sprintf("%d Pokémon, %d locations match",
		len(m.result.Pokemon), len(m.result.Locations)))
}

func (m Model) viewTabs() string {
	pokemon, locations := m.styles.Tab, m.styles.Tab
	if m.focus == focusLocations {
		locations = m.styles.ActiveTab
	} else {
		pokemon = m.styles.ActiveTab
	}

	var np, nl int
	if m.result != nil {
		np, nl = len(m.result.Pokemon), len(m.result.Locations)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		pokemon.Render(fmt.Sprintf("Pokémon (%d)", np)),
		locations.Render(fmt.Sprintf("Locations (%d)", nl)),
	)
}

func (m Model) viewHelp() string {
	if m.focus == focusFilters {
		return m.styles.Help.Render("tab/shift+tab: next/prev field • enter: apply • esc: results • ctrl+r: reset • ctrl+c: quit")
	}
	return m.styles.Help.Render("↑/↓: scroll • tab: switch table • /: filters • ctrl+r: reset • q: quit")
}
