package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dexbrowse/internal/application/handlers"
	"github.com/ersonp/dexbrowse/internal/domain/entities"
	"github.com/ersonp/dexbrowse/internal/domain/mocks"
	"github.com/ersonp/dexbrowse/internal/domain/services"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	source := &mocks.DataSource{
		Pokemon: []entities.Pokemon{
			{Number: 25, Name: "Pikachu", Type1: "Electric", Stats: entities.Stats{HP: 35, Speed: 90}},
			{Number: 263, Name: "Zigzagoon", Type1: "Normal", Stats: entities.Stats{HP: 38, Speed: 60}},
			{Number: 278, Name: "Wingull", Type1: "Water", Type2: "Flying", Stats: entities.Stats{HP: 40, Speed: 85}},
		},
		Locations: []entities.Location{
			{PokemonName: "Pikachu", Area: "Safari Zone", Method: "Grass", MinLevel: 25, MaxLevel: 27},
			{PokemonName: "zigzagoon ", Area: "Route 101", Method: "Grass", MinLevel: 2, MaxLevel: 3},
			{PokemonName: "Wingull", Area: "Route 104", Method: "Surfing", MinLevel: 10, MaxLevel: 20},
		},
	}
	loader := services.NewDatasetLoader(source, nil, nil)
	service := services.NewBrowseService(entities.NewLevelCaps(entities.DefaultLevelCaps), nil)

	m, err := New(context.Background(), handlers.NewBrowseHandler(loader, service), nil)
	require.NoError(t, err)
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestNew_RunsUnfilteredPass(t *testing.T) {
	m := newTestModel(t)

	require.NotNil(t, m.result)
	assert.Len(t, m.result.Pokemon, 3)
	assert.Len(t, m.pokemon.Rows(), 3)
	assert.Len(t, m.locations.Rows(), 3)
	assert.Equal(t, focusFilters, m.focus)
	assert.True(t, m.fields[0].input.Focused())
}

func TestModel_ApplyNameFilter(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, key(" PIKACHU "), key("enter"))

	require.NoError(t, m.err)
	require.Len(t, m.result.Pokemon, 1)
	assert.Equal(t, "Pikachu", m.result.Pokemon[0].Name)
	assert.Len(t, m.locations.Rows(), 1)
}

func TestModel_FieldNavigation(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, key("tab"))
	assert.Equal(t, 1, m.focused)
	assert.True(t, m.fields[1].input.Focused())
	assert.False(t, m.fields[0].input.Focused())

	m, _ = send(m, key("shift+tab"), key("shift+tab"))
	assert.Equal(t, len(m.fields)-1, m.focused)
}

func TestModel_InvalidInputKeepsResult(t *testing.T) {
	m := newTestModel(t)

	// Generation field
	m, _ = send(m, key("tab"), key("tab"), key("tab"))
	require.Equal(t, "Generation", m.fields[m.focused].label)
	m, _ = send(m, key("12"), key("enter"))

	require.Error(t, m.err)
	assert.ErrorIs(t, m.err, entities.ErrFilterInput)
	assert.Len(t, m.result.Pokemon, 3)
	assert.Contains(t, m.View(), "generation")
}

func TestModel_NoMatchShowsSuggestion(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, key("pikachuu"), key("enter"))

	require.NoError(t, m.err)
	assert.True(t, m.result.Empty())
	assert.Contains(t, m.View(), "Did you mean: Pikachu?")
}

func TestModel_ResetClearsFilters(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, key("wingull"), key("enter"))
	require.Len(t, m.result.Pokemon, 1)

	m, _ = send(m, key("ctrl+r"))
	assert.Equal(t, "", m.fields[0].input.Value())
	assert.Len(t, m.result.Pokemon, 3)
}

func TestModel_TableFocus(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, key("esc"))
	assert.Equal(t, focusPokemon, m.focus)
	assert.True(t, m.pokemon.Focused())

	m, _ = send(m, key("tab"))
	assert.Equal(t, focusLocations, m.focus)
	assert.True(t, m.locations.Focused())
	assert.Contains(t, m.View(), "Route 104")

	m, _ = send(m, key("/"))
	assert.Equal(t, focusFilters, m.focus)
	assert.True(t, m.fields[m.focused].input.Focused())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	// "q" is text while a filter field has focus
	m, _ = send(m, key("q"))
	assert.Equal(t, "q", m.fields[0].input.Value())

	_, cmd := send(m, key("esc"), key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = send(m, key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	short := m.pokemon.Height()
	m, _ = send(m, tea.WindowSizeMsg{Width: 120, Height: 60})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 60, m.height)
	assert.Equal(t, short+20, m.pokemon.Height())
	assert.Equal(t, m.pokemon.Height(), m.locations.Height())
}

func TestPokemonRow(t *testing.T) {
	p := entities.Pokemon{
		Number: 6, Name: "Charizard", Type1: "Fire", Type2: "Flying", Generation: 1,
		Stats: entities.Stats{HP: 78, Attack: 84, Defense: 78, SpAttack: 109, SpDefense: 85, Speed: 100},
	}

	row := PokemonRow(p)

	require.Len(t, row, len(PokemonHeaders))
	assert.Equal(t, "006", row[0])
	assert.Equal(t, "534", row[11])
	assert.Equal(t, "Fire/Flying", Typing(p))
	assert.Equal(t, "Fire", Typing(entities.Pokemon{Type1: "Fire"}))
}

func TestLocationRow(t *testing.T) {
	row := LocationRow(entities.Location{PokemonName: "Wingull", Area: "Route 104", Method: "Surfing", MinLevel: 10, MaxLevel: 20})

	assert.Equal(t, []string{"Wingull", "Route 104", "Surfing", "10", "20"}, row)
}
