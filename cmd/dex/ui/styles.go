// Package ui provides the interactive browser and the row formatting shared
// with the CLI tables.
package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	Primary = lipgloss.Color("205")
	Muted   = lipgloss.Color("241")
	Warning = lipgloss.Color("#FFC107")
	Danger  = lipgloss.Color("#e53935")
	Select  = lipgloss.Color("57")
)

// Styles holds the lipgloss styles used by the browser.
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Tab          lipgloss.Style
	ActiveTab    lipgloss.Style
	Status       lipgloss.Style
	Warning      lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the default browser styles.
func DefaultStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Label:        lipgloss.NewStyle().Width(12).Foreground(Muted),
		FocusedLabel: lipgloss.NewStyle().Width(12).Foreground(Primary).Bold(true),
		Tab:          lipgloss.NewStyle().Padding(0, 1).Foreground(Muted),
		ActiveTab:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(Primary),
		Status:       lipgloss.NewStyle().Foreground(Muted),
		Warning:      lipgloss.NewStyle().Foreground(Warning),
		Error:        lipgloss.NewStyle().Foreground(Danger).Bold(true),
		Help:         lipgloss.NewStyle().Foreground(Muted).Italic(true),
	}
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Muted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(Select).
		Bold(false)
	return s
}
