// Package ui provides the terminal presentation layer: the lipgloss theme,
// headless-mode detection, and the Console collaborator the CLI commands
// print and prompt through. Nothing in here is process-global; commands
// receive a Console explicitly so tests can substitute one.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Colors holds the theme color palette as lipgloss-compatible hex strings.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
}

// Theme bundles the styles used for CLI output.
type Theme struct {
	NoColor bool
	Colors  Colors

	Title   lipgloss.Style
	Label   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewTheme creates the default theme. Colors are disabled when the NO_COLOR
// environment variable is set.
func NewTheme() *Theme {
	t := &Theme{
		NoColor: os.Getenv("NO_COLOR") != "",
		Colors: Colors{
			Primary:   "#7D56F4",
			Secondary: "#5A8DEE",
			Success:   "#2ECC71",
			Warning:   "#F1C40F",
			Error:     "#E74C3C",
		},
	}

	if t.NoColor {
		plain := lipgloss.NewStyle()
		t.Title = plain
		t.Label = plain
		t.Success = plain
		t.Warning = plain
		t.Error = plain
		t.Muted = plain
		return t
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Colors.Primary))
	t.Label = lipgloss.NewStyle().Bold(true)
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Success))
	t.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Warning))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Error))
	t.Muted = lipgloss.NewStyle().Faint(true)
	return t
}
