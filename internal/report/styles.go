// Package report styling definitions.
// This file defines lipgloss styles for consistent terminal output.

package report

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles used for run reports.
type Styles struct {
	// Pass is the style for passing verdict markers (green).
	Pass lipgloss.Style

	// Fail is the style for failing verdict markers (red).
	Fail lipgloss.Style

	// Name is the style for probe names (bold).
	Name lipgloss.Style

	// Reason is the style for failure reasons (yellow).
	Reason lipgloss.Style

	// Summary is the style for the closing summary line (bold).
	Summary lipgloss.Style
}

// DefaultStyles returns the standard styles for report output.
func DefaultStyles() Styles {
	return Styles{
		Pass:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // Green
		Fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // Red
		Name:    lipgloss.NewStyle().Bold(true),
		Reason:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // Yellow
		Summary: lipgloss.NewStyle().Bold(true),
	}
}
