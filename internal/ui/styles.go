package ui

import "github.com/charmbracelet/lipgloss"

// SuccessStyle returns the lipgloss style for a completed-operation line.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(GetCurrentTUITheme().Success)
}

// ErrorStyle returns the lipgloss style for an error line.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(GetCurrentTUITheme().Error)
}

// AccentStyle returns the lipgloss style for highlighted values such as paths.
func AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GetCurrentTUITheme().Accent)
}

// DimStyle returns the lipgloss style for secondary text.
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GetCurrentTUITheme().Dim)
}
