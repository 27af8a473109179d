package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/rtcore/internal/ui"
)

// Style variables for the progress view.
// Initialized from the ui theme system via initTUIStyles().
var (
	labelStyle   lipgloss.Style
	countStyle   lipgloss.Style
	elapsedStyle lipgloss.Style
	doneStyle    lipgloss.Style
	errorStyle   lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	labelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	countStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	doneStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)
}
