package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Frame colors the brackets around the progress bar.
	Frame string
	// Fill colors the progress bar cells.
	Fill string
	// Percent colors the percentage after the bar.
	Percent string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Error indicates failures or critical issues.
	Error string
	// Info is used for informational messages.
	Info string
	// Reset clears all formatting.
	Reset string
}

var (
	// ClassicTheme reproduces the bold magenta, cyan and yellow bar of the
	// original renderer. It is the default.
	ClassicTheme = Theme{
		Name:    "classic",
		Frame:   "\x1b[1;35m", // Bold magenta
		Fill:    "\x1b[1;36m", // Bold cyan
		Percent: "\x1b[1;33m", // Bold yellow
		Success: "\x1b[38;5;82m",
		Error:   "\x1b[38;5;196m",
		Info:    "\x1b[38;5;141m",
		Reset:   "\x1b[0m",
	}

	// OrangeTheme is a warm palette matching the TUI colors.
	OrangeTheme = Theme{
		Name:    "orange",
		Frame:   "\x1b[38;5;245m", // Grey
		Fill:    "\x1b[38;5;208m", // Orange
		Percent: "\x1b[38;5;214m", // Light orange
		Success: "\x1b[38;5;82m",
		Error:   "\x1b[38;5;196m",
		Info:    "\x1b[38;5;69m",
		Reset:   "\x1b[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set, --no-color is given, or stdout is not a terminal.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = ClassicTheme
	themeMutex   sync.RWMutex
)

// TUITheme defines lipgloss-compatible colors for the TUI view and styled
// status lines.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	// GradientFrom and GradientTo are hex colors for the TUI progress bar.
	GradientFrom string
	GradientTo   string
}

var (
	// DarkTUITheme is the default TUI palette.
	DarkTUITheme = TUITheme{
		Text:         lipgloss.Color("#E0E0E0"),
		Accent:       lipgloss.Color("#FF8C00"),
		Success:      lipgloss.Color("#9ece6a"),
		Error:        lipgloss.Color("#FF4444"),
		Dim:          lipgloss.Color("#666666"),
		GradientFrom: "#FF6600",
		GradientTo:   "#FFB347",
	}

	// NoColorTUITheme disables all TUI colors.
	NoColorTUITheme = TUITheme{
		Text:    lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the TUI theme matching the currently active theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name.
// Valid names are: "classic", "orange", "none".
// Unknown names default to the classic theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "orange":
		currentTheme = OrangeTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = ClassicTheme
	}
}

// InitTheme initializes the theme based on the noColor flag, the environment
// and the output file. It respects the NO_COLOR environment variable
// (https://no-color.org/) and disables colors when out is not a terminal.
//
// Parameters:
//   - name: The theme to activate when colors are allowed.
//   - noColor: If true, disables all color output regardless of environment.
//   - out: The file progress and status lines are written to. May be nil.
func InitTheme(name string, noColor bool, out *os.File) {
	if noColor || !ColorSupported(out) {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(name)
}

// ColorSupported reports whether escape sequences should be written to f.
func ColorSupported(f *os.File) bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return IsTerminal(f)
}

// IsTerminal reports whether f is attached to a terminal. A nil file is not.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
