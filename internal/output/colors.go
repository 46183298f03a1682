package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor reports whether colored output is disabled.
// Respects the NO_COLOR environment variable (https://no-color.org/).
func NoColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

// Color definitions for consistent styling across the CLI.
var (
	ColorInfo  = lipgloss.Color("#3498DB") // blue
	ColorMuted = lipgloss.Color("#95A5A6") // gray
)

// Style presets for common output patterns.
var (
	// StyleBold is for emphasis.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleTitle is for section headers.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorInfo)

	// StyleMuted is for secondary text such as descriptions and file paths.
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
)
