// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Header, Error, Muted, etc.) rather than visual.
//
// When disabled, all helpers return the input string unchanged with no
// ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	headerStyle lipgloss.Style
	infoStyle   lipgloss.Style
	mutedStyle  lipgloss.Style
	errorStyle  lipgloss.Style
)

// Init initializes the style package. It respects the NO_COLOR
// environment variable: if set to any non-empty value, styling stays
// disabled regardless of the enable parameter.
//
// This function should be called once before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if !enabled {
		return
	}

	// Force lipgloss to use ANSI256 colors regardless of TTY detection.
	lipgloss.SetColorProfile(termenv.ANSI256)

	headerStyle = lipgloss.NewStyle().Bold(true)
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Header styles a section heading.
func Header(s string) string {
	if !enabled {
		return s
	}
	return headerStyle.Render(s)
}

// Info styles a primary token such as a command name.
func Info(s string) string {
	if !enabled {
		return s
	}
	return infoStyle.Render(s)
}

// Muted styles secondary text such as usage hints and defaults.
func Muted(s string) string {
	if !enabled {
		return s
	}
	return mutedStyle.Render(s)
}

// Error styles an error message.
func Error(s string) string {
	if !enabled {
		return s
	}
	return errorStyle.Render(s)
}
