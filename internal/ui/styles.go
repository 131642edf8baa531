// Package ui centralizes terminal styling for the CLI output layer.
// All colorized rendering goes through this package so that presentation
// code never hardcodes escape sequences and tests can disable styling.
package ui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme groups the lipgloss styles used by the CLI presenter.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Header styles table headers.
	Header lipgloss.Style
	// Accent highlights primary values such as the winning backend.
	Accent lipgloss.Style
	// Success styles success status markers.
	Success lipgloss.Style
	// Warning styles cautionary messages.
	Warning lipgloss.Style
	// Failure styles error status markers.
	Failure lipgloss.Style
	// Muted styles secondary information.
	Muted lipgloss.Style
}

var (
	themeMu sync.RWMutex
	current = darkTheme()
)

// darkTheme returns styles tuned for dark terminal backgrounds.
func darkTheme() Theme {
	return Theme{
		Name:    "dark",
		Header:  lipgloss.NewStyle().Bold(true).Underline(true),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// lightTheme returns styles tuned for light terminal backgrounds.
func lightTheme() Theme {
	return Theme{
		Name:    "light",
		Header:  lipgloss.NewStyle().Bold(true).Underline(true),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// plainTheme returns styles that render text unmodified, for tests and
// non-TTY output.
func plainTheme() Theme {
	return Theme{
		Name:    "plain",
		Header:  lipgloss.NewStyle(),
		Accent:  lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Failure: lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
	}
}

// InitTheme selects the active theme.
//
// Parameters:
//   - name: "dark", "light", or "plain"; unknown names fall back to dark.
func InitTheme(name string) {
	themeMu.Lock()
	defer themeMu.Unlock()
	switch name {
	case "light":
		current = lightTheme()
	case "plain":
		current = plainTheme()
	default:
		current = darkTheme()
	}
}

// ActiveTheme returns the currently selected theme.
func ActiveTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return current
}

// Header renders s in the header style.
func Header(s string) string { return ActiveTheme().Header.Render(s) }

// Accent renders s in the accent style.
func Accent(s string) string { return ActiveTheme().Accent.Render(s) }

// Success renders s in the success style.
func Success(s string) string { return ActiveTheme().Success.Render(s) }

// Warning renders s in the warning style.
func Warning(s string) string { return ActiveTheme().Warning.Render(s) }

// Failure renders s in the failure style.
func Failure(s string) string { return ActiveTheme().Failure.Render(s) }

// Muted renders s in the muted style.
func Muted(s string) string { return ActiveTheme().Muted.Render(s) }
