// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Defines the pink-leaning palette, borders, and text styles

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#D5006D") // Deep pink
	Secondary = lipgloss.Color("#F06292") // Soft pink
	Success   = lipgloss.Color("#4CAF50") // Green
	Danger    = lipgloss.Color("#E74C3C") // Red
	Muted     = lipgloss.Color("#9696AA") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light
	Surface   = lipgloss.Color("#2A2A3E") // Card background

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	// Status indicators
	ErrorText = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	SuccessText = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// List rows
	SelectedRow = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Row = lipgloss.NewStyle().
		Foreground(Text)

	// Field labels and values
	Label = lipgloss.NewStyle().
		Foreground(Secondary)

	Value = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Key style for keyboard shortcuts
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)
