// Package styles provides Lip Gloss styles for the nullfill TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary     = lipgloss.Color("#7C3AED") // Purple
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Header styles.
var (
	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// HeaderValueStyle is for header values.
	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)
)

// Record table styles.
var (
	// TableStyle wraps the record table.
	TableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor)

	// TableHeaderStyle is for column headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(Primary).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(BorderColor).
				BorderBottom(true).
				Padding(0, 1)

	// TableCellStyle is for regular cells.
	TableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// TableSelectedStyle is for the cursor row.
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Primary).
				Bold(false)

	// SentinelMark marks rows whose value was forward-filled.
	SentinelMark = lipgloss.NewStyle().
			Foreground(Secondary).
			Render("↓")

	// MalformedMark marks rows that did not parse as numbers.
	MalformedMark = lipgloss.NewStyle().
			Foreground(Error).
			Render("!")

	// EmptyTableStyle is for the placeholder shown before the first import.
	EmptyTableStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			Padding(1, 2)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)
)

// Status bar styles.
var (
	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ToastSuccessStyle is for success notices.
	ToastSuccessStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Success).
				Bold(true).
				Padding(0, 1)

	// ToastErrorStyle is for failure notices.
	ToastErrorStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Error).
			Bold(true).
			Padding(0, 1)
)

// Button styles.
var (
	// ButtonPrimaryStyle is for primary buttons (focused).
	ButtonPrimaryStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Primary).
				Bold(true).
				Padding(0, 2)

	// ButtonPrimaryUnfocusedStyle is for primary buttons (unfocused).
	ButtonPrimaryUnfocusedStyle = lipgloss.NewStyle().
					Foreground(Primary).
					Border(lipgloss.NormalBorder()).
					BorderForeground(Primary).
					Padding(0, 1)

	// ButtonSecondaryStyle is for secondary buttons (focused).
	ButtonSecondaryStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Secondary).
				Bold(true).
				Padding(0, 2)

	// ButtonSecondaryUnfocusedStyle is for secondary buttons (unfocused).
	ButtonSecondaryUnfocusedStyle = lipgloss.NewStyle().
					Foreground(MutedLight).
					Border(lipgloss.NormalBorder()).
					BorderForeground(Muted).
					Padding(0, 1)

	// ButtonDisabledStyle is for buttons that cannot be activated right now.
	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Border(lipgloss.NormalBorder()).
				BorderForeground(BorderColor).
				Padding(0, 1)
)
