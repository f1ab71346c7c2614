package output

import "github.com/charmbracelet/lipgloss"

// --- Typography ---

var (
	// Label is used for field names in key/value listings.
	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	// Value is used for field values in key/value listings.
	Value = lipgloss.NewStyle().
		Foreground(White)

	// MutedText is for hints, log fields and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// DebugText is the "Debug:" label.
	DebugText = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	// ErrorText is for error messages.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// SuccessText is for success messages.
	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// WarningText is for warning messages.
	WarningText = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)
)
