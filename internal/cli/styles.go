package cli

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle renders section headings.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	// LabelStyle renders field labels.
	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	// ValueStyle renders field values.
	ValueStyle = lipgloss.NewStyle().Bold(true)
	// WarnStyle renders over-target values.
	WarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	// OkStyle renders within-target values.
	OkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	// MutedStyle renders secondary detail lines.
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
