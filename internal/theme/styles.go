package theme

import "github.com/charmbracelet/lipgloss"

// Summary styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)
)

// Outcome styles
var (
	CapturedStyle = lipgloss.NewStyle().
			Foreground(ColorCaptured).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	FailedStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)

	PendingStyle = lipgloss.NewStyle().
			Foreground(ColorPending)
)

// Row renders a "label value" line
func Row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), ValueStyle.Render(value))
}
