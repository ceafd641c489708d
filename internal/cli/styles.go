package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/strivetech/strivekit/internal/plan"
)

// Console styles. They render as plain text when stdout is not a terminal.
var (
	StyleCritical = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true) // Red bold
	StyleHigh     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))           // Yellow
	StyleMedium   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))           // Blue

	StyleHeading = lipgloss.NewStyle().Bold(true)
	StyleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	StyleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // Gray
)

// GetPriorityStyle returns the appropriate style for a given priority level
func GetPriorityStyle(priority plan.Priority) lipgloss.Style {
	switch priority {
	case plan.PriorityCritical:
		return StyleCritical
	case plan.PriorityHigh:
		return StyleHigh
	case plan.PriorityMedium:
		return StyleMedium
	default:
		return lipgloss.NewStyle()
	}
}

func styledHeading(s string) string {
	return StyleHeading.Render(s)
}

// consoleRenderer styles headings and priorities for terminal output
func consoleRenderer() plan.Renderer {
	return plan.Renderer{
		Heading: styledHeading,
		Priority: func(p plan.Priority) string {
			return GetPriorityStyle(p).Render(string(p))
		},
	}
}
