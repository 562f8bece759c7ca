package cli

import "github.com/charmbracelet/lipgloss"

// Terminal styles for answers and source listings.
var (
	answerStyle = lipgloss.NewStyle().
			Bold(true)

	sourceHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)

	sourceStyle = lipgloss.NewStyle().
			Faint(true)
)
