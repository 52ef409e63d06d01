package console

import "github.com/charmbracelet/lipgloss"

var (
	Cyan      = lipgloss.Color("#00D4AA")
	Green     = lipgloss.Color("#00C832")
	Red       = lipgloss.Color("#FF5555")
	LightGray = lipgloss.Color("#aaaaaa")

	TitleStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	WordStyle = lipgloss.NewStyle().
			Bold(true)
)
