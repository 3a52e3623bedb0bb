package repl

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Banner lipgloss.Style
	Prompt lipgloss.Style
	Output lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Banner: lipgloss.NewStyle().Bold(true),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Output: lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:   lipgloss.NewStyle().Faint(true),
	}
}
