package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Preview  lipgloss.Style
	Match    lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Rejected lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Label:   lipgloss.NewStyle().Faint(true),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Preview: lipgloss.NewStyle().Bold(true),
		Match:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Underline(true),
		Help:    lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Rejected: lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	}
}
