package cli

import "github.com/charmbracelet/lipgloss"

type styles struct {
	success   lipgloss.Style
	failure   lipgloss.Style
	title     lipgloss.Style
	header    lipgloss.Style
	channel   lipgloss.Style
	detail    lipgloss.Style
	loggedIn  lipgloss.Style
	loggedOut lipgloss.Style
	empty     lipgloss.Style
	section   lipgloss.Style
}

func newStyles() styles {
	return styles{
		success:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		failure:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		channel:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		loggedIn:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		loggedOut: lipgloss.NewStyle().Faint(true),
		empty:     lipgloss.NewStyle().Faint(true),
		section:   lipgloss.NewStyle().MarginTop(1),
	}
}
