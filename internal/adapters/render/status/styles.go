package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	account   lipgloss.Style
	detail    lipgloss.Style
	warning   lipgloss.Style
	ok        lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	key       lipgloss.Style
	meta      lipgloss.Style
	code      lipgloss.Style
	activeTag lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		account:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		ok:        lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		key:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		code:      lipgloss.NewStyle().Bold(true).Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("39")),
		activeTag: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
	}
}
