package main

import "github.com/charmbracelet/lipgloss"

const (
	brandColor    = "#1F2A55"
	positiveColor = "#16a34a"
	negativeColor = "#dc2626"
	mutedColor    = "#9ca3af"
	tabActiveBG   = "#ff9f1c"
	tabActiveFG   = "#000000"
	cardBorder    = "240"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(brandColor)).Padding(0, 1)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(mutedColor))
	tabActiveStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Background(lipgloss.Color(tabActiveBG)).
			Foreground(lipgloss.Color(tabActiveFG))

	controlStyle = lipgloss.NewStyle().Padding(0, 1).Faint(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cardBorder)).
			Padding(0, 1)
	cardNameStyle = lipgloss.NewStyle().Bold(true)
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(positiveColor))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(negativeColor))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor))

	chartStyle   = lipgloss.NewStyle().Padding(0, 1)
	tooltipStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(mutedColor))
	emptyStyle   = lipgloss.NewStyle().Padding(1, 2).Foreground(lipgloss.Color(mutedColor)).Italic(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)
