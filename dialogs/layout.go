package dialogs

import "github.com/charmbracelet/lipgloss"

const overlayBG = "236"

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("252")).
	BorderBackground(lipgloss.Color(overlayBG)).
	Padding(1, 2)

var hintStyle = lipgloss.NewStyle().Faint(true)

// Overlay centres a dialog on a shaded screen of the given size.
func Overlay(d Dialog, width, height int) string {
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		d.View(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(overlayBG)),
	)
}
