package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface for the overlays the dashboard opens
// (airline picker, export prompt, help).
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
