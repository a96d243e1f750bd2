package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---------------------------------------------------------------

type (
	HelpRequestedMsg struct{}
	HelpClosedMsg    struct{}
)

// Help lists key bindings.
type Help struct {
	visible  bool
	bindings []key.Binding
}

func (d Help) Init() tea.Cmd { return nil }

func NewHelpDialog(bindings []key.Binding) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?":
			d.visible = false
			return d, func() tea.Msg { return HelpClosedMsg{} }
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}
	var lines []string
	for _, b := range d.bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}
	content := fmt.Sprintf("%s\n\n%s", strings.Join(lines, "\n"), hintStyle.Render("enter/esc to return"))
	return boxStyle.Width(60).Render(content)
}

func (d *Help) Show() { d.visible = true }
func (d *Help) Hide() { d.visible = false }

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
