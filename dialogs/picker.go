package dialogs

import (
	"fmt"
	"strings"

	"github.com/andareed/airline-dash/dataset"
	"github.com/andareed/airline-dash/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Messages ---------------------------------------------------------------

type (
	PickerRequestedMsg struct{}
	// AirlinesChangedMsg is sent on every toggle, not only when the picker
	// closes.
	AirlinesChangedMsg struct{ Airlines []dataset.AirlineID }
	PickerClosedMsg    struct{}
)

// AirlinePicker is a checkbox list over every airline.
type AirlinePicker struct {
	options []dataset.AirlineID
	checked map[dataset.AirlineID]bool
	cursor  int
	visible bool
}

func NewAirlinePicker(options, selected []dataset.AirlineID) *AirlinePicker {
	p := &AirlinePicker{
		options: append([]dataset.AirlineID(nil), options...),
		checked: make(map[dataset.AirlineID]bool, len(options)),
		visible: true,
	}
	for _, id := range selected {
		p.checked[id] = true
	}
	return p
}

func (p *AirlinePicker) Init() tea.Cmd { return nil }

func (p *AirlinePicker) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !p.visible || len(p.options) == 0 {
		return p, nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch km.String() {
	case "up", "k":
		p.cursor--
		if p.cursor < 0 {
			p.cursor = len(p.options) - 1
		}
	case "down", "j":
		p.cursor++
		if p.cursor >= len(p.options) {
			p.cursor = 0
		}
	case " ", "x":
		id := p.options[p.cursor]
		p.checked[id] = !p.checked[id]
		logging.Debugf("picker: toggle %s -> %v", id, p.checked[id])
		return p, p.changed()
	case "a":
		for _, id := range p.options {
			p.checked[id] = true
		}
		return p, p.changed()
	case "n":
		clear(p.checked)
		return p, p.changed()
	case "enter", "esc", "p":
		p.Hide()
		return p, func() tea.Msg { return PickerClosedMsg{} }
	}
	return p, nil
}

func (p *AirlinePicker) changed() tea.Cmd {
	sel := p.Selected()
	return func() tea.Msg { return AirlinesChangedMsg{Airlines: sel} }
}

// Selected returns the checked airlines in option order.
func (p *AirlinePicker) Selected() []dataset.AirlineID {
	out := make([]dataset.AirlineID, 0, len(p.options))
	for _, id := range p.options {
		if p.checked[id] {
			out = append(out, id)
		}
	}
	return out
}

func (p *AirlinePicker) Cursor() int { return p.cursor }

func (p *AirlinePicker) View() string {
	if !p.visible {
		return ""
	}
	cursorStyle := lipgloss.NewStyle().Bold(true)
	var lines []string
	for i, id := range p.options {
		box := "[ ]"
		if p.checked[id] {
			box = "[x]"
		}
		line := fmt.Sprintf("  %s %s", box, id.Name())
		if i == p.cursor {
			line = cursorStyle.Render(fmt.Sprintf("> %s %s", box, id.Name()))
		}
		lines = append(lines, line)
	}
	title := lipgloss.NewStyle().Bold(true).Render(TriggerLabel(p.Selected(), len(p.options)))
	help := hintStyle.Render("space toggle • a all • n none • enter/esc close")
	return boxStyle.Width(44).Render(title + "\n\n" + strings.Join(lines, "\n") + "\n\n" + help)
}

func (p *AirlinePicker) Show()           { p.visible = true }
func (p *AirlinePicker) Hide()           { p.visible = false }
func (p *AirlinePicker) Focus() tea.Cmd  { return nil }
func (p *AirlinePicker) Blur()           {}
func (p *AirlinePicker) IsVisible() bool { return p.visible }

// TriggerLabel is the text on the closed picker for a selection out of
// total airlines.
func TriggerLabel(selected []dataset.AirlineID, total int) string {
	switch {
	case len(selected) == 0:
		return "No Airlines Selected"
	case len(selected) == total:
		return "All Airlines Selected"
	case len(selected) == 1:
		return selected[0].Name()
	default:
		return fmt.Sprintf("%d Airlines Selected", len(selected))
	}
}
