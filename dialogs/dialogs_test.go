package dialogs

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/andareed/airline-dash/dataset"
	"github.com/andareed/airline-dash/export"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestTriggerLabel(t *testing.T) {
	all := dataset.AllAirlines()
	cases := []struct {
		sel  []dataset.AirlineID
		want string
	}{
		{nil, "No Airlines Selected"},
		{all, "All Airlines Selected"},
		{[]dataset.AirlineID{dataset.AkasaAir}, "Akasa Air"},
		{[]dataset.AirlineID{dataset.IndiGo, dataset.SpiceJet}, "2 Airlines Selected"},
		{all[:3], "3 Airlines Selected"},
	}
	for _, tc := range cases {
		if got := TriggerLabel(tc.sel, len(all)); got != tc.want {
			t.Errorf("TriggerLabel(%v) = %q, want %q", tc.sel, got, tc.want)
		}
	}
}

func TestPickerToggleEmitsEveryChange(t *testing.T) {
	p := NewAirlinePicker(dataset.AllAirlines(), dataset.AllAirlines())

	_, cmd := p.Update(keyMsg(" "))
	msg, ok := run(t, cmd).(AirlinesChangedMsg)
	if !ok {
		t.Fatalf("got %T", msg)
	}
	want := []dataset.AirlineID{dataset.AirIndia, dataset.SpiceJet, dataset.AkasaAir}
	if !reflect.DeepEqual(msg.Airlines, want) {
		t.Fatalf("got %v, want %v", msg.Airlines, want)
	}

	_, cmd = p.Update(keyMsg("n"))
	if msg := run(t, cmd).(AirlinesChangedMsg); len(msg.Airlines) != 0 {
		t.Fatalf("none left %v", msg.Airlines)
	}
	_, cmd = p.Update(keyMsg("a"))
	if msg := run(t, cmd).(AirlinesChangedMsg); len(msg.Airlines) != 4 {
		t.Fatalf("all gave %v", msg.Airlines)
	}
}

func TestPickerCursorWraps(t *testing.T) {
	p := NewAirlinePicker(dataset.AllAirlines(), nil)
	p.Update(keyMsg("up"))
	if p.Cursor() != 3 {
		t.Fatalf("cursor %d", p.Cursor())
	}
	p.Update(keyMsg("j"))
	if p.Cursor() != 0 {
		t.Fatalf("cursor %d", p.Cursor())
	}
}

func TestPickerClose(t *testing.T) {
	p := NewAirlinePicker(dataset.AllAirlines(), nil)
	_, cmd := p.Update(keyMsg("esc"))
	if _, ok := run(t, cmd).(PickerClosedMsg); !ok {
		t.Fatal("esc should close")
	}
	if p.IsVisible() || p.View() != "" {
		t.Fatal("picker still visible")
	}
	if _, cmd := p.Update(keyMsg(" ")); cmd != nil {
		t.Fatal("hidden picker handled input")
	}
}

func TestExportConfirm(t *testing.T) {
	dir := t.TempDir()
	d := NewExportDialog("dash.json", dir, export.JSON)
	_, cmd := d.Update(keyMsg("enter"))
	msg, ok := run(t, cmd).(ExportConfirmedMsg)
	if !ok {
		t.Fatalf("got %T", msg)
	}
	if msg.Path != filepath.Join(dir, "dash.json") || msg.Format != export.JSON {
		t.Fatalf("got %+v", msg)
	}
}

func TestExportCycleFormat(t *testing.T) {
	d := NewExportDialog("dash.json", "", export.JSON)
	d.Update(keyMsg("tab"))
	if d.Format() != export.YAML || d.Value() != "dash.yaml" {
		t.Fatalf("got %v %q", d.Format(), d.Value())
	}
	d.Update(keyMsg("tab"))
	d.Update(keyMsg("tab"))
	if d.Format() != export.JSON || d.Value() != "dash.json" {
		t.Fatalf("got %v %q", d.Format(), d.Value())
	}
	_, cmd := d.Update(keyMsg("esc"))
	if _, ok := run(t, cmd).(ExportCanceledMsg); !ok {
		t.Fatal("esc should cancel")
	}
}

func TestHelpListsEnabledBindings(t *testing.T) {
	on := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export"))
	off := key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "hidden"), key.WithDisabled())
	h := NewHelpDialog([]key.Binding{on, off})
	v := h.View()
	if !strings.Contains(v, "export") || strings.Contains(v, "hidden") {
		t.Fatalf("help view:\n%s", v)
	}
	_, cmd := h.Update(keyMsg("esc"))
	if _, ok := run(t, cmd).(HelpClosedMsg); !ok || h.IsVisible() {
		t.Fatal("help did not close")
	}
}
