package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/andareed/airline-dash/clipboard"
	"github.com/andareed/airline-dash/dataset"
	"github.com/andareed/airline-dash/dialogs"
	"github.com/andareed/airline-dash/reconcile"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestModel(t *testing.T) *model {
	t.Helper()
	ds := dataset.Default()
	m := newModel(ds, reconcile.DefaultSelection(ds))
	m.now = func() time.Time { return fixedNow }
	m.copy = func(string) (clipboard.Method, error) { return clipboard.System, nil }
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return m
}

func press(m *model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

// settle delivers the rebuild for the latest tab switch without waiting
// for the timer.
func settle(m *model) {
	m.Update(tabSettledMsg{seq: m.ui.tabSeq})
}

// deliver runs cmd and feeds its message back, the way the runtime would.
func deliver(t *testing.T, m *model, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	_, next := m.Update(cmd())
	return next
}

func built(m *model, id reconcile.ChartID) bool {
	_, ok := m.rec.Chart(id)
	return ok
}

func TestStartShowsOverview(t *testing.T) {
	m := newTestModel(t)
	if !built(m, reconcile.OverviewRevenue) || !built(m, reconcile.OverviewProfit) {
		t.Fatalf("overview charts not built: %v", m.rec.Built())
	}
	if built(m, reconcile.RevenueChart) || built(m, reconcile.MarketShare) {
		t.Fatalf("charts built for hidden tabs: %v", m.rec.Built())
	}
	v := m.View()
	for _, want := range []string{dashboardTitle, "₹84,098 Cr", "+15.2%", "-20.7%", "All Airlines Selected", "Revenue Trend"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewBeforeWindowSize(t *testing.T) {
	ds := dataset.Default()
	m := newModel(ds, reconcile.DefaultSelection(ds))
	if m.View() != "loading..." {
		t.Fatalf("got %q", m.View())
	}
	press(m, "2")
	settle(m)
	if len(m.rec.Built()) != 0 {
		t.Fatalf("built before surfaces were mounted: %v", m.rec.Built())
	}
}

func TestTabSwitchCoalesces(t *testing.T) {
	m := newTestModel(t)
	if cmd := press(m, "2"); cmd == nil {
		t.Fatal("tab switch should schedule a rebuild")
	}
	first := m.ui.tabSeq
	press(m, "3")
	if m.data.sel.Tab != reconcile.ProfitTab {
		t.Fatalf("tab %s", m.data.sel.Tab)
	}

	m.Update(tabSettledMsg{seq: first})
	if built(m, reconcile.RevenueChart) || built(m, reconcile.ProfitChart) {
		t.Fatalf("stale settle rebuilt charts: %v", m.rec.Built())
	}
	settle(m)
	if !built(m, reconcile.ProfitChart) || built(m, reconcile.RevenueChart) {
		t.Fatalf("built %v", m.rec.Built())
	}
}

func TestTabKeysWrap(t *testing.T) {
	m := newTestModel(t)
	press(m, "shift+tab")
	if m.data.sel.Tab != reconcile.Insights {
		t.Fatalf("tab %s", m.data.sel.Tab)
	}
	press(m, "tab")
	if m.data.sel.Tab != reconcile.Overview {
		t.Fatalf("tab %s", m.data.sel.Tab)
	}
}

func TestAirlineSelectionDrivesDynamicCharts(t *testing.T) {
	m := newTestModel(t)
	press(m, "2")
	settle(m)
	if !built(m, reconcile.RevenueChart) {
		t.Fatal("revenue chart not built")
	}

	m.Update(dialogs.AirlinesChangedMsg{Airlines: nil})
	if built(m, reconcile.RevenueChart) {
		t.Fatal("revenue chart kept with no airlines selected")
	}
	v := m.View()
	if !strings.Contains(v, "No Airlines Selected") {
		t.Fatalf("missing empty state:\n%s", v)
	}
	if !built(m, reconcile.OverviewRevenue) {
		t.Fatal("static chart destroyed by a selection change")
	}

	m.Update(dialogs.AirlinesChangedMsg{Airlines: []dataset.AirlineID{dataset.SpiceJet}})
	c, ok := m.chartAt(reconcile.RevenueChart)
	if !ok || len(c.Spec().Series) != 1 || c.Spec().Series[0].Name != "SpiceJet" {
		t.Fatalf("revenue chart not rebuilt for SpiceJet")
	}
	if !strings.Contains(m.View(), "Airlines: SpiceJet") {
		t.Fatal("trigger label not updated")
	}
}

func TestYearRangeKey(t *testing.T) {
	m := newTestModel(t)
	press(m, "3")
	settle(m)
	press(m, "r")
	if m.data.sel.Range != reconcile.Historical {
		t.Fatalf("range %s", m.data.sel.Range)
	}
	c, ok := m.chartAt(reconcile.ProfitChart)
	if !ok || len(c.Spec().Years) != 6 {
		t.Fatalf("profit chart not rebuilt for historical years")
	}
	press(m, "r", "r")
	if m.data.sel.Range != reconcile.AllYears {
		t.Fatalf("range %s", m.data.sel.Range)
	}
}

func TestChartTypeOnlyOnRevenueTab(t *testing.T) {
	m := newTestModel(t)
	press(m, "t")
	if m.data.sel.RevenueChart != reconcile.Line {
		t.Fatal("chart type toggled outside the revenue tab")
	}
	press(m, "2")
	settle(m)
	press(m, "t")
	c, ok := m.chartAt(reconcile.RevenueChart)
	if !ok || c.Spec().Kind != reconcile.KindBar {
		t.Fatal("revenue chart not rebuilt as bars")
	}
}

func TestPickerFlow(t *testing.T) {
	m := newTestModel(t)
	press(m, "p")
	if m.ui.mode != modeDialog || m.footerMode() != footerPicker {
		t.Fatal("picker not open")
	}
	deliver(t, m, press(m, " "))
	if len(m.data.sel.Airlines) != 3 || m.data.sel.Airlines[0] != dataset.AirIndia {
		t.Fatalf("airlines %v", m.data.sel.Airlines)
	}
	deliver(t, m, press(m, "esc"))
	if m.ui.mode != modeView || m.activeDialog != nil {
		t.Fatal("picker still open")
	}
	if !strings.Contains(m.View(), "3 Airlines Selected") {
		t.Fatal("trigger label not updated")
	}
}

func TestExportFlow(t *testing.T) {
	m := newTestModel(t)
	m.exportDir = t.TempDir()
	press(m, "e")
	if m.footerMode() != footerExport {
		t.Fatal("export dialog not open")
	}
	next := deliver(t, m, press(m, "enter"))
	notice := deliver(t, m, next)
	if notice == nil || m.ui.noticeMsg != "Exported!" {
		t.Fatalf("notice %q", m.ui.noticeMsg)
	}
	path := filepath.Join(m.exportDir, "indian-airlines-dashboard-1741944413000.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"activeTab": "overview"`) {
		t.Fatalf("unexpected export:\n%s", data)
	}
}

func TestExportFailureNotice(t *testing.T) {
	m := newTestModel(t)
	m.exportDir = filepath.Join(t.TempDir(), "missing")
	press(m, "e")
	next := deliver(t, m, press(m, "enter"))
	deliver(t, m, next)
	if m.ui.noticeMsg != "Export failed" || m.ui.noticeType != noticeError {
		t.Fatalf("notice %q %q", m.ui.noticeMsg, m.ui.noticeType)
	}
}

func TestCopyExport(t *testing.T) {
	m := newTestModel(t)
	var copied string
	m.copy = func(s string) (clipboard.Method, error) {
		copied = s
		return clipboard.OSC52, nil
	}
	deliver(t, m, press(m, "y"))
	if !strings.Contains(copied, `"note": "Exported from Indian Airlines Financial Dashboard (includes Akasa Air)"`) {
		t.Fatalf("copied %q", copied)
	}
	if !strings.Contains(m.ui.noticeMsg, "osc52") {
		t.Fatalf("notice %q", m.ui.noticeMsg)
	}
}

func TestNoticeClearsOnlyLatest(t *testing.T) {
	m := newTestModel(t)
	m.startNotice("first", noticeInfo, noticeDuration)
	m.startNotice("second", noticeInfo, noticeDuration)
	m.Update(clearNoticeMsg{id: 1})
	if m.ui.noticeMsg != "second" {
		t.Fatalf("stale timer cleared the notice")
	}
	m.Update(clearNoticeMsg{id: 2})
	if m.ui.noticeMsg != "" {
		t.Fatalf("notice not cleared")
	}
}

func TestResizeRefreshesCharts(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 50})
	c, ok := m.chartAt(reconcile.OverviewRevenue)
	if !ok {
		t.Fatal("chart lost on resize")
	}
	w, h := c.Size()
	ww, wh := m.surfaceSize(reconcile.OverviewRevenue)
	if w != ww || h != wh || w != 88 {
		t.Fatalf("chart %dx%d, surface %dx%d", w, h, ww, wh)
	}
}

func TestYearCursor(t *testing.T) {
	m := newTestModel(t)
	press(m, "l", "l")
	if got := m.cursorYear(); got != "FY2022" {
		t.Fatalf("cursor %s", got)
	}
	if !strings.Contains(m.View(), "Year: FY2022") {
		t.Fatal("tooltip not shown for cursor year")
	}
	press(m, "h", "h", "h", "h")
	if got := m.cursorYear(); got != "FY2020" {
		t.Fatalf("cursor %s", got)
	}

	press(m, "4")
	settle(m)
	press(m, "l", "l", "l", "l", "l", "l", "l")
	if got := m.cursorYear(); got != "FY2030" {
		t.Fatalf("cursor %s", got)
	}
}

func TestHelpDialog(t *testing.T) {
	m := newTestModel(t)
	press(m, "?")
	if !strings.Contains(m.View(), "export to file") {
		t.Fatal("help does not list bindings")
	}
	deliver(t, m, press(m, "esc"))
	if m.ui.mode != modeView {
		t.Fatal("help still open")
	}
}

func TestInsightsTab(t *testing.T) {
	m := newTestModel(t)
	press(m, "5")
	settle(m)
	v := m.View()
	for _, want := range []string{"IndiGo: 48.8%", "Growth Outlook (FY2025-FY2030)", "profitable from FY2028"} {
		if !strings.Contains(v, want) {
			t.Errorf("insights view missing %q", want)
		}
	}
}

func TestQuitClosesCharts(t *testing.T) {
	m := newTestModel(t)
	cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if len(m.rec.Built()) != 0 {
		t.Fatalf("charts left after quit: %v", m.rec.Built())
	}
}

func TestTabSwitchHidesStaleDynamicChart(t *testing.T) {
	m := newTestModel(t)
	press(m, "2")
	settle(m)
	press(m, "1")
	settle(m)

	// the revenue instance survives off-tab and still has all four airlines
	m.Update(dialogs.AirlinesChangedMsg{Airlines: []dataset.AirlineID{dataset.SpiceJet}})
	press(m, "2")
	if v := m.viewport.View(); strings.Contains(v, "IndiGo:") || !strings.Contains(v, "Loading…") {
		t.Fatalf("stale chart drawn before settle:\n%s", v)
	}
	settle(m)
	if v := m.viewport.View(); strings.Contains(v, "IndiGo:") || !strings.Contains(v, "SpiceJet:") {
		t.Fatalf("rebuilt chart wrong:\n%s", v)
	}

	press(m, "1")
	settle(m)
	m.Update(dialogs.AirlinesChangedMsg{Airlines: nil})
	press(m, "2")
	if !strings.Contains(m.viewport.View(), "No Airlines Selected") {
		t.Fatalf("empty selection not shown while settling:\n%s", m.viewport.View())
	}
}

func TestDialogRequests(t *testing.T) {
	cases := []struct {
		msg  tea.Msg
		want footerMode
	}{
		{dialogs.PickerRequestedMsg{}, footerPicker},
		{dialogs.ExportRequestedMsg{}, footerExport},
		{dialogs.HelpRequestedMsg{}, footerHelp},
	}
	for _, tc := range cases {
		m := newTestModel(t)
		m.Update(tc.msg)
		if m.ui.mode != modeDialog || m.footerMode() != tc.want {
			t.Errorf("%T: mode %v footer %v", tc.msg, m.ui.mode, m.footerMode())
		}
		if m.activeDialog == nil || !m.activeDialog.IsVisible() {
			t.Errorf("%T: dialog not visible", tc.msg)
		}
	}
}
