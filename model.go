package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/andareed/airline-dash/chart"
	"github.com/andareed/airline-dash/clipboard"
	"github.com/andareed/airline-dash/dataset"
	"github.com/andareed/airline-dash/dialogs"
	"github.com/andareed/airline-dash/export"
	"github.com/andareed/airline-dash/logging"
	"github.com/andareed/airline-dash/reconcile"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// tabSettleDelay lets the new tab paint before its charts are rebuilt.
// Switching again inside the delay drops the earlier rebuild.
const tabSettleDelay = 100 * time.Millisecond

type (
	tabSelectedMsg      struct{ tab reconcile.Tab }
	tabSettledMsg       struct{ seq int }
	yearRangeChangedMsg struct{ r reconcile.YearRange }
	chartTypeChangedMsg struct{ t reconcile.ChartType }
	copiedMsg           struct {
		method clipboard.Method
		err    error
	}
)

type model struct {
	data dataState
	ui   uiState
	keys Keymap

	rec    *reconcile.Reconciler
	charts *chart.Builder

	viewport     viewport.Model
	activeDialog dialogs.Dialog

	terminalWidth  int
	terminalHeight int
	ready          bool

	exportDir    string
	exportFormat export.Format

	now  func() time.Time
	copy func(string) (clipboard.Method, error)
}

func newModel(ds *dataset.Dataset, sel reconcile.Selection) *model {
	builder := chart.NewBuilder()
	return &model{
		data:         newDataState(ds, sel),
		keys:         Keys,
		rec:          reconcile.New(ds, builder),
		charts:       builder,
		exportDir:    ".",
		exportFormat: export.JSON,
		now:          time.Now,
		copy:         clipboard.Copy,
	}
}

func (m *model) Init() tea.Cmd {
	logging.Infof("airline-dash: initialised tab=%s airlines=%d range=%s",
		m.data.sel.Tab, len(m.data.sel.Airlines), m.data.sel.Range)
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.ui.mode == modeDialog && m.activeDialog != nil {
			var cmd tea.Cmd
			m.activeDialog, cmd = m.activeDialog.Update(msg)
			return m, cmd
		}
		return m.handleViewModeKey(msg)

	case tabSelectedMsg:
		return m, m.selectTab(msg.tab)

	case tabSettledMsg:
		if msg.seq != m.ui.tabSeq {
			logging.Debugf("tab settle %d superseded by %d", msg.seq, m.ui.tabSeq)
			return m, nil
		}
		m.ui.settling = false
		m.apply()
		return m, nil

	case dialogs.AirlinesChangedMsg:
		m.data.sel.Airlines = msg.Airlines
		m.apply()
		return m, nil

	case yearRangeChangedMsg:
		m.data.sel.Range = msg.r
		m.apply()
		return m, nil

	case chartTypeChangedMsg:
		m.data.sel.RevenueChart = msg.t
		m.apply()
		return m, nil

	case dialogs.PickerRequestedMsg:
		m.openDialog(dialogs.NewAirlinePicker(m.data.ds.IDs(), m.data.sel.Airlines), footerPicker)
		return m, nil

	case dialogs.ExportRequestedMsg:
		name := export.DefaultFileName(m.now(), m.exportFormat)
		m.openDialog(dialogs.NewExportDialog(name, m.exportDir, m.exportFormat), footerExport)
		return m, nil

	case dialogs.HelpRequestedMsg:
		m.openDialog(dialogs.NewHelpDialog(m.keys.Legend()), footerHelp)
		return m, nil

	case dialogs.PickerClosedMsg, dialogs.HelpClosedMsg, dialogs.ExportCanceledMsg:
		m.closeDialog()
		return m, nil

	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		return m, m.exportCmd(msg.Path, msg.Format)

	case dialogs.ExportOKMsg:
		logging.Infof("export: wrote %s", msg.Path)
		return m, m.startNotice("Exported!", noticeSuccess, noticeDuration)

	case dialogs.ExportErrorMsg:
		logging.Errorf("export: %v", msg.Err)
		return m, m.startNotice("Export failed", noticeError, noticeDuration)

	case copiedMsg:
		if msg.err != nil {
			logging.Warnf("copy: %v", msg.err)
			return m, m.startNotice("Clipboard unavailable", noticeWarn, noticeDuration)
		}
		return m, m.startNotice(fmt.Sprintf("Copied to clipboard (%s)", msg.method), noticeSuccess, noticeDuration)

	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil
	}

	// cursor blink and similar housekeeping for an open dialog
	if m.activeDialog != nil {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.rec.Close()
		return m, tea.Quit
	case key.Matches(msg, k.OverviewTab):
		return m.Update(tabSelectedMsg{tab: reconcile.Overview})
	case key.Matches(msg, k.RevenueTab):
		return m.Update(tabSelectedMsg{tab: reconcile.RevenueTab})
	case key.Matches(msg, k.ProfitTab):
		return m.Update(tabSelectedMsg{tab: reconcile.ProfitTab})
	case key.Matches(msg, k.ProjectionTab):
		return m.Update(tabSelectedMsg{tab: reconcile.Projections})
	case key.Matches(msg, k.InsightsTab):
		return m.Update(tabSelectedMsg{tab: reconcile.Insights})
	case key.Matches(msg, k.NextTab):
		return m.Update(tabSelectedMsg{tab: m.data.sel.Tab.Next()})
	case key.Matches(msg, k.PrevTab):
		return m.Update(tabSelectedMsg{tab: m.data.sel.Tab.Prev()})
	case key.Matches(msg, k.YearRange):
		return m.Update(yearRangeChangedMsg{r: m.data.sel.Range.Next()})
	case key.Matches(msg, k.ChartType):
		if m.data.sel.Tab != reconcile.RevenueTab {
			return m, nil
		}
		return m.Update(chartTypeChangedMsg{t: m.data.sel.RevenueChart.Toggle()})
	case key.Matches(msg, k.YearLeft):
		m.moveYear(-1)
	case key.Matches(msg, k.YearRight):
		m.moveYear(1)
	case key.Matches(msg, k.Airlines):
		return m.Update(dialogs.PickerRequestedMsg{})
	case key.Matches(msg, k.ExportToFile):
		return m.Update(dialogs.ExportRequestedMsg{})
	case key.Matches(msg, k.CopyExport):
		return m, m.copyCmd()
	case key.Matches(msg, k.OpenHelp):
		return m.Update(dialogs.HelpRequestedMsg{})
	case key.Matches(msg, k.ScrollUp):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, k.ScrollDown):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, k.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, k.PageDown):
		m.viewport.PageDown()
	}
	return m, nil
}

// selectTab switches the visible tab at once and schedules the chart
// rebuild for after the settle delay.
func (m *model) selectTab(t reconcile.Tab) tea.Cmd {
	if !t.Valid() {
		logging.Warnf("ignoring unknown tab %d", int(t))
		return nil
	}
	m.data.sel.Tab = t
	m.ui.tabSeq++
	m.ui.settling = true
	seq := m.ui.tabSeq
	m.viewport.GotoTop()
	m.refreshBody()
	return tea.Tick(tabSettleDelay, func(time.Time) tea.Msg { return tabSettledMsg{seq: seq} })
}

// apply hands the current selection to the reconciler. Nothing is built
// until the first window size arrives and surfaces are mounted.
func (m *model) apply() {
	if !m.ready {
		return
	}
	built := m.rec.Apply(m.data.sel)
	logging.Debugf("apply tab=%s built=%v", m.data.sel.Tab, built)
	m.clampYear()
	m.refreshBody()
}

func (m *model) resize(w, h int) {
	m.terminalWidth, m.terminalHeight = w, h
	m.ui.bodyHeight = max(h-m.chromeHeight(), 3)
	for _, id := range reconcile.AllCharts() {
		cw, ch := m.surfaceSize(id)
		m.charts.Mount(id, cw, ch)
	}
	if !m.ready {
		m.viewport = viewport.New(w, m.ui.bodyHeight)
		m.ready = true
		built := m.rec.Start(m.data.sel)
		logging.Debugf("start tab=%s built=%v", m.data.sel.Tab, built)
	} else {
		m.viewport.Width = w
		m.viewport.Height = m.ui.bodyHeight
		m.rec.Refresh(m.surfaceSize)
	}
	m.clampYear()
	m.refreshBody()
}

const (
	minChartHeight = 10
	maxChartHeight = 24
	shareHeight    = 8
)

func (m *model) surfaceSize(id reconcile.ChartID) (int, int) {
	w := max(m.terminalWidth-2, 10)
	if id == reconcile.MarketShare {
		return w, shareHeight
	}
	n := chartsBeside(id)
	h := (m.ui.bodyHeight - 2*n) / n
	return w, min(max(h, minChartHeight), maxChartHeight)
}

// chartsBeside counts the charts sharing id's tab, id included.
func chartsBeside(id reconcile.ChartID) int {
	for _, t := range reconcile.AllTabs() {
		if ids := reconcile.ChartsFor(t); slices.Contains(ids, id) {
			return len(ids)
		}
	}
	return 1
}

func (m *model) openDialog(d dialogs.Dialog, kind footerMode) {
	m.activeDialog = d
	m.ui.mode = modeDialog
	m.ui.dialogKind = kind
	d.Show()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
	m.ui.mode = modeView
}

// moveYear moves the hover cursor shared by every chart on the tab.
func (m *model) moveYear(delta int) {
	m.ui.yearCursor += delta
	m.clampYear()
	m.refreshBody()
}

func (m *model) clampYear() {
	n := 0
	for _, id := range reconcile.ChartsFor(m.data.sel.Tab) {
		if c, ok := m.chartAt(id); ok {
			n = max(n, c.Years())
		}
	}
	m.ui.yearCursor = min(max(m.ui.yearCursor, 0), max(n-1, 0))
}

func (m *model) chartAt(id reconcile.ChartID) (*chart.Chart, bool) {
	c, ok := m.rec.Chart(id)
	if !ok {
		return nil, false
	}
	cc, ok := c.(*chart.Chart)
	return cc, ok
}

func (m *model) payload() export.Payload {
	return export.NewPayload(m.data.ds, m.data.sel, m.now())
}

func (m *model) exportCmd(path string, f export.Format) tea.Cmd {
	p := m.payload()
	ds := m.data.ds
	return func() tea.Msg {
		if _, err := export.WriteFile(path, p, ds, f); err != nil {
			return dialogs.ExportErrorMsg{Err: err}
		}
		return dialogs.ExportOKMsg{Path: path}
	}
}

func (m *model) copyCmd() tea.Cmd {
	data, err := export.Marshal(m.payload(), m.data.ds, export.JSON)
	if err != nil {
		return func() tea.Msg { return copiedMsg{err: err} }
	}
	copyFn := m.copy
	return func() tea.Msg {
		method, err := copyFn(string(data))
		return copiedMsg{method: method, err: err}
	}
}
