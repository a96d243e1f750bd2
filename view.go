package main

import (
	"fmt"
	"strings"

	"github.com/andareed/airline-dash/dialogs"
	"github.com/andareed/airline-dash/logging"
	"github.com/andareed/airline-dash/metrics"
	"github.com/andareed/airline-dash/reconcile"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

const dashboardTitle = "Indian Airlines Financial Dashboard"

const footerHeight = 2

func (m *model) chromeHeight() int {
	return lipgloss.Height(m.headerView()) + footerHeight
}

func (m *model) headerView() string {
	w := m.terminalWidth
	title := ansi.Truncate(titleStyle.Render(dashboardTitle), w, "…")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.tabBarView(w), m.controlsView(w), m.cardsView(w))
}

func (m *model) tabBarView(w int) string {
	var tabs []string
	for i, t := range reconcile.AllTabs() {
		label := fmt.Sprintf("%d %s", i+1, t.Title())
		if t == m.data.sel.Tab {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return ansi.Truncate(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), w, "…")
}

func (m *model) airlinesLabel() string {
	return dialogs.TriggerLabel(m.data.sel.Airlines, len(m.data.ds.Airlines))
}

func (m *model) controlsView(w int) string {
	parts := []string{
		"Airlines: " + m.airlinesLabel(),
		"Years: " + m.data.sel.Range.String(),
	}
	if m.data.sel.Tab == reconcile.RevenueTab {
		parts = append(parts, "Chart: "+m.data.sel.RevenueChart.String())
	}
	return ansi.Truncate(controlStyle.Render(strings.Join(parts, "   ")), w, "…")
}

// cardsView lays the revenue cards out in one row, or stacks them when the
// terminal is too narrow.
func (m *model) cardsView(w int) string {
	if len(m.data.cards) == 0 {
		return ""
	}
	n := len(m.data.cards)
	cardW := w/n - 2
	if cardW < 18 {
		lines := make([]string, 0, n)
		for _, c := range m.data.cards {
			lines = append(lines, ansi.Truncate(cardLine(c), w, "…"))
		}
		return strings.Join(lines, "\n")
	}
	boxes := make([]string, 0, n)
	for _, c := range m.data.cards {
		boxes = append(boxes, renderCard(c, cardW))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func changeStyle(c metrics.Change) lipgloss.Style {
	switch c.Sign() {
	case metrics.Positive:
		return positiveStyle
	case metrics.Negative:
		return negativeStyle
	default:
		return mutedStyle
	}
}

func renderCard(c metrics.Card, w int) string {
	name := cardNameStyle.Render(c.Airline.Name())
	body := c.RevenueLabel() + " " + changeStyle(c.Change).Render(c.Change.String())
	return cardStyle.Width(w).Render(name + "\n" + body)
}

func cardLine(c metrics.Card) string {
	return fmt.Sprintf(" %s %s %s", cardNameStyle.Render(c.Airline.Name()), c.RevenueLabel(), changeStyle(c.Change).Render(c.Change.String()))
}

// refreshBody re-renders the scrollable chart area.
func (m *model) refreshBody() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.bodyView())
}

func (m *model) bodyView() string {
	w := m.terminalWidth
	var parts []string
	for _, id := range reconcile.ChartsFor(m.data.sel.Tab) {
		parts = append(parts, m.chartView(id, w))
	}
	if m.data.sel.Tab == reconcile.Insights {
		parts = append(parts, m.outlookView(w))
	}
	return strings.Join(parts, "\n\n")
}

func (m *model) chartView(id reconcile.ChartID, w int) string {
	if err := m.rec.Failure(id); err != nil {
		return emptyStyle.Render("Chart unavailable")
	}
	dynamic := reconcile.IsDynamic(id)
	if dynamic && len(m.data.sel.Airlines) == 0 {
		return emptyStyle.Render("No Airlines Selected")
	}
	if dynamic && m.ui.settling {
		// an instance left from an earlier visit may predate the selection
		return emptyStyle.Render("Loading…")
	}
	c, ok := m.chartAt(id)
	if !ok {
		if dynamic {
			return emptyStyle.Render("No data")
		}
		return emptyStyle.Render("Loading…")
	}
	view := chartStyle.Render(c.View())
	tip := c.Tooltip(min(m.ui.yearCursor, max(c.Years()-1, 0)))
	if len(tip) == 0 {
		return view
	}
	return view + "\n" + tooltipStyle.Render(ansi.Truncate(strings.Join(tip, " | "), max(w-2, 1), "…"))
}

func (m *model) outlookView(w int) string {
	ds := m.data.ds
	heading := "Growth Outlook"
	if base := ds.LastHistorical(); base != "" && len(ds.Years) > 0 {
		heading += fmt.Sprintf(" (%s-%s)", base, ds.Years[len(ds.Years)-1])
	}
	lines := []string{sectionStyle.Render(heading)}
	for _, o := range m.data.outlook {
		profitable := "still loss-making by " + ds.Years[len(ds.Years)-1]
		if o.ProfitableFrom != "" {
			profitable = "profitable from " + o.ProfitableFrom
		}
		text := fmt.Sprintf("%s: revenue CAGR %s, %s.", o.Airline.Name(), changeStyle(o.Growth).Render(o.Growth.String()), profitable)
		lines = append(lines, " "+wordwrap.String(text, max(w-2, 20)))
	}
	return strings.Join(lines, "\n")
}

func (m *model) footerView(width int) string {
	st := FooterState{
		Mode:          m.footerMode(),
		Tab:           m.data.sel.Tab.Title(),
		Airlines:      m.airlinesLabel(),
		Years:         m.data.sel.Range.String(),
		Cursor:        m.cursorYear(),
		StatusMessage: noticeText(m.ui.noticeMsg, m.ui.noticeType),
		Legend:        m.footerMode().hints(),
	}
	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d vp=%dx%d built=%v",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height, m.rec.Built())
	}
	return RenderFooter(width, st, DefaultFooterStyles())
}

// cursorYear is the year label under the hover cursor on the current tab.
func (m *model) cursorYear() string {
	for _, id := range reconcile.ChartsFor(m.data.sel.Tab) {
		c, ok := m.chartAt(id)
		if !ok || c.Years() == 0 {
			continue
		}
		years := c.Spec().Years
		return years[min(m.ui.yearCursor, len(years)-1)]
	}
	return ""
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return dialogs.Overlay(m.activeDialog, m.terminalWidth, m.terminalHeight)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.viewport.View(), m.footerView(m.terminalWidth))
}
