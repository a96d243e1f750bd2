package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// FooterState is everything the two footer lines show.
type FooterState struct {
	Mode footerMode
	Tab  string

	Airlines string
	Years    string

	// Cursor is the year under the hover cursor.
	Cursor string

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      string
	StatusBG   string
	ModePillBG string
	ModePillFG string
	TabFG      string
	TextFG     string
	DimFG      string
	StatusFG   string
	LegendFG   string
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      "#1f2937",
		StatusBG:   "#000000",
		ModePillBG: "#f59e0b",
		ModePillFG: "#000000",
		TabFG:      "#f3f4f6",
		TextFG:     "#d1d5db",
		DimFG:      "#9ca3af",
		StatusFG:   "#9a9a9a",
		LegendFG:   "#b0b0b0",
	}
}

// Selection text is capped so a long airline label cannot push the tab
// name off the bar.
const (
	footerAirlinesW = 22
	footerYearsW    = 10
)

// RenderFooter draws the control bar (mode, tab, selection, cursor year)
// above the status bar (notice on the left, key hints on the right).
func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Airlines == "" {
		st.Airlines = "None"
	}
	if st.Legend == "" {
		st.Legend = footerDashboard.hints()
	}
	return controlBar(width, st, styles) + "\n" + statusBar(width, st, styles)
}

func controlBar(width int, st FooterState, styles FooterStyles) string {
	right := ""
	if st.Cursor != "" {
		right = fit(" Year "+st.Cursor+" ", width)
	}
	room := width - ansi.StringWidth(right)

	pill := fit(" "+st.Mode.label()+" ", room)
	room -= ansi.StringWidth(pill)

	sel := fmt.Sprintf(" [AIRLINES: %s] · [YEARS: %s]",
		fit(strings.TrimSpace(st.Airlines), footerAirlinesW),
		fit(strings.TrimSpace(st.Years), footerYearsW))
	tabText := " ▸ " + orDefault(strings.TrimSpace(st.Tab), "(no tab)")

	// the selection gives way before the tab name does
	if ansi.StringWidth(tabText)+ansi.StringWidth(sel) > room {
		sel = fit(sel, max(room-ansi.StringWidth(tabText), 0))
	}
	tabText = fit(tabText, room-ansi.StringWidth(sel))
	gap := strings.Repeat(" ", max(room-ansi.StringWidth(tabText)-ansi.StringWidth(sel), 0))

	var b strings.Builder
	b.WriteString(sgr(styles.ModePillBG, styles.ModePillFG) + pill)
	b.WriteString(sgr(styles.BarBG, styles.TabFG) + tabText)
	b.WriteString(sgr("", styles.DimFG) + sel + gap)
	b.WriteString(sgr("", styles.TextFG) + right)
	return bar(b.String(), styles.BarBG, styles.TextFG)
}

func statusBar(width int, st FooterState, styles FooterStyles) string {
	legend := fit(st.Legend, width)
	msgW := width - ansi.StringWidth(legend)
	msg := fit(st.StatusMessage, msgW)
	msg += strings.Repeat(" ", max(msgW-ansi.StringWidth(msg), 0))
	line := sgr("", styles.StatusFG) + msg + sgr("", styles.LegendFG) + legend
	return bar(line, styles.StatusBG, styles.StatusFG)
}

func bar(s, bg, fg string) string {
	if plainOutput() {
		return s
	}
	return sgr(bg, fg) + s + termenv.CSI + termenv.ResetSeq + "m"
}

// plainOutput is true when colour is off (--no-color or a dumb terminal).
func plainOutput() bool {
	return lipgloss.ColorProfile() == termenv.Ascii
}

// sgr switches background and foreground to the given hex colours. An
// empty colour leaves that side alone.
func sgr(bg, fg string) string {
	if plainOutput() {
		return ""
	}
	var seqs []string
	if bg != "" {
		seqs = append(seqs, termenv.RGBColor(bg).Sequence(true))
	}
	if fg != "" {
		seqs = append(seqs, termenv.RGBColor(fg).Sequence(false))
	}
	if len(seqs) == 0 {
		return ""
	}
	return termenv.CSI + strings.Join(seqs, ";") + "m"
}

func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, "")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
