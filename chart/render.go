package chart

import (
	"math"
	"strings"

	"github.com/andareed/airline-dash/metrics"
	"github.com/andareed/airline-dash/reconcile"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	profitColor = "#16a34a"
	lossColor   = "#dc2626"
	mutedColor  = "#9ca3af"

	solidStroke   = '•'
	dashedStroke  = '·'
	pointMarker   = '●'
	idleMarker    = '○'
	zeroRule      = '┈'
	barHistorical = '█'
	barProjected  = '▒'

	// title, x axis, x labels, legend
	chromeLines = 4
	minPlotRows = 3
)

var titleStyle = lipgloss.NewStyle().Bold(true)

func render(spec reconcile.ChartSpec, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	var lines []string
	switch {
	case spec.Empty():
		lines = placeholder(spec, w, h, "No data")
	case spec.Kind == reconcile.KindShare:
		lines = renderShare(spec, w, h)
	default:
		lines = renderPlot(spec, w, h)
	}
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], w, "")
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func placeholder(spec reconcile.ChartSpec, w, h int, msg string) []string {
	lines := []string{titleLine(spec, w)}
	if h > 1 {
		lines = append(lines, paint(msg, mutedColor, true))
	}
	return lines
}

func titleLine(spec reconcile.ChartSpec, w int) string {
	t := titleStyle.Render(spec.Title)
	if spec.Axis != "" {
		t += paint("  "+spec.Axis, mutedColor, true)
	}
	return ansi.Truncate(t, w, "…")
}

// scale maps values onto plot rows, always keeping zero in range.
type scale struct {
	lo, hi float64
	rows   int
}

func newScale(spec reconcile.ChartSpec, rows int) scale {
	s := scale{rows: rows}
	for _, series := range spec.Series {
		for _, p := range series.Points {
			s.lo = math.Min(s.lo, p.Value)
			s.hi = math.Max(s.hi, p.Value)
		}
	}
	if s.hi == s.lo {
		s.hi = s.lo + 1
	}
	return s
}

func (s scale) row(v float64) int {
	r := int(math.Round((s.hi - v) / (s.hi - s.lo) * float64(s.rows-1)))
	return min(max(r, 0), s.rows-1)
}

func (s scale) value(row int) float64 {
	return s.hi - (s.hi-s.lo)*float64(row)/float64(s.rows-1)
}

func renderPlot(spec reconcile.ChartSpec, w, h int) []string {
	rows := h - chromeLines
	sc := newScale(spec, max(rows, 1))
	labels := axisLabels(spec, sc)
	labelW := 0
	for _, l := range labels {
		labelW = max(labelW, ansi.StringWidth(l))
	}
	plotW := w - labelW - 1

	n := len(spec.Years)
	if n == 0 || len(spec.Series) == 0 {
		return placeholder(spec, w, h, "No data")
	}
	need := n
	if spec.Kind == reconcile.KindBar {
		need = n * (len(spec.Series) + 1)
	}
	if rows < minPlotRows || plotW < need {
		return placeholder(spec, w, h, "Chart area too small")
	}

	g := newGrid(plotW, rows)
	var xs []int
	if spec.Kind == reconcile.KindBar {
		xs = drawBars(g, spec, sc)
	} else {
		xs = drawLines(g, spec, sc)
	}

	out := []string{titleLine(spec, w)}
	for y := 0; y < rows; y++ {
		label := labels[y]
		out = append(out, strings.Repeat(" ", labelW-ansi.StringWidth(label))+paint(label, mutedColor, false)+"│"+g.line(y))
	}
	out = append(out, strings.Repeat(" ", labelW)+"└"+strings.Repeat("─", plotW))
	out = append(out, strings.Repeat(" ", labelW+1)+yearLabels(spec.Years, xs, plotW))
	out = append(out, legend(spec, w))
	return out
}

func axisLabels(spec reconcile.ChartSpec, sc scale) map[int]string {
	labels := make(map[int]string, sc.rows)
	put := func(row int, v float64) {
		if _, ok := labels[row]; !ok {
			labels[row] = metrics.Amount(v, spec.Signed())
		}
	}
	put(0, sc.hi)
	put(sc.rows-1, sc.lo)
	if sc.lo < 0 && sc.hi > 0 {
		put(sc.row(0), 0)
	}
	if sc.rows >= 7 {
		mid := (sc.rows - 1) / 2
		put(mid, sc.value(mid))
	}
	return labels
}

func columns(n, width int) []int {
	xs := make([]int, n)
	for i := range xs {
		if n == 1 {
			xs[i] = width / 2
			continue
		}
		xs[i] = int(math.Round(float64(i*(width-1)) / float64(n-1)))
	}
	return xs
}

func drawZeroRule(g *grid, sc scale) {
	if sc.lo < 0 && sc.hi > 0 {
		zr := sc.row(0)
		for x := 0; x < g.w; x++ {
			g.set(x, zr, zeroRule, mutedColor, true)
		}
	}
}

func drawLines(g *grid, spec reconcile.ChartSpec, sc scale) []int {
	xs := columns(len(spec.Years), g.w)
	drawZeroRule(g, sc)
	for _, s := range spec.Series {
		for i := 0; i+1 < len(s.Points); i++ {
			x0, x1 := xs[i], xs[i+1]
			v0, v1 := s.Points[i].Value, s.Points[i+1].Value
			dashed := spec.SegmentDashed(i)
			stroke := solidStroke
			if dashed {
				stroke = dashedStroke
			}
			for x := x0 + 1; x < x1; x++ {
				if dashed && (x-x0)%2 == 0 {
					continue
				}
				t := float64(x-x0) / float64(x1-x0)
				g.set(x, sc.row(v0+(v1-v0)*t), stroke, s.Color, false)
			}
		}
		for i, p := range s.Points {
			marker, color, faint := pointStyle(spec, s, p)
			g.set(xs[i], sc.row(p.Value), marker, color, faint)
		}
	}
	return xs
}

func pointStyle(spec reconcile.ChartSpec, s reconcile.SeriesSpec, p reconcile.Point) (rune, string, bool) {
	switch {
	case p.NotOperational:
		return idleMarker, mutedColor, true
	case spec.SignColored() && p.Negative:
		return pointMarker, lossColor, false
	case spec.SignColored():
		return pointMarker, profitColor, false
	default:
		return pointMarker, s.Color, false
	}
}

func drawBars(g *grid, spec reconcile.ChartSpec, sc scale) []int {
	n, k := len(spec.Years), len(spec.Series)
	groupW := g.w / n
	barW := max((groupW-1)/k, 1)
	xs := make([]int, n)
	drawZeroRule(g, sc)
	zero := sc.row(0)
	for i := 0; i < n; i++ {
		gx := i * groupW
		xs[i] = gx + (barW*k)/2
		glyph := barHistorical
		if i < len(spec.Projected) && spec.Projected[i] {
			glyph = barProjected
		}
		for j, s := range spec.Series {
			p := s.Points[i]
			if p.NotOperational {
				continue
			}
			top, bottom := sc.row(p.Value), zero
			if top > bottom {
				top, bottom = bottom, top
			}
			color := s.Color
			if spec.SignColored() {
				color = profitColor
				if p.Negative {
					color = lossColor
				}
			}
			for x := gx + j*barW; x < gx+(j+1)*barW; x++ {
				for y := top; y <= bottom; y++ {
					g.set(x, y, glyph, color, false)
				}
			}
		}
	}
	return xs
}

// yearLabels centres a label under each x position, dropping labels that
// would collide with the previous one.
func yearLabels(years []string, xs []int, width int) string {
	short := len(years) > 1 && width/len(years) < 7
	row := []rune(strings.Repeat(" ", width))
	next := 0
	for i, y := range years {
		label := y
		if short && strings.HasPrefix(y, "FY") && len(y) == 6 {
			label = "FY" + y[4:]
		}
		lr := []rune(label)
		start := xs[i] - len(lr)/2
		start = max(start, 0)
		if start+len(lr) > width {
			start = width - len(lr)
		}
		if start < next || start < 0 {
			continue
		}
		copy(row[start:], lr)
		next = start + len(lr) + 1
	}
	return strings.TrimRight(string(row), " ")
}

func legend(spec reconcile.ChartSpec, w int) string {
	parts := make([]string, 0, len(spec.Series)+3)
	for _, s := range spec.Series {
		parts = append(parts, paint(string(pointMarker), s.Color, false)+" "+s.Name)
	}
	if spec.SignColored() {
		parts = append(parts, paint(string(pointMarker), profitColor, false)+" profit", paint(string(pointMarker), lossColor, false)+" loss")
	}
	for _, p := range spec.Projected {
		if p {
			hint := "·· projected"
			if spec.Kind == reconcile.KindBar {
				hint = string(barProjected) + " projected"
			}
			parts = append(parts, paint(hint, mutedColor, true))
			break
		}
	}
	return ansi.Truncate(strings.Join(parts, "  "), w, "…")
}

func renderShare(spec reconcile.ChartSpec, w, h int) []string {
	lines := []string{titleLine(spec, w)}
	nameW := 0
	for _, s := range spec.Shares {
		nameW = max(nameW, ansi.StringWidth(s.Airline.Name()))
	}
	barMax := w - nameW - 9
	if barMax < 4 || h < len(spec.Shares)+1 {
		return placeholder(spec, w, h, "Chart area too small")
	}
	for _, s := range spec.Shares {
		pct := s.Percent.InexactFloat64()
		n := int(math.Round(pct / 100 * float64(barMax)))
		name := s.Airline.Name()
		line := name + strings.Repeat(" ", nameW-ansi.StringWidth(name)) + " " +
			paint(strings.Repeat(string(barHistorical), n), s.Color, false) +
			strings.Repeat(" ", barMax-n) + " " + s.Percent.StringFixed(1) + "%"
		lines = append(lines, line)
	}
	return lines
}
