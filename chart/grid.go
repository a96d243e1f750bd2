package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	r     rune
	color string
	faint bool
}

// grid is the plot area, addressed x right and y down.
type grid struct {
	w, h  int
	cells [][]cell
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([][]cell, h)}
	for y := range g.cells {
		g.cells[y] = make([]cell, w)
		for x := range g.cells[y] {
			g.cells[y][x] = cell{r: ' '}
		}
	}
	return g
}

func (g *grid) set(x, y int, r rune, color string, faint bool) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y][x] = cell{r: r, color: color, faint: faint}
}

func (g *grid) at(x, y int) rune {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return 0
	}
	return g.cells[y][x].r
}

// line renders row y, styling runs of cells that share a colour.
func (g *grid) line(y int) string {
	var b strings.Builder
	row := g.cells[y]
	start := 0
	for x := 1; x <= len(row); x++ {
		if x < len(row) && row[x].color == row[start].color && row[x].faint == row[start].faint {
			continue
		}
		var run strings.Builder
		for _, c := range row[start:x] {
			run.WriteRune(c.r)
		}
		b.WriteString(paint(run.String(), row[start].color, row[start].faint))
		start = x
	}
	return b.String()
}

func paint(s, color string, faint bool) string {
	if color == "" && !faint {
		return s
	}
	st := lipgloss.NewStyle()
	if color != "" {
		st = st.Foreground(lipgloss.Color(color))
	}
	if faint {
		st = st.Faint(true)
	}
	return st.Render(s)
}
