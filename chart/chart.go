// Package chart draws dashboard charts as terminal text.
package chart

import (
	"fmt"

	"github.com/andareed/airline-dash/logging"
	"github.com/andareed/airline-dash/reconcile"
)

// Chart is a built chart. It renders eagerly on build and on every resize.
type Chart struct {
	spec      reconcile.ChartSpec
	width     int
	height    int
	rendered  string
	destroyed bool
}

func New(spec reconcile.ChartSpec, width, height int) *Chart {
	c := &Chart{spec: spec}
	c.Resize(width, height)
	return c
}

func (c *Chart) Resize(width, height int) {
	if c == nil || c.destroyed {
		return
	}
	c.width, c.height = width, height
	c.rendered = render(c.spec, width, height)
}

func (c *Chart) View() string {
	if c == nil || c.destroyed {
		return ""
	}
	return c.rendered
}

func (c *Chart) Destroy() {
	if c == nil {
		return
	}
	c.destroyed = true
	c.rendered = ""
}

func (c *Chart) Spec() reconcile.ChartSpec { return c.spec }

func (c *Chart) Size() (int, int) { return c.width, c.height }

// Years is the number of x positions a cursor can visit.
func (c *Chart) Years() int { return len(c.spec.Years) }

// Tooltip lists the hover details for year index i.
func (c *Chart) Tooltip(i int) []string {
	if c == nil || c.destroyed {
		return nil
	}
	if c.spec.Kind == reconcile.KindShare {
		lines := make([]string, 0, len(c.spec.Shares))
		for _, s := range c.spec.Shares {
			lines = append(lines, s.String())
		}
		return lines
	}
	if i < 0 || i >= len(c.spec.Years) {
		return nil
	}
	lines := []string{"Year: " + c.spec.Years[i]}
	period := ""
	for _, s := range c.spec.Series {
		p := s.Points[i]
		lines = append(lines, p.Label)
		period = p.Period
	}
	if period != "" {
		lines = append(lines, period)
	}
	return lines
}

type size struct{ w, h int }

// Builder builds charts onto mounted surfaces. A chart whose surface was
// never mounted cannot be built.
type Builder struct {
	surfaces map[reconcile.ChartID]size
}

func NewBuilder() *Builder {
	return &Builder{surfaces: make(map[reconcile.ChartID]size)}
}

// Mount records the on-screen area for a chart, replacing any earlier one.
func (b *Builder) Mount(id reconcile.ChartID, width, height int) {
	b.surfaces[id] = size{w: width, h: height}
}

func (b *Builder) Unmount(id reconcile.ChartID) {
	delete(b.surfaces, id)
}

func (b *Builder) Mounted(id reconcile.ChartID) bool {
	_, ok := b.surfaces[id]
	return ok
}

func (b *Builder) Build(spec reconcile.ChartSpec) (reconcile.Chart, error) {
	s, ok := b.surfaces[spec.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", reconcile.ErrNoSurface, spec.ID)
	}
	logging.Debugf("chart: build %s %dx%d series=%d", spec.ID, s.w, s.h, len(spec.Series))
	return New(spec, s.w, s.h), nil
}
