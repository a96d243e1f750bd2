package reconcile

import (
	"fmt"

	"github.com/andareed/airline-dash/dataset"
	"github.com/andareed/airline-dash/logging"
	"github.com/andareed/airline-dash/metrics"
)

// ChartID is the stable identity of one on-screen chart.
type ChartID string

const (
	OverviewRevenue  ChartID = "overview-revenue"
	OverviewProfit   ChartID = "overview-profit"
	RevenueChart     ChartID = "revenue"
	ProfitChart      ChartID = "profit"
	ProjectedRevenue ChartID = "projected-revenue"
	ProjectedProfit  ChartID = "projected-profit"
	MarketShare      ChartID = "market-share"
)

type Kind int

const (
	KindLine Kind = iota
	KindBar
	KindShare
)

// marketShareYear is the year the insights doughnut splits revenue for.
const marketShareYear = "FY2024"

type chartDef struct {
	id      ChartID
	tab     Tab
	title   string
	axis    string
	metric  dataset.Metric
	kind    Kind
	dynamic bool
	// years is the fixed range for static charts.
	years YearRange
}

var catalogue = []chartDef{
	{id: OverviewRevenue, tab: Overview, title: "Revenue Trend", axis: "Revenue (₹ Cr)", metric: dataset.Revenue, years: AllYears},
	{id: OverviewProfit, tab: Overview, title: "Profit / Loss Trend", axis: "Profit / Loss (₹ Cr)", metric: dataset.Profit, years: AllYears},
	{id: RevenueChart, tab: RevenueTab, title: "Revenue Comparison", axis: "Revenue (₹ Cr)", metric: dataset.Revenue, dynamic: true},
	{id: ProfitChart, tab: ProfitTab, title: "Profit / Loss Analysis", axis: "Profit / Loss (₹ Cr)", metric: dataset.Profit, dynamic: true},
	{id: ProjectedRevenue, tab: Projections, title: "Projected Revenue", axis: "Projected Revenue (₹ Cr)", metric: dataset.Revenue, years: Projected},
	{id: ProjectedProfit, tab: Projections, title: "Projected Profit / Loss", axis: "Projected Profit / Loss (₹ Cr)", metric: dataset.Profit, years: Projected},
	{id: MarketShare, tab: Insights, title: "Market Share by Revenue", kind: KindShare, metric: dataset.Revenue},
}

func lookupChart(id ChartID) (chartDef, bool) {
	for _, d := range catalogue {
		if d.id == id {
			return d, true
		}
	}
	return chartDef{}, false
}

// ChartsFor lists the charts shown on a tab, top to bottom.
func ChartsFor(t Tab) []ChartID {
	var ids []ChartID
	for _, d := range catalogue {
		if d.tab == t {
			ids = append(ids, d.id)
		}
	}
	return ids
}

// AllCharts lists every chart identity in layout order.
func AllCharts() []ChartID {
	ids := make([]ChartID, len(catalogue))
	for i, d := range catalogue {
		ids[i] = d.id
	}
	return ids
}

// IsDynamic reports whether a chart follows the airline and year filters.
func IsDynamic(id ChartID) bool {
	d, ok := lookupChart(id)
	return ok && d.dynamic
}

// Point is one plotted value with its display tags.
type Point struct {
	Year           string
	Value          float64
	Negative       bool
	NotOperational bool
	Label          string
	Period         string
}

type SeriesSpec struct {
	Airline dataset.AirlineID
	Name    string
	Color   string
	Points  []Point
}

// ChartSpec is everything a chart instance needs to draw itself.
type ChartSpec struct {
	ID      ChartID
	Kind    Kind
	Title   string
	Axis    string
	Metric  dataset.Metric
	Dynamic bool
	Years   []string
	// Projected marks each year label that belongs to the forecast.
	Projected []bool
	Series    []SeriesSpec
	Shares    []metrics.Share
}

// SignColored reports whether points are coloured by sign rather than by
// airline.
func (s ChartSpec) SignColored() bool { return s.Metric == dataset.Profit }

// Signed reports whether axis values carry an explicit sign.
func (s ChartSpec) Signed() bool { return s.Metric == dataset.Profit && s.Kind != KindShare }

// SegmentDashed reports whether the line from year i to year i+1 is drawn
// dashed. Segments leaving a projected year are dashed.
func (s ChartSpec) SegmentDashed(i int) bool {
	return i >= 0 && i < len(s.Projected) && s.Projected[i]
}

// Empty is true when there is nothing to draw: no airlines, or a year
// range that resolved to no labels.
func (s ChartSpec) Empty() bool {
	if s.Kind == KindShare {
		return len(s.Shares) == 0
	}
	return len(s.Series) == 0 || len(s.Years) == 0
}

// Plan returns the chart specs the active tab needs for sel. It reads the
// dataset only and returns the same specs for the same inputs.
func Plan(ds *dataset.Dataset, sel Selection) []ChartSpec {
	if !invariant(sel.Tab.Valid(), "unknown tab %d", int(sel.Tab)) {
		return nil
	}
	var specs []ChartSpec
	for _, d := range catalogue {
		if d.tab != sel.Tab {
			continue
		}
		spec, err := buildSpec(ds, d, sel)
		if err != nil {
			logging.Warnf("reconcile: plan %s: %v", d.id, err)
			continue
		}
		specs = append(specs, spec)
	}
	return specs
}

// PlanChart returns the spec for a single chart regardless of the active
// tab.
func PlanChart(ds *dataset.Dataset, id ChartID, sel Selection) (ChartSpec, error) {
	d, ok := lookupChart(id)
	if !invariant(ok, "unknown chart %q", id) {
		return ChartSpec{}, ErrUnknownChart
	}
	return buildSpec(ds, d, sel)
}

func buildSpec(ds *dataset.Dataset, d chartDef, sel Selection) (ChartSpec, error) {
	spec := ChartSpec{
		ID:      d.id,
		Kind:    d.kind,
		Title:   d.title,
		Axis:    d.axis,
		Metric:  d.metric,
		Dynamic: d.dynamic,
	}

	if d.kind == KindShare {
		year := marketShareYear
		if ds.IndexOf(year) < 0 {
			year = ds.LastHistorical()
		}
		shares, err := metrics.MarketShare(ds, year)
		if err != nil {
			return ChartSpec{}, err
		}
		spec.Title = fmt.Sprintf("%s (%s)", d.title, year)
		spec.Years = []string{year}
		spec.Shares = shares
		return spec, nil
	}

	airlines := ds.IDs()
	years := d.years
	if d.dynamic {
		airlines = validAirlines(sel.Airlines)
		years = sel.Range
		if d.id == RevenueChart && sel.RevenueChart == Bar {
			spec.Kind = KindBar
		}
	}

	view, err := Project(ds, airlines, d.metric, years)
	if err != nil {
		return ChartSpec{}, err
	}
	spec.Years = view.Years
	if !d.dynamic && len(view.Years) > 0 {
		spec.Title = fmt.Sprintf("%s (%s-%s)", d.title, view.Years[0], view.Years[len(view.Years)-1])
	}
	spec.Projected = make([]bool, len(view.Years))
	for i, y := range view.Years {
		spec.Projected[i] = ds.IsProjected(y)
	}
	for _, sv := range view.Series {
		series, _ := ds.Series(sv.Airline)
		ss := SeriesSpec{
			Airline: sv.Airline,
			Name:    sv.Airline.Name(),
			Color:   series.Color,
			Points:  make([]Point, len(sv.Values)),
		}
		for k, v := range sv.Values {
			idx := view.Indices[k]
			ss.Points[k] = Point{
				Year:           view.Years[k],
				Value:          v,
				Negative:       v < 0,
				NotOperational: metrics.IsNotOperational(series, d.metric, idx),
				Label:          metrics.PointLabel(ds, sv.Airline, d.metric, idx),
				Period:         metrics.Period(ds, view.Years[k]),
			}
		}
		spec.Series = append(spec.Series, ss)
	}
	return spec, nil
}

func validAirlines(ids []dataset.AirlineID) []dataset.AirlineID {
	out := make([]dataset.AirlineID, 0, len(ids))
	seen := make(map[dataset.AirlineID]bool, len(ids))
	for _, id := range ids {
		if !id.Valid() || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
