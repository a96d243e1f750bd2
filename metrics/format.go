package metrics

import (
	"math"

	"github.com/andareed/airline-dash/dataset"
	"github.com/dustin/go-humanize"
)

const (
	currencySymbol = "₹"
	notOperational = "Not operational"
)

// Currency renders an amount in crore, e.g. "₹84,098 Cr".
func Currency(v float64) string {
	return Amount(v, false) + " Cr"
}

// Amount renders a rupee figure without the unit. Signed amounts carry a
// leading "+" when non-negative; negative amounts always carry "-".
func Amount(v float64, signed bool) string {
	n := int64(math.Round(math.Abs(v)))
	s := currencySymbol + humanize.Comma(n)
	switch {
	case v < 0 && n != 0:
		return "-" + s
	case signed:
		return "+" + s
	default:
		return s
	}
}

// PointLabel is the hover text for one data point. Zero values before an
// airline started flying read "Not operational"; zeros afterwards are real
// figures.
func PointLabel(ds *dataset.Dataset, id dataset.AirlineID, m dataset.Metric, yearIdx int) string {
	s, ok := ds.Series(id)
	if !ok || yearIdx < 0 || yearIdx >= len(ds.Years) {
		return ""
	}
	v := s.Values(m)[yearIdx]
	if IsNotOperational(s, m, yearIdx) {
		return id.Name() + ": " + notOperational
	}
	return id.Name() + ": " + Amount(v, m == dataset.Profit) + " Cr"
}

// IsNotOperational reports a placeholder zero in a pre-operational year.
func IsNotOperational(s dataset.Series, m dataset.Metric, yearIdx int) bool {
	vals := s.Values(m)
	if yearIdx < 0 || yearIdx >= len(vals) {
		return false
	}
	return vals[yearIdx] == 0 && !s.Operational(yearIdx)
}

// Period labels a year as historical or projected.
func Period(ds *dataset.Dataset, year string) string {
	if ds.IsProjected(year) {
		return "(Projected Data)"
	}
	return "(Historical Data)"
}
