// Package dataset holds the fixed airline financial figures the dashboard
// renders. All monetary values are in crore rupees.
package dataset

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrMisaligned     = errors.New("series length does not match year labels")
	ErrUnknownAirline = errors.New("airline name has no identifier")
	ErrUnknownYear    = errors.New("year label not in dataset")
)

// Metric selects one of the per-airline series.
type Metric int

const (
	Revenue Metric = iota
	Profit
)

func (m Metric) String() string {
	if m == Profit {
		return "profit"
	}
	return "revenue"
}

// Series is one airline's record. Index i of Revenue and Profit is year i.
type Series struct {
	Revenue []float64
	Profit  []float64
	Color   string
}

func (s Series) Values(m Metric) []float64 {
	if m == Profit {
		return s.Profit
	}
	return s.Revenue
}

// OperationalFrom returns the first year index with non-zero revenue, or
// the series length when the airline never operated.
func (s Series) OperationalFrom() int {
	for i, v := range s.Revenue {
		if v != 0 {
			return i
		}
	}
	return len(s.Revenue)
}

// Operational reports whether the airline was flying in year index i.
func (s Series) Operational(i int) bool {
	return i >= s.OperationalFrom()
}

type Dataset struct {
	Airlines        []string
	Years           []string
	Data            map[AirlineID]Series
	HistoricalYears []string
	ProjectedYears  []string
}

// Validate checks the alignment invariant and that every declared airline
// name maps to an identifier with data.
func (d *Dataset) Validate() error {
	for _, name := range d.Airlines {
		id, ok := Lookup(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAirline, name)
		}
		s, ok := d.Data[id]
		if !ok {
			return fmt.Errorf("no series for %s", name)
		}
		if len(s.Revenue) != len(d.Years) {
			return fmt.Errorf("%s revenue has %d values for %d years: %w", name, len(s.Revenue), len(d.Years), ErrMisaligned)
		}
		if len(s.Profit) != len(d.Years) {
			return fmt.Errorf("%s profit has %d values for %d years: %w", name, len(s.Profit), len(d.Years), ErrMisaligned)
		}
	}
	for _, y := range d.HistoricalYears {
		if d.IndexOf(y) < 0 {
			return fmt.Errorf("historical %w: %s", ErrUnknownYear, y)
		}
	}
	for _, y := range d.ProjectedYears {
		if d.IndexOf(y) < 0 {
			return fmt.Errorf("projected %w: %s", ErrUnknownYear, y)
		}
	}
	return nil
}

// IDs returns the declared airlines as identifiers, in declaration order.
func (d *Dataset) IDs() []AirlineID {
	return ParseAirlines(d.Airlines)
}

func (d *Dataset) Series(id AirlineID) (Series, bool) {
	s, ok := d.Data[id]
	return s, ok
}

func (d *Dataset) IndexOf(year string) int {
	return slices.Index(d.Years, year)
}

func (d *Dataset) IsProjected(year string) bool {
	return slices.Contains(d.ProjectedYears, year)
}

// Value returns the metric for one airline in one year.
func (d *Dataset) Value(id AirlineID, m Metric, year string) (float64, error) {
	s, ok := d.Data[id]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownAirline, id)
	}
	i := d.IndexOf(year)
	if i < 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownYear, year)
	}
	return s.Values(m)[i], nil
}

// LastHistorical returns the newest historical year label.
func (d *Dataset) LastHistorical() string {
	if len(d.HistoricalYears) == 0 {
		return ""
	}
	return d.HistoricalYears[len(d.HistoricalYears)-1]
}

// Previous returns the label before year, or "" for the first year.
func (d *Dataset) Previous(year string) string {
	i := d.IndexOf(year)
	if i <= 0 {
		return ""
	}
	return d.Years[i-1]
}
