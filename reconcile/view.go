package reconcile

import (
	"fmt"

	"github.com/andareed/airline-dash/dataset"
)

// View is the projection of the dataset for one metric and year range.
type View struct {
	Years   []string
	Indices []int
	Series  []SeriesView
}

type SeriesView struct {
	Airline dataset.AirlineID
	Values  []float64
}

// ResolveYears maps a year range to its labels and their positions in the
// dataset. Partitions are looked up by label so a moved split point is
// picked up without code changes.
func ResolveYears(ds *dataset.Dataset, r YearRange) ([]string, []int, error) {
	var labels []string
	switch r {
	case Historical:
		labels = ds.HistoricalYears
	case Projected:
		labels = ds.ProjectedYears
	default:
		invariant(r.Valid(), "unknown year range %d", int(r))
		labels = ds.Years
	}
	years := make([]string, 0, len(labels))
	indices := make([]int, 0, len(labels))
	for _, y := range labels {
		i := ds.IndexOf(y)
		if i < 0 {
			return nil, nil, fmt.Errorf("resolve %s: %w: %s", r, dataset.ErrUnknownYear, y)
		}
		years = append(years, y)
		indices = append(indices, i)
	}
	return years, indices, nil
}

// Project restricts each airline's series to the year range, keeping the
// order of airlines as given. Airlines missing from the dataset are
// skipped.
func Project(ds *dataset.Dataset, airlines []dataset.AirlineID, m dataset.Metric, r YearRange) (View, error) {
	years, indices, err := ResolveYears(ds, r)
	if err != nil {
		return View{}, err
	}
	v := View{Years: years, Indices: indices, Series: make([]SeriesView, 0, len(airlines))}
	for _, id := range airlines {
		s, ok := ds.Series(id)
		if !ok {
			continue
		}
		src := s.Values(m)
		vals := make([]float64, len(indices))
		for k, i := range indices {
			vals[k] = src[i]
		}
		v.Series = append(v.Series, SeriesView{Airline: id, Values: vals})
	}
	return v, nil
}
