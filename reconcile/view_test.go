package reconcile

import (
	"reflect"
	"testing"

	"github.com/andareed/airline-dash/dataset"
)

func TestResolveYearsHistorical(t *testing.T) {
	ds := dataset.Default()
	years, indices, err := ResolveYears(ds, Historical)
	if err != nil {
		t.Fatalf("ResolveYears: %v", err)
	}
	if !reflect.DeepEqual(years, ds.HistoricalYears) {
		t.Fatalf("got %v, want %v", years, ds.HistoricalYears)
	}
	if !reflect.DeepEqual(indices, []int{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("indices %v", indices)
	}
}

func TestResolveYearsFollowsMovedSplit(t *testing.T) {
	ds := dataset.Default()
	ds.HistoricalYears = ds.HistoricalYears[:5]
	ds.ProjectedYears = append([]string{"FY2025"}, ds.ProjectedYears...)

	years, indices, err := ResolveYears(ds, Projected)
	if err != nil {
		t.Fatalf("ResolveYears: %v", err)
	}
	if years[0] != "FY2025" || indices[0] != 5 || len(years) != 6 {
		t.Fatalf("got %v %v", years, indices)
	}
}

func TestResolveYearsUnknownLabel(t *testing.T) {
	ds := dataset.Default()
	ds.ProjectedYears = []string{"FY2031"}
	if _, _, err := ResolveYears(ds, Projected); err == nil {
		t.Fatalf("expected error for unknown label")
	}
}

func TestProjectIndiGoProjectedRevenue(t *testing.T) {
	ds := dataset.Default()
	v, err := Project(ds, []dataset.AirlineID{dataset.IndiGo}, dataset.Revenue, Projected)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	wantYears := []string{"FY2026", "FY2027", "FY2028", "FY2029", "FY2030"}
	if !reflect.DeepEqual(v.Years, wantYears) {
		t.Fatalf("years %v", v.Years)
	}
	want := []float64{95000, 107000, 120000, 134000, 149000}
	if len(v.Series) != 1 || !reflect.DeepEqual(v.Series[0].Values, want) {
		t.Fatalf("series %+v", v.Series)
	}
}

func TestProjectKeepsIndexAlignment(t *testing.T) {
	ds := dataset.Default()
	for _, r := range []YearRange{AllYears, Historical, Projected} {
		for _, m := range []dataset.Metric{dataset.Revenue, dataset.Profit} {
			v, err := Project(ds, ds.IDs(), m, r)
			if err != nil {
				t.Fatalf("Project(%s, %s): %v", r, m, err)
			}
			for _, sv := range v.Series {
				src := ds.Data[sv.Airline].Values(m)
				for k, i := range v.Indices {
					if sv.Values[k] != src[i] {
						t.Fatalf("%s %s %s: position %d = %v, want %v", r, m, sv.Airline, k, sv.Values[k], src[i])
					}
					if v.Years[k] != ds.Years[i] {
						t.Fatalf("year %s at %d, want %s", v.Years[k], k, ds.Years[i])
					}
				}
			}
		}
	}
}

func TestProjectKeepsSelectionOrder(t *testing.T) {
	ds := dataset.Default()
	v, err := Project(ds, []dataset.AirlineID{dataset.SpiceJet, dataset.IndiGo}, dataset.Revenue, AllYears)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if v.Series[0].Airline != dataset.SpiceJet || v.Series[1].Airline != dataset.IndiGo {
		t.Fatalf("order not kept: %v, %v", v.Series[0].Airline, v.Series[1].Airline)
	}
}

func TestProjectEmptySelection(t *testing.T) {
	ds := dataset.Default()
	v, err := Project(ds, nil, dataset.Profit, Historical)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if len(v.Series) != 0 {
		t.Fatalf("expected no series, got %d", len(v.Series))
	}
}

func TestParseHelpers(t *testing.T) {
	if tab, err := ParseTab("Projections"); err != nil || tab != Projections {
		t.Fatalf("ParseTab = %v, %v", tab, err)
	}
	if _, err := ParseTab("settings"); err == nil {
		t.Fatalf("expected error")
	}
	if r, err := ParseYearRange("historical"); err != nil || r != Historical {
		t.Fatalf("ParseYearRange = %v, %v", r, err)
	}
	if c, err := ParseChartType("BAR"); err != nil || c != Bar {
		t.Fatalf("ParseChartType = %v, %v", c, err)
	}
	if Insights.Next() != Overview || Overview.Prev() != Insights {
		t.Fatalf("tab wrap broken")
	}
	if Projected.Next() != AllYears {
		t.Fatalf("range wrap broken")
	}
}
