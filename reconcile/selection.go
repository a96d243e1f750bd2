// Package reconcile decides which charts the dashboard needs for the
// current selection and keeps the set of built chart instances in step
// with it.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/andareed/airline-dash/dataset"
)

type Tab int

const (
	Overview Tab = iota
	RevenueTab
	ProfitTab
	Projections
	Insights
)

var tabNames = []string{"overview", "revenue", "profit", "projections", "insights"}

var tabTitles = []string{"Overview", "Revenue", "Profit / Loss", "Projections", "Insights"}

func AllTabs() []Tab {
	return []Tab{Overview, RevenueTab, ProfitTab, Projections, Insights}
}

func (t Tab) Valid() bool { return t >= Overview && t <= Insights }

func (t Tab) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tab(%d)", int(t))
	}
	return tabNames[t]
}

func (t Tab) Title() string {
	if !t.Valid() {
		return ""
	}
	return tabTitles[t]
}

// Next and Prev wrap around the tab bar.
func (t Tab) Next() Tab { return Tab((int(t) + 1) % len(tabNames)) }
func (t Tab) Prev() Tab { return Tab((int(t) + len(tabNames) - 1) % len(tabNames)) }

func ParseTab(s string) (Tab, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range tabNames {
		if n == s {
			return Tab(i), nil
		}
	}
	return Overview, fmt.Errorf("unknown tab %q (want one of %s)", s, strings.Join(tabNames, ", "))
}

type YearRange int

const (
	AllYears YearRange = iota
	Historical
	Projected
)

var rangeNames = []string{"all", "historical", "projected"}

func (r YearRange) Valid() bool { return r >= AllYears && r <= Projected }

func (r YearRange) String() string {
	if !r.Valid() {
		return fmt.Sprintf("range(%d)", int(r))
	}
	return rangeNames[r]
}

// Next cycles all -> historical -> projected -> all.
func (r YearRange) Next() YearRange { return YearRange((int(r) + 1) % len(rangeNames)) }

func ParseYearRange(s string) (YearRange, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range rangeNames {
		if n == s {
			return YearRange(i), nil
		}
	}
	return AllYears, fmt.Errorf("unknown year range %q (want one of %s)", s, strings.Join(rangeNames, ", "))
}

type ChartType int

const (
	Line ChartType = iota
	Bar
)

func (c ChartType) String() string {
	if c == Bar {
		return "bar"
	}
	return "line"
}

func (c ChartType) Toggle() ChartType {
	if c == Bar {
		return Line
	}
	return Bar
}

func ParseChartType(s string) (ChartType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return Line, nil
	case "bar":
		return Bar, nil
	}
	return Line, fmt.Errorf("unknown chart type %q (want line or bar)", s)
}

// Selection is the UI's current choice of tab, airlines and years. The
// airline order is display order.
type Selection struct {
	Tab          Tab
	Airlines     []dataset.AirlineID
	Range        YearRange
	RevenueChart ChartType
}

// DefaultSelection starts on the overview with every airline and year.
func DefaultSelection(ds *dataset.Dataset) Selection {
	return Selection{
		Tab:      Overview,
		Airlines: ds.IDs(),
		Range:    AllYears,
	}
}

func (s Selection) Clone() Selection {
	s.Airlines = append([]dataset.AirlineID(nil), s.Airlines...)
	return s
}
