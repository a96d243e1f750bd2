package metrics

import (
	"fmt"

	"github.com/andareed/airline-dash/dataset"
	"github.com/shopspring/decimal"
)

// Card is one header tile: an airline's revenue for a year and its change
// against the year before.
type Card struct {
	Airline dataset.AirlineID
	Slug    string
	Year    string
	Revenue float64
	Change  Change
}

func (c Card) RevenueLabel() string { return Currency(c.Revenue) }

// Cards builds one card per declared airline for year. Airlines with no
// previous year get a not-applicable change.
func Cards(ds *dataset.Dataset, year string) ([]Card, error) {
	prevYear := ds.Previous(year)
	cards := make([]Card, 0, len(ds.Airlines))
	for _, id := range ds.IDs() {
		cur, err := ds.Value(id, dataset.Revenue, year)
		if err != nil {
			return nil, fmt.Errorf("card for %s: %w", id, err)
		}
		card := Card{Airline: id, Slug: id.Slug(), Year: year, Revenue: cur}
		if prevYear != "" {
			prev, err := ds.Value(id, dataset.Revenue, prevYear)
			if err != nil {
				return nil, fmt.Errorf("card for %s: %w", id, err)
			}
			card.Change = PercentChange(prev, cur)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Share is one airline's slice of total revenue.
type Share struct {
	Airline dataset.AirlineID
	Percent decimal.Decimal
	Color   string
}

func (s Share) String() string {
	return fmt.Sprintf("%s: %s%%", s.Airline.Name(), s.Percent.StringFixed(1))
}

// MarketShare splits year's revenue across the declared airlines. A year
// with no revenue at all returns no shares.
func MarketShare(ds *dataset.Dataset, year string) ([]Share, error) {
	ids := ds.IDs()
	total := decimal.Zero
	values := make([]decimal.Decimal, len(ids))
	for i, id := range ids {
		v, err := ds.Value(id, dataset.Revenue, year)
		if err != nil {
			return nil, fmt.Errorf("market share: %w", err)
		}
		values[i] = decimal.NewFromFloat(v)
		total = total.Add(values[i])
	}
	if total.IsZero() {
		return nil, nil
	}
	shares := make([]Share, len(ids))
	for i, id := range ids {
		s, _ := ds.Series(id)
		shares[i] = Share{
			Airline: id,
			Percent: values[i].Div(total).Mul(hundred).Round(1),
			Color:   s.Color,
		}
	}
	return shares, nil
}

// Outlook summarises where an airline is heading over the projection
// window.
type Outlook struct {
	Airline dataset.AirlineID
	// Growth is revenue CAGR from the last historical year to the final year.
	Growth Change
	// ProfitableFrom is the first year from which profit never drops below
	// zero again, or "" when the final year is still loss-making.
	ProfitableFrom string
}

func GrowthOutlook(ds *dataset.Dataset) []Outlook {
	base := ds.IndexOf(ds.LastHistorical())
	last := len(ds.Years) - 1
	out := make([]Outlook, 0, len(ds.Airlines))
	for _, id := range ds.IDs() {
		s, _ := ds.Series(id)
		o := Outlook{Airline: id}
		if base >= 0 && last > base {
			o.Growth = CAGR(s.Revenue[base], s.Revenue[last], last-base)
		}
		o.ProfitableFrom = profitableFrom(ds, s)
		out = append(out, o)
	}
	return out
}

func profitableFrom(ds *dataset.Dataset, s dataset.Series) string {
	from := -1
	for i := len(s.Profit) - 1; i >= 0; i-- {
		if s.Profit[i] < 0 || !s.Operational(i) {
			break
		}
		from = i
	}
	if from < 0 {
		return ""
	}
	return ds.Years[from]
}
