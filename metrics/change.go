// Package metrics derives the figures shown around the charts: year over
// year changes, growth rates, market share and display strings.
package metrics

import (
	"math"

	"github.com/shopspring/decimal"
)

// Sign tags a derived number for colouring.
type Sign int

const (
	Positive Sign = iota
	Negative
	NotApplicable
)

func (s Sign) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "n/a"
	}
}

// Change is a percentage rounded to one decimal place. A zero Change with
// Applicable unset means the figure could not be computed, e.g. a zero
// baseline.
type Change struct {
	Percent    decimal.Decimal
	Applicable bool
}

var hundred = decimal.NewFromInt(100)

// PercentChange is (cur-prev)/|prev|*100. A zero baseline yields a
// not-applicable Change for every cur.
func PercentChange(prev, cur float64) Change {
	if prev == 0 || math.IsNaN(prev) || math.IsNaN(cur) || math.IsInf(prev, 0) || math.IsInf(cur, 0) {
		return Change{}
	}
	p := decimal.NewFromFloat(prev)
	c := decimal.NewFromFloat(cur)
	pct := c.Sub(p).Div(p.Abs()).Mul(hundred).Round(1)
	return Change{Percent: pct, Applicable: true}
}

// CAGR is the compound annual growth rate between start and end over the
// given number of periods. Non-positive bases are not applicable.
func CAGR(start, end float64, periods int) Change {
	if start <= 0 || end < 0 || periods <= 0 {
		return Change{}
	}
	rate := math.Pow(end/start, 1/float64(periods)) - 1
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return Change{}
	}
	return Change{Percent: decimal.NewFromFloat(rate).Mul(hundred).Round(1), Applicable: true}
}

func (c Change) Sign() Sign {
	if !c.Applicable {
		return NotApplicable
	}
	if c.Percent.IsNegative() {
		return Negative
	}
	return Positive
}

func (c Change) Float() float64 {
	f, _ := c.Percent.Float64()
	return f
}

// String renders "+15.2%", "-3.0%" or "N/A".
func (c Change) String() string {
	if !c.Applicable {
		return "N/A"
	}
	s := c.Percent.StringFixed(1)
	if !c.Percent.IsNegative() {
		s = "+" + s
	}
	return s + "%"
}
