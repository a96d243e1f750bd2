package dataset

var defaultDataset = Dataset{
	Airlines: []string{"IndiGo", "Air India", "SpiceJet", "Akasa Air"},
	Years: []string{
		"FY2020", "FY2021", "FY2022", "FY2023", "FY2024", "FY2025",
		"FY2026", "FY2027", "FY2028", "FY2029", "FY2030",
	},
	Data: map[AirlineID]Series{
		IndiGo: {
			Revenue: []float64{35000, 22000, 35000, 55000, 73000, 84098, 95000, 107000, 120000, 134000, 149000},
			Profit:  []float64{-2840, -5800, -1681, 5090, 8172, 7253, 8500, 10200, 12000, 13800, 15600},
			Color:   "#1F2A55",
		},
		AirIndia: {
			Revenue: []float64{28000, 15000, 22000, 38800, 65000, 78636, 88000, 105000, 125000, 148000, 175000},
			Profit:  []float64{-8556, -7000, -6000, -4440, -8000, -10859, -5000, -1000, 3000, 7500, 12000},
			Color:   "#E76F51",
		},
		SpiceJet: {
			Revenue: []float64{10000, 4500, 6500, 7500, 8497, 6736, 8500, 10500, 13000, 16000, 19500},
			Profit:  []float64{-1000, -1800, -1500, -800, -404, 48, 300, 650, 1000, 1400, 1800},
			Color:   "#F9B550",
		},
		AkasaAir: {
			Revenue: []float64{0, 0, 0, 778, 3144, 4684, 7000, 10500, 15500, 22000, 31000},
			Profit:  []float64{0, 0, 0, -744, -1670, -1983, -500, 200, 1200, 2500, 4200},
			Color:   "#7C3AED",
		},
	},
	HistoricalYears: []string{"FY2020", "FY2021", "FY2022", "FY2023", "FY2024", "FY2025"},
	ProjectedYears:  []string{"FY2026", "FY2027", "FY2028", "FY2029", "FY2030"},
}

// Default returns the compiled-in dataset. Callers get a deep copy so the
// package value can never be mutated.
func Default() *Dataset {
	return defaultDataset.Clone()
}

func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		Airlines:        append([]string(nil), d.Airlines...),
		Years:           append([]string(nil), d.Years...),
		Data:            make(map[AirlineID]Series, len(d.Data)),
		HistoricalYears: append([]string(nil), d.HistoricalYears...),
		ProjectedYears:  append([]string(nil), d.ProjectedYears...),
	}
	for id, s := range d.Data {
		out.Data[id] = Series{
			Revenue: append([]float64(nil), s.Revenue...),
			Profit:  append([]float64(nil), s.Profit...),
			Color:   s.Color,
		}
	}
	return out
}
