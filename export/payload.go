// Package export writes a snapshot of the dashboard state and the full
// dataset to JSON, YAML or a spreadsheet.
package export

import (
	"time"

	"github.com/andareed/airline-dash/dataset"
	"github.com/andareed/airline-dash/reconcile"
)

const Note = "Exported from Indian Airlines Financial Dashboard (includes Akasa Air)"

type seriesDTO struct {
	Revenue []float64 `json:"revenue" yaml:"revenue"`
	Profit  []float64 `json:"profit" yaml:"profit"`
	Color   string    `json:"color" yaml:"color"`
}

type datasetDTO struct {
	Airlines        []string        `json:"airlines" yaml:"airlines"`
	Years           []string        `json:"years" yaml:"years"`
	Data            seriesByAirline `json:"data" yaml:"data"`
	HistoricalYears []string        `json:"historical_years" yaml:"historical_years"`
	ProjectedYears  []string        `json:"projected_years" yaml:"projected_years"`
}

// Payload is the exported document.
type Payload struct {
	ExportedAt       string     `json:"exportedAt" yaml:"exportedAt"`
	ActiveTab        string     `json:"activeTab" yaml:"activeTab"`
	SelectedAirlines []string   `json:"selectedAirlines" yaml:"selectedAirlines"`
	Filter           string     `json:"filter" yaml:"filter"`
	Dataset          datasetDTO `json:"dataset" yaml:"dataset"`
	Note             string     `json:"note" yaml:"note"`
}

// NewPayload snapshots sel and ds at now. The dataset is copied, so later
// changes to ds do not leak into the payload.
func NewPayload(ds *dataset.Dataset, sel reconcile.Selection, now time.Time) Payload {
	return Payload{
		ExportedAt:       now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		ActiveTab:        sel.Tab.String(),
		SelectedAirlines: dataset.Names(sel.Airlines),
		Filter:           sel.Range.String(),
		Dataset:          toDTO(ds),
		Note:             Note,
	}
}

func toDTO(ds *dataset.Dataset) datasetDTO {
	dto := datasetDTO{
		Airlines:        append([]string(nil), ds.Airlines...),
		Years:           append([]string(nil), ds.Years...),
		Data:            make(seriesByAirline, 0, len(ds.Data)),
		HistoricalYears: append([]string(nil), ds.HistoricalYears...),
		ProjectedYears:  append([]string(nil), ds.ProjectedYears...),
	}
	for _, id := range ds.IDs() {
		s, ok := ds.Series(id)
		if !ok {
			continue
		}
		dto.Data = append(dto.Data, airlineSeries{Name: id.Name(), Series: seriesDTO{
			Revenue: append([]float64(nil), s.Revenue...),
			Profit:  append([]float64(nil), s.Profit...),
			Color:   s.Color,
		}})
	}
	return dto
}
