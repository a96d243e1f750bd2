package export

import (
	"fmt"
	"io"

	"github.com/andareed/airline-dash/dataset"
	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

func writeXLSX(w io.Writer, p Payload, ds *dataset.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("xlsx summary sheet: %w", err)
	}
	rows := [][]any{
		{"Exported at", p.ExportedAt},
		{"Active tab", p.ActiveTab},
		{"Filter", p.Filter},
		{"Note", p.Note},
		{},
		{"Selected airlines"},
	}
	for _, name := range p.SelectedAirlines {
		rows = append(rows, []any{name})
	}
	if err := setRows(f, summarySheet, rows); err != nil {
		return err
	}

	for _, id := range ds.IDs() {
		s, _ := ds.Series(id)
		sheet := id.Slug()
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("xlsx sheet %s: %w", sheet, err)
		}
		rows := [][]any{{"Year", "Revenue (₹ Cr)", "Profit / Loss (₹ Cr)", "Period"}}
		for i, year := range ds.Years {
			period := "historical"
			if ds.IsProjected(year) {
				period = "projected"
			}
			rows = append(rows, []any{year, s.Revenue[i], s.Profit[i], period})
		}
		if err := setRows(f, sheet, rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("xlsx %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
