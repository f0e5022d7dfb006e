// Package export builds the download artifacts offered by the dashboard.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kridavyuha/forecast-dashboard/internals/forecast"

	"github.com/xuri/excelize/v2"
)

const WorkbookFilename = "forecasts.xlsx"

// CSV writes one full forecast table.
func CSV[R forecast.Row](w io.Writer, t forecast.Table[R]) error {
	return forecast.WriteCSV(w, t)
}

// TableCSV writes the table of the given player type.
func TableCSV(w io.Writer, ds *forecast.Dataset, t forecast.PlayerType) error {
	switch t {
	case forecast.Batsman:
		return CSV(w, ds.Batsmen)
	case forecast.Bowler:
		return CSV(w, ds.Bowlers)
	}
	return &forecast.UnknownPlayerTypeError{Value: string(t)}
}

// Workbook puts both tables into one workbook, one sheet per player type.
func Workbook(ds *forecast.Dataset) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", "Batsmen"); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSheet(f, "Batsmen", ds.Batsmen.Records(), forecast.ColForecastedRuns); err != nil {
		f.Close()
		return nil, err
	}

	if _, err := f.NewSheet("Bowlers"); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSheet(f, "Bowlers", ds.Bowlers.Records(), forecast.ColForecastedWickets); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func WriteXLSX(w io.Writer, ds *forecast.Dataset) error {
	f, err := Workbook(ds)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// writeSheet stores records starting at A1; the forecast column is written
// as numbers so spreadsheet formulas work on it.
func writeSheet(f *excelize.File, sheet string, records [][]string, valueColumn string) error {
	valueIdx := -1
	for i, col := range records[0] {
		if col == valueColumn {
			valueIdx = i
		}
	}

	for r, rec := range records {
		row := make([]interface{}, len(rec))
		for c, cell := range rec {
			row[c] = cell
			if r > 0 && c == valueIdx {
				if v, err := strconv.ParseFloat(cell, 64); err == nil {
					row[c] = v
				}
			}
		}
		start, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, start, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, r+1, err)
		}
	}

	for c := range records[0] {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, 18); err != nil {
			return err
		}
	}
	return nil
}
