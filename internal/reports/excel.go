package reports

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the MIME type for spreadsheet downloads
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Report"

// Filename builds the download name for an exported report, e.g.
// "outgoing-stats-2024-6.xlsx". month 0 (whole year) renders as "all".
func Filename(report string, month, year int) string {
	monthPart := "all"
	if month > 0 {
		monthPart = strconv.Itoa(month)
	}
	return fmt.Sprintf("%s-%d-%s.xlsx", report, year, monthPart)
}

// WriteExcel renders a Table into a workbook: one header row, one row per
// group, and a trailing totals row.
func WriteExcel(t *Table) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := writeRow(f, 1, header); err != nil {
		return nil, err
	}

	rowNum := 2
	for _, row := range t.Rows {
		cells := make([]interface{}, 0, len(t.Columns))
		cells = append(cells, row.Label)
		for _, c := range t.Columns[1 : len(t.Columns)-1] {
			cells = append(cells, row.Cells[c])
		}
		cells = append(cells, row.Total)
		if err := writeRow(f, rowNum, cells); err != nil {
			return nil, err
		}
		rowNum++
	}

	totals := make([]interface{}, 0, len(t.Columns))
	totals = append(totals, TotalColumn)
	for _, c := range t.Columns[1 : len(t.Columns)-1] {
		totals = append(totals, t.Totals[c])
	}
	totals = append(totals, t.Totals[TotalColumn])
	if err := writeRow(f, rowNum, totals); err != nil {
		return nil, err
	}

	return f, nil
}

func writeRow(f *excelize.File, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell coordinates: %w", err)
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}
