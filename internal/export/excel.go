package export

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"matchmaker/internal/pkg/match"
)

// WriteWorkbook renders match results into an xlsx workbook at path, one
// sheet per reporting year in ascending order. Years with no results get
// no sheet. The candidates column is widened and wrapped so multi-line
// candidate lists stay readable.
func WriteWorkbook(results map[int][]match.Result, path string) error {
	years := make([]int, 0, len(results))
	for year, rows := range results {
		if len(rows) == 0 {
			continue
		}
		years = append(years, year)
	}
	if len(years) == 0 {
		return fmt.Errorf("no matches found, nothing to export")
	}
	sort.Ints(years)

	wb := excelize.NewFile()
	defer wb.Close()

	wrapStyle, err := wb.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create wrap style: %w", err)
	}

	for i, year := range years {
		sheet := strconv.Itoa(year)
		if i == 0 {
			// Reuse the default sheet for the first year.
			if err := wb.SetSheetName(wb.GetSheetName(0), sheet); err != nil {
				return err
			}
		} else {
			if _, err := wb.NewSheet(sheet); err != nil {
				return err
			}
		}

		if err := writeSheet(wb, sheet, wrapStyle, results[year]); err != nil {
			return fmt.Errorf("failed to write sheet %s: %w", sheet, err)
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSheet(wb *excelize.File, sheet string, wrapStyle int, rows []match.Result) error {
	headers := []string{"name", "section_id", "person_id", "candidates"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := wb.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for i, r := range rows {
		row := i + 2
		if err := wb.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Name); err != nil {
			return err
		}
		if err := wb.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.SectionID); err != nil {
			return err
		}
		if err := wb.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.PersonID); err != nil {
			return err
		}
		if err := wb.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Candidates); err != nil {
			return err
		}
	}

	if err := wb.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}
	if err := wb.SetColWidth(sheet, "D", "D", 60); err != nil {
		return err
	}
	return wb.SetColStyle(sheet, "D", wrapStyle)
}
