package utils

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of an exported workbook.
type Sheet struct {
	Name    string
	Title   string
	Headers []string
	Rows    [][]any
}

// BuildWorkbook writes the sheets into an xlsx document and returns its bytes.
func BuildWorkbook(sheets []Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook needs at least one sheet")
	}

	f := excelize.NewFile()
	defer f.Close()

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})

	for _, sheet := range sheets {
		if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", sheet.Name, err)
		}

		_ = f.SetCellValue(sheet.Name, "A1", sheet.Title)
		_ = f.SetCellStyle(sheet.Name, "A1", "A1", titleStyle)

		for col, header := range sheet.Headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 3)
			_ = f.SetCellValue(sheet.Name, cell, header)
			_ = f.SetCellStyle(sheet.Name, cell, cell, headerStyle)
		}
		for r, row := range sheet.Rows {
			for col, value := range row {
				cell, _ := excelize.CoordinatesToCellName(col+1, r+4)
				_ = f.SetCellValue(sheet.Name, cell, value)
			}
		}

		if n := len(sheet.Headers); n > 0 {
			last, _ := excelize.ColumnNumberToName(n)
			_ = f.SetColWidth(sheet.Name, "A", last, 22)
		}
	}

	if sheets[0].Name != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}
	if index, err := f.GetSheetIndex(sheets[0].Name); err == nil {
		f.SetActiveSheet(index)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
