package report

import (
	"bytes"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance"

// RenderXLSX writes the same columns as RenderCSV into a single sheet.
func RenderXLSX(rows []report.ExportRow, cal calendar.Calendar) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	widths := []float64{12, 24, 14, 18, 10, 10, 12}
	for i, w := range widths {
		col := colName(i)
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return nil, err
		}
	}

	for i, title := range columns {
		if err := f.SetCellValue(sheetName, cell(colName(i), 1), title); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", cell(colName(len(columns)-1), 1), headerStyle); err != nil {
		return nil, err
	}

	for r, row := range rows {
		for c, value := range cells(row, cal) {
			if err := f.SetCellValue(sheetName, cell(colName(c), r+2), value); err != nil {
				return nil, err
			}
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
