package report

import (
	"bytes"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/calendar"
)

// RenderCSV writes a header line and one line per row. Every field is quoted
// with embedded quotes doubled; lines end with \n.
func RenderCSV(rows []report.ExportRow, cal calendar.Calendar) ([]byte, error) {
	var buf bytes.Buffer
	writeLine(&buf, columns)
	for _, row := range rows {
		buf.WriteByte('\n')
		writeLine(&buf, cells(row, cal))
	}
	return buf.Bytes(), nil
}

func writeLine(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
		buf.WriteByte('"')
	}
}
