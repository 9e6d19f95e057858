package report

import "context"

// ReportService defines the interface for attendance exports
type ReportService interface {
	// ExportAttendance renders records in a date range as a downloadable file
	ExportAttendance(ctx context.Context, req ExportRequest) (ExportFile, error)
}
