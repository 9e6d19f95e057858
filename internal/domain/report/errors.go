package report

import "errors"

var (
	ErrEmptyExportRange       = errors.New("no attendance records for the given filters")
	ErrUnsupportedFormat      = errors.New("unsupported export format")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
