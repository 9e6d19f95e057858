package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Export handles GET /attendance/export
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := report.ExportRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		Format:    report.Format(query.Get("format")),
	}
	if code := query.Get("employee_code"); code != "" {
		req.EmployeeCode = &code
	}

	// Validate request
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.reportService.ExportAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Filename, file.ContentType, file.Content)
}
