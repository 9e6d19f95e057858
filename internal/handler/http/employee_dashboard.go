package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee_dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type EmployeeDashboardHandler interface {
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
	GetCalendar(w http.ResponseWriter, r *http.Request)
}

type employeeDashboardHandlerImpl struct {
	service employee_dashboard.EmployeeDashboardService
}

func NewEmployeeDashboardHandler(service employee_dashboard.EmployeeDashboardService) EmployeeDashboardHandler {
	return &employeeDashboardHandlerImpl{service: service}
}

// GetMonthlySummary handles GET /attendance/my/summary?month=YYYY-MM
func (h *employeeDashboardHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.service.GetMonthlySummary(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCalendar handles GET /attendance/my/calendar?month=YYYY-MM
func (h *employeeDashboardHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.service.GetCalendar(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
