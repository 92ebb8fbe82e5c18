package http

import (
	"net/http"

	"github.com/qcc-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/qcc-attendance/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	DepartmentSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	attendanceService attendance.Service
}

func NewReportHandler(attendanceService attendance.Service) ReportHandler {
	return &reportHandlerImpl{attendanceService: attendanceService}
}

// DepartmentSummary implements ReportHandler.
func (h *reportHandlerImpl) DepartmentSummary(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter 'date' is required (YYYY-MM-DD)", nil)
		return
	}

	var departmentID *string
	if dept := r.URL.Query().Get("department"); dept != "" {
		departmentID = &dept
	}

	result, err := h.attendanceService.DepartmentSummary(r.Context(), date, departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
