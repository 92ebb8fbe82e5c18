package response

import (
	"errors"
	"net/http"

	"github.com/qcc-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/geofence"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/staff"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Attendance lifecycle errors
	switch {
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCompleted):
		Conflict(w, "Your attendance for today is already completed")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "You have already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "You have not checked in today", nil)
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, "Check-out time must be after check-in time", nil)
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrOnLeave):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrLateReasonRequired):
		BadRequest(w, "A reason is required for late check-in", nil)
	case errors.Is(err, attendance.ErrEarlyCheckoutReasonRequired):
		BadRequest(w, "A reason is required for early check-out", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidTimestamp):
		BadRequest(w, err.Error(), nil)

	// Geofence catalog errors
	case errors.Is(err, geofence.ErrNoActiveLocations):
		NotFound(w, "No active work locations found in the system")
	case errors.Is(err, geofence.ErrLocationNotFound):
		NotFound(w, "Work location not found")

	// Staff errors
	case errors.Is(err, staff.ErrProfileNotFound):
		NotFound(w, "Staff profile not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
