package attendance

import (
	"context"
)

// Service defines the attendance lifecycle operations exposed to the
// HTTP layer. The authenticated user comes from the request context.
type Service interface {
	// CheckIn validates the reported position against the geofence
	// catalog and creates the day's open record (NONE -> OPEN).
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut closes the day's open record (OPEN -> CLOSED).
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)

	// ValidateLocation runs the geofence decision without any state
	// change, for the client's pre-check UI.
	ValidateLocation(ctx context.Context, req ValidateLocationRequest) (ValidateLocationResponse, error)

	// GetMyAttendance retrieves the authenticated user's records.
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) ([]RecordResponse, error)

	// ClassifyDay buckets one user's day against the work window.
	ClassifyDay(ctx context.Context, userID string, date string) (DayClassificationResponse, error)

	// DepartmentSummary builds the per-day reporting buckets.
	DepartmentSummary(ctx context.Context, date string, departmentID *string) (DepartmentSummaryResponse, error)
}
