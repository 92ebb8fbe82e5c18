package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn     = errors.New("you have already checked in today")
	ErrAlreadyCompleted     = errors.New("you have already completed your attendance for today")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed check-in radius")
	ErrOnLeave              = errors.New("you are on approved leave and cannot check in")
	ErrLateReasonRequired   = errors.New("a reason is required for late check-in")

	// Check-out errors
	ErrNotCheckedIn                = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut           = errors.New("you have already checked out today")
	ErrCheckOutBeforeCheckIn       = errors.New("check-out time must be after check-in time")
	ErrEarlyCheckoutReasonRequired = errors.New("a reason is required for early checkout")

	// General errors
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)
