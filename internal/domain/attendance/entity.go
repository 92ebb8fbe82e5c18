package attendance

import (
	"time"
)

// Lifecycle states for one user's one workday. NONE and OPEN are
// transient within a calendar day; CLOSED is terminal for the day.
type State string

const (
	StateNone   State = "none"
	StateOpen   State = "open"
	StateClosed State = "closed"
)

// Check-in / check-out methods recorded on the attendance row.
const (
	MethodGeofence   = "geofence"
	MethodRemote     = "remote"
	MethodAutoSystem = "auto_system"
)

// Record is one user's attendance for one calendar day. Created on a
// validated check-in, mutated exactly once on checkout, then immutable
// except by administrative correction outside this core.
type Record struct {
	ID     string
	UserID string

	// Date is the work day in the application timezone, not a
	// timestamp. At most one record exists per (UserID, Date).
	Date time.Time

	CheckInTime         time.Time
	CheckInLocationID   *string
	CheckInLocationName *string
	CheckInLatitude     float64
	CheckInLongitude    float64
	CheckInAccuracy     *float64
	CheckInMethod       string
	IsRemoteLocation    bool
	DeviceType          *string
	LateReason          *string

	CheckOutTime         *time.Time
	CheckOutLocationID   *string
	CheckOutLocationName *string
	CheckOutLatitude     *float64
	CheckOutLongitude    *float64
	CheckOutMethod       *string
	EarlyCheckoutReason  *string

	// WorkHours is checkout minus check-in in hours, rounded to 2
	// decimals. Nil while the record is open.
	WorkHours *float64

	Status string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for reporting
	UserName       *string
	DepartmentName *string
}

// State reports where the record sits in the daily lifecycle.
func (r *Record) State() State {
	if r == nil {
		return StateNone
	}
	if r.CheckOutTime == nil {
		return StateOpen
	}
	return StateClosed
}
