package attendance

import (
	"strings"
	"time"
)

// Roles exempt from lateness and early-checkout justifications.
const (
	RoleDepartmentHead  = "department_head"
	RoleRegionalManager = "regional_manager"
)

// Primary status labels. A record carries independent flags; the
// primary label is derived for display only.
const (
	StatusNoCheckIn     = "no_checkin"
	StatusLate          = "late"
	StatusNoCheckOut    = "no_checkout"
	StatusEarlyCheckOut = "early_checkout"
	StatusEarlyCheckIn  = "early_checkin"
	StatusOnTime        = "on_time"
)

// IsWeekend reports whether date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	d := date.Weekday()
	return d == time.Saturday || d == time.Sunday
}

// IsSecurityDepartment matches the department code by lowercase
// equality and the free-text name by lowercase substring. The data
// from the configuration store is not guaranteed normalized.
func IsSecurityDepartment(code, name string) bool {
	return strings.ToLower(code) == "security" ||
		strings.Contains(strings.ToLower(name), "security")
}

// IsResearchDepartment matches like IsSecurityDepartment.
func IsResearchDepartment(code, name string) bool {
	return strings.ToLower(code) == "research" ||
		strings.Contains(strings.ToLower(name), "research")
}

// IsExemptRole reports whether the role never needs attendance
// justifications.
func IsExemptRole(role string) bool {
	lower := strings.ToLower(role)
	return lower == RoleDepartmentHead || lower == RoleRegionalManager
}

// RequiresLatenessReason reports whether a late check-in needs a
// justification. Weekends, Security/Research departments (rotating
// shifts), and exempt roles never need one.
func RequiresLatenessReason(date time.Time, departmentCode, departmentName, role string) bool {
	if IsWeekend(date) {
		return false
	}
	if IsSecurityDepartment(departmentCode, departmentName) {
		return false
	}
	if IsResearchDepartment(departmentCode, departmentName) {
		return false
	}
	if IsExemptRole(role) {
		return false
	}
	return true
}

// RequiresEarlyCheckoutReason reports whether leaving before the
// work-end boundary needs a justification. Enforced only when the
// location-level flag is set, on weekdays, for non-exempt roles.
func RequiresEarlyCheckoutReason(date time.Time, locationRequires bool, role string) bool {
	if !locationRequires {
		return false
	}
	if IsWeekend(date) {
		return false
	}
	if IsExemptRole(role) {
		return false
	}
	return true
}

// DayFlags is the multi-bucket classification of one user's day.
// Flags are independent booleans: a record can be late and missing a
// checkout at the same time. Collapsing them into one enum would lose
// information downstream reporting relies on.
type DayFlags struct {
	NoCheckIn     bool `json:"no_checkin"`
	EarlyCheckIn  bool `json:"early_checkin"`
	Late          bool `json:"late"`
	OnTime        bool `json:"on_time"`
	NoCheckOut    bool `json:"no_checkout"`
	EarlyCheckOut bool `json:"early_checkout"`
}

// Primary derives the single display label. Flags stay authoritative.
func (f DayFlags) Primary() string {
	switch {
	case f.NoCheckIn:
		return StatusNoCheckIn
	case f.Late:
		return StatusLate
	case f.NoCheckOut:
		return StatusNoCheckOut
	case f.EarlyCheckOut:
		return StatusEarlyCheckOut
	case f.EarlyCheckIn:
		return StatusEarlyCheckIn
	default:
		return StatusOnTime
	}
}

// Classify buckets a day's record against the work-window boundaries.
// record may be nil (no check-in that day). workStart and workEnd are
// concrete timestamps on the record's day in the application timezone.
func Classify(record *Record, workStart, workEnd time.Time) DayFlags {
	if record == nil {
		return DayFlags{NoCheckIn: true}
	}

	var flags DayFlags
	flags.EarlyCheckIn = record.CheckInTime.Before(workStart)
	flags.Late = record.CheckInTime.After(workStart)
	flags.OnTime = !flags.EarlyCheckIn && !flags.Late

	if record.CheckOutTime == nil {
		flags.NoCheckOut = true
	} else if record.CheckOutTime.Before(workEnd) {
		flags.EarlyCheckOut = true
	}

	return flags
}
