package geofence

import (
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/geo"
)

// Device types recognized by radius overrides.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceOther   = "other"
)

// Location is a registered work site with a circular geofence.
// Owned by administrative configuration; read-only to attendance.
type Location struct {
	ID           string
	Name         string
	Address      *string
	Center       geo.Coordinate
	RadiusMeters float64

	// RequiresEarlyCheckoutReason marks sites where leaving before the
	// work-end boundary needs a justification.
	RequiresEarlyCheckoutReason bool

	IsActive bool
}

// DeviceRadiusOverride widens (or narrows) the check-in radius for a
// device type. Mobile devices get more GPS tolerance than desktop
// browsers. Overrides apply to check-in only; checkout always uses the
// location's own radius.
type DeviceRadiusOverride struct {
	DeviceType          string
	CheckInRadiusMeters float64
}

// Decision reason codes.
const (
	ReasonNoLocations   = "no_locations"
	ReasonWithinRadius  = "within_radius"
	ReasonOutsideRadius = "outside_radius"
)

// Decision is the outcome of validating a reported position against
// the location catalog.
type Decision struct {
	CanCheckIn            bool
	Reason                string
	Nearest               *Location
	DistanceMeters        float64
	EffectiveRadiusMeters float64
	AccuracyWarning       string
	Message               string
}
