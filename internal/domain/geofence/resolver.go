package geofence

import (
	"fmt"
	"math"

	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/geo"
)

// AccuracyWarningThresholdMeters is the GPS accuracy above which an
// advisory warning is attached. The warning never blocks a decision.
const AccuracyWarningThresholdMeters = 10

const accuracyWarningMessage = "GPS accuracy is low. Please ensure you have a clear view of the sky for better location precision."

// Resolve validates a reported position against the location catalog.
// Inactive locations and locations with a non-positive radius are
// never candidates. The nearest candidate wins; ties keep the first
// candidate in list order. A matching device radius override replaces
// the location's own radius for the check-in decision.
func Resolve(position geo.Coordinate, accuracyMeters float64, locations []Location, deviceType string, overrides []DeviceRadiusOverride) Decision {
	candidates := make([]Location, 0, len(locations))
	for _, loc := range locations {
		// A non-positive radius is a configuration error, not an
		// always-pass geofence.
		if !loc.IsActive || loc.RadiusMeters <= 0 {
			continue
		}
		candidates = append(candidates, loc)
	}

	if len(candidates) == 0 {
		return Decision{
			CanCheckIn: false,
			Reason:     ReasonNoLocations,
			Message:    "No active work locations found in the system.",
		}
	}

	nearest := candidates[0]
	minDistance := geo.DistanceMeters(position, nearest.Center)
	for _, loc := range candidates[1:] {
		if d := geo.DistanceMeters(position, loc.Center); d < minDistance {
			minDistance = d
			nearest = loc
		}
	}

	effectiveRadius := nearest.RadiusMeters
	for _, override := range overrides {
		if override.DeviceType == deviceType {
			effectiveRadius = override.CheckInRadiusMeters
			break
		}
	}

	decision := Decision{
		Nearest:               &nearest,
		DistanceMeters:        math.Round(minDistance),
		EffectiveRadiusMeters: effectiveRadius,
	}

	if accuracyMeters > AccuracyWarningThresholdMeters {
		decision.AccuracyWarning = accuracyWarningMessage
	}

	if minDistance <= effectiveRadius {
		decision.CanCheckIn = true
		decision.Reason = ReasonWithinRadius
		decision.Message = fmt.Sprintf("You are within %s (%.0fm away). You can check in.",
			nearest.Name, decision.DistanceMeters)
	} else {
		decision.CanCheckIn = false
		decision.Reason = ReasonOutsideRadius
		decision.Message = fmt.Sprintf("You are %.0fm away from %s. You must be within %.0f meters to check in.",
			decision.DistanceMeters, nearest.Name, effectiveRadius)
	}

	return decision
}
