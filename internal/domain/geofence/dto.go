package geofence

// LocationResponse is the public shape of a geofence location. The
// client uses it to render the map and pre-check positions.
type LocationResponse struct {
	ID                          string  `json:"id"`
	Name                        string  `json:"name"`
	Address                     *string `json:"address,omitempty"`
	Latitude                    float64 `json:"latitude"`
	Longitude                   float64 `json:"longitude"`
	RadiusMeters                float64 `json:"radius_meters"`
	RequiresEarlyCheckoutReason bool    `json:"requires_early_checkout_reason"`
}

func NewLocationResponse(loc Location) LocationResponse {
	return LocationResponse{
		ID:                          loc.ID,
		Name:                        loc.Name,
		Address:                     loc.Address,
		Latitude:                    loc.Center.Latitude,
		Longitude:                   loc.Center.Longitude,
		RadiusMeters:                loc.RadiusMeters,
		RequiresEarlyCheckoutReason: loc.RequiresEarlyCheckoutReason,
	}
}
