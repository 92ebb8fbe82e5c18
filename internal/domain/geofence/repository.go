package geofence

import "context"

// CatalogRepository reads the registered location catalog and the
// per-device radius policies.
type CatalogRepository interface {
	// ListActive retrieves all active geofence locations.
	ListActive(ctx context.Context) ([]Location, error)

	// GetByID retrieves a single location, active or not. Historical
	// attendance records may reference deactivated locations.
	GetByID(ctx context.Context, id string) (Location, error)

	// ListDeviceRadiusOverrides retrieves active per-device-type
	// check-in radius settings.
	ListDeviceRadiusOverrides(ctx context.Context) ([]DeviceRadiusOverride, error)
}
