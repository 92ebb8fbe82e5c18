package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/geofence"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/database"
)

type geofenceRepository struct {
	db *database.DB
}

func NewGeofenceRepository(db *database.DB) geofence.CatalogRepository {
	return &geofenceRepository{db: db}
}

// ListActive implements geofence.CatalogRepository.
func (g *geofenceRepository) ListActive(ctx context.Context) ([]geofence.Location, error) {
	q := GetQuerier(ctx, g.db)

	query := `
		SELECT id, name, address, latitude, longitude, radius_meters,
		       requires_early_checkout_reason, is_active
		FROM geofence_locations
		WHERE is_active = true
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active locations: %w", err)
	}
	defer rows.Close()

	var locations []geofence.Location
	for rows.Next() {
		var loc geofence.Location
		err := rows.Scan(
			&loc.ID, &loc.Name, &loc.Address,
			&loc.Center.Latitude, &loc.Center.Longitude, &loc.RadiusMeters,
			&loc.RequiresEarlyCheckoutReason, &loc.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	return locations, rows.Err()
}

// GetByID implements geofence.CatalogRepository.
func (g *geofenceRepository) GetByID(ctx context.Context, id string) (geofence.Location, error) {
	q := GetQuerier(ctx, g.db)

	query := `
		SELECT id, name, address, latitude, longitude, radius_meters,
		       requires_early_checkout_reason, is_active
		FROM geofence_locations
		WHERE id = $1
	`

	var loc geofence.Location
	err := q.QueryRow(ctx, query, id).Scan(
		&loc.ID, &loc.Name, &loc.Address,
		&loc.Center.Latitude, &loc.Center.Longitude, &loc.RadiusMeters,
		&loc.RequiresEarlyCheckoutReason, &loc.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geofence.Location{}, geofence.ErrLocationNotFound
		}
		return geofence.Location{}, fmt.Errorf("failed to get location by ID: %w", err)
	}

	return loc, nil
}

// ListDeviceRadiusOverrides implements geofence.CatalogRepository.
func (g *geofenceRepository) ListDeviceRadiusOverrides(ctx context.Context) ([]geofence.DeviceRadiusOverride, error) {
	q := GetQuerier(ctx, g.db)

	query := `
		SELECT device_type, check_in_radius_meters
		FROM device_radius_settings
		WHERE is_active = true
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list device radius settings: %w", err)
	}
	defer rows.Close()

	var overrides []geofence.DeviceRadiusOverride
	for rows.Next() {
		var override geofence.DeviceRadiusOverride
		if err := rows.Scan(&override.DeviceType, &override.CheckInRadiusMeters); err != nil {
			return nil, fmt.Errorf("failed to scan device radius setting: %w", err)
		}
		overrides = append(overrides, override)
	}

	return overrides, rows.Err()
}
