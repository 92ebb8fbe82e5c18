package geofence

import "errors"

var (
	ErrNoActiveLocations = errors.New("no active work locations configured")
	ErrLocationNotFound  = errors.New("work location not found")
)
