package leave

import (
	"context"
	"time"
)

type Repository interface {
	// GetActiveForDate returns the approved leave covering date for a
	// user, or (nil, nil) when there is none.
	GetActiveForDate(ctx context.Context, userID string, date time.Time) (*Status, error)
}
