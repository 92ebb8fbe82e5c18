package staff

import "context"

type Repository interface {
	// GetByUserID retrieves the profile for an authenticated user.
	GetByUserID(ctx context.Context, userID string) (Profile, error)

	// ListActive retrieves active staff, optionally for one department.
	ListActive(ctx context.Context, departmentID *string) ([]Profile, error)
}
