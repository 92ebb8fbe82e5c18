package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records. The store,
// not this core, enforces the at-most-one-record-per-user-per-day
// invariant: Create must fail with ErrAlreadyCheckedIn when a record
// for (UserID, Date) already exists, even under concurrent requests.
type Repository interface {
	// Create inserts a new open record. The (user_id, date) uniqueness
	// constraint is the concurrency guard for duplicate check-ins.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByUserAndDate retrieves the record for a user on a work day.
	// Returns (nil, nil) when no record exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Record, error)

	// Close writes the checkout fields on an open record. The update
	// is guarded on check_out_time IS NULL; a record already closed
	// yields ErrAlreadyCheckedOut.
	Close(ctx context.Context, record Record) error

	// ListOpenBefore retrieves open records whose work day is before
	// day. Used by the missed-checkout sweep.
	ListOpenBefore(ctx context.Context, day time.Time) ([]Record, error)

	// ListByUserBetween retrieves a user's records with Date in
	// [start, end], newest first.
	ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]Record, error)

	// ListByDate retrieves all records for a work day, optionally
	// filtered by department.
	ListByDate(ctx context.Context, date time.Time, departmentID *string) ([]Record, error)
}
