package audit

import "context"

type Repository interface {
	// Insert appends an audit entry. Audit failures should be logged
	// by callers, never turned into user-facing errors.
	Insert(ctx context.Context, entry Entry) error
}
