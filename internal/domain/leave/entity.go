package leave

import "time"

// Status is an approved leave period. Leave management is external;
// this core only reads it to gate check-ins.
type Status struct {
	ID        string
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Status    string
}
