package audit

import "time"

// Actions recorded by the attendance core.
const (
	ActionCheckIn            = "check_in"
	ActionCheckOut           = "check_out"
	ActionAutoCheckoutMissed = "auto_checkout_missed"
)

// Entry is one append-only audit row.
type Entry struct {
	ID        string
	UserID    string
	Action    string
	TableName string
	RecordID  string
	NewValues map[string]interface{}
	IPAddress *string
	UserAgent *string
	CreatedAt time.Time
}
