package attendance

import (
	"testing"
	"time"
)

// 2025-06-03 is a Tuesday.
func weekday(hour, min int) time.Time {
	return time.Date(2025, 6, 3, hour, min, 0, 0, time.UTC)
}

func TestIsWeekend(t *testing.T) {
	saturday := time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

	if !IsWeekend(saturday) {
		t.Error("IsWeekend(Saturday) = false, want true")
	}
	if !IsWeekend(sunday) {
		t.Error("IsWeekend(Sunday) = false, want true")
	}
	if IsWeekend(monday) {
		t.Error("IsWeekend(Monday) = true, want false")
	}
}

func TestRequiresLatenessReason(t *testing.T) {
	tuesday := weekday(9, 0)
	saturday := time.Date(2025, 6, 7, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		date     time.Time
		deptCode string
		deptName string
		role     string
		want     bool
	}{
		{"weekday non-exempt", tuesday, "FIN", "Finance", "staff", true},
		{"weekend", saturday, "FIN", "Finance", "staff", false},
		{"security code", tuesday, "security", "Operations", "staff", false},
		{"security code uppercase", tuesday, "SECURITY", "Operations", "staff", false},
		{"security in name", tuesday, "OPS", "Site Security Team", "staff", false},
		{"research in name", tuesday, "RND", "Applied Research Unit", "staff", false},
		{"department head", tuesday, "FIN", "Finance", "department_head", false},
		{"regional manager mixed case", tuesday, "FIN", "Finance", "Regional_Manager", false},
		{"empty department", tuesday, "", "", "staff", true},
	}

	for _, c := range cases {
		got := RequiresLatenessReason(c.date, c.deptCode, c.deptName, c.role)
		if got != c.want {
			t.Errorf("%s: RequiresLatenessReason = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRequiresEarlyCheckoutReason(t *testing.T) {
	wednesday := time.Date(2025, 6, 4, 16, 30, 0, 0, time.UTC)
	sunday := time.Date(2025, 6, 8, 16, 30, 0, 0, time.UTC)

	cases := []struct {
		name             string
		date             time.Time
		locationRequires bool
		role             string
		want             bool
	}{
		{"location flag set, weekday, staff", wednesday, true, "staff", true},
		{"location flag unset", wednesday, false, "staff", false},
		{"location flag unset, exempt role", wednesday, false, "department_head", false},
		{"weekend", sunday, true, "staff", false},
		{"exempt role", wednesday, true, "regional_manager", false},
	}

	for _, c := range cases {
		got := RequiresEarlyCheckoutReason(c.date, c.locationRequires, c.role)
		if got != c.want {
			t.Errorf("%s: RequiresEarlyCheckoutReason = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestClassifyNoRecord(t *testing.T) {
	flags := Classify(nil, weekday(8, 0), weekday(17, 0))
	if !flags.NoCheckIn {
		t.Error("NoCheckIn = false for nil record, want true")
	}
	if flags.Primary() != StatusNoCheckIn {
		t.Errorf("Primary = %q, want %q", flags.Primary(), StatusNoCheckIn)
	}
}

func TestClassifyOnTime(t *testing.T) {
	out := weekday(17, 15)
	record := &Record{CheckInTime: weekday(8, 0), CheckOutTime: &out}

	flags := Classify(record, weekday(8, 0), weekday(17, 0))
	if !flags.OnTime || flags.Late || flags.EarlyCheckIn || flags.NoCheckOut || flags.EarlyCheckOut {
		t.Errorf("flags = %+v, want on_time only", flags)
	}
	if flags.Primary() != StatusOnTime {
		t.Errorf("Primary = %q, want %q", flags.Primary(), StatusOnTime)
	}
}

func TestClassifyEarlyCheckIn(t *testing.T) {
	// Check-in at 07:45 against an 08:00 boundary is early, not late.
	out := weekday(17, 30)
	record := &Record{CheckInTime: weekday(7, 45), CheckOutTime: &out}

	flags := Classify(record, weekday(8, 0), weekday(17, 0))
	if !flags.EarlyCheckIn {
		t.Error("EarlyCheckIn = false for 07:45 check-in, want true")
	}
	if flags.Late {
		t.Error("Late = true for 07:45 check-in, want false")
	}
	if flags.OnTime {
		t.Error("OnTime = true for early check-in, want false")
	}
}

func TestClassifyLate(t *testing.T) {
	record := &Record{CheckInTime: weekday(8, 15)}

	flags := Classify(record, weekday(8, 0), weekday(17, 0))
	if !flags.Late {
		t.Error("Late = false for 08:15 check-in, want true")
	}
	// Late and missing checkout are simultaneous, independent flags.
	if !flags.NoCheckOut {
		t.Error("NoCheckOut = false for open record, want true")
	}
	if flags.Primary() != StatusLate {
		t.Errorf("Primary = %q, want %q", flags.Primary(), StatusLate)
	}
}

func TestClassifyEarlyCheckOut(t *testing.T) {
	out := weekday(16, 30)
	record := &Record{CheckInTime: weekday(8, 0), CheckOutTime: &out}

	flags := Classify(record, weekday(8, 0), weekday(17, 0))
	if !flags.EarlyCheckOut {
		t.Error("EarlyCheckOut = false for 16:30 checkout, want true")
	}
	if flags.NoCheckOut {
		t.Error("NoCheckOut = true for closed record, want false")
	}
	if flags.Primary() != StatusEarlyCheckOut {
		t.Errorf("Primary = %q, want %q", flags.Primary(), StatusEarlyCheckOut)
	}
}

func TestRecordState(t *testing.T) {
	var nilRecord *Record
	if nilRecord.State() != StateNone {
		t.Errorf("State() on nil record = %q, want %q", nilRecord.State(), StateNone)
	}

	open := &Record{CheckInTime: weekday(8, 0)}
	if open.State() != StateOpen {
		t.Errorf("State() on open record = %q, want %q", open.State(), StateOpen)
	}

	out := weekday(17, 0)
	closed := &Record{CheckInTime: weekday(8, 0), CheckOutTime: &out}
	if closed.State() != StateClosed {
		t.Errorf("State() on closed record = %q, want %q", closed.State(), StateClosed)
	}
}
