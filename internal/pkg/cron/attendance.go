package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/qcc-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/audit"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/clock"
)

// AttendanceJobs sweeps records whose checkout never arrived. The
// check-in path also closes these lazily; the sweep catches users who
// simply never come back.
type AttendanceJobs struct {
	records   attendance.Repository
	auditRepo audit.Repository
	clock     clock.Clock
	loc       *time.Location
}

func NewAttendanceJobs(records attendance.Repository, auditRepo audit.Repository, clk clock.Clock, timezone string) *AttendanceJobs {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &AttendanceJobs{
		records:   records,
		auditRepo: auditRepo,
		clock:     clk,
		loc:       loc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_missed_checkouts", 1*time.Hour, j.CloseMissedCheckouts)
}

// CloseMissedCheckouts closes every record still open from a previous
// work day at 23:59:59 of its own day, with the auto_system method.
func (j *AttendanceJobs) CloseMissedCheckouts(ctx context.Context) error {
	nowLocal := j.clock.Now().In(j.loc)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, j.loc)

	open, err := j.records.ListOpenBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list open records: %w", err)
	}

	if len(open) == 0 {
		return nil
	}

	slog.Info("Cron: Closing missed checkouts", "open_count", len(open))

	closedCount := 0
	for _, rec := range open {
		day := rec.Date.In(j.loc)
		autoCheckout := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, j.loc).UTC()
		workHours := math.Round(autoCheckout.Sub(rec.CheckInTime).Hours()*100) / 100
		method := attendance.MethodAutoSystem
		locationName := "Auto Check-out (Missed)"

		closed := rec
		closed.CheckOutTime = &autoCheckout
		closed.CheckOutMethod = &method
		closed.CheckOutLocationName = &locationName
		closed.WorkHours = &workHours
		// A late arrival keeps its primary label; no_checkout ranks
		// below late.
		if rec.Status != attendance.StatusLate {
			closed.Status = attendance.StatusNoCheckOut
		}

		if err := j.records.Close(ctx, closed); err != nil {
			// A concurrent check-in may have closed it lazily already.
			if errors.Is(err, attendance.ErrAlreadyCheckedOut) {
				continue
			}
			slog.Error("Cron: Failed to close missed checkout",
				"record_id", rec.ID,
				"user_id", rec.UserID,
				"error", err)
			continue
		}

		if err := j.auditRepo.Insert(ctx, audit.Entry{
			UserID:    rec.UserID,
			Action:    audit.ActionAutoCheckoutMissed,
			TableName: "attendance_records",
			RecordID:  rec.ID,
			NewValues: map[string]interface{}{
				"reason":                "Missed check-out detected by scheduled sweep",
				"auto_checkout_time":    autoCheckout.Format(time.RFC3339),
				"work_hours_calculated": workHours,
			},
		}); err != nil {
			slog.Error("Cron: Failed to write audit log", "record_id", rec.ID, "error", err)
		}

		closedCount++
	}

	slog.Info("Cron: Closed missed checkouts", "count", closedCount)
	return nil
}
