package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/qcc-attendance/attendance-backend-go/internal/config"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/audit"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/geofence"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/leave"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/staff"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/clock"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/database"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/geo"
)

type AttendanceServiceImpl struct {
	tx      database.TxRunner
	records attendance.Repository
	catalog geofence.CatalogRepository
	staff   staff.Repository
	leave   leave.Repository
	audit   audit.Repository
	clock   clock.Clock

	loc                         *time.Location
	workStartHour, workStartMin int
	workEndHour, workEndMin     int
}

func NewAttendanceService(
	tx database.TxRunner,
	records attendance.Repository,
	catalog geofence.CatalogRepository,
	staffRepo staff.Repository,
	leaveRepo leave.Repository,
	auditRepo audit.Repository,
	clk clock.Clock,
	cfg config.AttendanceConfig,
) attendance.Service {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	start, err := time.Parse("15:04", cfg.WorkStartTime)
	if err != nil {
		start = time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC)
	}
	end, err := time.Parse("15:04", cfg.WorkEndTime)
	if err != nil {
		end = time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC)
	}

	return &AttendanceServiceImpl{
		tx:            tx,
		records:       records,
		catalog:       catalog,
		staff:         staffRepo,
		leave:         leaveRepo,
		audit:         auditRepo,
		clock:         clk,
		loc:           loc,
		workStartHour: start.Hour(),
		workStartMin:  start.Minute(),
		workEndHour:   end.Hour(),
		workEndMin:    end.Minute(),
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// workDay truncates a local timestamp to its calendar day.
func (s *AttendanceServiceImpl) workDay(local time.Time) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
}

// boundaries returns the work-window timestamps on the given day.
func (s *AttendanceServiceImpl) boundaries(day time.Time) (workStart, workEnd time.Time) {
	workStart = time.Date(day.Year(), day.Month(), day.Day(), s.workStartHour, s.workStartMin, 0, 0, s.loc)
	workEnd = time.Date(day.Year(), day.Month(), day.Day(), s.workEndHour, s.workEndMin, 0, 0, s.loc)
	return workStart, workEnd
}

func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(loc).Format("2006-01-02 15:04:05")
	return &formatted
}

func (s *AttendanceServiceImpl) mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:                   rec.ID,
		UserID:               rec.UserID,
		Date:                 rec.Date.Format("2006-01-02"),
		CheckInTime:          rec.CheckInTime.In(s.loc).Format("2006-01-02 15:04:05"),
		CheckInLocationID:    rec.CheckInLocationID,
		CheckInLocationName:  rec.CheckInLocationName,
		CheckInLatitude:      rec.CheckInLatitude,
		CheckInLongitude:     rec.CheckInLongitude,
		CheckInMethod:        rec.CheckInMethod,
		IsRemoteLocation:     rec.IsRemoteLocation,
		CheckOutTime:         timePtrToString(rec.CheckOutTime, s.loc),
		CheckOutLocationID:   rec.CheckOutLocationID,
		CheckOutLocationName: rec.CheckOutLocationName,
		CheckOutMethod:       rec.CheckOutMethod,
		WorkHours:            rec.WorkHours,
		Status:               rec.Status,
		LateReason:           rec.LateReason,
		EarlyCheckoutReason:  rec.EarlyCheckoutReason,
	}
}

// auditLog appends an audit entry. Audit failures are logged, never
// surfaced to the user.
func (s *AttendanceServiceImpl) auditLog(ctx context.Context, entry audit.Entry) {
	if err := s.audit.Insert(ctx, entry); err != nil {
		slog.Error("Failed to write audit log", "action", entry.Action, "error", err)
	}
}

// autoCloseMissedCheckout closes a previous day's open record at
// 23:59:59 of its work day.
func (s *AttendanceServiceImpl) autoCloseMissedCheckout(ctx context.Context, rec attendance.Record) error {
	day := rec.Date.In(s.loc)
	autoCheckout := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, s.loc)
	workHours := roundHours(autoCheckout.Sub(rec.CheckInTime))
	method := attendance.MethodAutoSystem
	locationName := "Auto Check-out (Missed)"

	workStart, workEnd := s.boundaries(day)
	closed := rec
	autoCheckoutUTC := autoCheckout.UTC()
	closed.CheckOutTime = &autoCheckoutUTC
	closed.CheckOutMethod = &method
	closed.CheckOutLocationName = &locationName
	closed.WorkHours = &workHours
	closed.Status = attendance.Classify(&closed, workStart, workEnd).Primary()

	// The close and its audit entry commit together.
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.records.Close(txCtx, closed); err != nil {
			return err
		}
		return s.audit.Insert(txCtx, audit.Entry{
			UserID:    rec.UserID,
			Action:    audit.ActionAutoCheckoutMissed,
			TableName: "attendance_records",
			RecordID:  rec.ID,
			NewValues: map[string]interface{}{
				"reason":                "Missed check-out from previous day",
				"auto_checkout_time":    autoCheckoutUTC.Format(time.RFC3339),
				"work_hours_calculated": workHours,
			},
		})
	})
	if err != nil {
		return fmt.Errorf("failed to auto-close attendance record %s: %w", rec.ID, err)
	}

	return nil
}

// CheckIn implements attendance.Service.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	nowUTC := s.clock.Now().UTC()
	nowLocal := nowUTC.In(s.loc)
	today := s.workDay(nowLocal)

	// Duplicate check-in is rejected before anything else.
	existing, err := s.records.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	switch existing.State() {
	case attendance.StateOpen:
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	case attendance.StateClosed:
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCompleted
	}

	onLeave, err := s.leave.GetActiveForDate(ctx, userID, today)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to check leave status: %w", err)
	}
	if onLeave != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("%w (from %s to %s)",
			attendance.ErrOnLeave,
			onLeave.StartDate.Format("2006-01-02"),
			onLeave.EndDate.Format("2006-01-02"))
	}

	profile, err := s.staff.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get staff profile: %w", err)
	}

	var warnings []attendance.Warning

	// A missed checkout from yesterday is closed at 23:59:59 of its day.
	yesterdayRec, err := s.records.GetByUserAndDate(ctx, userID, today.AddDate(0, 0, -1))
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to check yesterday's attendance: %w", err)
	}
	if yesterdayRec.State() == attendance.StateOpen {
		if err := s.autoCloseMissedCheckout(ctx, *yesterdayRec); err != nil {
			slog.Error("Failed to auto-close missed checkout", "record_id", yesterdayRec.ID, "error", err)
		} else {
			warnings = append(warnings, attendance.Warning{
				Code:    "missed_checkout",
				Message: "You did not check out yesterday. This has been recorded and will be visible to your department head.",
			})
		}
	}

	position := geo.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	deviceType := req.DeviceType()

	var decision geofence.Decision
	var checkInLocation *geofence.Location

	if req.IsRemoteLocation {
		// Explicit remote override bypasses geofencing (field staff).
		if req.LocationID != nil {
			loc, err := s.catalog.GetByID(ctx, *req.LocationID)
			if err != nil {
				return attendance.CheckInResponse{}, err
			}
			checkInLocation = &loc
		}
	} else {
		locations, err := s.catalog.ListActive(ctx)
		if err != nil {
			return attendance.CheckInResponse{}, fmt.Errorf("failed to list active locations: %w", err)
		}
		overrides, err := s.catalog.ListDeviceRadiusOverrides(ctx)
		if err != nil {
			return attendance.CheckInResponse{}, fmt.Errorf("failed to list device radius settings: %w", err)
		}

		decision = geofence.Resolve(position, req.Accuracy, locations, deviceType, overrides)
		if !decision.CanCheckIn {
			if decision.Reason == geofence.ReasonNoLocations {
				return attendance.CheckInResponse{}, geofence.ErrNoActiveLocations
			}
			return attendance.CheckInResponse{}, fmt.Errorf("%w: %s", attendance.ErrOutsideAllowedRadius, decision.Message)
		}
		checkInLocation = decision.Nearest

		if decision.AccuracyWarning != "" {
			warnings = append(warnings, attendance.Warning{
				Code:    "low_gps_accuracy",
				Message: decision.AccuracyWarning,
			})
		}
	}

	workStart, _ := s.boundaries(today)
	isLate := nowLocal.After(workStart)
	lateMinutes := 0
	if isLate {
		lateMinutes = int(math.Floor(nowLocal.Sub(workStart).Minutes()))
	}

	requiresLateReason := attendance.RequiresLatenessReason(nowLocal, profile.DepartmentCode, profile.DepartmentName, profile.Role)
	if isLate && requiresLateReason && (req.LateReason == nil || *req.LateReason == "") {
		return attendance.CheckInResponse{}, attendance.ErrLateReasonRequired
	}

	status := attendance.StatusOnTime
	if isLate {
		status = attendance.StatusLate
	} else if nowLocal.Before(workStart) {
		status = attendance.StatusEarlyCheckIn
	}

	method := attendance.MethodGeofence
	if req.IsRemoteLocation {
		method = attendance.MethodRemote
	}

	record := attendance.Record{
		UserID:           userID,
		Date:             today,
		CheckInTime:      nowUTC,
		CheckInLatitude:  req.Latitude,
		CheckInLongitude: req.Longitude,
		CheckInAccuracy:  &req.Accuracy,
		CheckInMethod:    method,
		IsRemoteLocation: req.IsRemoteLocation,
		DeviceType:       &deviceType,
		LateReason:       req.LateReason,
		Status:           status,
	}
	if checkInLocation != nil {
		record.CheckInLocationID = &checkInLocation.ID
		record.CheckInLocationName = &checkInLocation.Name
	}

	created, err := s.records.Create(ctx, record)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	s.auditLog(ctx, audit.Entry{
		UserID:    userID,
		Action:    audit.ActionCheckIn,
		TableName: "attendance_records",
		RecordID:  created.ID,
		NewValues: map[string]interface{}{
			"check_in_time":      created.CheckInTime.Format(time.RFC3339),
			"check_in_method":    created.CheckInMethod,
			"is_remote_location": created.IsRemoteLocation,
			"location_name":      created.CheckInLocationName,
			"status":             created.Status,
		},
		IPAddress: strPtrOrNil(req.IPAddress),
		UserAgent: strPtrOrNil(req.UserAgent),
	})

	locationName := "your work location"
	if checkInLocation != nil {
		locationName = checkInLocation.Name
	}
	message := fmt.Sprintf("Successfully checked in at %s. Remember to check out at the end of your work today.", locationName)
	if req.IsRemoteLocation {
		message = "Successfully checked in at a remote location. Remember to check out at the end of your work today."
	}
	if isLate {
		message = fmt.Sprintf("Late arrival detected - you checked in at %s (after %02d:%02d). %s",
			nowLocal.Format("15:04"), s.workStartHour, s.workStartMin, message)
	}

	return attendance.CheckInResponse{
		Record:                s.mapRecordToResponse(created),
		Message:               message,
		IsLate:                isLate,
		LateMinutes:           lateMinutes,
		RequiresLateReason:    requiresLateReason,
		Warnings:              warnings,
		DistanceMeters:        decision.DistanceMeters,
		EffectiveRadiusMeters: decision.EffectiveRadiusMeters,
	}, nil
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	nowUTC := s.clock.Now().UTC()
	nowLocal := nowUTC.In(s.loc)
	today := s.workDay(nowLocal)

	rec, err := s.records.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to find today's attendance: %w", err)
	}
	switch rec.State() {
	case attendance.StateNone:
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	case attendance.StateClosed:
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	if !nowUTC.After(rec.CheckInTime) {
		return attendance.CheckOutResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	profile, err := s.staff.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to get staff profile: %w", err)
	}

	// Checkout geofencing stays keyed to the location's base radius
	// and never blocks; device radius overrides apply on check-in only.
	var checkOutLocation *geofence.Location
	locationID := req.LocationID
	if locationID == nil {
		locationID = rec.CheckInLocationID
	}
	if locationID != nil {
		loc, err := s.catalog.GetByID(ctx, *locationID)
		if err == nil {
			checkOutLocation = &loc
		} else {
			slog.Warn("Check-out location lookup failed", "location_id", *locationID, "error", err)
		}
	}

	workStart, workEnd := s.boundaries(today)
	isEarly := nowLocal.Before(workEnd)

	locationRequiresReason := false
	if checkOutLocation != nil {
		locationRequiresReason = checkOutLocation.RequiresEarlyCheckoutReason
	}
	requiresReason := attendance.RequiresEarlyCheckoutReason(nowLocal, locationRequiresReason, profile.Role)
	if isEarly && requiresReason && (req.EarlyCheckoutReason == nil || *req.EarlyCheckoutReason == "") {
		return attendance.CheckOutResponse{}, attendance.ErrEarlyCheckoutReasonRequired
	}

	workHours := roundHours(nowUTC.Sub(rec.CheckInTime))
	method := attendance.MethodGeofence

	closed := *rec
	closed.CheckOutTime = &nowUTC
	closed.CheckOutLatitude = &req.Latitude
	closed.CheckOutLongitude = &req.Longitude
	closed.CheckOutMethod = &method
	closed.EarlyCheckoutReason = req.EarlyCheckoutReason
	closed.WorkHours = &workHours
	if checkOutLocation != nil {
		closed.CheckOutLocationID = &checkOutLocation.ID
		closed.CheckOutLocationName = &checkOutLocation.Name
	}
	closed.Status = attendance.Classify(&closed, workStart, workEnd).Primary()

	// The close and its audit entry commit together.
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.records.Close(txCtx, closed); err != nil {
			return err
		}
		return s.audit.Insert(txCtx, audit.Entry{
			UserID:    userID,
			Action:    audit.ActionCheckOut,
			TableName: "attendance_records",
			RecordID:  closed.ID,
			NewValues: map[string]interface{}{
				"check_out_time": nowUTC.Format(time.RFC3339),
				"work_hours":     workHours,
				"status":         closed.Status,
			},
			IPAddress: strPtrOrNil(req.IPAddress),
			UserAgent: strPtrOrNil(req.UserAgent),
		})
	})
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	message := fmt.Sprintf("Successfully checked out. You worked %.2f hours today.", workHours)

	return attendance.CheckOutResponse{
		Record:          s.mapRecordToResponse(closed),
		Message:         message,
		IsEarlyCheckout: isEarly,
	}, nil
}

// ValidateLocation implements attendance.Service. Dry run: no state
// change, no policy gate, just the geofence decision.
func (s *AttendanceServiceImpl) ValidateLocation(ctx context.Context, req attendance.ValidateLocationRequest) (attendance.ValidateLocationResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ValidateLocationResponse{}, err
	}

	if _, err := userIDFromContext(ctx); err != nil {
		return attendance.ValidateLocationResponse{}, err
	}

	locations, err := s.catalog.ListActive(ctx)
	if err != nil {
		return attendance.ValidateLocationResponse{}, fmt.Errorf("failed to list active locations: %w", err)
	}
	overrides, err := s.catalog.ListDeviceRadiusOverrides(ctx)
	if err != nil {
		return attendance.ValidateLocationResponse{}, fmt.Errorf("failed to list device radius settings: %w", err)
	}

	position := geo.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	decision := geofence.Resolve(position, req.Accuracy, locations, req.DeviceType(), overrides)

	resp := attendance.ValidateLocationResponse{
		CanCheckIn:            decision.CanCheckIn,
		Reason:                decision.Reason,
		DistanceMeters:        decision.DistanceMeters,
		EffectiveRadiusMeters: decision.EffectiveRadiusMeters,
		AccuracyWarning:       decision.AccuracyWarning,
		Message:               decision.Message,
	}
	if decision.Nearest != nil {
		resp.NearestLocationID = &decision.Nearest.ID
		resp.NearestLocationName = &decision.Nearest.Name
	}

	return resp, nil
}

// GetMyAttendance implements attendance.Service.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	today := s.workDay(s.clock.Now().UTC().In(s.loc))
	start := today.AddDate(0, 0, -30)
	end := today

	if filter.StartDate != nil && *filter.StartDate != "" {
		parsed, _ := time.ParseInLocation("2006-01-02", *filter.StartDate, s.loc)
		start = parsed
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		parsed, _ := time.ParseInLocation("2006-01-02", *filter.EndDate, s.loc)
		end = parsed
	}

	records, err := s.records.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, s.mapRecordToResponse(rec))
	}

	return responses, nil
}

// ClassifyDay implements attendance.Service.
func (s *AttendanceServiceImpl) ClassifyDay(ctx context.Context, userID string, date string) (attendance.DayClassificationResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.loc)
	if err != nil {
		return attendance.DayClassificationResponse{}, fmt.Errorf("%w: %q", attendance.ErrInvalidTimestamp, date)
	}

	rec, err := s.records.GetByUserAndDate(ctx, userID, day)
	if err != nil {
		return attendance.DayClassificationResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	workStart, workEnd := s.boundaries(day)
	flags := attendance.Classify(rec, workStart, workEnd)

	return attendance.DayClassificationResponse{
		Date:          day.Format("2006-01-02"),
		Flags:         flags,
		PrimaryStatus: flags.Primary(),
	}, nil
}

// DepartmentSummary implements attendance.Service.
func (s *AttendanceServiceImpl) DepartmentSummary(ctx context.Context, date string, departmentID *string) (attendance.DepartmentSummaryResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.loc)
	if err != nil {
		return attendance.DepartmentSummaryResponse{}, fmt.Errorf("%w: %q", attendance.ErrInvalidTimestamp, date)
	}

	staffList, err := s.staff.ListActive(ctx, departmentID)
	if err != nil {
		return attendance.DepartmentSummaryResponse{}, fmt.Errorf("failed to list active staff: %w", err)
	}

	records, err := s.records.ListByDate(ctx, day, departmentID)
	if err != nil {
		return attendance.DepartmentSummaryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	byUser := make(map[string]*attendance.Record, len(records))
	for i := range records {
		byUser[records[i].UserID] = &records[i]
	}

	workStart, workEnd := s.boundaries(day)

	summary := attendance.DepartmentSummaryResponse{
		Date:           day.Format("2006-01-02"),
		EarlyCheckIns:  []attendance.StaffDayStatus{},
		NoCheckIns:     []attendance.StaffDayStatus{},
		EarlyCheckouts: []attendance.StaffDayStatus{},
		NoCheckouts:    []attendance.StaffDayStatus{},
		TotalStaff:     len(staffList),
	}

	for _, member := range staffList {
		rec := byUser[member.UserID]
		flags := attendance.Classify(rec, workStart, workEnd)

		entry := attendance.StaffDayStatus{
			UserID:   member.UserID,
			FullName: member.FullName(),
		}
		if member.DepartmentName != "" {
			name := member.DepartmentName
			entry.DepartmentName = &name
		}
		if rec != nil {
			entry.RecordID = &rec.ID
			checkIn := rec.CheckInTime
			entry.CheckInTime = timePtrToString(&checkIn, s.loc)
			entry.CheckOutTime = timePtrToString(rec.CheckOutTime, s.loc)
		}

		// A staff member can land in several buckets at once: the
		// flags are independent.
		if flags.NoCheckIn {
			entry.Status = attendance.StatusNoCheckIn
			summary.NoCheckIns = append(summary.NoCheckIns, entry)
			continue
		}
		if flags.EarlyCheckIn {
			e := entry
			e.Status = attendance.StatusEarlyCheckIn
			summary.EarlyCheckIns = append(summary.EarlyCheckIns, e)
		}
		if flags.NoCheckOut {
			e := entry
			e.Status = attendance.StatusNoCheckOut
			summary.NoCheckouts = append(summary.NoCheckouts, e)
		}
		if flags.EarlyCheckOut {
			e := entry
			e.Status = attendance.StatusEarlyCheckOut
			summary.EarlyCheckouts = append(summary.EarlyCheckouts, e)
		}
	}

	summary.PresentStaff = len(records)
	summary.AbsentStaff = len(summary.NoCheckIns)

	return summary, nil
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
