package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcc-attendance/attendance-backend-go/internal/config"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/audit"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/geofence"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/leave"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/staff"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/clock"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/geo"
)

// ---- fakes -------------------------------------------------------------

type fakeRecordRepo struct {
	records map[string]*attendance.Record
	nextID  int
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]*attendance.Record)}
}

func recordKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (f *fakeRecordRepo) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	key := recordKey(record.UserID, record.Date)
	if _, exists := f.records[key]; exists {
		return attendance.Record{}, attendance.ErrAlreadyCheckedIn
	}
	if record.ID == "" {
		f.nextID++
		record.ID = fmt.Sprintf("rec-%d", f.nextID)
	}
	record.CreatedAt = record.CheckInTime
	record.UpdatedAt = record.CheckInTime
	stored := record
	f.records[key] = &stored
	return record, nil
}

func (f *fakeRecordRepo) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Record, error) {
	rec, ok := f.records[recordKey(userID, date)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeRecordRepo) Close(ctx context.Context, record attendance.Record) error {
	key := recordKey(record.UserID, record.Date)
	stored, ok := f.records[key]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	if stored.CheckOutTime != nil {
		return attendance.ErrAlreadyCheckedOut
	}
	cp := record
	f.records[key] = &cp
	return nil
}

func (f *fakeRecordRepo) ListOpenBefore(ctx context.Context, day time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.CheckOutTime == nil && rec.Date.Before(day) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.UserID == userID && !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListByDate(ctx context.Context, date time.Time, departmentID *string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.Date.Equal(date) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

type fakeCatalogRepo struct {
	locations []geofence.Location
	overrides []geofence.DeviceRadiusOverride
}

func (f *fakeCatalogRepo) ListActive(ctx context.Context) ([]geofence.Location, error) {
	return f.locations, nil
}

func (f *fakeCatalogRepo) GetByID(ctx context.Context, id string) (geofence.Location, error) {
	for _, loc := range f.locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return geofence.Location{}, geofence.ErrLocationNotFound
}

func (f *fakeCatalogRepo) ListDeviceRadiusOverrides(ctx context.Context) ([]geofence.DeviceRadiusOverride, error) {
	return f.overrides, nil
}

type fakeStaffRepo struct {
	profiles map[string]staff.Profile
}

func (f *fakeStaffRepo) GetByUserID(ctx context.Context, userID string) (staff.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return staff.Profile{}, staff.ErrProfileNotFound
	}
	return profile, nil
}

func (f *fakeStaffRepo) ListActive(ctx context.Context, departmentID *string) ([]staff.Profile, error) {
	var out []staff.Profile
	for _, profile := range f.profiles {
		if departmentID != nil && (profile.DepartmentID == nil || *profile.DepartmentID != *departmentID) {
			continue
		}
		out = append(out, profile)
	}
	return out, nil
}

type fakeLeaveRepo struct {
	statuses []leave.Status
}

func (f *fakeLeaveRepo) GetActiveForDate(ctx context.Context, userID string, date time.Time) (*leave.Status, error) {
	for _, status := range f.statuses {
		if status.UserID == userID && !date.Before(status.StartDate) && !date.After(status.EndDate) {
			cp := status
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeAuditRepo struct {
	entries []audit.Entry
}

func (f *fakeAuditRepo) Insert(ctx context.Context, entry audit.Entry) error {
	f.entries = append(f.entries, entry)
	return nil
}

type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// ---- fixture -----------------------------------------------------------

// Head office at the origin makes distance math trivial: 0.0001 deg of
// latitude is about 11.1 meters.
var headOffice = geofence.Location{
	ID:           "loc-1",
	Name:         "Head Office",
	Center:       geo.Coordinate{Latitude: 0, Longitude: 0},
	RadiusMeters: 50,
	IsActive:     true,
}

type fixture struct {
	service attendance.Service
	records *fakeRecordRepo
	catalog *fakeCatalogRepo
	staff   *fakeStaffRepo
	leave   *fakeLeaveRepo
	audit   *fakeAuditRepo
	tx      *fakeTxRunner
	clock   *clock.Fixed
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	f := &fixture{
		records: newFakeRecordRepo(),
		catalog: &fakeCatalogRepo{locations: []geofence.Location{headOffice}},
		staff: &fakeStaffRepo{profiles: map[string]staff.Profile{
			"user-1": {
				UserID:         "user-1",
				FirstName:      "Ada",
				LastName:       "Pratama",
				Role:           "staff",
				DepartmentCode: "OPS",
				DepartmentName: "Operations",
				IsActive:       true,
			},
		}},
		leave: &fakeLeaveRepo{},
		audit: &fakeAuditRepo{},
		tx:    &fakeTxRunner{},
		clock: &clock.Fixed{Time: now},
	}

	f.service = NewAttendanceService(f.tx, f.records, f.catalog, f.staff, f.leave, f.audit, f.clock, config.AttendanceConfig{
		Timezone:      "UTC",
		WorkStartTime: "08:00",
		WorkEndTime:   "17:00",
	})

	return f
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"user_id": userID, "type": "access"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// Tuesday
var workday = time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(workday.Year(), workday.Month(), workday.Day(), hour, minute, 0, 0, time.UTC)
}

func checkInAt(lat, lng float64) attendance.CheckInRequest {
	return attendance.CheckInRequest{Latitude: lat, Longitude: lng, Accuracy: 5}
}

// ---- check-in ----------------------------------------------------------

func TestCheckInOnTime(t *testing.T) {
	f := newFixture(t, at(8, 0))
	ctx := authedContext(t, "user-1")

	resp, err := f.service.CheckIn(ctx, checkInAt(0, 0))
	require.NoError(t, err)

	assert.False(t, resp.IsLate)
	assert.Equal(t, attendance.StatusOnTime, resp.Record.Status)
	assert.Equal(t, attendance.MethodGeofence, resp.Record.CheckInMethod)
	require.NotNil(t, resp.Record.CheckInLocationName)
	assert.Equal(t, "Head Office", *resp.Record.CheckInLocationName)
	assert.Empty(t, resp.Warnings)

	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, audit.ActionCheckIn, f.audit.entries[0].Action)
}

func TestCheckInDuplicateRejected(t *testing.T) {
	f := newFixture(t, at(7, 55))
	ctx := authedContext(t, "user-1")

	_, err := f.service.CheckIn(ctx, checkInAt(0, 0))
	require.NoError(t, err)

	_, err = f.service.CheckIn(ctx, checkInAt(0, 0))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	// State is unchanged: still exactly one record for the day.
	rec, err := f.records.GetByUserAndDate(ctx, "user-1", workday)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StateOpen, rec.State())
}

func TestCheckInAfterCompletedDayRejected(t *testing.T) {
	f := newFixture(t, at(18, 0))
	ctx := authedContext(t, "user-1")

	checkOut := at(17, 30)
	method := attendance.MethodGeofence
	f.records.records[recordKey("user-1", workday)] = &attendance.Record{
		ID:             "rec-done",
		UserID:         "user-1",
		Date:           workday,
		CheckInTime:    at(8, 0),
		CheckOutTime:   &checkOut,
		CheckOutMethod: &method,
	}

	_, err := f.service.CheckIn(ctx, checkInAt(0, 0))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCompleted)
}

func TestCheckInOutsideRadiusRejected(t *testing.T) {
	f := newFixture(t, at(7, 55))
	ctx := authedContext(t, "user-1")

	// ~111 meters from the office, radius is 50.
	_, err := f.service.CheckIn(ctx, checkInAt(0.001, 0))
	require.ErrorIs(t, err, attendance.ErrOutsideAllowedRadius)
	assert.Contains(t, err.Error(), "Head Office")

	rec, getErr := f.records.GetByUserAndDate(ctx, "user-1", workday)
	require.NoError(t, getErr)
	assert.Nil(t, rec)
	assert.Empty(t, f.audit.entries)
}

func TestCheckInRemoteBypassesGeofence(t *testing.T) {
	f := newFixture(t, at(7, 55))
	ctx := authedContext(t, "user-1")

	req := checkInAt(0.5, 0.5) // nowhere near any location
	req.IsRemoteLocation = true

	resp, err := f.service.CheckIn(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, attendance.MethodRemote, resp.Record.CheckInMethod)
	assert.True(t, resp.Record.IsRemoteLocation)
	assert.Nil(t, resp.Record.CheckInLocationID)
}

func TestCheckInDeviceRadiusOverride(t *testing.T) {
	f := newFixture(t, at(7, 55))
	f.catalog.overrides = []geofence.DeviceRadiusOverride{
		{DeviceType: geofence.DeviceMobile, CheckInRadiusMeters: 150},
	}
	ctx := authedContext(t, "user-1")

	// ~111 meters out: beyond the 50m base radius, inside the mobile one.
	req := checkInAt(0.001, 0)
	req.DeviceInfo = &attendance.DeviceInfo{DeviceID: "d-1", DeviceType: geofence.DeviceMobile}

	resp, err := f.service.CheckIn(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, float64(150), resp.EffectiveRadiusMeters)

	// The same position on a desktop keeps the base radius and fails.
	f2 := newFixture(t, at(7, 55))
	f2.catalog.overrides = f.catalog.overrides
	_, err = f2.service.CheckIn(authedContext(t, "user-1"), checkInAt(0.001, 0))
	assert.ErrorIs(t, err, attendance.ErrOutsideAllowedRadius)
}

func TestCheckInOnLeaveRejected(t *testing.T) {
	f := newFixture(t, at(7, 55))
	f.leave.statuses = []leave.Status{{
		ID:        "leave-1",
		UserID:    "user-1",
		StartDate: workday.AddDate(0, 0, -2),
		EndDate:   workday.AddDate(0, 0, 2),
		Status:    "on_leave",
	}}

	_, err := f.service.CheckIn(authedContext(t, "user-1"), checkInAt(0, 0))
	assert.ErrorIs(t, err, attendance.ErrOnLeave)
}

func TestCheckInLateRequiresReason(t *testing.T) {
	f := newFixture(t, at(8, 15))
	ctx := authedContext(t, "user-1")

	_, err := f.service.CheckIn(ctx, checkInAt(0, 0))
	require.ErrorIs(t, err, attendance.ErrLateReasonRequired)

	reason := "Traffic accident on the ring road"
	req := checkInAt(0, 0)
	req.LateReason = &reason

	resp, err := f.service.CheckIn(ctx, req)
	require.NoError(t, err)
	assert.True(t, resp.IsLate)
	assert.Equal(t, 15, resp.LateMinutes)
	assert.Equal(t, attendance.StatusLate, resp.Record.Status)
}

func TestCheckInLateSecurityDepartmentExempt(t *testing.T) {
	f := newFixture(t, at(8, 15))
	profile := f.staff.profiles["user-1"]
	profile.DepartmentCode = "SECURITY"
	profile.DepartmentName = "Site Security"
	f.staff.profiles["user-1"] = profile

	resp, err := f.service.CheckIn(authedContext(t, "user-1"), checkInAt(0, 0))
	require.NoError(t, err)
	assert.True(t, resp.IsLate)
	assert.False(t, resp.RequiresLateReason)
}

func TestCheckInLateExemptRole(t *testing.T) {
	f := newFixture(t, at(8, 15))
	profile := f.staff.profiles["user-1"]
	profile.Role = "department_head"
	f.staff.profiles["user-1"] = profile

	resp, err := f.service.CheckIn(authedContext(t, "user-1"), checkInAt(0, 0))
	require.NoError(t, err)
	assert.False(t, resp.RequiresLateReason)
}

func TestCheckInAccuracyWarningIsAdvisory(t *testing.T) {
	f := newFixture(t, at(7, 55))
	req := checkInAt(0, 0)
	req.Accuracy = 25

	resp, err := f.service.CheckIn(authedContext(t, "user-1"), req)
	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "low_gps_accuracy", resp.Warnings[0].Code)
}

func TestCheckInAutoClosesMissedCheckout(t *testing.T) {
	f := newFixture(t, at(7, 55))
	ctx := authedContext(t, "user-1")

	yesterday := workday.AddDate(0, 0, -1)
	f.records.records[recordKey("user-1", yesterday)] = &attendance.Record{
		ID:          "rec-old",
		UserID:      "user-1",
		Date:        yesterday,
		CheckInTime: yesterday.Add(8 * time.Hour),
	}

	resp, err := f.service.CheckIn(ctx, checkInAt(0, 0))
	require.NoError(t, err)

	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "missed_checkout", resp.Warnings[0].Code)

	old, err := f.records.GetByUserAndDate(ctx, "user-1", yesterday)
	require.NoError(t, err)
	require.Equal(t, attendance.StateClosed, old.State())
	require.NotNil(t, old.CheckOutMethod)
	assert.Equal(t, attendance.MethodAutoSystem, *old.CheckOutMethod)
	assert.Equal(t, "23:59:59", old.CheckOutTime.UTC().Format("15:04:05"))
	require.NotNil(t, old.WorkHours)
	assert.InDelta(t, 16.0, *old.WorkHours, 0.01)

	// One audit entry for the auto-close, one for the new check-in.
	require.Len(t, f.audit.entries, 2)
	assert.Equal(t, audit.ActionAutoCheckoutMissed, f.audit.entries[0].Action)

	// The auto-close and its audit entry ran as one transaction.
	assert.Equal(t, 1, f.tx.calls)
}

// ---- check-out ---------------------------------------------------------

func TestCheckOutWithoutCheckInRejected(t *testing.T) {
	f := newFixture(t, at(17, 30))

	_, err := f.service.CheckOut(authedContext(t, "user-1"), attendance.CheckOutRequest{Accuracy: 5})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutClosesRecord(t *testing.T) {
	f := newFixture(t, at(8, 0))
	ctx := authedContext(t, "user-1")

	_, err := f.service.CheckIn(ctx, checkInAt(0, 0))
	require.NoError(t, err)

	f.clock.Time = at(17, 30)
	resp, err := f.service.CheckOut(ctx, attendance.CheckOutRequest{Accuracy: 5})
	require.NoError(t, err)

	assert.False(t, resp.IsEarlyCheckout)
	require.NotNil(t, resp.Record.WorkHours)
	assert.Equal(t, 9.5, *resp.Record.WorkHours)
	assert.Equal(t, attendance.StatusOnTime, resp.Record.Status)

	rec, err := f.records.GetByUserAndDate(ctx, "user-1", workday)
	require.NoError(t, err)
	assert.Equal(t, attendance.StateClosed, rec.State())
}

func TestCheckOutClosesAndAuditsTransactionally(t *testing.T) {
	f := newFixture(t, at(8, 0))
	ctx := authedContext(t, "user-1")

	_, err := f.service.CheckIn(ctx, checkInAt(0, 0))
	require.NoError(t, err)
	require.Equal(t, 0, f.tx.calls)

	f.clock.Time = at(17, 30)
	_, err = f.service.CheckOut(ctx, attendance.CheckOutRequest{Accuracy: 5})
	require.NoError(t, err)

	assert.Equal(t, 1, f.tx.calls)
	require.Len(t, f.audit.entries, 2)
	assert.Equal(t, audit.ActionCheckOut, f.audit.entries[1].Action)
}

func TestCheckOutTwiceRejected(t *testing.T) {
	f := newFixture(t, at(8, 0))
	ctx := authedContext(t, "user-1")

	_, err := f.service.CheckIn(ctx, checkInAt(0, 0))
	require.NoError(t, err)

	f.clock.Time = at(17, 30)
	_, err = f.service.CheckOut(ctx, attendance.CheckOutRequest{Accuracy: 5})
	require.NoError(t, err)

	_, err = f.service.CheckOut(ctx, attendance.CheckOutRequest{Accuracy: 5})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOutWorkHoursRounding(t *testing.T) {
	f := newFixture(t, at(8, 0))
	ctx := authedContext(t, "user-1")

	_, err := f.service.CheckIn(ctx, checkInAt(0, 0))
	require.NoError(t, err)

	// 8h20m is 8.333... hours; stored as 8.33.
	f.clock.Time = at(16, 20)
	resp, err := f.service.CheckOut(ctx, attendance.CheckOutRequest{Accuracy: 5})
	require.NoError(t, err)
	require.NotNil(t, resp.Record.WorkHours)
	assert.Equal(t, 8.33, *resp.Record.WorkHours)
}

func TestCheckOutEarlyRequiresReasonWhenLocationFlagged(t *testing.T) {
	office := headOffice
	office.RequiresEarlyCheckoutReason = true

	f := newFixture(t, at(8, 0))
	f.catalog.locations = []geofence.Location{office}
	ctx := authedContext(t, "user-1")

	_, err := f.service.CheckIn(ctx, checkInAt(0, 0))
	require.NoError(t, err)

	f.clock.Time = at(16, 0)
	_, err = f.service.CheckOut(ctx, attendance.CheckOutRequest{Accuracy: 5})
	require.ErrorIs(t, err, attendance.ErrEarlyCheckoutReasonRequired)

	reason := "Doctor appointment"
	resp, err := f.service.CheckOut(ctx, attendance.CheckOutRequest{Accuracy: 5, EarlyCheckoutReason: &reason})
	require.NoError(t, err)
	assert.True(t, resp.IsEarlyCheckout)
	assert.Equal(t, attendance.StatusEarlyCheckOut, resp.Record.Status)
}

func TestCheckOutEarlyWithoutLocationFlagAllowed(t *testing.T) {
	f := newFixture(t, at(8, 0))
	ctx := authedContext(t, "user-1")

	_, err := f.service.CheckIn(ctx, checkInAt(0, 0))
	require.NoError(t, err)

	f.clock.Time = at(16, 0)
	resp, err := f.service.CheckOut(ctx, attendance.CheckOutRequest{Accuracy: 5})
	require.NoError(t, err)
	assert.True(t, resp.IsEarlyCheckout)
}

// ---- validate-location -------------------------------------------------

func TestValidateLocationDryRun(t *testing.T) {
	f := newFixture(t, at(7, 55))
	ctx := authedContext(t, "user-1")

	resp, err := f.service.ValidateLocation(ctx, attendance.ValidateLocationRequest{Latitude: 0, Longitude: 0, Accuracy: 5})
	require.NoError(t, err)
	assert.True(t, resp.CanCheckIn)
	require.NotNil(t, resp.NearestLocationName)
	assert.Equal(t, "Head Office", *resp.NearestLocationName)

	// Dry run: no record, no audit entry.
	rec, err := f.records.GetByUserAndDate(ctx, "user-1", workday)
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.Empty(t, f.audit.entries)
}

// ---- classification and reporting --------------------------------------

func TestClassifyDayInvalidDate(t *testing.T) {
	f := newFixture(t, at(12, 0))

	_, err := f.service.ClassifyDay(context.Background(), "user-1", "03-06-2025")
	assert.ErrorIs(t, err, attendance.ErrInvalidTimestamp)
}

func TestClassifyDayNoRecord(t *testing.T) {
	f := newFixture(t, at(12, 0))

	resp, err := f.service.ClassifyDay(context.Background(), "user-1", "2025-06-03")
	require.NoError(t, err)
	assert.True(t, resp.Flags.NoCheckIn)
	assert.Equal(t, attendance.StatusNoCheckIn, resp.PrimaryStatus)
}

func TestClassifyDayLateAndNoCheckout(t *testing.T) {
	f := newFixture(t, at(12, 0))
	f.records.records[recordKey("user-1", workday)] = &attendance.Record{
		ID:          "rec-1",
		UserID:      "user-1",
		Date:        workday,
		CheckInTime: at(8, 15),
	}

	resp, err := f.service.ClassifyDay(context.Background(), "user-1", "2025-06-03")
	require.NoError(t, err)
	assert.True(t, resp.Flags.Late)
	assert.True(t, resp.Flags.NoCheckOut)
	assert.Equal(t, attendance.StatusLate, resp.PrimaryStatus)
}

func TestDepartmentSummaryBuckets(t *testing.T) {
	f := newFixture(t, at(18, 0))
	f.staff.profiles["user-2"] = staff.Profile{
		UserID: "user-2", FirstName: "Budi", LastName: "Santoso",
		Role: "staff", DepartmentCode: "OPS", DepartmentName: "Operations", IsActive: true,
	}
	f.staff.profiles["user-3"] = staff.Profile{
		UserID: "user-3", FirstName: "Citra", LastName: "Wijaya",
		Role: "staff", DepartmentCode: "OPS", DepartmentName: "Operations", IsActive: true,
	}

	// user-1: early check-in, no checkout. user-2: early checkout.
	// user-3: never checked in.
	earlyOut := at(16, 0)
	method := attendance.MethodGeofence
	f.records.records[recordKey("user-1", workday)] = &attendance.Record{
		ID: "rec-1", UserID: "user-1", Date: workday, CheckInTime: at(7, 30),
	}
	f.records.records[recordKey("user-2", workday)] = &attendance.Record{
		ID: "rec-2", UserID: "user-2", Date: workday, CheckInTime: at(8, 0),
		CheckOutTime: &earlyOut, CheckOutMethod: &method,
	}

	summary, err := f.service.DepartmentSummary(context.Background(), "2025-06-03", nil)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalStaff)
	assert.Equal(t, 2, summary.PresentStaff)
	assert.Equal(t, 1, summary.AbsentStaff)

	require.Len(t, summary.EarlyCheckIns, 1)
	assert.Equal(t, "user-1", summary.EarlyCheckIns[0].UserID)
	require.Len(t, summary.NoCheckouts, 1)
	assert.Equal(t, "user-1", summary.NoCheckouts[0].UserID)
	require.Len(t, summary.EarlyCheckouts, 1)
	assert.Equal(t, "user-2", summary.EarlyCheckouts[0].UserID)
	require.Len(t, summary.NoCheckIns, 1)
	assert.Equal(t, "user-3", summary.NoCheckIns[0].UserID)
	assert.Equal(t, "Citra Wijaya", summary.NoCheckIns[0].FullName)
}

func TestGetMyAttendance(t *testing.T) {
	f := newFixture(t, at(12, 0))
	ctx := authedContext(t, "user-1")

	f.records.records[recordKey("user-1", workday)] = &attendance.Record{
		ID: "rec-1", UserID: "user-1", Date: workday, CheckInTime: at(8, 0), Status: attendance.StatusOnTime,
	}

	start := "2025-06-01"
	end := "2025-06-30"
	records, err := f.service.GetMyAttendance(ctx, attendance.MyAttendanceFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2025-06-03", records[0].Date)
	assert.Equal(t, attendance.StatusOnTime, records[0].Status)
}

func TestGetMyAttendanceBadFilter(t *testing.T) {
	f := newFixture(t, at(12, 0))
	bad := "June 3rd"
	_, err := f.service.GetMyAttendance(authedContext(t, "user-1"), attendance.MyAttendanceFilter{StartDate: &bad})
	assert.Error(t, err)
}
