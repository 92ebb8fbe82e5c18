package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/attendance"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, user_id, date, check_in_time, check_in_location_id, check_in_location_name,
	check_in_latitude, check_in_longitude, check_in_accuracy, check_in_method,
	is_remote_location, device_type, late_reason,
	check_out_time, check_out_location_id, check_out_location_name,
	check_out_latitude, check_out_longitude, check_out_method, early_checkout_reason,
	work_hours, status, created_at, updated_at`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.CheckInTime, &rec.CheckInLocationID, &rec.CheckInLocationName,
		&rec.CheckInLatitude, &rec.CheckInLongitude, &rec.CheckInAccuracy, &rec.CheckInMethod,
		&rec.IsRemoteLocation, &rec.DeviceType, &rec.LateReason,
		&rec.CheckOutTime, &rec.CheckOutLocationID, &rec.CheckOutLocationName,
		&rec.CheckOutLatitude, &rec.CheckOutLongitude, &rec.CheckOutMethod, &rec.EarlyCheckoutReason,
		&rec.WorkHours, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.Repository. The partial unique index
// idx_unique_daily_checkin on (user_id, date) is the concurrency guard:
// two racing check-ins cannot both insert.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (
			id, user_id, date, check_in_time, check_in_location_id, check_in_location_name,
			check_in_latitude, check_in_longitude, check_in_accuracy, check_in_method,
			is_remote_location, device_type, late_reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.Date,
		record.CheckInTime,
		record.CheckInLocationID,
		record.CheckInLocationName,
		record.CheckInLatitude,
		record.CheckInLongitude,
		record.CheckInAccuracy,
		record.CheckInMethod,
		record.IsRemoteLocation,
		record.DeviceType,
		record.LateReason,
		record.Status,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Race between two concurrent check-ins; the constraint wins.
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByUserAndDate implements attendance.Repository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE user_id = $1
		  AND date = $2
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &rec, nil
}

// Close implements attendance.Repository. The check_out_time IS NULL
// guard makes the OPEN -> CLOSED transition atomic: a record closed by
// a concurrent request yields zero affected rows.
func (a *attendanceRepository) Close(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_out_time = $2,
			check_out_location_id = $3,
			check_out_location_name = $4,
			check_out_latitude = $5,
			check_out_longitude = $6,
			check_out_method = $7,
			early_checkout_reason = $8,
			work_hours = $9,
			status = $10,
			updated_at = NOW()
		WHERE id = $1
		  AND check_out_time IS NULL
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.CheckOutTime,
		record.CheckOutLocationID,
		record.CheckOutLocationName,
		record.CheckOutLatitude,
		record.CheckOutLongitude,
		record.CheckOutMethod,
		record.EarlyCheckoutReason,
		record.WorkHours,
		record.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to close attendance record: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyCheckedOut
	}

	return nil
}

// ListOpenBefore implements attendance.Repository.
func (a *attendanceRepository) ListOpenBefore(ctx context.Context, day time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE check_out_time IS NULL
		  AND date < $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list open attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListByUserBetween implements attendance.Repository.
func (a *attendanceRepository) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE user_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListByDate implements attendance.Repository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time, departmentID *string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			r.id, r.user_id, r.date, r.check_in_time, r.check_in_location_id, r.check_in_location_name,
			r.check_in_latitude, r.check_in_longitude, r.check_in_accuracy, r.check_in_method,
			r.is_remote_location, r.device_type, r.late_reason,
			r.check_out_time, r.check_out_location_id, r.check_out_location_name,
			r.check_out_latitude, r.check_out_longitude, r.check_out_method, r.early_checkout_reason,
			r.work_hours, r.status, r.created_at, r.updated_at,
			TRIM(up.first_name || ' ' || up.last_name) AS user_name,
			d.name AS department_name
		FROM attendance_records r
		LEFT JOIN user_profiles up ON up.id = r.user_id
		LEFT JOIN departments d ON d.id = up.department_id
		WHERE r.date = $1
	`

	args := []interface{}{date}
	if departmentID != nil {
		query += ` AND up.department_id = $2`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY r.check_in_time ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.CheckInTime, &rec.CheckInLocationID, &rec.CheckInLocationName,
			&rec.CheckInLatitude, &rec.CheckInLongitude, &rec.CheckInAccuracy, &rec.CheckInMethod,
			&rec.IsRemoteLocation, &rec.DeviceType, &rec.LateReason,
			&rec.CheckOutTime, &rec.CheckOutLocationID, &rec.CheckOutLocationName,
			&rec.CheckOutLatitude, &rec.CheckOutLongitude, &rec.CheckOutMethod, &rec.EarlyCheckoutReason,
			&rec.WorkHours, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.UserName, &rec.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
