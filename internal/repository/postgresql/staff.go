package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/staff"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.Repository {
	return &staffRepository{db: db}
}

// GetByUserID implements staff.Repository.
func (s *staffRepository) GetByUserID(ctx context.Context, userID string) (staff.Profile, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT up.id, up.first_name, up.last_name, up.role,
		       up.department_id, COALESCE(d.code, ''), COALESCE(d.name, ''),
		       up.assigned_location_id, up.is_active
		FROM user_profiles up
		LEFT JOIN departments d ON d.id = up.department_id
		WHERE up.id = $1
	`

	var profile staff.Profile
	err := q.QueryRow(ctx, query, userID).Scan(
		&profile.UserID, &profile.FirstName, &profile.LastName, &profile.Role,
		&profile.DepartmentID, &profile.DepartmentCode, &profile.DepartmentName,
		&profile.AssignedLocationID, &profile.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Profile{}, staff.ErrProfileNotFound
		}
		return staff.Profile{}, fmt.Errorf("failed to get staff profile: %w", err)
	}

	return profile, nil
}

// ListActive implements staff.Repository.
func (s *staffRepository) ListActive(ctx context.Context, departmentID *string) ([]staff.Profile, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT up.id, up.first_name, up.last_name, up.role,
		       up.department_id, COALESCE(d.code, ''), COALESCE(d.name, ''),
		       up.assigned_location_id, up.is_active
		FROM user_profiles up
		LEFT JOIN departments d ON d.id = up.department_id
		WHERE up.is_active = true
	`

	args := []interface{}{}
	if departmentID != nil {
		query += ` AND up.department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY up.last_name ASC, up.first_name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active staff: %w", err)
	}
	defer rows.Close()

	var profiles []staff.Profile
	for rows.Next() {
		var profile staff.Profile
		err := rows.Scan(
			&profile.UserID, &profile.FirstName, &profile.LastName, &profile.Role,
			&profile.DepartmentID, &profile.DepartmentCode, &profile.DepartmentName,
			&profile.AssignedLocationID, &profile.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}
