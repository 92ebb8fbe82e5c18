package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/leave"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

// GetActiveForDate implements leave.Repository.
func (l *leaveRepository) GetActiveForDate(ctx context.Context, userID string, date time.Time) (*leave.Status, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, user_id, start_date, end_date, status
		FROM leave_status
		WHERE user_id = $1
		  AND status = 'on_leave'
		  AND start_date <= $2
		  AND end_date >= $2
		LIMIT 1
	`

	var status leave.Status
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&status.ID, &status.UserID, &status.StartDate, &status.EndDate, &status.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not on leave
		}
		return nil, fmt.Errorf("failed to get leave status: %w", err)
	}

	return &status, nil
}
