package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/audit"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.Repository {
	return &auditRepository{db: db}
}

// Insert implements audit.Repository.
func (a *auditRepository) Insert(ctx context.Context, entry audit.Entry) error {
	q := GetQuerier(ctx, a.db)

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query := `
		INSERT INTO audit_logs (
			id, user_id, action, table_name, record_id, new_values, ip_address, user_agent
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := q.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Action,
		entry.TableName,
		entry.RecordID,
		entry.NewValues,
		entry.IPAddress,
		entry.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}

	return nil
}
